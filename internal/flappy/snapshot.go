package flappy

// Snapshot captures everything a renderer or remote client needs for one
// frame. It is a copy and stays valid after further steps.
type Snapshot struct {
	Tick          int            `json:"tick"`
	State         RunState       `json:"state"`
	Score         int            `json:"score"`
	ViewWidth     float64        `json:"viewWidth"`
	ViewHeight    float64        `json:"viewHeight"`
	Avatar        AvatarView     `json:"avatar"`
	ObstacleWidth float64        `json:"obstacleWidth"`
	Obstacles     []ObstacleView `json:"obstacles"`
}

// AvatarView is the serialisable form of the avatar.
type AvatarView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Velocity float64 `json:"velocity"`
}

// ObstacleView is the serialisable form of an obstacle.
type ObstacleView struct {
	X          float64 `json:"x"`
	TopEdge    float64 `json:"topEdge"`
	BottomEdge float64 `json:"bottomEdge"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w, h := g.viewSize()

	obstacles := make([]ObstacleView, len(g.Obstacles()))
	for i, o := range g.Obstacles() {
		obstacles[i] = ObstacleView{X: o.X, TopEdge: o.TopEdge, BottomEdge: o.BottomEdge}
	}

	return Snapshot{
		Tick:       g.tickCount,
		State:      g.state,
		Score:      g.score,
		ViewWidth:  w,
		ViewHeight: h,
		Avatar: AvatarView{
			X:        g.avatar.X,
			Y:        g.avatar.Y,
			Radius:   g.avatar.Radius,
			Velocity: g.avatar.Velocity,
		},
		ObstacleWidth: g.ObstacleWidth(),
		Obstacles:     obstacles,
	}
}
