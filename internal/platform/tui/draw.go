package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Visual characters for rendering
const (
	AvatarChar    = '●'
	BarrierChar   = '█'
	CapTopChar    = '▄'
	CapBottomChar = '▀'
)

// Painter draws world-space game state onto a character screen. A cell
// covers CellWidth x CellHeight world units; an element is drawn in every
// cell whose centre it covers.
type Painter struct {
	cellW float64
	cellH float64
}

// NewPainter creates a painter for the given display settings.
func NewPainter(d config.FlappyDisplay) Painter {
	return Painter{cellW: d.CellWidth, cellH: d.CellHeight}
}

// WorldSize returns the world dimensions covered by a cols x rows screen.
func (p Painter) WorldSize(cols, rows int) (float64, float64) {
	return float64(max(cols, 0)) * p.cellW, float64(max(rows, 0)) * p.cellH
}

// cellCenter returns the world coordinates of a cell's centre.
func (p Painter) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * p.cellW, (float64(row) + 0.5) * p.cellH
}

// Draw renders obstacles then the avatar. The screen is cleared first.
func (p Painter) Draw(dst *core.Screen, g *flappy.Game) {
	dst.Clear()
	if p.cellW <= 0 || p.cellH <= 0 {
		return
	}

	width := g.ObstacleWidth()
	for _, o := range g.Obstacles() {
		p.drawObstacle(dst, o, width)
	}
	p.drawAvatar(dst, g.Avatar())
}

// drawObstacle fills both barriers with a cap row on the gap side.
func (p Painter) drawObstacle(dst *core.Screen, o flappy.Obstacle, width float64) {
	firstCol := max(int(math.Floor(o.X/p.cellW)), 0)
	lastCol := min(int(math.Floor((o.X+width)/p.cellW)), dst.Width()-1)

	for col := firstCol; col <= lastCol; col++ {
		cx, _ := p.cellCenter(col, 0)
		if cx < o.X || cx > o.X+width {
			continue
		}

		lastTop := -1
		capped := false
		for row, n := 0, dst.Height(); row < n; row++ {
			_, cy := p.cellCenter(col, row)
			switch {
			case cy < o.TopEdge:
				dst.SetColored(col, row, BarrierChar, core.ColorGreen)
				lastTop = row
			case cy > o.BottomEdge && !capped:
				dst.SetColored(col, row, CapBottomChar, core.ColorBrightGreen)
				capped = true
			case cy > o.BottomEdge:
				dst.SetColored(col, row, BarrierChar, core.ColorGreen)
			}
		}
		if lastTop >= 0 {
			dst.SetColored(col, lastTop, CapTopChar, core.ColorBrightGreen)
		}
	}
}

// drawAvatar fills every cell whose centre lies inside the circle. When the
// circle is smaller than a cell, the cell containing the centre is used.
func (p Painter) drawAvatar(dst *core.Screen, a flappy.Avatar) {
	r2 := a.Radius * a.Radius
	drawn := false

	minCol := int(math.Floor((a.X - a.Radius) / p.cellW))
	maxCol := int(math.Ceil((a.X + a.Radius) / p.cellW))
	minRow := int(math.Floor((a.Y - a.Radius) / p.cellH))
	maxRow := int(math.Ceil((a.Y + a.Radius) / p.cellH))

	for row := max(minRow, 0); row <= min(maxRow, dst.Height()-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, dst.Width()-1); col++ {
			cx, cy := p.cellCenter(col, row)
			dx, dy := cx-a.X, cy-a.Y
			if dx*dx+dy*dy <= r2 {
				dst.SetColored(col, row, AvatarChar, core.ColorBrightYellow)
				drawn = true
			}
		}
	}

	if !drawn {
		col := int(math.Floor(a.X / p.cellW))
		row := int(math.Floor(a.Y / p.cellH))
		dst.SetColored(col, row, AvatarChar, core.ColorBrightYellow)
	}
}

// DrawOverlay draws a framed message box centred on the screen.
func DrawOverlay(dst *core.Screen, lines []string, c core.Color) {
	if len(lines) == 0 {
		return
	}

	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	w := core.Clamp(inner+4, 0, dst.Width())
	h := core.Clamp(len(lines)+2, 0, dst.Height())
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box, box.Y+1+i, l, c)
	}
}

// overlayLines returns the overlay text for the game's run state, or nil
// while playing.
func overlayLines(g *flappy.Game, keys KeyMap, showHelp bool) []string {
	if showHelp {
		return helpLines(keys)
	}

	switch g.State() {
	case flappy.StateIdle:
		return []string{
			"FLAPPY",
			"",
			fmt.Sprintf("Press %s or %s to start", keys.Flap.Help().Key, keys.Start.Help().Key),
		}
	case flappy.StateGameOver:
		return []string{
			"Game Over!",
			fmt.Sprintf("Score: %d", g.Score()),
			"",
			fmt.Sprintf("Press %s or %s to restart", keys.Flap.Help().Key, keys.Restart.Help().Key),
		}
	}
	return nil
}

// helpLines lists every binding as "key  description".
func helpLines(keys KeyMap) []string {
	var lines []string
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("%-8s %s", h.Key, h.Desc))
		}
	}
	return lines
}
