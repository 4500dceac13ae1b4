package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func testPainter() Painter {
	return NewPainter(config.FlappyDisplay{CellWidth: 8, CellHeight: 16})
}

func TestWorldSize(t *testing.T) {
	p := testPainter()

	w, h := p.WorldSize(80, 30)
	if w != 640 || h != 480 {
		t.Errorf("WorldSize(80, 30) = %v x %v, expected 640 x 480", w, h)
	}

	w, h = p.WorldSize(-1, -1)
	if w != 0 || h != 0 {
		t.Errorf("negative sizes should map to 0, got %v x %v", w, h)
	}
}

func TestDrawAvatar(t *testing.T) {
	p := testPainter()
	screen := core.NewScreen(80, 30)

	p.drawAvatar(screen, flappy.Avatar{X: 160, Y: 240, Radius: 20})

	for row := 14; row <= 15; row++ {
		for col := 18; col <= 21; col++ {
			if screen.Get(col, row) != AvatarChar {
				t.Errorf("cell (%d,%d) should be part of the avatar", col, row)
			}
		}
	}

	for _, pos := range [][2]int{{17, 14}, {22, 14}, {19, 13}, {19, 16}} {
		if screen.Get(pos[0], pos[1]) != ' ' {
			t.Errorf("cell (%d,%d) should be empty", pos[0], pos[1])
		}
	}
}

func TestDrawTinyAvatar(t *testing.T) {
	p := testPainter()
	screen := core.NewScreen(10, 10)

	p.drawAvatar(screen, flappy.Avatar{X: 17, Y: 40, Radius: 1})

	if screen.Get(2, 2) != AvatarChar {
		t.Errorf("tiny avatar should fall back to its centre cell, got %q", screen.Get(2, 2))
	}
}

func TestDrawObstacle(t *testing.T) {
	p := testPainter()
	screen := core.NewScreen(80, 30)

	p.drawObstacle(screen, flappy.Obstacle{X: 100, TopEdge: 100, BottomEdge: 250}, 50)

	tests := []struct {
		col, row int
		expected rune
	}{
		{12, 0, BarrierChar},
		{18, 4, BarrierChar},
		{15, 5, CapTopChar},
		{15, 6, ' '},
		{15, 15, ' '},
		{15, 16, CapBottomChar},
		{15, 17, BarrierChar},
		{15, 29, BarrierChar},
		{11, 0, ' '},
		{19, 0, ' '},
	}

	for _, tc := range tests {
		if got := screen.Get(tc.col, tc.row); got != tc.expected {
			t.Errorf("cell (%d,%d) = %q, expected %q", tc.col, tc.row, got, tc.expected)
		}
	}
}

func TestDrawObstacleOffScreen(t *testing.T) {
	p := testPainter()
	screen := core.NewScreen(10, 10)

	p.drawObstacle(screen, flappy.Obstacle{X: 200, TopEdge: 50, BottomEdge: 100}, 50)
	p.drawObstacle(screen, flappy.Obstacle{X: -80, TopEdge: 50, BottomEdge: 100}, 50)

	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("off-screen obstacles should not be drawn:\n%s", screen.String())
	}
}

func TestDrawOverlay(t *testing.T) {
	screen := core.NewScreen(40, 10)

	DrawOverlay(screen, []string{"Game Over!", "Score: 3"}, core.ColorRed)

	if !strings.Contains(screen.Row(4), "Game Over!") {
		t.Errorf("row 4 = %q, expected the title", screen.Row(4))
	}
	if !strings.Contains(screen.Row(5), "Score: 3") {
		t.Errorf("row 5 = %q, expected the score", screen.Row(5))
	}
	if screen.Get(13, 3) != '┌' {
		t.Errorf("box corner = %q, expected '┌'", screen.Get(13, 3))
	}
}

func TestOverlayLines(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := flappy.New(cfg, flappy.NewViewport(640, 480), 1)
	keys := DefaultKeyMap()

	if lines := overlayLines(g, keys, false); len(lines) == 0 || lines[0] != "FLAPPY" {
		t.Errorf("idle overlay = %v, expected start screen", lines)
	}

	g.Start()
	if lines := overlayLines(g, keys, false); lines != nil {
		t.Errorf("playing overlay = %v, expected none", lines)
	}
	if lines := overlayLines(g, keys, true); len(lines) != 5 {
		t.Errorf("help overlay has %d lines, expected 5", len(lines))
	}

	for g.IsActive() {
		g.Step()
	}
	lines := overlayLines(g, keys, false)
	if len(lines) < 2 || lines[0] != "Game Over!" || lines[1] != "Score: 0" {
		t.Errorf("game over overlay = %v", lines)
	}
}
