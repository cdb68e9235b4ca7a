package game

import (
	"fmt"

	"github.com/arcade-tui/brickout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// Minimum terminal size for a playable projection of the field.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Render draws the current session state into the screen buffer.
// The simulation runs in the fixed 610x400 field space; rendering projects
// entity boxes proportionally onto the cell grid, with the top row
// reserved for the HUD. The simulation never reads anything back.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorWhite)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorWhite)
		return
	}

	s.renderHUD(dst)

	plotW := dst.Width()
	plotH := dst.Height() - 1

	for _, o := range s.world.Objects() {
		switch o.Kind() {
		case KindBrick:
			drawBox(dst, o.Bounds(), plotW, plotH, BrickChar, o.Brick().Color())
		case KindPaddle:
			drawBox(dst, o.Bounds(), plotW, plotH, PaddleChar, core.ColorBlue)
		case KindBall:
			if o.Ball().Active || s.phase == PhaseAwaitingStart {
				x, y := toCell(o.Bounds().MidX(), o.Bounds().MidY(), plotW, plotH)
				dst.SetCell(x, 1+y, core.Cell{Rune: BallChar, Color: core.ColorWhite})
			}
		}
	}

	s.renderOverlay(dst)
}

// toCell projects a field coordinate onto the plot area.
func toCell(x, y core.Unit, plotW, plotH int) (int, int) {
	cx := x.Px() * plotW / FieldWidth
	cy := y.Px() * plotH / FieldHeight
	return core.Clamp(cx, 0, plotW-1), core.Clamp(cy, 0, plotH-1)
}

// drawBox fills the projected cell region of a field box.
func drawBox(dst *core.Screen, b core.Box, plotW, plotH int, r rune, color core.Color) {
	x1, y1 := toCell(b.Left, b.Top, plotW, plotH)
	x2, y2 := toCell(b.Right, b.Bottom, plotW, plotH)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			dst.SetCell(x, 1+y, core.Cell{Rune: r, Color: color})
		}
	}
}

// renderHUD draws the lives counter and a separator line.
func (s *Session) renderHUD(dst *core.Screen) {
	lives := s.lives
	if lives < 0 {
		lives = 0
	}
	dst.DrawText(1, 0, fmt.Sprintf("Lives: %d", lives), core.ColorWhite)

	bricks := fmt.Sprintf("Bricks: %d", s.world.BrickCount())
	dst.DrawText(dst.Width()-len(bricks)-1, 0, bricks, core.ColorWhite)
}

// renderOverlay draws the phase prompts.
func (s *Session) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch s.phase {
	case PhaseAwaitingStart:
		dst.DrawTextCentered(mid, "Press Space to start", core.ColorWhite)
	case PhaseBallLost:
		dst.DrawTextCentered(mid, "Get ready...", core.ColorWhite)
	case PhaseRoundWon:
		dst.DrawTextCentered(mid-1, "You win!", core.ColorGreen)
		dst.DrawTextCentered(mid+1, "Press Space to play again", core.ColorWhite)
	case PhaseGameOver:
		dst.DrawTextCentered(mid, "Game over!", core.ColorRed)
	}
}
