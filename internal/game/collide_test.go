package game

import (
	"testing"

	"github.com/arcade-tui/brickout/internal/core"
)

// ballAt places a ball with its center at (cx, cy) pixels, moving (dirX, dirY).
func ballAt(cx, cy, dirX, dirY int) *Ball {
	b := NewBall(core.ToUnit(cx), core.ToUnit(cy))
	b.DirX = dirX
	b.DirY = dirY
	return b
}

func TestResolveNoOverlap(t *testing.T) {
	w := NewWorld()
	ball := ballAt(300, 300, 1, -1)

	Resolve(w, ball, nil)

	if ball.DirX != 1 || ball.DirY != -1 {
		t.Error("resolving with no overlaps must not change direction")
	}
}

func TestResolveSingleBrickFromBelow(t *testing.T) {
	w := NewWorld()
	// Brick spans x [100, 175], ball center at 130 is within its span.
	h := w.AddBrick(NewBrick(core.ToUnit(100)+core.ToUnit(75).Half(), core.ToUnit(70), 1))
	ball := ballAt(130, 85, 1, -1)

	o, _ := w.Lookup(h)
	Resolve(w, ball, []*Object{o})

	if ball.DirY != 1 {
		t.Error("hit within the brick's horizontal span must flip the vertical direction")
	}
	if ball.DirX != 1 {
		t.Error("horizontal direction must be untouched on a vertical bounce")
	}
	if _, ok := w.Lookup(h); ok {
		t.Error("1-hit brick should be destroyed by the collision")
	}
}

func TestResolveSingleBrickSideHits(t *testing.T) {
	tests := []struct {
		name     string
		ballCX   int // ball center x, px; brick spans [100, 175]
		wantDirX int
	}{
		{name: "ball center past right edge pushes rightward", ballCX: 180, wantDirX: 1},
		{name: "ball center past left edge pushes leftward", ballCX: 95, wantDirX: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			h := w.AddBrick(NewBrick(core.ToUnit(100)+core.ToUnit(75).Half(), core.ToUnit(70), 1))
			// Start moving opposite to the expected outcome to prove the
			// resolver sets an absolute direction, not a flip.
			ball := ballAt(tc.ballCX, 70, -tc.wantDirX, -1)

			o, _ := w.Lookup(h)
			Resolve(w, ball, []*Object{o})

			if ball.DirX != tc.wantDirX {
				t.Errorf("DirX = %d, expected %d", ball.DirX, tc.wantDirX)
			}
			if ball.DirY != -1 {
				t.Error("side hit must leave the vertical direction alone")
			}
			if _, ok := w.Lookup(h); ok {
				t.Error("side hits still damage the brick")
			}
		})
	}
}

func TestResolveSingleBrickEdgeExactlyOnBoundary(t *testing.T) {
	w := NewWorld()
	// Brick spans [100, 175]; a ball centered exactly on the right edge is
	// not strictly past it, so it bounces vertically.
	h := w.AddBrick(NewBrick(core.ToUnit(100)+core.ToUnit(75).Half(), core.ToUnit(70), 1))
	ball := ballAt(175, 85, 1, -1)

	o, _ := w.Lookup(h)
	Resolve(w, ball, []*Object{o})

	if ball.DirY != 1 || ball.DirX != 1 {
		t.Errorf("direction = (%d, %d), expected (1, 1)", ball.DirX, ball.DirY)
	}
}

func TestResolveMultiOverlap(t *testing.T) {
	w := NewWorld()
	// Two adjacent bricks, ball straddling the seam at x=175.
	h1 := w.AddBrick(NewBrick(core.ToUnit(100)+core.ToUnit(75).Half(), core.ToUnit(70), 1))
	h2 := w.AddBrick(NewBrick(core.ToUnit(175)+core.ToUnit(75).Half(), core.ToUnit(70), 1))
	ball := ballAt(175, 85, 1, -1)

	o1, _ := w.Lookup(h1)
	o2, _ := w.Lookup(h2)
	Resolve(w, ball, []*Object{o1, o2})

	if ball.DirY != 1 {
		t.Error("multi-overlap must flip the vertical direction")
	}
	if ball.DirX != 1 {
		t.Error("multi-overlap must not touch the horizontal direction")
	}
	// The flip happens exactly once, but both bricks take a hit.
	if _, ok := w.Lookup(h1); ok {
		t.Error("first brick should be destroyed")
	}
	if _, ok := w.Lookup(h2); ok {
		t.Error("second brick should be destroyed")
	}
}

func TestResolveMultiOverlapDamagesAllBricks(t *testing.T) {
	w := NewWorld()
	h1 := w.AddBrick(NewBrick(core.ToUnit(100)+core.ToUnit(75).Half(), core.ToUnit(70), 2))
	h2 := w.AddBrick(NewBrick(core.ToUnit(175)+core.ToUnit(75).Half(), core.ToUnit(70), 2))
	ball := ballAt(175, 85, 1, -1)

	o1, _ := w.Lookup(h1)
	o2, _ := w.Lookup(h2)
	Resolve(w, ball, []*Object{o1, o2})

	b1, _ := w.Lookup(h1)
	b2, _ := w.Lookup(h2)
	if b1.Brick().Hits != 1 || b2.Brick().Hits != 1 {
		t.Errorf("hits = (%d, %d), expected each brick to take exactly one hit",
			b1.Brick().Hits, b2.Brick().Hits)
	}
}

func TestResolvePaddleBounce(t *testing.T) {
	w := NewWorld()
	h := w.AddPaddle(NewPaddle(core.ToUnit(300), core.ToUnit(PaddleCenterY)))
	// Ball dropping onto the middle of the paddle.
	ball := ballAt(300, PaddleCenterY-10, 1, 1)

	o, _ := w.Lookup(h)
	Resolve(w, ball, []*Object{o})

	if ball.DirY != -1 {
		t.Error("ball landing on the paddle should bounce upward")
	}
	if _, ok := w.Lookup(h); !ok {
		t.Error("the paddle must never be removed by a collision")
	}
}

func TestResolvePaddlePlusBrickFlipsOnce(t *testing.T) {
	w := NewWorld()
	paddleH := w.AddPaddle(NewPaddle(core.ToUnit(300), core.ToUnit(PaddleCenterY)))
	brickH := w.AddBrick(NewBrick(core.ToUnit(300), core.ToUnit(PaddleCenterY-15), 1))
	ball := ballAt(300, PaddleCenterY-12, 1, 1)

	op, _ := w.Lookup(paddleH)
	ob, _ := w.Lookup(brickH)
	Resolve(w, ball, []*Object{op, ob})

	if ball.DirY != -1 {
		t.Error("two overlaps flip the vertical direction exactly once")
	}
	if _, ok := w.Lookup(brickH); ok {
		t.Error("the brick in a mixed overlap still takes a hit")
	}
}
