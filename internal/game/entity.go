// Package game implements the brick-breaker simulation: entity state, the
// per-tick collision resolution algorithm, and the round/life state machine.
// It is pure logic driven by an external fixed-interval tick source and has
// no notion of wall-clock time, rendering, or input devices.
package game

import "github.com/arcade-tui/brickout/internal/core"

// Field geometry and entity dimensions, in field pixels.
// The playfield is a fixed 610x400 canvas; the platform layer projects it
// onto whatever terminal size it has.
const (
	FieldWidth  = 610
	FieldHeight = 400

	BallRadius = 10
	BallSpeed  = 10 // pixels per tick

	PaddleWidth   = 80
	PaddleHeight  = 10
	PaddleCenterY = 326
	PaddleStep    = 10 // pixels per move action

	BrickWidth  = 75
	BrickHeight = 20

	BallStartY = 310 // ball center when docked on the paddle

	StartLives = 3
)

// Handle is an opaque identifier for an entity in the world registry.
// The zero handle is never allocated and means "no entity".
type Handle int

// NoHandle is the absent-entity sentinel.
const NoHandle Handle = 0

// Kind tags a registry entry with its entity type, so the collision
// resolver can apply the bricks-only damage rule without type assertions.
type Kind int

const (
	KindBall Kind = iota
	KindPaddle
	KindBrick
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// Ball is the moving ball. Direction components are always exactly -1 or 1;
// combined with Speed they give the per-tick displacement. Active is false
// once a round ends (the original sets speed to "stopped").
type Ball struct {
	Box    core.Box
	DirX   int
	DirY   int
	Speed  core.Unit
	Active bool
}

// NewBall creates a ball centered at (cx, cy) moving up-right.
func NewBall(cx, cy core.Unit) *Ball {
	r := core.ToUnit(BallRadius)
	return &Ball{
		Box:    core.BoxAround(cx, cy, r, r),
		DirX:   1,
		DirY:   -1,
		Speed:  core.ToUnit(BallSpeed),
		Active: true,
	}
}

// Advance moves the ball one tick. Hitting the left or right field edge
// flips the horizontal direction; hitting the ceiling flips the vertical
// one. The floor is deliberately not handled here: reaching it is a
// terminal condition evaluated by the session, not a bounce.
func (b *Ball) Advance(fieldWidth core.Unit) {
	if b.Box.Left <= 0 || b.Box.Right >= fieldWidth {
		b.DirX = -b.DirX
	}
	if b.Box.Top <= 0 {
		b.DirY = -b.DirY
	}
	b.Box = b.Box.Shift(core.Unit(b.DirX)*b.Speed, core.Unit(b.DirY)*b.Speed)
}

// Shift translates the ball, used to carry it along with the paddle
// while docked.
func (b *Ball) Shift(dx, dy core.Unit) {
	b.Box = b.Box.Shift(dx, dy)
}

// Paddle is the player paddle. Docked holds the handle of the ball resting
// on it before launch, or NoHandle once the ball is in flight. The handle
// is resolved through the world registry by the session; the paddle never
// holds a live ball pointer.
type Paddle struct {
	Box    core.Box
	Docked Handle
}

// NewPaddle creates a paddle centered at (cx, cy).
func NewPaddle(cx, cy core.Unit) *Paddle {
	return &Paddle{
		Box: core.BoxAround(cx, cy, core.ToUnit(PaddleWidth).Half(), core.ToUnit(PaddleHeight).Half()),
	}
}

// Move shifts the paddle horizontally by offset if the whole box stays
// within [0, fieldWidth]. A move that would leave the field is rejected
// outright rather than clamped, so the paddle (and any docked ball) never
// partially applies an offset. Returns whether the move happened.
func (p *Paddle) Move(offset, fieldWidth core.Unit) bool {
	if p.Box.Left+offset < 0 || p.Box.Right+offset > fieldWidth {
		return false
	}
	p.Box = p.Box.Shift(offset, 0)
	return true
}

// brickColors keys the display color by remaining hit points.
var brickColors = map[int]core.Color{
	1: core.ColorSilver,
	2: core.ColorGray,
	3: core.ColorDarkGray,
}

// Brick is a breakable brick with 1..3 hit points.
type Brick struct {
	Box  core.Box
	Hits int
}

// NewBrick creates a brick centered at (cx, cy) with the given hit points.
func NewBrick(cx, cy core.Unit, hits int) *Brick {
	return &Brick{
		Box:  core.BoxAround(cx, cy, core.ToUnit(BrickWidth).Half(), core.ToUnit(BrickHeight).Half()),
		Hits: hits,
	}
}

// Hit decrements the brick's hit points and reports whether it is
// destroyed. The caller is responsible for removing destroyed bricks from
// the world registry.
func (br *Brick) Hit() bool {
	br.Hits--
	return br.Hits <= 0
}

// Color returns the display color for the brick's remaining hit points.
func (br *Brick) Color() core.Color {
	if c, ok := brickColors[br.Hits]; ok {
		return c
	}
	return core.ColorDefault
}
