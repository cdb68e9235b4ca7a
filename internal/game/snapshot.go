package game

import "github.com/arcade-tui/brickout/internal/core"

// Snapshot is the complete session state flattened to primitive types, for
// determinism checks and replay tooling. The simulation has no randomness,
// so two sessions fed identical event sequences must produce identical
// snapshots.
type Snapshot struct {
	Tick          int
	Lives         int
	Phase         int
	BricksCleared int

	BallLeft   int
	BallTop    int
	BallDirX   int
	BallDirY   int
	BallSpeed  int
	BallActive int
	BallDocked int

	PaddleLeft int

	// Brick states in world iteration order, 3 ints each: left, top, hits.
	BrickData []int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	ball := s.ball()
	paddle := s.paddle()

	var brickData []int
	for _, o := range s.world.Objects() {
		if o.Kind() != KindBrick {
			continue
		}
		br := o.Brick()
		brickData = append(brickData, int(br.Box.Left), int(br.Box.Top), br.Hits)
	}

	snap := Snapshot{
		Tick:          s.tick,
		Lives:         s.lives,
		Phase:         int(s.phase),
		BricksCleared: s.bricksCleared,

		BallLeft:  int(ball.Box.Left),
		BallTop:   int(ball.Box.Top),
		BallDirX:  ball.DirX,
		BallDirY:  ball.DirY,
		BallSpeed: int(ball.Speed),

		PaddleLeft: int(paddle.Box.Left),

		BrickData: brickData,
	}
	if ball.Active {
		snap.BallActive = 1
	}
	if paddle.Docked != NoHandle {
		snap.BallDocked = 1
	}
	return snap
}

// ApplySnapshot restores the session to a previously captured state,
// rebuilding the world registry from the snapshot's entity data.
func (s *Session) ApplySnapshot(snap Snapshot) {
	s.tick = snap.Tick
	s.lives = snap.Lives
	s.phase = Phase(snap.Phase)
	s.bricksCleared = snap.BricksCleared

	s.world = NewWorld()
	paddle := NewPaddle(0, core.ToUnit(PaddleCenterY))
	shift := core.Unit(snap.PaddleLeft) - paddle.Box.Left
	paddle.Box = paddle.Box.Shift(shift, 0)
	s.paddleH = s.world.AddPaddle(paddle)

	for i := 0; i+2 < len(snap.BrickData); i += 3 {
		br := NewBrick(0, 0, snap.BrickData[i+2])
		br.Box = br.Box.Shift(core.Unit(snap.BrickData[i])-br.Box.Left, core.Unit(snap.BrickData[i+1])-br.Box.Top)
		s.world.AddBrick(br)
	}

	ball := NewBall(0, 0)
	ball.Box = ball.Box.Shift(core.Unit(snap.BallLeft)-ball.Box.Left, core.Unit(snap.BallTop)-ball.Box.Top)
	ball.DirX = snap.BallDirX
	ball.DirY = snap.BallDirY
	ball.Speed = core.Unit(snap.BallSpeed)
	ball.Active = snap.BallActive == 1
	s.ballH = s.world.AddBall(ball)

	if snap.BallDocked == 1 {
		paddle.Docked = s.ballH
	}
}

// Hash returns a mixing hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v int) {
		h = h*31 + uint64(uint32(int32(v)))
	}

	mix(snap.Tick)
	mix(snap.Lives)
	mix(snap.Phase)
	mix(snap.BricksCleared)
	mix(snap.BallLeft)
	mix(snap.BallTop)
	mix(snap.BallDirX)
	mix(snap.BallDirY)
	mix(snap.BallSpeed)
	mix(snap.BallActive)
	mix(snap.BallDocked)
	mix(snap.PaddleLeft)
	for _, v := range snap.BrickData {
		mix(v)
	}

	return h
}
