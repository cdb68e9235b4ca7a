package game

import "github.com/arcade-tui/brickout/internal/core"

// Phase is the round state machine:
//
//	AwaitingStart -> Running -> RoundWon | BallLost | GameOver
//
// RoundWon awaits a Restart back to AwaitingStart with a fresh brick grid.
// BallLost awaits a (platform-delayed) ResetRound back to AwaitingStart.
// GameOver is terminal for the session.
type Phase int

const (
	PhaseAwaitingStart Phase = iota // ball docked on the paddle, waiting for launch
	PhaseRunning                    // ball in flight, ticking
	PhaseRoundWon                   // all bricks cleared
	PhaseBallLost                   // ball past the floor, lives remain
	PhaseGameOver                   // ball past the floor, no lives left
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting-start"
	case PhaseRunning:
		return "running"
	case PhaseRoundWon:
		return "round-won"
	case PhaseBallLost:
		return "ball-lost"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Directive tells the external driver what to schedule after a tick.
// The session never touches the clock; the driver owns all delays.
type Directive int

const (
	DirectiveNone          Directive = iota // nothing to schedule (not running)
	DirectiveNextTick                       // schedule the next tick at the fixed interval
	DirectiveScheduleReset                  // schedule ResetRound after the fixed delay
	DirectiveRoundWon                       // round won; await a restart signal
	DirectiveGameOver                       // session over; stop scheduling
)

// Session owns one game session: the world registry, the lives counter and
// the round phase. All mutation goes through its methods; external events
// (paddle moves, launch) must be delivered between ticks.
type Session struct {
	world   *World
	ballH   Handle
	paddleH Handle

	lives         int
	phase         Phase
	tick          int
	bricksCleared int

	fieldW core.Unit
	fieldH core.Unit
}

// NewSession creates a session with the fixed initial layout: the paddle
// centered near the bottom, the three-row brick grid, and a ball docked on
// the paddle awaiting launch.
func NewSession() *Session {
	s := &Session{
		lives:  StartLives,
		phase:  PhaseAwaitingStart,
		fieldW: core.ToUnit(FieldWidth),
		fieldH: core.ToUnit(FieldHeight),
		world:  NewWorld(),
	}
	s.paddleH = s.world.AddPaddle(NewPaddle(core.ToUnit(FieldWidth).Half(), core.ToUnit(PaddleCenterY)))
	s.populateBricks()
	s.dockBall()
	return s
}

// populateBricks lays out the grid: columns every 75 px starting at x=5,
// one 2-hit row on top and two 1-hit rows below it.
func (s *Session) populateBricks() {
	half := core.ToUnit(BrickWidth).Half()
	for x := 5; x < FieldWidth-5; x += BrickWidth {
		cx := core.ToUnit(x) + half
		s.world.AddBrick(NewBrick(cx, core.ToUnit(50), 2))
		s.world.AddBrick(NewBrick(cx, core.ToUnit(70), 1))
		s.world.AddBrick(NewBrick(cx, core.ToUnit(90), 1))
	}
}

// dockBall replaces the current ball (if any) with a fresh one resting
// above the paddle's center, and docks it so paddle moves carry it along.
func (s *Session) dockBall() {
	if s.ballH != NoHandle {
		s.world.Remove(s.ballH)
	}
	paddle := s.paddle()
	s.ballH = s.world.AddBall(NewBall(paddle.Box.MidX(), core.ToUnit(BallStartY)))
	paddle.Docked = s.ballH
}

func (s *Session) ball() *Ball {
	o, _ := s.world.Lookup(s.ballH)
	return o.Ball()
}

func (s *Session) paddle() *Paddle {
	o, _ := s.world.Lookup(s.paddleH)
	return o.Paddle()
}

// Launch releases the docked ball and starts the round. Only valid in
// AwaitingStart; once launched, paddle moves no longer carry the ball.
func (s *Session) Launch() {
	if s.phase != PhaseAwaitingStart {
		return
	}
	s.paddle().Docked = NoHandle
	s.phase = PhaseRunning
}

// Restart re-enters AwaitingStart after a won round, with a freshly
// populated brick grid and a newly docked ball.
func (s *Session) Restart() {
	if s.phase != PhaseRoundWon {
		return
	}
	s.populateBricks()
	s.dockBall()
	s.phase = PhaseAwaitingStart
}

// ResetRound re-enters AwaitingStart after a lost ball, docking a fresh
// ball on the paddle. The platform invokes it once the reset delay fires.
func (s *Session) ResetRound() {
	if s.phase != PhaseBallLost {
		return
	}
	s.dockBall()
	s.phase = PhaseAwaitingStart
}

// MovePaddle shifts the paddle by offset pixels, carrying the docked ball
// with it pre-launch. The move is rejected whole if it would leave the
// field. Returns whether the paddle moved.
func (s *Session) MovePaddle(offset int) bool {
	if s.phase != PhaseAwaitingStart && s.phase != PhaseRunning {
		return false
	}
	paddle := s.paddle()
	du := core.ToUnit(offset)
	if !paddle.Move(du, s.fieldW) {
		return false
	}
	if paddle.Docked != NoHandle {
		if o, ok := s.world.Lookup(paddle.Docked); ok {
			o.Ball().Shift(du, 0)
		}
	}
	return true
}

// Tick runs one simulation step while the round is running: resolve
// collisions at the ball's current position, evaluate the terminal
// conditions, and otherwise advance the ball. The returned directive tells
// the driver what to schedule next.
func (s *Session) Tick() Directive {
	if s.phase != PhaseRunning {
		return DirectiveNone
	}
	s.tick++

	ball := s.ball()

	hits := s.world.Overlapping(ball.Box, s.ballH)
	before := s.world.BrickCount()
	Resolve(s.world, ball, hits)
	s.bricksCleared += before - s.world.BrickCount()

	if s.world.BrickCount() == 0 {
		ball.Active = false
		s.phase = PhaseRoundWon
		return DirectiveRoundWon
	}

	if ball.Box.Bottom >= s.fieldH {
		ball.Active = false
		s.lives--
		if s.lives < 0 {
			s.phase = PhaseGameOver
			return DirectiveGameOver
		}
		s.phase = PhaseBallLost
		return DirectiveScheduleReset
	}

	ball.Advance(s.fieldW)
	return DirectiveNextTick
}

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Phase returns the current round phase.
func (s *Session) Phase() Phase { return s.phase }

// TickCount returns the number of ticks simulated so far.
func (s *Session) TickCount() int { return s.tick }

// BrickCount returns the number of bricks still standing.
func (s *Session) BrickCount() int { return s.world.BrickCount() }

// BricksCleared returns the number of bricks destroyed this session.
func (s *Session) BricksCleared() int { return s.bricksCleared }
