package game

import "github.com/arcade-tui/brickout/internal/core"

// Object is a world registry entry: a handle plus a kind-tagged entity.
// Exactly one of the entity pointers is non-nil, selected by kind.
type Object struct {
	handle Handle
	kind   Kind
	ball   *Ball
	paddle *Paddle
	brick  *Brick
}

// Handle returns the object's registry handle.
func (o *Object) Handle() Handle { return o.handle }

// Kind returns the object's entity kind.
func (o *Object) Kind() Kind { return o.kind }

// Ball returns the ball entity, or nil for other kinds.
func (o *Object) Ball() *Ball { return o.ball }

// Paddle returns the paddle entity, or nil for other kinds.
func (o *Object) Paddle() *Paddle { return o.paddle }

// Brick returns the brick entity, or nil for other kinds.
func (o *Object) Brick() *Brick { return o.brick }

// Bounds returns the entity's current bounding box.
func (o *Object) Bounds() core.Box {
	switch o.kind {
	case KindBall:
		return o.ball.Box
	case KindPaddle:
		return o.paddle.Box
	default:
		return o.brick.Box
	}
}

// World is the registry of live entities. It resolves opaque handles to
// typed entities and answers spatial overlap queries. Iteration follows
// insertion order so overlap results are deterministic.
type World struct {
	next     Handle
	order    []*Object
	byHandle map[Handle]*Object
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		byHandle: make(map[Handle]*Object),
	}
}

func (w *World) add(o *Object) Handle {
	w.next++
	o.handle = w.next
	w.order = append(w.order, o)
	w.byHandle[o.handle] = o
	return o.handle
}

// AddBall registers a ball and returns its handle.
func (w *World) AddBall(b *Ball) Handle {
	return w.add(&Object{kind: KindBall, ball: b})
}

// AddPaddle registers a paddle and returns its handle.
func (w *World) AddPaddle(p *Paddle) Handle {
	return w.add(&Object{kind: KindPaddle, paddle: p})
}

// AddBrick registers a brick and returns its handle.
func (w *World) AddBrick(br *Brick) Handle {
	return w.add(&Object{kind: KindBrick, brick: br})
}

// Lookup resolves a handle to its object.
func (w *World) Lookup(h Handle) (*Object, bool) {
	o, ok := w.byHandle[h]
	return o, ok
}

// Remove deletes an entity from the registry and the iteration order.
// Removing an unknown handle is a no-op.
func (w *World) Remove(h Handle) {
	if _, ok := w.byHandle[h]; !ok {
		return
	}
	delete(w.byHandle, h)
	for i, o := range w.order {
		if o.handle == h {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Overlapping returns all objects whose bounding boxes intersect box,
// in insertion order, excluding the object with the given handle.
func (w *World) Overlapping(box core.Box, exclude Handle) []*Object {
	var hits []*Object
	for _, o := range w.order {
		if o.handle == exclude {
			continue
		}
		if box.Overlaps(o.Bounds()) {
			hits = append(hits, o)
		}
	}
	return hits
}

// Objects returns the live objects in insertion order.
// The returned slice must not be mutated.
func (w *World) Objects() []*Object {
	return w.order
}

// BrickCount returns the number of bricks still registered.
func (w *World) BrickCount() int {
	count := 0
	for _, o := range w.order {
		if o.kind == KindBrick {
			count++
		}
	}
	return count
}

// HitBrick applies one hit to the brick with the given handle, removing it
// from the registry when its hit points reach zero. Handles that no longer
// resolve, or that name a non-brick, are ignored: a stale handle can only
// arise within the zero-delay gap between overlap detection and resolution
// inside a single tick, and must not be treated as a failure.
func (w *World) HitBrick(h Handle) {
	o, ok := w.byHandle[h]
	if !ok || o.kind != KindBrick {
		return
	}
	if o.brick.Hit() {
		w.Remove(h)
	}
}
