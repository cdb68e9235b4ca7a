package game

// Resolve applies the collision outcome for the ball against the objects
// currently overlapping it, as reported by the world's overlap query.
//
// With two or more overlapping objects the hit geometry is ambiguous at
// bounding-box granularity, so the ball always bounces vertically — even
// when one of the objects is the paddle struck near its edge. With exactly
// one object, the ball's horizontal midpoint decides: past the object's
// right edge forces the ball rightward, past its left edge leftward, and
// anywhere within the object's span flips the vertical direction.
//
// Independent of the direction outcome, every overlapping brick takes one
// hit, so a multi-overlap can damage several bricks while producing a
// single vertical flip.
func Resolve(w *World, ball *Ball, hits []*Object) {
	mid := ball.Box.MidX()

	if len(hits) > 1 {
		ball.DirY = -ball.DirY
	} else if len(hits) == 1 {
		bounds := hits[0].Bounds()
		switch {
		case mid > bounds.Right:
			ball.DirX = 1
		case mid < bounds.Left:
			ball.DirX = -1
		default:
			ball.DirY = -ball.DirY
		}
	}

	for _, o := range hits {
		if o.Kind() == KindBrick {
			w.HitBrick(o.Handle())
		}
	}
}
