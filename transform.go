package bubble

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// LocalToParent maps r, expressed in frame's local [-100,100]² space, into the
// space frame itself is expressed in (the parent's space).
//
//	parentTop    = frame.Top + frame.Height*(100+r.Top)/200
//	parentHeight = frame.Height*r.Height/200
//
// and symmetrically for Left/Width.
func LocalToParent(r, frame Rect) Rect {
	return Rect{
		Top:    frame.Top + frame.Height*(LocalMax+r.Top)/LocalExtent,
		Left:   frame.Left + frame.Width*(LocalMax+r.Left)/LocalExtent,
		Width:  frame.Width * r.Width / LocalExtent,
		Height: frame.Height * r.Height / LocalExtent,
	}
}

// ParentToLocal is the inverse of LocalToParent: it maps r from the parent's
// space into frame's local [-100,100]² space. frame must be Valid.
func ParentToLocal(r, frame Rect) Rect {
	return Rect{
		Top:    (r.Top-frame.Top)*LocalExtent/frame.Height - LocalMax,
		Left:   (r.Left-frame.Left)*LocalExtent/frame.Width - LocalMax,
		Width:  r.Width * LocalExtent / frame.Width,
		Height: r.Height * LocalExtent / frame.Height,
	}
}

// PointToParent maps a point from frame's local space into the parent's space.
func PointToParent(p Point, frame Rect) Point {
	return transformPoint(frameMatrix(frame), p)
}

// PointToLocal maps a point from the parent's space into frame's local space.
func PointToLocal(p Point, frame Rect) Point {
	return transformPoint(reverse(frameMatrix(frame)), p)
}

// frameMatrix returns the local-to-parent affine matrix of a frame.
// Bubble frames never rotate or skew, so b and c are always zero.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func frameMatrix(frame Rect) [6]float64 {
	sx := frame.Width / LocalExtent
	sy := frame.Height / LocalExtent
	return [6]float64{sx, 0, 0, sy, frame.Left + frame.Width/2, frame.Top + frame.Height/2}
}

// chain returns the matrix that applies inner first and then outer. Walking
// a point up several bubble levels chains each frame onto the previous one.
func chain(outer, inner [6]float64) [6]float64 {
	t := transformPoint(outer, Point{X: inner[4], Y: inner[5]})
	return [6]float64{
		outer[0]*inner[0] + outer[2]*inner[1],
		outer[1]*inner[0] + outer[3]*inner[1],
		outer[0]*inner[2] + outer[2]*inner[3],
		outer[1]*inner[2] + outer[3]*inner[3],
		t.X, t.Y,
	}
}

// reverse returns the matrix that walks back down what m walks up. A frame
// collapsed to zero area cannot be reversed and yields the identity.
func reverse(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return identityTransform
	}
	lin := [6]float64{m[3] / det, -m[1] / det, -m[2] / det, m[0] / det, 0, 0}
	t := transformPoint(lin, Point{X: -m[4], Y: -m[5]})
	lin[4], lin[5] = t.X, t.Y
	return lin
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, p Point) Point {
	return Point{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
}

// transformPoints applies m to every point, returning a new slice.
func transformPoints(m [6]float64, pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = transformPoint(m, p)
	}
	return out
}
