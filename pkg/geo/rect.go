package geo

import "fmt"

// Epsilon is the tolerance used for coordinate comparisons. Room edges are
// snapped to a coarse grid, so anything closer than this is the same line.
const Epsilon = 1e-9

// GeometryError reports an internal geometric invariant violation, such as
// a derived rectangle with non-positive area. It is a defect, never clamped.
type GeometryError struct {
	Op     string
	Detail string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry: %s: %s", e.Op, e.Detail)
}

// Rect is an axis-aligned rectangle with its origin at the min-x/min-y
// corner. W extends along X, L along Y.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	L float64 `json:"length"`
}

// R is a shorthand constructor for Rect.
func R(x, y, w, l float64) Rect {
	return Rect{X: x, Y: y, W: w, L: l}
}

// Validate returns a GeometryError if the rectangle has non-positive
// dimensions or negative coordinates.
func (r Rect) Validate(op string) error {
	if r.W <= 0 || r.L <= 0 {
		return &GeometryError{Op: op, Detail: fmt.Sprintf("zero-area rect %.2fx%.2f at (%.2f,%.2f)", r.W, r.L, r.X, r.Y)}
	}
	if r.X < 0 || r.Y < 0 {
		return &GeometryError{Op: op, Detail: fmt.Sprintf("negative origin (%.2f,%.2f)", r.X, r.Y)}
	}
	return nil
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.W * r.L
}

// MaxX returns the x coordinate of the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the y coordinate of the top edge.
func (r Rect) MaxY() float64 { return r.Y + r.L }

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Pt(r.X+r.W/2, r.Y+r.L/2)
}

// Overlaps reports whether a and b share interior area. Touching edges do
// not count as overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.MaxX()-Epsilon && a.MaxX() > b.X+Epsilon &&
		a.Y < b.MaxY()-Epsilon && a.MaxY() > b.Y+Epsilon
}

// Contains reports whether outer fully contains inner, edges included.
func Contains(outer, inner Rect) bool {
	return inner.X >= outer.X-Epsilon && inner.Y >= outer.Y-Epsilon &&
		inner.MaxX() <= outer.MaxX()+Epsilon && inner.MaxY() <= outer.MaxY()+Epsilon
}

// Segment is an axis-aligned line segment.
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Mid returns the segment midpoint.
func (s Segment) Mid() Point {
	return MidPoint(s.A, s.B)
}

// SharedEdge returns the boundary segment shared by two non-overlapping
// rectangles, and whether such a segment of positive length exists. Rooms
// touching only at a corner share no edge.
func SharedEdge(a, b Rect) (Segment, bool) {
	// Vertical shared edge: a's right against b's left, or the reverse.
	if near(a.MaxX(), b.X) || near(b.MaxX(), a.X) {
		x := a.MaxX()
		if near(b.MaxX(), a.X) {
			x = a.X
		}
		lo := max(a.Y, b.Y)
		hi := min(a.MaxY(), b.MaxY())
		if hi-lo > Epsilon {
			return Segment{A: Pt(x, lo), B: Pt(x, hi)}, true
		}
	}
	// Horizontal shared edge.
	if near(a.MaxY(), b.Y) || near(b.MaxY(), a.Y) {
		y := a.MaxY()
		if near(b.MaxY(), a.Y) {
			y = a.Y
		}
		lo := max(a.X, b.X)
		hi := min(a.MaxX(), b.MaxX())
		if hi-lo > Epsilon {
			return Segment{A: Pt(lo, y), B: Pt(hi, y)}, true
		}
	}
	return Segment{}, false
}

// Adjacent reports whether two rectangles share an edge segment of at least
// minLength.
func Adjacent(a, b Rect, minLength float64) bool {
	seg, ok := SharedEdge(a, b)
	return ok && seg.Length() >= minLength-Epsilon
}

// Intersect returns the overlap of a and b and whether it has positive area.
func Intersect(a, b Rect) (Rect, bool) {
	x := max(a.X, b.X)
	y := max(a.Y, b.Y)
	w := min(a.MaxX(), b.MaxX()) - x
	l := min(a.MaxY(), b.MaxY()) - y
	if w <= Epsilon || l <= Epsilon {
		return Rect{}, false
	}
	return R(x, y, w, l), true
}

// Subtract removes cut from base and returns the remaining area as up to
// four rectangles (left, right, bottom, top strips). If the two do not
// overlap, base is returned unchanged.
func Subtract(base, cut Rect) []Rect {
	in, ok := Intersect(base, cut)
	if !ok {
		return []Rect{base}
	}

	var out []Rect
	if in.X-base.X > Epsilon {
		out = append(out, R(base.X, base.Y, in.X-base.X, base.L))
	}
	if base.MaxX()-in.MaxX() > Epsilon {
		out = append(out, R(in.MaxX(), base.Y, base.MaxX()-in.MaxX(), base.L))
	}
	if in.Y-base.Y > Epsilon {
		out = append(out, R(in.X, base.Y, in.W, in.Y-base.Y))
	}
	if base.MaxY()-in.MaxY() > Epsilon {
		out = append(out, R(in.X, in.MaxY(), in.W, base.MaxY()-in.MaxY()))
	}
	return out
}

func near(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
