package geo

import (
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Point tests ---

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 10)
	mid := a.Lerp(b, 0.5)
	if !approxEqual(mid.X, 5, tolerance) || !approxEqual(mid.Y, 5, tolerance) {
		t.Errorf("expected (5,5), got (%f,%f)", mid.X, mid.Y)
	}
}

func TestSnap(t *testing.T) {
	cases := []struct {
		v, grid, want float64
	}{
		{3.26, 0.5, 3.5},
		{3.24, 0.5, 3.0},
		{7.0, 0.5, 7.0},
		{4.3, 0, 4.3}, // no grid: unchanged
	}
	for _, c := range cases {
		if got := Snap(c.v, c.grid); !approxEqual(got, c.want, tolerance) {
			t.Errorf("Snap(%f, %f) = %f, expected %f", c.v, c.grid, got, c.want)
		}
	}
}

// --- Rect tests ---

func TestRectValidate(t *testing.T) {
	if err := R(0, 0, 4, 3).Validate("test"); err != nil {
		t.Errorf("valid rect rejected: %v", err)
	}
	if err := R(0, 0, 0, 3).Validate("test"); err == nil {
		t.Error("expected error for zero-width rect")
	}
	if err := R(-1, 0, 4, 3).Validate("test"); err == nil {
		t.Error("expected error for negative origin")
	}
}

func TestOverlapsStrictInterior(t *testing.T) {
	a := R(0, 0, 4, 4)
	b := R(2, 2, 4, 4)
	if !Overlaps(a, b) {
		t.Error("expected interior overlap")
	}
	// Shared edge only: not an overlap.
	c := R(4, 0, 4, 4)
	if Overlaps(a, c) {
		t.Error("edge-sharing rects must not overlap")
	}
	d := R(10, 10, 2, 2)
	if Overlaps(a, d) {
		t.Error("disjoint rects must not overlap")
	}
}

func TestContains(t *testing.T) {
	outer := R(0, 0, 12, 10)
	if !Contains(outer, R(2, 2, 4, 3)) {
		t.Error("expected inner rect contained")
	}
	if !Contains(outer, outer) {
		t.Error("rect must contain itself")
	}
	if Contains(outer, R(10, 8, 4, 4)) {
		t.Error("rect extending past boundary must not be contained")
	}
}

func TestSharedEdgeVertical(t *testing.T) {
	a := R(0, 0, 4, 6)
	b := R(4, 2, 3, 6)
	seg, ok := SharedEdge(a, b)
	if !ok {
		t.Fatal("expected shared edge")
	}
	if !approxEqual(seg.A.X, 4, tolerance) || !approxEqual(seg.B.X, 4, tolerance) {
		t.Errorf("expected edge at x=4, got %v", seg)
	}
	if !approxEqual(seg.Length(), 4, tolerance) {
		t.Errorf("expected shared length 4, got %f", seg.Length())
	}
}

func TestSharedEdgeHorizontal(t *testing.T) {
	a := R(0, 0, 6, 3)
	b := R(2, 3, 6, 3)
	seg, ok := SharedEdge(a, b)
	if !ok {
		t.Fatal("expected shared edge")
	}
	if !approxEqual(seg.A.Y, 3, tolerance) {
		t.Errorf("expected edge at y=3, got %v", seg)
	}
	if !approxEqual(seg.Length(), 4, tolerance) {
		t.Errorf("expected shared length 4, got %f", seg.Length())
	}
}

func TestSharedEdgeCornerTouch(t *testing.T) {
	a := R(0, 0, 4, 4)
	b := R(4, 4, 2, 2)
	if _, ok := SharedEdge(a, b); ok {
		t.Error("corner touch must not count as a shared edge")
	}
}

func TestAdjacentMinLength(t *testing.T) {
	a := R(0, 0, 4, 4)
	b := R(4, 3.5, 2, 4)
	if Adjacent(a, b, 0.9) {
		t.Error("0.5 shared edge should fail a 0.9 threshold")
	}
	if !Adjacent(a, b, 0.4) {
		t.Error("0.5 shared edge should pass a 0.4 threshold")
	}
}

func TestIntersect(t *testing.T) {
	a := R(0, 0, 10, 10)
	b := R(5, 5, 10, 10)
	in, ok := Intersect(a, b)
	if !ok {
		t.Fatal("expected intersection")
	}
	if !approxEqual(in.Area(), 25, tolerance) {
		t.Errorf("expected area 25, got %f", in.Area())
	}
	if _, ok := Intersect(a, R(20, 20, 2, 2)); ok {
		t.Error("disjoint rects must not intersect")
	}
}

func TestSubtractCenterHole(t *testing.T) {
	base := R(0, 0, 10, 10)
	cut := R(4, 4, 2, 2)
	parts := Subtract(base, cut)
	if len(parts) != 4 {
		t.Fatalf("expected 4 remainder rects, got %d", len(parts))
	}
	total := 0.0
	for _, p := range parts {
		total += p.Area()
		if in, ok := Intersect(p, cut); ok {
			t.Errorf("remainder %v overlaps cut by %f", p, in.Area())
		}
	}
	if !approxEqual(total, 96, tolerance) {
		t.Errorf("expected remainder area 96, got %f", total)
	}
}

func TestSubtractDisjoint(t *testing.T) {
	base := R(0, 0, 4, 4)
	parts := Subtract(base, R(10, 10, 2, 2))
	if len(parts) != 1 || parts[0] != base {
		t.Errorf("expected base unchanged, got %v", parts)
	}
}

func TestSubtractCorner(t *testing.T) {
	base := R(0, 0, 10, 10)
	parts := Subtract(base, R(0, 0, 4, 4))
	total := 0.0
	for _, p := range parts {
		total += p.Area()
	}
	if !approxEqual(total, 84, tolerance) {
		t.Errorf("expected remainder area 84, got %f", total)
	}
}
