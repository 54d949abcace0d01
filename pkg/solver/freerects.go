package solver

import "github.com/Achu067/PLANEXA/pkg/geo"

// freeArena is the list of free rectangles consumed and produced by the
// guillotine partition. Rectangles are indexed by position; removal is
// swap-and-pop, so handles are only stable between mutations.
type freeArena struct {
	rects []geo.Rect
	grid  float64
}

func newFreeArena(footprint geo.Rect, pinned []geo.Rect, grid float64) *freeArena {
	a := &freeArena{rects: []geo.Rect{footprint}, grid: grid}
	for _, p := range pinned {
		a.subtract(p)
	}
	return a
}

// subtract removes the given rect from every free rectangle it overlaps.
func (a *freeArena) subtract(cut geo.Rect) {
	var next []geo.Rect
	for _, r := range a.rects {
		for _, piece := range geo.Subtract(r, cut) {
			if a.usable(piece) {
				next = append(next, piece)
			}
		}
	}
	a.rects = next
}

// usable filters out slivers thinner than the placement grid.
func (a *freeArena) usable(r geo.Rect) bool {
	return r.W >= a.grid-geo.Epsilon && r.L >= a.grid-geo.Epsilon
}

// remove drops the rect at index i by swap-and-pop.
func (a *freeArena) remove(i int) geo.Rect {
	r := a.rects[i]
	last := len(a.rects) - 1
	a.rects[i] = a.rects[last]
	a.rects = a.rects[:last]
	return r
}

// add appends a free rect if it is usable.
func (a *freeArena) add(r geo.Rect) {
	if a.usable(r) {
		a.rects = append(a.rects, r)
	}
}

// splitAround carves room out of the free rect chosen (already removed from
// the arena) and re-adds the two leftover pieces. The room sits at the free
// rect's min corner, so the leftover is an L-shape cut by one straight line:
// either a vertical cut along the room's right edge or a horizontal cut
// along its top edge. The cut producing the more square-ish pieces wins,
// which keeps fragmentation down.
func (a *freeArena) splitAround(free, room geo.Rect) {
	rightW := free.W - room.W
	topL := free.L - room.L

	// Vertical cut: full-height right strip + top strip above the room.
	vRight := geo.R(free.X+room.W, free.Y, rightW, free.L)
	vTop := geo.R(free.X, free.Y+room.L, room.W, topL)

	// Horizontal cut: full-width top strip + right strip beside the room.
	hTop := geo.R(free.X, free.Y+room.L, free.W, topL)
	hRight := geo.R(free.X+room.W, free.Y, rightW, room.L)

	if splitScore(vRight, vTop) <= splitScore(hRight, hTop) {
		a.add(vRight)
		a.add(vTop)
	} else {
		a.add(hRight)
		a.add(hTop)
	}
}

// splitScore measures how far the worse of two pieces is from square;
// lower is better. Degenerate pieces cost nothing since they are dropped.
func splitScore(a, b geo.Rect) float64 {
	return maxf(elongation(a), elongation(b))
}

func elongation(r geo.Rect) float64 {
	if r.W <= geo.Epsilon || r.L <= geo.Epsilon {
		return 0
	}
	if r.W > r.L {
		return r.W / r.L
	}
	return r.L / r.W
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
