package solver

import (
	"fmt"
	"math"
	"sort"

	"github.com/Achu067/PLANEXA/pkg/adjacency"
	"github.com/Achu067/PLANEXA/pkg/catalog"
	"github.com/Achu067/PLANEXA/pkg/geo"
	"github.com/Achu067/PLANEXA/pkg/validation"
)

// Placeholder is a single room slot to be placed on one floor. Seq is the
// slot's position in the request expansion and keeps output order stable.
type Placeholder struct {
	Seq  int
	Type catalog.RoomType
}

// Room is a placed room instance. Pinned rooms arrive already positioned
// (the stairwell on upper floors) and are returned unchanged.
type Room struct {
	ID     string
	Seq    int
	Type   catalog.RoomType
	Rect   geo.Rect
	Pinned bool

	// pickedFree is the free rect the room was carved from, kept only
	// between placement and the guillotine split.
	pickedFree geo.Rect
}

// Config tunes the placement pass.
type Config struct {
	Grid  float64
	Style catalog.Style
}

// InfeasibleError reports that a room slot could not be placed even after
// the shrink pass. Floor is filled in by the building coordinator.
type InfeasibleError struct {
	Type  catalog.RoomType
	Floor int
}

func (e *InfeasibleError) Error() string {
	if e.Floor > 0 {
		return fmt.Sprintf("layout infeasible: no space for %s on floor %d", e.Type, e.Floor)
	}
	return fmt.Sprintf("layout infeasible: no space for %s", e.Type)
}

// Solve places every placeholder inside the footprint without overlaps.
//
// Placement is greedy and fully deterministic: slots ordered by descending
// target area, each sized from its catalog profile and style aspect, then
// dropped into the free rectangle that maximizes adjacency affinity with
// everything already on the floor. If a slot finds no home, the two largest
// placed rooms are shrunk toward their minimum area and the slot is retried
// once before the floor is declared infeasible.
func Solve(footprint geo.Rect, slots []Placeholder, pinned []Room, cat *catalog.Catalog, cfg Config) ([]Room, *validation.Report, error) {
	report := validation.NewReport()
	if err := footprint.Validate("solve"); err != nil {
		return nil, report, err
	}
	if cfg.Grid <= 0 {
		cfg.Grid = 0.5
	}

	for i := range pinned {
		if !geo.Contains(footprint, pinned[i].Rect) {
			return nil, report, &geo.GeometryError{
				Op:     "solve",
				Detail: fmt.Sprintf("pinned %s outside footprint", pinned[i].Type),
			}
		}
	}

	order := make([]Placeholder, len(slots))
	copy(order, slots)
	sort.SliceStable(order, func(i, j int) bool {
		pi, _ := cat.Lookup(order[i].Type)
		pj, _ := cat.Lookup(order[j].Type)
		if pi.TargetArea != pj.TargetArea {
			return pi.TargetArea > pj.TargetArea
		}
		if pi.PlacementRank != pj.PlacementRank {
			return pi.PlacementRank < pj.PlacementRank
		}
		return order[i].Seq < order[j].Seq
	})

	pinnedRects := make([]geo.Rect, len(pinned))
	for i, p := range pinned {
		pinnedRects[i] = p.Rect
	}
	arena := newFreeArena(footprint, pinnedRects, cfg.Grid)

	graph := buildGraph(order, pinned, cat)

	var placed []Room
	shrunk := false
	for idx := 0; idx < len(order); idx++ {
		slot := order[idx]
		room, ok := placeOne(slot, arena, placed, pinned, graph, cat, cfg)
		if !ok {
			if shrunk {
				return nil, report, &InfeasibleError{Type: slot.Type}
			}
			shrunk = true
			if !shrinkLargest(placed, cat, cfg.Grid) {
				return nil, report, &InfeasibleError{Type: slot.Type}
			}
			report.AddWarning(validation.Result{
				Level:    validation.LevelLayout,
				Message:  "shrink pass engaged to fit remaining rooms",
				Field:    "rooms",
				Expected: fmt.Sprintf("space for %s", slot.Type),
			})
			arena = rebuildArena(footprint, placed, pinnedRects, cfg.Grid)
			idx--
			continue
		}
		placed = append(placed, room)
		arena.splitAround(room.pickedFree, room.Rect)
	}

	out := make([]Room, 0, len(pinned)+len(placed))
	out = append(out, pinned...)
	out = append(out, stripInternal(placed)...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })

	report.AddInfo(validation.Result{
		Level:       validation.LevelLayout,
		Message:     "floor solved",
		Field:       "rooms",
		ActualValue: len(out),
	})
	return out, report, nil
}

type candidate struct {
	index    int
	rect     geo.Rect
	score    float64
	leftover float64
}

// placeOne sizes the slot and picks the best free rectangle for it.
func placeOne(slot Placeholder, arena *freeArena, placed, pinned []Room, graph *floorGraph, cat *catalog.Catalog, cfg Config) (Room, bool) {
	profile, err := cat.Lookup(slot.Type)
	if err != nil {
		return Room{}, false
	}
	aspect := cat.Aspect(slot.Type, cfg.Style)

	best := candidate{index: -1}
	// First pass wants the full target area; if nothing holds it the slot
	// is allowed to shrink into the largest usable pocket down to the
	// profile minimum.
	for _, relaxed := range []bool{false, true} {
		for i, free := range arena.rects {
			w, l, ok := fitDims(profile, aspect, free, cfg.Grid, relaxed)
			if !ok {
				continue
			}
			rect := geo.R(free.X, free.Y, w, l)
			score := adjacencyScore(slot, rect, placed, pinned, graph, cfg.Grid)
			leftover := free.Area() - rect.Area()
			if best.index < 0 ||
				score > best.score+geo.Epsilon ||
				(nearEq(score, best.score) && leftover < best.leftover-geo.Epsilon) {
				best = candidate{index: i, rect: rect, score: score, leftover: leftover}
			}
		}
		if best.index >= 0 {
			break
		}
	}
	if best.index < 0 {
		return Room{}, false
	}

	free := arena.remove(best.index)
	r := Room{
		ID:         fmt.Sprintf("%s_%d", slot.Type, slot.Seq+1),
		Seq:        slot.Seq,
		Type:       slot.Type,
		Rect:       best.rect,
		pickedFree: free,
	}
	return r, true
}

// fitDims derives a grid-snapped width/length for the profile inside free.
// The ideal shape comes from the target area and style aspect; minimum
// dimensions always win over aspect. When relaxed, the room may give up
// area to fit the pocket as long as it stays above the profile minimum.
func fitDims(p catalog.Profile, aspect float64, free geo.Rect, grid float64, relaxed bool) (float64, float64, bool) {
	w := math.Sqrt(p.TargetArea * aspect)
	l := p.TargetArea / w
	if w < p.MinWidth {
		w = p.MinWidth
		l = p.TargetArea / w
	}
	if l < p.MinLength {
		l = p.MinLength
		w = p.TargetArea / l
		if w < p.MinWidth {
			w = p.MinWidth
		}
	}

	w = snapAtLeast(w, p.MinWidth, grid)
	l = snapAtLeast(l, p.MinLength, grid)

	if relaxed {
		if free.W < w {
			w = snapDown(free.W, grid)
		}
		if free.L < l {
			l = snapDown(free.L, grid)
		}
		if w < p.MinWidth-geo.Epsilon || l < p.MinLength-geo.Epsilon {
			return 0, 0, false
		}
		if w*l < p.MinArea()-geo.Epsilon {
			return 0, 0, false
		}
	}
	if w > free.W+geo.Epsilon || l > free.L+geo.Epsilon {
		return 0, 0, false
	}
	return w, l, true
}

// snapAtLeast rounds v to the grid without dropping below the floor.
func snapAtLeast(v, floor, grid float64) float64 {
	s := geo.Snap(v, grid)
	for s < floor-geo.Epsilon {
		s += grid
	}
	return s
}

func snapDown(v, grid float64) float64 {
	return math.Floor(v/grid+geo.Epsilon) * grid
}

// floorGraph wraps the adjacency graph plus the pinned room types so both
// contribute to candidate scores.
type floorGraph struct {
	g       *adjacency.Graph
	bySeq   map[int]int
	pinType []catalog.RoomType
	cat     *catalog.Catalog
}

func buildGraph(slots []Placeholder, pinned []Room, cat *catalog.Catalog) *floorGraph {
	types := make([]catalog.RoomType, len(slots))
	bySeq := make(map[int]int, len(slots))
	for i, s := range slots {
		types[i] = s.Type
		bySeq[s.Seq] = i
	}
	pt := make([]catalog.RoomType, len(pinned))
	for i, p := range pinned {
		pt[i] = p.Type
	}
	return &floorGraph{g: adjacency.Build(types, cat), bySeq: bySeq, pinType: pt, cat: cat}
}

// adjacencyScore sums affinity weights toward every room the candidate rect
// would share a wall with, pinned rooms included.
func adjacencyScore(slot Placeholder, rect geo.Rect, placed, pinned []Room, graph *floorGraph, grid float64) float64 {
	self := graph.bySeq[slot.Seq]
	score := 0.0
	for _, r := range placed {
		if geo.Adjacent(rect, r.Rect, grid) {
			score += graph.g.Weight(self, graph.bySeq[r.Seq])
		}
	}
	for i, r := range pinned {
		if geo.Adjacent(rect, r.Rect, grid) {
			score += graph.cat.Affinity(slot.Type, graph.pinType[i])
		}
	}
	return score
}

// shrinkLargest contracts the two largest placed rooms to their profile
// minimum area, keeping their origin fixed. Returns false when nothing
// could be shrunk, so the caller can fail fast instead of looping.
func shrinkLargest(placed []Room, cat *catalog.Catalog, grid float64) bool {
	idx := make([]int, len(placed))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return placed[idx[a]].Rect.Area() > placed[idx[b]].Rect.Area()
	})

	changed := false
	for n, i := range idx {
		if n >= 2 {
			break
		}
		r := &placed[i]
		p, err := cat.Lookup(r.Type)
		if err != nil {
			continue
		}
		minArea := p.MinArea()
		if r.Rect.Area() <= minArea+geo.Epsilon {
			continue
		}
		f := math.Sqrt(minArea / r.Rect.Area())
		w := snapAtLeast(r.Rect.W*f, p.MinWidth, grid)
		l := snapAtLeast(r.Rect.L*f, p.MinLength, grid)
		if w < r.Rect.W-geo.Epsilon || l < r.Rect.L-geo.Epsilon {
			r.Rect.W = math.Min(w, r.Rect.W)
			r.Rect.L = math.Min(l, r.Rect.L)
			changed = true
		}
	}
	return changed
}

func rebuildArena(footprint geo.Rect, placed []Room, pinned []geo.Rect, grid float64) *freeArena {
	cuts := make([]geo.Rect, 0, len(placed)+len(pinned))
	cuts = append(cuts, pinned...)
	for _, r := range placed {
		cuts = append(cuts, r.Rect)
	}
	return newFreeArena(footprint, cuts, grid)
}

func stripInternal(rooms []Room) []Room {
	for i := range rooms {
		rooms[i].pickedFree = geo.Rect{}
	}
	return rooms
}

func nearEq(a, b float64) bool {
	return math.Abs(a-b) <= geo.Epsilon
}
