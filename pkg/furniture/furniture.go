package furniture

import (
	"math"
	"sort"

	"github.com/Achu067/PLANEXA/pkg/catalog"
	"github.com/Achu067/PLANEXA/pkg/geo"
	"github.com/Achu067/PLANEXA/pkg/solver"
)

// Item is one placed furniture piece, in floor coordinates.
type Item struct {
	Kind string
	Room string
	Rect geo.Rect
}

type strategy int

const (
	againstWall strategy = iota
	centered
	inCorner
	nextToBed
	onCounter
	atDesk
)

type template struct {
	kind  string
	w, l  float64
	place strategy
}

// templates holds the standard furniture set per room type. Hallways and
// stairs stay empty.
var templates = map[catalog.RoomType][]template{
	catalog.Bedroom: {
		{"bed", 1.9, 2.0, againstWall},
		{"wardrobe", 1.2, 0.6, againstWall},
		{"desk", 1.4, 0.6, againstWall},
		{"nightstand", 0.5, 0.4, nextToBed},
	},
	catalog.Living: {
		{"sofa", 2.0, 0.9, againstWall},
		{"coffee_table", 1.2, 0.6, centered},
		{"tv_stand", 1.8, 0.4, againstWall},
		{"armchair", 0.9, 0.9, inCorner},
	},
	catalog.Kitchen: {
		{"kitchen_counter", 3.0, 0.6, againstWall},
		{"refrigerator", 0.7, 0.7, inCorner},
		{"sink", 0.8, 0.5, onCounter},
		{"stove", 0.6, 0.6, onCounter},
	},
	catalog.Bathroom: {
		{"toilet", 0.7, 0.8, againstWall},
		{"sink", 0.6, 0.5, againstWall},
		{"shower", 0.9, 0.9, inCorner},
		{"bathtub", 1.7, 0.7, againstWall},
	},
	catalog.Office: {
		{"desk", 1.6, 0.8, centered},
		{"office_chair", 0.6, 0.6, atDesk},
		{"bookshelf", 1.0, 0.3, againstWall},
		{"filing_cabinet", 0.5, 0.6, inCorner},
	},
}

// clearances is the walking space required around each kind, in meters.
var clearances = map[string]float64{
	"bed":          0.6,
	"desk":         0.8,
	"sofa":         0.5,
	"coffee_table": 0.9,
	"wardrobe":     0.4,
	"toilet":       0.6,
	"sink":         0.5,
}

const defaultClearance = 0.5

// styleScale compacts or enlarges furniture per architectural style.
var styleScale = map[catalog.Style]float64{
	catalog.StyleModern:      0.9,
	catalog.StyleTraditional: 1.0,
	catalog.StyleMinimalist:  0.8,
	catalog.StyleOpenPlan:    1.1,
}

// Layout furnishes a single room. Items that find no collision-free spot
// are skipped; the result depends only on the room and style.
func Layout(room solver.Room, style catalog.Style) []Item {
	base, ok := templates[room.Type]
	if !ok {
		return nil
	}
	scale, ok := styleScale[style]
	if !ok {
		scale = 1.0
	}

	sized := make([]template, 0, len(base))
	maxArea := room.Rect.Area() * 0.3
	for _, t := range base {
		t.w *= scale
		t.l *= scale
		if a := t.w * t.l; a > maxArea {
			f := math.Sqrt(maxArea / a)
			t.w *= f
			t.l *= f
		}
		sized = append(sized, t)
	}
	sort.SliceStable(sized, func(i, j int) bool {
		return sized[i].w*sized[i].l > sized[j].w*sized[j].l
	})

	var placed []Item
	for _, t := range sized {
		if rect, ok := place(t, room.Rect, placed); ok {
			placed = append(placed, Item{Kind: t.kind, Room: room.ID, Rect: rect})
		}
	}
	return placed
}

func clearance(kind string) float64 {
	if c, ok := clearances[kind]; ok {
		return c
	}
	return defaultClearance
}

func place(t template, room geo.Rect, placed []Item) (geo.Rect, bool) {
	cl := clearance(t.kind)
	switch t.place {
	case againstWall:
		return placeAgainstWall(t, room, placed, cl)
	case centered:
		return placeCentered(t, room, placed, cl)
	case inCorner:
		return placeInCorner(t, room, placed)
	case nextToBed:
		return placeNextToBed(t, room, placed, cl)
	case onCounter:
		return placeOnCounter(t, room, placed)
	case atDesk:
		return placeAtDesk(t, room, placed)
	}
	return geo.Rect{}, false
}

// placeAgainstWall tries the four walls in a fixed order: front, right,
// back, then left with the piece rotated along the wall.
func placeAgainstWall(t template, room geo.Rect, placed []Item, cl float64) (geo.Rect, bool) {
	slots := []geo.Rect{
		geo.R(room.X+cl, room.Y+cl, t.w, t.l),
		geo.R(room.MaxX()-t.w-cl, room.Y+cl, t.w, t.l),
		geo.R(room.X+cl, room.MaxY()-t.l-cl, t.w, t.l),
		geo.R(room.X+cl, room.Y+cl, t.l, t.w),
	}
	for _, s := range slots {
		if fits(s, room, placed, cl) {
			return s, true
		}
	}
	return geo.Rect{}, false
}

// placeCentered puts the piece at the room center, probing a small grid of
// offsets when the center is taken.
func placeCentered(t template, room geo.Rect, placed []Item, cl float64) (geo.Rect, bool) {
	cx := room.X + room.W/2 - t.w/2
	cy := room.Y + room.L/2 - t.l/2
	for _, dx := range []float64{0, -0.5, 0.5} {
		for _, dy := range []float64{0, -0.5, 0.5} {
			s := geo.R(cx+dx, cy+dy, t.w, t.l)
			if fits(s, room, placed, cl) {
				return s, true
			}
		}
	}
	return geo.Rect{}, false
}

func placeInCorner(t template, room geo.Rect, placed []Item) (geo.Rect, bool) {
	slots := []geo.Rect{
		geo.R(room.X, room.Y, t.w, t.l),
		geo.R(room.MaxX()-t.w, room.Y, t.w, t.l),
		geo.R(room.X, room.MaxY()-t.l, t.w, t.l),
		geo.R(room.MaxX()-t.w, room.MaxY()-t.l, t.w, t.l),
	}
	for _, s := range slots {
		if fits(s, room, placed, 0) {
			return s, true
		}
	}
	return geo.Rect{}, false
}

func placeNextToBed(t template, room geo.Rect, placed []Item, cl float64) (geo.Rect, bool) {
	bed, ok := find(placed, "bed")
	if !ok {
		return placeAgainstWall(t, room, placed, cl)
	}
	slots := []geo.Rect{
		geo.R(bed.MaxX()+0.1, bed.Y, t.w, t.l),
		geo.R(bed.X-t.w-0.1, bed.Y, t.w, t.l),
		geo.R(bed.X, bed.MaxY()+0.1, t.w, t.l),
		geo.R(bed.X, bed.Y-t.l-0.1, t.w, t.l),
	}
	for _, s := range slots {
		if fits(s, room, placed, 0) {
			return s, true
		}
	}
	return geo.Rect{}, false
}

// placeOnCounter lines pieces up along the counter, left to right.
func placeOnCounter(t template, room geo.Rect, placed []Item) (geo.Rect, bool) {
	counter, ok := find(placed, "kitchen_counter")
	if !ok {
		return placeAgainstWall(t, room, placed, 0.1)
	}
	x := counter.X + 0.1
	for _, p := range placed {
		if p.Kind == "kitchen_counter" {
			continue
		}
		if geo.Overlaps(p.Rect, counter) && p.Rect.MaxX()+0.1 > x {
			x = p.Rect.MaxX() + 0.1
		}
	}
	s := geo.R(x, counter.Y+0.05, t.w, math.Min(t.l, counter.L-0.1))
	if s.MaxX() > counter.MaxX()+geo.Epsilon || !geo.Contains(room, s) {
		return geo.Rect{}, false
	}
	return s, true
}

func placeAtDesk(t template, room geo.Rect, placed []Item) (geo.Rect, bool) {
	desk, ok := find(placed, "desk")
	if !ok {
		return placeCentered(t, room, placed, 0.3)
	}
	slots := []geo.Rect{
		geo.R(desk.X+desk.W/2-t.w/2, desk.Y-t.l-0.3, t.w, t.l),
		geo.R(desk.X+desk.W/2-t.w/2, desk.MaxY()+0.3, t.w, t.l),
	}
	for _, s := range slots {
		if fits(s, room, placed, 0.1) {
			return s, true
		}
	}
	return geo.Rect{}, false
}

// fits reports whether a rect stays inside the room and keeps the given
// clearance from everything already placed.
func fits(s, room geo.Rect, placed []Item, cl float64) bool {
	if s.X < room.X-geo.Epsilon || s.Y < room.Y-geo.Epsilon ||
		s.MaxX() > room.MaxX()+geo.Epsilon || s.MaxY() > room.MaxY()+geo.Epsilon {
		return false
	}
	grown := geo.Rect{X: s.X - cl, Y: s.Y - cl, W: s.W + 2*cl, L: s.L + 2*cl}
	for _, p := range placed {
		if geo.Overlaps(grown, p.Rect) {
			return false
		}
	}
	return true
}

func find(placed []Item, kind string) (geo.Rect, bool) {
	for _, p := range placed {
		if p.Kind == kind {
			return p.Rect, true
		}
	}
	return geo.Rect{}, false
}
