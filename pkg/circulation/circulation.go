package circulation

import (
	"fmt"
	"math"

	"github.com/Achu067/PLANEXA/pkg/catalog"
	"github.com/Achu067/PLANEXA/pkg/geo"
	"github.com/Achu067/PLANEXA/pkg/solver"
)

// Config holds the circulation thresholds. Zero values are replaced with
// the standard residential defaults.
type Config struct {
	MinDoorWidth      float64
	ExteriorDoorWidth float64
	MinWindowWall     float64
	Style             catalog.Style
	IncludeWindows    bool
	// Entrance adds the exterior door on the front wall; only the ground
	// floor wants one.
	Entrance bool
}

func (c Config) withDefaults() Config {
	if c.MinDoorWidth <= 0 {
		c.MinDoorWidth = 0.9
	}
	if c.ExteriorDoorWidth <= 0 {
		c.ExteriorDoorWidth = 1.0
	}
	if c.MinWindowWall <= 0 {
		c.MinWindowWall = 2.0
	}
	if c.Style == "" {
		c.Style = catalog.StyleModern
	}
	return c
}

// Wall is a straight wall segment. Exterior walls trace the footprint.
type Wall struct {
	Seg      geo.Segment
	Exterior bool
}

// Door is an opening centered at a point on a wall. Rooms names the two
// sides; the second entry is empty for the main entrance.
type Door struct {
	At    geo.Point
	Width float64
	Rooms [2]string
}

// Window is an opening on an exterior wall belonging to one room.
type Window struct {
	Seg  geo.Segment
	Room string
}

// Plan is the full circulation layer for one floor.
type Plan struct {
	Walls   []Wall
	Doors   []Door
	Windows []Window
}

// Build derives walls, doors and windows from the placed rooms. The pass
// is purely derivational: same rooms in, same plan out.
func Build(footprint geo.Rect, rooms []solver.Room, cat *catalog.Catalog, cfg Config) (*Plan, error) {
	cfg = cfg.withDefaults()
	if err := footprint.Validate("circulation"); err != nil {
		return nil, err
	}

	p := &Plan{}
	p.Walls = append(p.Walls, exteriorWalls(footprint)...)
	p.Walls = append(p.Walls, interiorWalls(rooms)...)
	p.Doors = doors(rooms, cat, cfg)

	if cfg.Entrance {
		entrance, err := mainEntrance(footprint, rooms, cfg)
		if err != nil {
			return nil, err
		}
		p.Doors = append(p.Doors, entrance)
	}

	if cfg.IncludeWindows {
		p.Windows = windows(footprint, rooms, cat, cfg)
	}
	return p, nil
}

func exteriorWalls(f geo.Rect) []Wall {
	bl := geo.Pt(f.X, f.Y)
	br := geo.Pt(f.MaxX(), f.Y)
	tr := geo.Pt(f.MaxX(), f.MaxY())
	tl := geo.Pt(f.X, f.MaxY())
	return []Wall{
		{Seg: geo.Segment{A: bl, B: br}, Exterior: true},
		{Seg: geo.Segment{A: br, B: tr}, Exterior: true},
		{Seg: geo.Segment{A: tr, B: tl}, Exterior: true},
		{Seg: geo.Segment{A: tl, B: bl}, Exterior: true},
	}
}

// interiorWalls emits one wall per pair of rooms sharing an edge. Room
// order is stable, so the wall list is too.
func interiorWalls(rooms []solver.Room) []Wall {
	var walls []Wall
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if seg, ok := geo.SharedEdge(rooms[i].Rect, rooms[j].Rect); ok {
				walls = append(walls, Wall{Seg: seg})
			}
		}
	}
	return walls
}

// doors places an interior door at the midpoint of every shared edge long
// enough for one, between rooms that do not repel each other.
func doors(rooms []solver.Room, cat *catalog.Catalog, cfg Config) []Door {
	var out []Door
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			seg, ok := geo.SharedEdge(rooms[i].Rect, rooms[j].Rect)
			if !ok || seg.Length() < cfg.MinDoorWidth-geo.Epsilon {
				continue
			}
			if cat.Affinity(rooms[i].Type, rooms[j].Type) < 0 {
				continue
			}
			out = append(out, Door{
				At:    seg.Mid(),
				Width: cfg.MinDoorWidth,
				Rooms: [2]string{rooms[i].ID, rooms[j].ID},
			})
		}
	}
	return out
}

// mainEntrance puts the exterior door on the front wall (y = 0 side),
// centered on the living room when one fronts the street, otherwise on
// the first room that does. Rooms whose front edge is too narrow for the
// door are passed over.
func mainEntrance(footprint geo.Rect, rooms []solver.Room, cfg Config) (Door, error) {
	front := -1
	for i, r := range rooms {
		if math.Abs(r.Rect.Y-footprint.Y) > geo.Epsilon {
			continue
		}
		if r.Rect.W < cfg.ExteriorDoorWidth-geo.Epsilon {
			continue
		}
		if r.Type == catalog.Living {
			front = i
			break
		}
		if front < 0 {
			front = i
		}
	}
	if front < 0 {
		return Door{}, &geo.GeometryError{
			Op:     "circulation",
			Detail: "no room touches the front wall",
		}
	}
	r := rooms[front].Rect
	return Door{
		At:    geo.Pt(r.X+r.W/2, footprint.Y),
		Width: cfg.ExteriorDoorWidth,
		Rooms: [2]string{rooms[front].ID, ""},
	}, nil
}

// windows places one centered window per exterior room edge that is long
// enough, sized by the room's profile and the style multiplier but never
// wider than 80% of the edge.
func windows(footprint geo.Rect, rooms []solver.Room, cat *catalog.Catalog, cfg Config) []Window {
	var out []Window
	for _, r := range rooms {
		width := cat.WindowWidth(r.Type, cfg.Style)
		if width <= 0 {
			continue
		}
		for _, seg := range exteriorEdges(footprint, r.Rect) {
			length := seg.Length()
			if length < cfg.MinWindowWall-geo.Epsilon {
				continue
			}
			w := math.Min(width, 0.8*length)
			out = append(out, Window{Seg: centerOn(seg, w), Room: r.ID})
		}
	}
	return out
}

// exteriorEdges returns the room edges lying on the footprint boundary.
// Order is fixed: bottom, right, top, left.
func exteriorEdges(f, r geo.Rect) []geo.Segment {
	var out []geo.Segment
	if math.Abs(r.Y-f.Y) <= geo.Epsilon {
		out = append(out, geo.Segment{A: geo.Pt(r.X, r.Y), B: geo.Pt(r.MaxX(), r.Y)})
	}
	if math.Abs(r.MaxX()-f.MaxX()) <= geo.Epsilon {
		out = append(out, geo.Segment{A: geo.Pt(r.MaxX(), r.Y), B: geo.Pt(r.MaxX(), r.MaxY())})
	}
	if math.Abs(r.MaxY()-f.MaxY()) <= geo.Epsilon {
		out = append(out, geo.Segment{A: geo.Pt(r.X, r.MaxY()), B: geo.Pt(r.MaxX(), r.MaxY())})
	}
	if math.Abs(r.X-f.X) <= geo.Epsilon {
		out = append(out, geo.Segment{A: geo.Pt(r.X, r.Y), B: geo.Pt(r.X, r.MaxY())})
	}
	return out
}

// centerOn shrinks seg to the given length, keeping its midpoint.
func centerOn(seg geo.Segment, length float64) geo.Segment {
	mid := seg.Mid()
	full := seg.Length()
	if full <= geo.Epsilon {
		return seg
	}
	half := length / full / 2
	return geo.Segment{
		A: mid.Add(seg.A.Sub(seg.B).Scale(half)),
		B: mid.Add(seg.B.Sub(seg.A).Scale(half)),
	}
}

// Describe is a compact human-readable summary used by the CLI report.
func (p *Plan) Describe() string {
	return fmt.Sprintf("%d walls, %d doors, %d windows", len(p.Walls), len(p.Doors), len(p.Windows))
}
