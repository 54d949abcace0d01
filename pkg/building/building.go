// Package building coordinates the full generation pipeline: request
// validation, room distribution across floors, per-floor solving and the
// assembly of the response document.
package building

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/Achu067/PLANEXA/pkg/catalog"
	"github.com/Achu067/PLANEXA/pkg/circulation"
	"github.com/Achu067/PLANEXA/pkg/furniture"
	"github.com/Achu067/PLANEXA/pkg/geo"
	"github.com/Achu067/PLANEXA/pkg/metrics"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/solver"
	"github.com/Achu067/PLANEXA/pkg/validation"
)

// StairAlignmentError reports that the stairwell could not be kept at the
// same position on every floor.
type StairAlignmentError struct {
	Floor int
}

func (e *StairAlignmentError) Error() string {
	return fmt.Sprintf("stairs cannot be aligned on floor %d", e.Floor)
}

// Generator runs generation requests against one room catalog.
type Generator struct {
	cat *catalog.Catalog
	log *log.Logger
}

// New builds a Generator. A nil logger falls back to the package default.
func New(cat *catalog.Catalog, logger *log.Logger) *Generator {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{cat: cat, log: logger}
}

// Generate produces the building document for a request. The request is
// defaulted and validated first; any failure returns the failure envelope
// alongside the typed error so callers can map it to a status.
//
// Floor one is solved first so its stairwell position can be pinned on the
// floors above, which are then solved concurrently.
func (g *Generator) Generate(ctx context.Context, req *plan.Request) (*plan.Building, error) {
	req.ApplyDefaults()

	if report := validation.ValidateRequest(req, g.cat); !report.Valid {
		first := report.Errors[0]
		err := &plan.InputError{Field: first.Field, Reason: first.Message}
		return plan.Failure(err), err
	}

	style := catalog.ParseStyle(req.Style)
	floors, err := g.distribute(req)
	if err != nil {
		return plan.Failure(err), err
	}

	g.log.Debug("request accepted",
		"floors", req.Floors, "style", style, "footprint", fmt.Sprintf("%gx%g", req.Width, req.Length))

	out := make([]plan.FloorPlan, req.Floors)

	// Ground floor first: its stairwell anchors every floor above.
	ground, stairs, err := g.solveFloor(ctx, 1, floors[0], nil, req, style)
	if err != nil {
		return plan.Failure(err), err
	}
	out[0] = ground

	if req.Floors > 1 {
		if stairs == nil {
			err := &StairAlignmentError{Floor: 1}
			return plan.Failure(err), err
		}
		eg, egCtx := errgroup.WithContext(ctx)
		for n := 2; n <= req.Floors; n++ {
			n := n
			pinned := []solver.Room{{
				ID:     stairs.ID,
				Seq:    stairs.Seq,
				Type:   catalog.Stairs,
				Rect:   stairs.Rect,
				Pinned: true,
			}}
			eg.Go(func() error {
				fp, _, err := g.solveFloor(egCtx, n, floors[n-1], pinned, req, style)
				if err != nil {
					return err
				}
				out[n-1] = fp
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return plan.Failure(err), err
		}
	}

	b := &plan.Building{
		Success: true,
		Floors:  out,
		Metrics: metrics.ForBuilding(out),
	}
	g.log.Info("building generated",
		"floors", b.Metrics.Floors, "rooms", b.Metrics.TotalRooms, "efficiency", b.Metrics.AverageEfficiency)
	return b, nil
}

// distribute expands the room requests into per-floor placeholder lists.
// Rooms go to floors greedily, largest target area first, each floor
// capped at its footprint minus the circulation reserve. Multi-floor
// buildings get one stairwell slot on every floor regardless of what was
// requested.
func (g *Generator) distribute(req *plan.Request) ([][]solver.Placeholder, error) {
	var pool []catalog.RoomType
	for _, rr := range req.Rooms {
		t, err := catalog.Parse(rr.Type)
		if err != nil {
			return nil, &plan.InputError{Field: "rooms", Reason: err.Error()}
		}
		if t == catalog.Stairs && req.Floors > 1 {
			continue // replicated below
		}
		for i := 0; i < rr.Count; i++ {
			pool = append(pool, t)
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		pi, _ := g.cat.Lookup(pool[i])
		pj, _ := g.cat.Lookup(pool[j])
		return pi.TargetArea > pj.TargetArea
	})

	capacity := make([]float64, req.Floors)
	usable := req.Width * req.Length * (1 - req.Options.CirculationReserve)
	floors := make([][]catalog.RoomType, req.Floors)
	for i := range capacity {
		capacity[i] = usable
		if req.Floors > 1 {
			// Every floor reserves stairwell space, but only the ground
			// floor solves for it; the rest inherit it as a pinned room.
			p, _ := g.cat.Lookup(catalog.Stairs)
			capacity[i] -= p.TargetArea
			if i == 0 {
				floors[0] = append(floors[0], catalog.Stairs)
			}
		}
	}

	for _, t := range pool {
		p, _ := g.cat.Lookup(t)
		target := -1
		for i := range floors {
			if capacity[i] >= p.TargetArea {
				target = i
				break
			}
		}
		if target < 0 {
			// No floor has room at target size; the floor with the most
			// capacity left takes it and the solver shrinks it into place.
			target = 0
			for i := range capacity {
				if capacity[i] > capacity[target] {
					target = i
				}
			}
		}
		floors[target] = append(floors[target], t)
		capacity[target] -= p.TargetArea
	}

	out := make([][]solver.Placeholder, req.Floors)
	for i, types := range floors {
		// Upper floors reserve seq 0 for the pinned stairwell.
		offset := 0
		if req.Floors > 1 && i > 0 {
			offset = 1
		}
		out[i] = make([]solver.Placeholder, len(types))
		for j, t := range types {
			out[i][j] = solver.Placeholder{Seq: j + offset, Type: t}
		}
	}
	return out, nil
}

// solveFloor runs one floor end to end and returns its stairwell room,
// when it has one, for pinning on the floors above.
func (g *Generator) solveFloor(ctx context.Context, num int, slots []solver.Placeholder, pinned []solver.Room, req *plan.Request, style catalog.Style) (plan.FloorPlan, *solver.Room, error) {
	if err := ctx.Err(); err != nil {
		return plan.FloorPlan{}, nil, err
	}
	footprint := geo.R(0, 0, req.Width, req.Length)

	rooms, report, err := solver.Solve(footprint, slots, pinned, g.cat, solver.Config{
		Grid:  req.Options.GridSize,
		Style: style,
	})
	if err != nil {
		var inf *solver.InfeasibleError
		if errors.As(err, &inf) {
			inf.Floor = num
			return plan.FloorPlan{}, nil, inf
		}
		var gerr *geo.GeometryError
		if len(pinned) > 0 && errors.As(err, &gerr) {
			return plan.FloorPlan{}, nil, &StairAlignmentError{Floor: num}
		}
		return plan.FloorPlan{}, nil, err
	}
	for _, w := range report.Warnings {
		g.log.Warn(w.Message, "floor", num, "field", w.Field)
	}

	circ, err := circulation.Build(footprint, rooms, g.cat, circulation.Config{
		MinDoorWidth:      req.Options.MinDoorWidth,
		ExteriorDoorWidth: req.Options.ExteriorDoorWidth,
		MinWindowWall:     req.Options.MinWindowWall,
		Style:             style,
		IncludeWindows:    req.IncludeWindows,
		Entrance:          num == 1,
	})
	if err != nil {
		return plan.FloorPlan{}, nil, err
	}

	fp := plan.FloorPlan{
		FloorNumber: num,
		Width:       req.Width,
		Length:      req.Length,
		Rooms:       wireRooms(rooms),
		Walls:       wireWalls(circ.Walls),
		Windows:     wireWindows(circ.Windows),
		Doors:       wireDoors(circ.Doors),
		Metrics:     metrics.ForFloor(footprint, rooms),
	}
	if req.IncludeFurniture {
		for _, r := range rooms {
			for _, it := range furniture.Layout(r, style) {
				fp.Furniture = append(fp.Furniture, plan.FurnitureItem{
					Kind:   it.Kind,
					Room:   it.Room,
					X:      it.Rect.X,
					Y:      it.Rect.Y,
					Width:  it.Rect.W,
					Length: it.Rect.L,
				})
			}
		}
	}

	var stairs *solver.Room
	for i := range rooms {
		if rooms[i].Type == catalog.Stairs {
			stairs = &rooms[i]
			break
		}
	}
	return fp, stairs, nil
}

func wireRooms(rooms []solver.Room) []plan.Room {
	out := make([]plan.Room, len(rooms))
	for i, r := range rooms {
		out[i] = plan.Room{
			Type:   r.Type.String(),
			X:      r.Rect.X,
			Y:      r.Rect.Y,
			Width:  r.Rect.W,
			Length: r.Rect.L,
			Area:   r.Rect.Area(),
		}
	}
	return out
}

func wireWalls(walls []circulation.Wall) []plan.Wall {
	out := make([]plan.Wall, len(walls))
	for i, w := range walls {
		out[i] = plan.Wall{X1: w.Seg.A.X, Y1: w.Seg.A.Y, X2: w.Seg.B.X, Y2: w.Seg.B.Y}
	}
	return out
}

func wireWindows(windows []circulation.Window) []plan.Window {
	out := make([]plan.Window, len(windows))
	for i, w := range windows {
		out[i] = plan.Window{X1: w.Seg.A.X, Y1: w.Seg.A.Y, X2: w.Seg.B.X, Y2: w.Seg.B.Y}
	}
	return out
}

func wireDoors(doors []circulation.Door) []plan.Door {
	out := make([]plan.Door, len(doors))
	for i, d := range doors {
		out[i] = plan.Door{X: d.At.X, Y: d.At.Y}
	}
	return out
}
