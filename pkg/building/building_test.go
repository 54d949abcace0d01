package building

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Achu067/PLANEXA/pkg/catalog"
	"github.com/Achu067/PLANEXA/pkg/geo"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/solver"
)

func testGenerator() *Generator {
	return New(catalog.Default(), log.New(io.Discard))
}

func rectOf(r plan.Room) geo.Rect {
	return geo.R(r.X, r.Y, r.Width, r.Length)
}

func assertFloorSane(t *testing.T, f plan.FloorPlan) {
	t.Helper()
	footprint := geo.R(0, 0, f.Width, f.Length)
	for i := range f.Rooms {
		if !geo.Contains(footprint, rectOf(f.Rooms[i])) {
			t.Errorf("floor %d: %s outside footprint: %+v", f.FloorNumber, f.Rooms[i].Type, f.Rooms[i])
		}
		for j := i + 1; j < len(f.Rooms); j++ {
			if geo.Overlaps(rectOf(f.Rooms[i]), rectOf(f.Rooms[j])) {
				t.Errorf("floor %d: rooms %d and %d overlap", f.FloorNumber, i, j)
			}
		}
	}
}

// --- single floor tests ---

func TestGenerateSingleFloor(t *testing.T) {
	req := &plan.Request{
		Width: 12, Length: 10, Floors: 1,
		Rooms: []plan.RoomRequest{
			{Type: "bedroom", Count: 2},
			{Type: "living", Count: 1},
			{Type: "kitchen", Count: 1},
			{Type: "bathroom", Count: 1},
		},
		Style: "modern",
	}
	b, err := testGenerator().Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !b.Success {
		t.Fatalf("success = false: %s", b.Error)
	}
	if len(b.Floors) != 1 {
		t.Fatalf("floors = %d, want 1", len(b.Floors))
	}

	f := b.Floors[0]
	if len(f.Rooms) != 5 {
		t.Errorf("rooms = %d, want 5", len(f.Rooms))
	}
	assertFloorSane(t, f)

	if f.Metrics.Efficiency <= 0 || f.Metrics.Efficiency > 100 {
		t.Errorf("efficiency = %v", f.Metrics.Efficiency)
	}
	if len(f.Walls) < 4 {
		t.Errorf("walls = %d, want at least the exterior", len(f.Walls))
	}
	if len(f.Doors) == 0 {
		t.Error("ground floor has no entrance door")
	}
	if b.Metrics.TotalRooms != 5 || b.Metrics.Floors != 1 {
		t.Errorf("building metrics = %+v", b.Metrics)
	}
}

func TestGenerateTightFootprint(t *testing.T) {
	req := &plan.Request{
		Width: 10, Length: 8, Floors: 1,
		Rooms: []plan.RoomRequest{
			{Type: "bedroom", Count: 3},
			{Type: "bathroom", Count: 1},
		},
	}
	b, err := testGenerator().Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(b.Floors[0].Rooms) != 4 {
		t.Errorf("rooms = %d, want 4", len(b.Floors[0].Rooms))
	}
	assertFloorSane(t, b.Floors[0])
}

// --- multi floor tests ---

func TestGenerateStairsAligned(t *testing.T) {
	req := &plan.Request{
		Width: 12, Length: 10, Floors: 2,
		Rooms: []plan.RoomRequest{
			{Type: "bedroom", Count: 2},
			{Type: "living", Count: 1},
			{Type: "bathroom", Count: 1},
		},
	}
	b, err := testGenerator().Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(b.Floors) != 2 {
		t.Fatalf("floors = %d, want 2", len(b.Floors))
	}

	var stairs []plan.Room
	for _, f := range b.Floors {
		assertFloorSane(t, f)
		count := 0
		for _, r := range f.Rooms {
			if r.Type == "stairs" {
				stairs = append(stairs, r)
				count++
			}
		}
		if count != 1 {
			t.Fatalf("floor %d has %d stairwells, want 1", f.FloorNumber, count)
		}
	}
	if stairs[0] != stairs[1] {
		t.Errorf("stairwells differ across floors: %+v vs %+v", stairs[0], stairs[1])
	}
}

func TestGenerateSpillsToUpperFloor(t *testing.T) {
	req := &plan.Request{
		Width: 8, Length: 7, Floors: 2,
		Rooms: []plan.RoomRequest{
			{Type: "bedroom", Count: 2},
			{Type: "living", Count: 1},
			{Type: "kitchen", Count: 1},
			{Type: "bathroom", Count: 1},
		},
	}
	b, err := testGenerator().Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Requested rooms plus one stairwell per floor.
	if b.Metrics.TotalRooms != 7 {
		t.Errorf("total rooms = %d, want 7", b.Metrics.TotalRooms)
	}
	if len(b.Floors[1].Rooms) < 2 {
		t.Errorf("upper floor has %d rooms, expected spillover", len(b.Floors[1].Rooms))
	}
	for _, f := range b.Floors {
		assertFloorSane(t, f)
	}
}

func TestGenerateUpperFloorsHaveNoEntrance(t *testing.T) {
	req := &plan.Request{
		Width: 12, Length: 10, Floors: 2,
		Rooms: []plan.RoomRequest{{Type: "bedroom", Count: 1}},
	}
	b, err := testGenerator().Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(b.Floors[0].Doors) == 0 {
		t.Error("ground floor should have the entrance")
	}
}

// --- determinism ---

func TestGenerateDeterministic(t *testing.T) {
	req := func() *plan.Request {
		return &plan.Request{
			Width: 12, Length: 10, Floors: 2,
			Rooms: []plan.RoomRequest{
				{Type: "bedroom", Count: 2},
				{Type: "living", Count: 1},
				{Type: "kitchen", Count: 1},
			},
			IncludeWindows:   true,
			IncludeFurniture: true,
		}
	}
	g := testGenerator()
	first, err := g.Generate(context.Background(), req())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	a, _ := json.Marshal(first)
	for run := 0; run < 3; run++ {
		next, err := g.Generate(context.Background(), req())
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		b, _ := json.Marshal(next)
		if string(a) != string(b) {
			t.Fatalf("run %d produced a different document", run)
		}
	}
}

// --- feature flags ---

func TestGenerateFurnitureFlag(t *testing.T) {
	base := plan.Request{
		Width: 12, Length: 10, Floors: 1,
		Rooms: []plan.RoomRequest{{Type: "bedroom", Count: 1}, {Type: "living", Count: 1}},
	}
	g := testGenerator()

	plain := base
	b, err := g.Generate(context.Background(), &plain)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(b.Floors[0].Furniture) != 0 {
		t.Errorf("furniture emitted without the flag: %d items", len(b.Floors[0].Furniture))
	}

	furnished := base
	furnished.IncludeFurniture = true
	b, err = g.Generate(context.Background(), &furnished)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(b.Floors[0].Furniture) == 0 {
		t.Error("no furniture despite the flag")
	}
}

func TestGenerateWindowsFlag(t *testing.T) {
	req := &plan.Request{
		Width: 12, Length: 10, Floors: 1,
		Rooms:          []plan.RoomRequest{{Type: "living", Count: 1}},
		IncludeWindows: true,
	}
	b, err := testGenerator().Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(b.Floors[0].Windows) == 0 {
		t.Error("no windows despite the flag")
	}
}

// --- error taxonomy ---

func TestGenerateRejectsUnknownType(t *testing.T) {
	req := &plan.Request{
		Width: 12, Length: 10,
		Rooms: []plan.RoomRequest{{Type: "ballroom", Count: 1}},
	}
	b, err := testGenerator().Generate(context.Background(), req)

	var ierr *plan.InputError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if b.Success || b.Error == "" || len(b.Floors) != 0 {
		t.Errorf("failure envelope malformed: %+v", b)
	}
}

func TestGenerateRejectsZeroCount(t *testing.T) {
	req := &plan.Request{
		Width: 12, Length: 10,
		Rooms: []plan.RoomRequest{{Type: "bedroom", Count: 0}},
	}
	_, err := testGenerator().Generate(context.Background(), req)
	var ierr *plan.InputError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected InputError, got %v", err)
	}
}

func TestGenerateInfeasible(t *testing.T) {
	req := &plan.Request{
		Width: 5, Length: 5, Floors: 1,
		Rooms: []plan.RoomRequest{{Type: "living", Count: 3}},
	}
	b, err := testGenerator().Generate(context.Background(), req)

	var inf *solver.InfeasibleError
	if !errors.As(err, &inf) {
		t.Fatalf("expected InfeasibleError, got %v", err)
	}
	if inf.Floor != 1 {
		t.Errorf("infeasible floor = %d, want 1", inf.Floor)
	}
	if b.Success || len(b.Floors) != 0 {
		t.Errorf("failure envelope malformed: %+v", b)
	}
}

func TestGenerateInfeasibleTinyFootprint(t *testing.T) {
	req := &plan.Request{
		Width: 1, Length: 1, Floors: 1,
		Rooms: []plan.RoomRequest{{Type: "bedroom", Count: 1}},
	}
	b, err := testGenerator().Generate(context.Background(), req)

	var inf *solver.InfeasibleError
	if !errors.As(err, &inf) {
		t.Fatalf("expected InfeasibleError, got %v", err)
	}
	if inf.Type != catalog.Bedroom {
		t.Errorf("infeasible type = %v, want bedroom", inf.Type)
	}
	if b.Success || len(b.Floors) != 0 {
		t.Errorf("failure envelope malformed: %+v", b)
	}
}

func TestGenerateAppliesDefaults(t *testing.T) {
	b, err := testGenerator().Generate(context.Background(), &plan.Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !b.Success || len(b.Floors) != 1 {
		t.Fatalf("default request failed: %+v", b)
	}
	// Two bedrooms and a living room by default.
	if len(b.Floors[0].Rooms) != 3 {
		t.Errorf("rooms = %d, want 3", len(b.Floors[0].Rooms))
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testGenerator().Generate(ctx, &plan.Request{
		Width: 12, Length: 10,
		Rooms: []plan.RoomRequest{{Type: "bedroom", Count: 1}},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
