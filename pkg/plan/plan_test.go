package plan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var r Request
	r.ApplyDefaults()

	if r.Width != 12 || r.Length != 10 {
		t.Errorf("expected 12x10 default footprint, got %vx%v", r.Width, r.Length)
	}
	if r.Floors != 1 {
		t.Errorf("expected 1 default floor, got %d", r.Floors)
	}
	if len(r.Rooms) != 2 || r.Rooms[0].Type != "bedroom" || r.Rooms[0].Count != 2 {
		t.Errorf("unexpected default rooms: %+v", r.Rooms)
	}
	if r.Style != "modern" {
		t.Errorf("expected modern default style, got %q", r.Style)
	}
	if r.Options.GridSize != DefaultGridSize {
		t.Errorf("expected grid default %v, got %v", DefaultGridSize, r.Options.GridSize)
	}
	if r.Options.MinDoorWidth != DefaultMinDoorWidth {
		t.Errorf("expected door default %v, got %v", DefaultMinDoorWidth, r.Options.MinDoorWidth)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	r := Request{
		Width:  8,
		Length: 6,
		Floors: 3,
		Rooms:  []RoomRequest{{Type: "office", Count: 1}},
		Style:  "minimalist",
		Options: Options{
			MinDoorWidth: 1.1,
		},
	}
	r.ApplyDefaults()

	if r.Width != 8 || r.Floors != 3 || r.Style != "minimalist" {
		t.Errorf("explicit values overwritten: %+v", r)
	}
	if r.Options.MinDoorWidth != 1.1 {
		t.Errorf("explicit door width overwritten: %v", r.Options.MinDoorWidth)
	}
	if r.Options.MinWindowWall != DefaultMinWindowWall {
		t.Errorf("absent option should default, got %v", r.Options.MinWindowWall)
	}
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`width: 14
length: 11
floors: 2
style: traditional
include_windows: true
rooms:
  - type: bedroom
    count: 3
  - type: stairs
    count: 1
options:
  min_door_width: 0.8
`)
	if err := os.WriteFile(filepath.Join(dir, "plan.yaml"), content, 0644); err != nil {
		t.Fatal(err)
	}

	req, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if req.Width != 14 || req.Length != 11 || req.Floors != 2 {
		t.Errorf("unexpected dims: %+v", req)
	}
	if len(req.Rooms) != 2 || req.Rooms[1].Type != "stairs" {
		t.Errorf("unexpected rooms: %+v", req.Rooms)
	}
	if req.Options.MinDoorWidth != 0.8 {
		t.Errorf("expected option override 0.8, got %v", req.Options.MinDoorWidth)
	}
	if !req.IncludeWindows {
		t.Error("expected include_windows true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadProject(t.TempDir()); err == nil {
		t.Error("expected error for missing plan.yaml")
	}
}

func TestFailureEnvelope(t *testing.T) {
	b := Failure(&InputError{Field: "width", Reason: "must be positive"})
	if b.Success {
		t.Error("failure envelope must not be successful")
	}
	if b.Error == "" {
		t.Error("failure envelope must carry the error string")
	}
	if len(b.Floors) != 0 {
		t.Error("failure envelope must not carry floors")
	}
}
