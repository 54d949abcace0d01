package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Layout threshold defaults. The door and window values come from common
// residential standards; they are overridable through Options.
const (
	DefaultGridSize           = 0.5
	DefaultMinDoorWidth       = 0.9
	DefaultExteriorDoorWidth  = 1.0
	DefaultMinWindowWall      = 2.0
	DefaultCirculationReserve = 0.15
)

// Load reads a generation request from a YAML file.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing plan YAML: %w", err)
	}

	return &req, nil
}

// LoadProject loads a request from a project directory.
// It looks for plan.yaml in the given directory.
func LoadProject(projectDir string) (*Request, error) {
	return Load(filepath.Join(projectDir, "plan.yaml"))
}

// ApplyDefaults fills absent or invalid request fields with the documented
// defaults: a 12x10 single-floor footprint with two bedrooms and a living
// room in the modern style.
func (r *Request) ApplyDefaults() {
	if r.Width <= 0 {
		r.Width = 12
	}
	if r.Length <= 0 {
		r.Length = 10
	}
	if r.Floors <= 0 {
		r.Floors = 1
	}
	if len(r.Rooms) == 0 {
		r.Rooms = []RoomRequest{
			{Type: "bedroom", Count: 2},
			{Type: "living", Count: 1},
		}
	}
	if r.Style == "" {
		r.Style = "modern"
	}
	r.Options.applyDefaults()
}

func (o *Options) applyDefaults() {
	if o.GridSize <= 0 {
		o.GridSize = DefaultGridSize
	}
	if o.MinDoorWidth <= 0 {
		o.MinDoorWidth = DefaultMinDoorWidth
	}
	if o.ExteriorDoorWidth <= 0 {
		o.ExteriorDoorWidth = DefaultExteriorDoorWidth
	}
	if o.MinWindowWall <= 0 {
		o.MinWindowWall = DefaultMinWindowWall
	}
	if o.CirculationReserve <= 0 || o.CirculationReserve >= 1 {
		o.CirculationReserve = DefaultCirculationReserve
	}
}

// Failure builds the failure envelope: success false, the error string,
// and no floors.
func Failure(err error) *Building {
	return &Building{Success: false, Error: err.Error()}
}
