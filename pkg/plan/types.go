// Package plan defines the generation request and the renderer-facing
// response document, plus YAML project loading and request defaults.
package plan

import "fmt"

// RoomRequest asks for count rooms of the named type.
type RoomRequest struct {
	Type  string `yaml:"type" json:"type"`
	Count int    `yaml:"count" json:"count"`
}

// Options carries the tunable layout thresholds. Zero values mean "use the
// default"; the door and window constants are deliberately configuration
// rather than hard-coded.
type Options struct {
	GridSize           float64 `yaml:"grid_size" json:"grid_size,omitempty"`
	MinDoorWidth       float64 `yaml:"min_door_width" json:"min_door_width,omitempty"`
	ExteriorDoorWidth  float64 `yaml:"exterior_door_width" json:"exterior_door_width,omitempty"`
	MinWindowWall      float64 `yaml:"min_window_wall" json:"min_window_wall,omitempty"`
	CirculationReserve float64 `yaml:"circulation_reserve" json:"circulation_reserve,omitempty"`
}

// Request is the full generation input.
type Request struct {
	Width            float64       `yaml:"width" json:"width"`
	Length           float64       `yaml:"length" json:"length"`
	Floors           int           `yaml:"floors" json:"floors"`
	Rooms            []RoomRequest `yaml:"rooms" json:"rooms"`
	Style            string        `yaml:"style" json:"style"`
	IncludeFurniture bool          `yaml:"include_furniture" json:"include_furniture"`
	IncludeWindows   bool          `yaml:"include_windows" json:"include_windows"`
	Options          Options       `yaml:"options" json:"options,omitempty"`
}

// Room is one placed room in the response.
type Room struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Area   float64 `json:"area"`
}

// Wall is an axis-aligned wall segment.
type Wall struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Window is a glazed segment lying on a wall.
type Window struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Door is a door position on a wall.
type Door struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FurnitureItem is one furniture footprint inside a room.
type FurnitureItem struct {
	Kind   string  `json:"kind"`
	Room   string  `json:"room"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// FloorMetrics summarizes one floor.
type FloorMetrics struct {
	TotalArea       float64            `json:"total_area"`
	RoomCount       int                `json:"room_count"`
	Efficiency      float64            `json:"efficiency"`
	CirculationArea float64            `json:"circulation_area"`
	CategoryArea    map[string]float64 `json:"category_area,omitempty"`
}

// FloorPlan is the complete layout of one floor.
type FloorPlan struct {
	FloorNumber int             `json:"floor_number"`
	Width       float64         `json:"width"`
	Length      float64         `json:"length"`
	Rooms       []Room          `json:"rooms"`
	Walls       []Wall          `json:"walls"`
	Windows     []Window        `json:"windows"`
	Doors       []Door          `json:"doors"`
	Furniture   []FurnitureItem `json:"furniture,omitempty"`
	Metrics     FloorMetrics    `json:"metrics"`
}

// BuildingMetrics aggregates across floors.
type BuildingMetrics struct {
	TotalArea         float64 `json:"total_area"`
	TotalRooms        int     `json:"total_rooms"`
	Floors            int     `json:"floors"`
	AverageEfficiency float64 `json:"average_efficiency"`
}

// Building is the top-level response document. On failure Success is false,
// Error describes the cause and no floors are emitted.
type Building struct {
	Success bool            `json:"success"`
	Floors  []FloorPlan     `json:"floors,omitempty"`
	Metrics BuildingMetrics `json:"metrics"`
	Error   string          `json:"error,omitempty"`
}

// InputError reports a request rejected before any solving took place.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}
