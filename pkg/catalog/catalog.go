// Package catalog holds the canonical metadata for every room type: sizing
// defaults, aspect-ratio ranges per style, and the pairwise adjacency
// affinity table used to score candidate placements.
package catalog

import "fmt"

// RoomType is a closed enumeration of the room kinds the planner knows.
type RoomType int

const (
	Bedroom RoomType = iota
	Living
	Kitchen
	Bathroom
	Office
	Hallway
	Stairs
	numRoomTypes
)

var roomTypeNames = [numRoomTypes]string{
	Bedroom:  "bedroom",
	Living:   "living",
	Kitchen:  "kitchen",
	Bathroom: "bathroom",
	Office:   "office",
	Hallway:  "hallway",
	Stairs:   "stairs",
}

func (t RoomType) String() string {
	if t < 0 || t >= numRoomTypes {
		return fmt.Sprintf("roomtype(%d)", int(t))
	}
	return roomTypeNames[t]
}

// All returns every room type in enumeration order.
func All() []RoomType {
	out := make([]RoomType, numRoomTypes)
	for i := range out {
		out[i] = RoomType(i)
	}
	return out
}

// UnknownRoomTypeError reports a room type name outside the enumeration.
type UnknownRoomTypeError struct {
	Name string
}

func (e *UnknownRoomTypeError) Error() string {
	return fmt.Sprintf("unknown room type %q", e.Name)
}

// Parse resolves a room type by name.
func Parse(name string) (RoomType, error) {
	for i, n := range roomTypeNames {
		if n == name {
			return RoomType(i), nil
		}
	}
	return 0, &UnknownRoomTypeError{Name: name}
}

// AspectRange bounds the width/length ratio a room may take.
type AspectRange struct {
	Min float64
	Max float64
}

// Clamp forces r into the range.
func (a AspectRange) Clamp(r float64) float64 {
	if r < a.Min {
		return a.Min
	}
	if r > a.Max {
		return a.Max
	}
	return r
}

// Profile is the canonical metadata for one room type.
type Profile struct {
	Type       RoomType
	TargetArea float64 // preferred area in m²
	MinWidth   float64 // minimum dimensions; MinWidth*MinLength is the min area
	MinLength  float64
	Aspect     AspectRange
	// PlacementRank is the canonical ordering used to break area ties in the
	// solver: lower ranks place first.
	PlacementRank int
	// WindowBase is the nominal window width in meters; zero means the room
	// type never receives windows.
	WindowBase float64
}

// MinArea returns the smallest area the room may shrink to.
func (p Profile) MinArea() float64 {
	return p.MinWidth * p.MinLength
}

// Catalog is the validated set of profiles plus the symmetric affinity table.
type Catalog struct {
	profiles [numRoomTypes]Profile
	affinity [numRoomTypes][numRoomTypes]float64
}

// Lookup returns the profile for a room type.
func (c *Catalog) Lookup(t RoomType) (Profile, error) {
	if t < 0 || t >= numRoomTypes {
		return Profile{}, &UnknownRoomTypeError{Name: t.String()}
	}
	return c.profiles[t], nil
}

// Affinity returns the signed adjacency weight between two room types.
// Positive prefers adjacency, negative prefers separation.
func (c *Catalog) Affinity(a, b RoomType) float64 {
	return c.affinity[a][b]
}

// New builds a catalog from profiles and an affinity table, enforcing that
// every type has a profile and that the table is symmetric and complete.
// Pairs absent from the table default to zero (neutral).
func New(profiles []Profile, affinity map[[2]RoomType]float64) (*Catalog, error) {
	c := &Catalog{}
	seen := [numRoomTypes]bool{}
	for _, p := range profiles {
		if p.Type < 0 || p.Type >= numRoomTypes {
			return nil, &UnknownRoomTypeError{Name: p.Type.String()}
		}
		if p.MinWidth <= 0 || p.MinLength <= 0 || p.TargetArea <= 0 {
			return nil, fmt.Errorf("catalog: profile %s has non-positive sizing", p.Type)
		}
		if p.Aspect.Min <= 0 || p.Aspect.Max < p.Aspect.Min {
			return nil, fmt.Errorf("catalog: profile %s has invalid aspect range", p.Type)
		}
		c.profiles[p.Type] = p
		seen[p.Type] = true
	}
	for t, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("catalog: missing profile for %s", RoomType(t))
		}
	}

	for pair, w := range affinity {
		a, b := pair[0], pair[1]
		if a < 0 || a >= numRoomTypes || b < 0 || b >= numRoomTypes {
			return nil, &UnknownRoomTypeError{Name: fmt.Sprintf("%v", pair)}
		}
		if prev, dup := lookupPair(affinity, b, a); dup && a != b && prev != w {
			return nil, fmt.Errorf("catalog: affinity(%s,%s)=%.1f conflicts with affinity(%s,%s)=%.1f",
				a, b, w, b, a, prev)
		}
		c.affinity[a][b] = w
		c.affinity[b][a] = w
	}
	return c, nil
}

func lookupPair(m map[[2]RoomType]float64, a, b RoomType) (float64, bool) {
	w, ok := m[[2]RoomType{a, b}]
	return w, ok
}

// defaultProfiles carries the sizing standards: target areas and minimum
// dimensions per room type, plus nominal window widths.
var defaultProfiles = []Profile{
	{Type: Bedroom, TargetArea: 12, MinWidth: 3, MinLength: 3, Aspect: AspectRange{1.0, 1.4}, PlacementRank: 3, WindowBase: 1.2},
	{Type: Living, TargetArea: 20, MinWidth: 4, MinLength: 4, Aspect: AspectRange{1.0, 1.8}, PlacementRank: 1, WindowBase: 1.5},
	{Type: Kitchen, TargetArea: 10, MinWidth: 2.5, MinLength: 3, Aspect: AspectRange{1.0, 2.0}, PlacementRank: 2, WindowBase: 1.0},
	{Type: Bathroom, TargetArea: 6, MinWidth: 1.8, MinLength: 2.4, Aspect: AspectRange{1.0, 1.4}, PlacementRank: 4, WindowBase: 0.6},
	{Type: Office, TargetArea: 10, MinWidth: 2.5, MinLength: 3, Aspect: AspectRange{1.0, 1.5}, PlacementRank: 5, WindowBase: 1.0},
	{Type: Hallway, TargetArea: 6, MinWidth: 1.2, MinLength: 2, Aspect: AspectRange{1.5, 4.0}, PlacementRank: 6},
	{Type: Stairs, TargetArea: 4.5, MinWidth: 1, MinLength: 3, Aspect: AspectRange{2.0, 3.5}, PlacementRank: 0},
}

// defaultAffinity expresses adjacency preferences: bedrooms cluster and want
// a bathroom nearby, kitchens serve the living room, wet rooms stay away
// from the kitchen, hallways and stairs connect to everything.
var defaultAffinity = map[[2]RoomType]float64{
	{Bedroom, Bedroom}:  2,
	{Bedroom, Bathroom}: 3,
	{Bedroom, Living}:   -1,
	{Bedroom, Kitchen}:  -2,
	{Bedroom, Office}:   1,
	{Bedroom, Hallway}:  2,
	{Living, Kitchen}:   3,
	{Living, Hallway}:   2,
	{Living, Stairs}:    1,
	{Kitchen, Bathroom}: -3,
	{Kitchen, Hallway}:  1,
	{Bathroom, Hallway}: 2,
	{Office, Hallway}:   1,
	{Hallway, Stairs}:   2,
	{Hallway, Hallway}:  1,
}

// Default returns the built-in catalog. The literal tables are validated by
// the same path as user-supplied ones.
func Default() *Catalog {
	c, err := New(defaultProfiles, defaultAffinity)
	if err != nil {
		panic(err) // the literal tables are covered by tests
	}
	return c
}
