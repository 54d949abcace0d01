package catalog

// Style names the architectural style presets. Unknown styles fall back to
// modern.
type Style string

const (
	StyleModern      Style = "modern"
	StyleTraditional Style = "traditional"
	StyleMinimalist  Style = "minimalist"
	StyleOpenPlan    Style = "open_plan"
)

// ParseStyle resolves a style name, defaulting to modern.
func ParseStyle(name string) Style {
	switch Style(name) {
	case StyleModern, StyleTraditional, StyleMinimalist, StyleOpenPlan:
		return Style(name)
	default:
		return StyleModern
	}
}

// preferredAspect holds the width/length ratio each style prefers per room
// type. Values outside a profile's aspect range are clamped at lookup.
var preferredAspect = map[Style]map[RoomType]float64{
	StyleModern: {
		Bedroom: 1.2, Living: 1.5, Kitchen: 1.8, Bathroom: 1.3, Office: 1.4,
	},
	StyleTraditional: {
		Bedroom: 1.1, Living: 1.3, Kitchen: 1.5, Bathroom: 1.2, Office: 1.3,
	},
	StyleMinimalist: {
		Bedroom: 1.0, Living: 1.2, Kitchen: 1.4, Bathroom: 1.1, Office: 1.2,
	},
	StyleOpenPlan: {
		Bedroom: 1.3, Living: 1.7, Kitchen: 2.0, Bathroom: 1.4, Office: 1.5,
	},
}

// windowMultiplier scales the nominal window width per style.
var windowMultiplier = map[Style]float64{
	StyleModern:      1.2,
	StyleTraditional: 1.0,
	StyleMinimalist:  1.5,
	StyleOpenPlan:    1.3,
}

// Aspect returns the style's preferred width/length ratio for a room type,
// clamped to the profile's aspect range. Types without a style preference
// use the middle of their range.
func (c *Catalog) Aspect(t RoomType, s Style) float64 {
	p := c.profiles[t]
	if ratios, ok := preferredAspect[s]; ok {
		if r, ok := ratios[t]; ok {
			return p.Aspect.Clamp(r)
		}
	}
	return p.Aspect.Clamp((p.Aspect.Min + p.Aspect.Max) / 2)
}

// WindowWidth returns the style-adjusted window width for a room type.
// Zero means the type receives no windows.
func (c *Catalog) WindowWidth(t RoomType, s Style) float64 {
	base := c.profiles[t].WindowBase
	if base == 0 {
		return 0
	}
	m, ok := windowMultiplier[s]
	if !ok {
		m = 1.0
	}
	return base * m
}
