package catalog

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultCatalogBuilds(t *testing.T) {
	c := Default()
	for _, rt := range All() {
		p, err := c.Lookup(rt)
		if err != nil {
			t.Fatalf("lookup %s: %v", rt, err)
		}
		if p.MinArea() <= 0 {
			t.Errorf("%s has non-positive min area", rt)
		}
		if p.TargetArea < p.MinArea() {
			t.Errorf("%s target area %.1f below min area %.1f", rt, p.TargetArea, p.MinArea())
		}
	}
}

func TestAffinitySymmetric(t *testing.T) {
	c := Default()
	for _, a := range All() {
		for _, b := range All() {
			if c.Affinity(a, b) != c.Affinity(b, a) {
				t.Errorf("affinity(%s,%s)=%f but affinity(%s,%s)=%f",
					a, b, c.Affinity(a, b), b, a, c.Affinity(b, a))
			}
		}
	}
}

func TestNewRejectsAsymmetry(t *testing.T) {
	aff := map[[2]RoomType]float64{
		{Bedroom, Kitchen}: -2,
		{Kitchen, Bedroom}: 5,
	}
	if _, err := New(defaultProfiles, aff); err == nil {
		t.Error("expected asymmetric table to be rejected")
	}
}

func TestNewRejectsMissingProfile(t *testing.T) {
	if _, err := New(defaultProfiles[:3], nil); err == nil {
		t.Error("expected incomplete profile set to be rejected")
	}
}

func TestParse(t *testing.T) {
	rt, err := Parse("bedroom")
	if err != nil || rt != Bedroom {
		t.Errorf("Parse(bedroom) = %v, %v", rt, err)
	}
	_, err = Parse("ballroom")
	var unknown *UnknownRoomTypeError
	if !errors.As(err, &unknown) {
		t.Errorf("expected UnknownRoomTypeError, got %v", err)
	}
}

func TestBedroomMinArea(t *testing.T) {
	c := Default()
	p, _ := c.Lookup(Bedroom)
	if math.Abs(p.MinArea()-9) > 1e-9 {
		t.Errorf("bedroom min area = %f, expected 9", p.MinArea())
	}
}

func TestAspectClampedToProfileRange(t *testing.T) {
	c := Default()
	// open_plan prefers 2.0 for kitchens, which is the range max.
	if got := c.Aspect(Kitchen, StyleOpenPlan); got > 2.0 {
		t.Errorf("kitchen aspect %f exceeds range max", got)
	}
	// bathroom open_plan preference 1.4 equals its max.
	if got := c.Aspect(Bathroom, StyleOpenPlan); got > 1.4 {
		t.Errorf("bathroom aspect %f exceeds range max", got)
	}
}

func TestWindowWidth(t *testing.T) {
	c := Default()
	if w := c.WindowWidth(Stairs, StyleModern); w != 0 {
		t.Errorf("stairs must not get windows, got %f", w)
	}
	if w := c.WindowWidth(Bedroom, StyleModern); math.Abs(w-1.44) > 1e-9 {
		t.Errorf("modern bedroom window = %f, expected 1.44", w)
	}
}

func TestParseStyleFallback(t *testing.T) {
	if s := ParseStyle("brutalist"); s != StyleModern {
		t.Errorf("unknown style should fall back to modern, got %s", s)
	}
}
