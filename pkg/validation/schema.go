package validation

import (
	"fmt"

	"github.com/Achu067/PLANEXA/pkg/catalog"
	"github.com/Achu067/PLANEXA/pkg/plan"
)

// ValidateRequest performs schema validation on a generation request after
// defaults have been applied. It checks structural correctness before any
// solving; analytical feasibility is the solver's job.
func ValidateRequest(r *plan.Request, cat *catalog.Catalog) *Report {
	rep := NewReport()

	validateFootprint(r, rep)
	validateFloors(r, rep)
	validateRooms(r, cat, rep)

	return rep
}

func validateFootprint(r *plan.Request, rep *Report) {
	if r.Width <= 0 {
		rep.AddError(Result{
			Level:       LevelSchema,
			Message:     "footprint width must be greater than 0",
			Field:       "width",
			ActualValue: r.Width,
			Expected:    "> 0",
		})
	}
	if r.Length <= 0 {
		rep.AddError(Result{
			Level:       LevelSchema,
			Message:     "footprint length must be greater than 0",
			Field:       "length",
			ActualValue: r.Length,
			Expected:    "> 0",
		})
	}
}

func validateFloors(r *plan.Request, rep *Report) {
	if r.Floors <= 0 {
		rep.AddError(Result{
			Level:       LevelSchema,
			Message:     "floors must be greater than 0",
			Field:       "floors",
			ActualValue: r.Floors,
			Expected:    ">= 1",
		})
	}
	if r.Floors > 50 {
		rep.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("floors = %d is unusually high for a residential plan", r.Floors),
			Field:       "floors",
			ActualValue: r.Floors,
		})
	}
}

func validateRooms(r *plan.Request, cat *catalog.Catalog, rep *Report) {
	if len(r.Rooms) == 0 {
		rep.AddError(Result{
			Level:    LevelSchema,
			Message:  "room list must not be empty",
			Field:    "rooms",
			Expected: "at least 1 room request",
		})
		return
	}

	total := 0
	for i, rr := range r.Rooms {
		if rr.Count <= 0 {
			rep.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("rooms[%d] (%s): count must be positive", i, rr.Type),
				Field:       fmt.Sprintf("rooms[%d].count", i),
				ActualValue: rr.Count,
				Expected:    "> 0",
			})
			continue
		}
		if _, err := catalog.Parse(rr.Type); err != nil {
			rep.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("rooms[%d]: %v", i, err),
				Field:       fmt.Sprintf("rooms[%d].type", i),
				ActualValue: rr.Type,
				Suggestions: knownTypes(),
			})
			continue
		}
		total += rr.Count
	}

	// Cheap feasibility screen: summed minimum areas vs total footprint.
	// The solver still owns the authoritative infeasibility decision.
	minTotal := 0.0
	for _, rr := range r.Rooms {
		rt, err := catalog.Parse(rr.Type)
		if err != nil || rr.Count <= 0 {
			continue
		}
		p, _ := cat.Lookup(rt)
		minTotal += p.MinArea() * float64(rr.Count)
	}
	capacity := r.Width * r.Length * float64(r.Floors)
	if minTotal > capacity {
		rep.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("requested rooms need at least %.1f m² but the building offers %.1f m²", minTotal, capacity),
			Field:       "rooms",
			ActualValue: minTotal,
			Expected:    fmt.Sprintf("<= %.1f", capacity),
		})
	}

	rep.AddInfo(Result{
		Level:   LevelSchema,
		Message: fmt.Sprintf("%d rooms requested across %d floors", total, r.Floors),
	})
}

func knownTypes() []string {
	types := catalog.All()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}
