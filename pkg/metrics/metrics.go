// Package metrics derives area and efficiency figures from solved floors.
package metrics

import (
	"github.com/Achu067/PLANEXA/pkg/geo"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/solver"
)

// ForFloor computes the per-floor numbers. Total area is the footprint,
// efficiency is the share of it covered by rooms, and whatever is left
// counts as circulation.
func ForFloor(footprint geo.Rect, rooms []solver.Room) plan.FloorMetrics {
	total := footprint.Area()
	roomArea := 0.0
	byCategory := make(map[string]float64, len(rooms))
	for _, r := range rooms {
		a := r.Rect.Area()
		roomArea += a
		byCategory[r.Type.String()] += a
	}

	efficiency := 0.0
	if total > 0 {
		efficiency = clampPercent(roomArea / total * 100)
	}
	circulation := total - roomArea
	if circulation < 0 {
		circulation = 0
	}
	if len(byCategory) == 0 {
		byCategory = nil
	}

	return plan.FloorMetrics{
		TotalArea:       round2(total),
		RoomCount:       len(rooms),
		Efficiency:      round2(efficiency),
		CirculationArea: round2(circulation),
		CategoryArea:    byCategory,
	}
}

// ForBuilding aggregates floor metrics into the building summary.
func ForBuilding(floors []plan.FloorPlan) plan.BuildingMetrics {
	m := plan.BuildingMetrics{Floors: len(floors)}
	sumEff := 0.0
	for _, f := range floors {
		m.TotalArea += f.Metrics.TotalArea
		m.TotalRooms += f.Metrics.RoomCount
		sumEff += f.Metrics.Efficiency
	}
	if len(floors) > 0 {
		m.AverageEfficiency = round2(sumEff / float64(len(floors)))
	}
	m.TotalArea = round2(m.TotalArea)
	return m
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	return geo.Snap(v, 0.01)
}
