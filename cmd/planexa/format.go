package main

import (
	"fmt"

	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				fmt.Printf("    -> %s = %v\n", w.Field, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printBuildingSummary(b *plan.Building) {
	if !b.Success {
		fmt.Printf("Generation failed: %s\n", b.Error)
		return
	}

	fmt.Printf("%-7s %7s %12s %14s %9s %9s\n",
		"Floor", "Rooms", "Efficiency", "Circulation", "Doors", "Windows")
	fmt.Printf("%-7s %7s %12s %14s %9s %9s\n",
		"-------", "-------", "------------", "--------------", "---------", "---------")
	for _, f := range b.Floors {
		fmt.Printf("%-7d %7d %11.1f%% %13.1fm2 %9d %9d\n",
			f.FloorNumber, f.Metrics.RoomCount, f.Metrics.Efficiency,
			f.Metrics.CirculationArea, len(f.Doors), len(f.Windows))
	}

	fmt.Println()
	fmt.Printf("Total: %d rooms over %d floors, %.1fm2, average efficiency %.1f%%\n",
		b.Metrics.TotalRooms, b.Metrics.Floors, b.Metrics.TotalArea, b.Metrics.AverageEfficiency)
}
