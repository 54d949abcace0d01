package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Achu067/PLANEXA/pkg/building"
	"github.com/Achu067/PLANEXA/pkg/cache"
	"github.com/Achu067/PLANEXA/pkg/catalog"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/validation"
)

// loadRequest loads the project's plan.yaml and fills in defaults.
func loadRequest(projectPath string) (*plan.Request, error) {
	req, err := plan.LoadProject(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	req.ApplyDefaults()
	return req, nil
}

func runValidate(projectPath string) error {
	req, err := loadRequest(projectPath)
	if err != nil {
		return err
	}

	report := validation.ValidateRequest(req, catalog.Default())
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath, outPath, cacheDir string) error {
	req, err := loadRequest(projectPath)
	if err != nil {
		return err
	}

	store, err := openCache(cacheDir)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	key := cache.RequestKey("plan", req)

	data, hit, err := store.Get(ctx, key)
	if err == nil && hit {
		log.Debug("cache hit", "key", key)
	} else {
		doc, genErr := building.New(catalog.Default(), log.Default()).Generate(ctx, req)
		data, err = json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		if genErr != nil {
			// Emit the failure envelope, then fail the command.
			fmt.Println(string(data))
			return genErr
		}
		if err := store.Set(ctx, key, data, 0); err != nil {
			log.Warn("cache store failed", "err", err)
		}
	}

	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	var doc plan.Building
	if err := json.Unmarshal(data, &doc); err == nil {
		printBuildingSummary(&doc)
	}
	return nil
}

func openCache(dir string) (cache.Cache, error) {
	if dir == "" {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}
