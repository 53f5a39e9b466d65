// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/facetgen/cmd/facetgen/config"
	"github.com/AleutianAI/facetgen/pkg/logging"
	"github.com/AleutianAI/facetgen/services/facets/catalog"
	"github.com/AleutianAI/facetgen/services/facets/category"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate page and redirect descriptors for a catalog",
	RunE:  runGenerateCommand,
}

func runGenerateCommand(cmd *cobra.Command, args []string) error {
	if err := config.Load(configPath); err != nil {
		return err
	}
	if outDir == "" {
		outDir = config.Global.Output.Dir
	}

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(config.Global.Logging.Level),
		LogDir:  config.Global.Logging.Dir,
		Service: "facetgen",
	})
	defer logger.Close()

	if err := generateOnce(cmd.Context(), logger); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}
	return watchAndRegenerate(cmd.Context(), logger)
}

// generateOnce loads the catalog, runs the per-category pipeline, and
// writes every descriptor plus the run manifest.
func generateOnce(ctx context.Context, logger *logging.Logger) error {
	runID := uuid.NewString()
	start := time.Now()
	log := logger.With("run_id", runID)

	items, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}
	log.Info("catalog loaded", "path", catalogPath, "items", len(items))

	results := category.GenerateAll(ctx, items, config.Global.BaseURLFor, log.Slog())

	written, err := writeResults(outDir, results)
	if err != nil {
		return err
	}

	manifest := runManifest{
		RunID:      runID,
		Catalog:    catalogPath,
		Items:      len(items),
		Categories: len(results),
		Files:      written,
		Duration:   time.Since(start).String(),
		Generated:  time.Now().UTC(),
	}
	if err := writeManifest(outDir, manifest); err != nil {
		return err
	}

	log.Info("generation complete",
		"categories", len(results),
		"files", written,
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

// watchAndRegenerate reruns generation whenever the catalog file
// changes. Editors often replace the file (rename+create), so the watch
// is on the file's directory.
func watchAndRegenerate(ctx context.Context, logger *logging.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	dir := dirOf(catalogPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("watching for catalog changes", "path", catalogPath)

	// Debounce: editors fire bursts of events per save.
	var pending *time.Timer
	trigger := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !eventTouches(event, catalogPath) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err.Error())
		case <-trigger:
			if err := generateOnce(ctx, logger); err != nil {
				logger.Error("regeneration failed", "error", err.Error())
			}
		}
	}
}

// loadCatalog parses the YAML item list the content-collection provider
// exports.
func loadCatalog(path string) ([]catalog.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var items []catalog.Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return items, nil
}
