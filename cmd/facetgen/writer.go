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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/facetgen/services/facets/category"
)

// writeConcurrency bounds parallel descriptor writes. The engine itself
// is synchronous; only this I/O fan-out is concurrent.
const writeConcurrency = 8

type runManifest struct {
	RunID      string    `json:"run_id"`
	Catalog    string    `json:"catalog"`
	Items      int       `json:"items"`
	Categories int       `json:"categories"`
	Files      int       `json:"files"`
	Duration   string    `json:"duration"`
	Generated  time.Time `json:"generated"`
}

// writeResults writes one page.json per generated page under its
// canonical path, plus redirects.json and summary.json per category.
// Returns the number of files written.
func writeResults(out string, results []category.Result) (int, error) {
	var written atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(writeConcurrency)

	for _, res := range results {
		res := res
		// Mirror the public URL space on disk so redirect sources and
		// page paths resolve the same way the deployed site does.
		catDir := filepath.Join(out, filepath.FromSlash(strings.TrimPrefix(res.BaseURL, "/")))

		for _, page := range res.Pages {
			page := page
			g.Go(func() error {
				dir := filepath.Join(catDir, filepath.FromSlash(page.Path))
				if err := writeJSON(filepath.Join(dir, "page.json"), page); err != nil {
					return err
				}
				written.Add(1)
				return nil
			})
		}
		g.Go(func() error {
			if err := writeJSON(filepath.Join(catDir, "redirects.json"), res.Redirects); err != nil {
				return err
			}
			written.Add(1)
			return nil
		})
		g.Go(func() error {
			if err := writeJSON(filepath.Join(catDir, "summary.json"), res.Summary); err != nil {
				return err
			}
			written.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(written.Load()), err
	}
	return int(written.Load()), nil
}

func writeManifest(out string, m runManifest) error {
	return writeJSON(filepath.Join(out, "manifest.json"), m)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func dirOf(path string) string {
	dir := filepath.Dir(path)
	if dir == "" {
		return "."
	}
	return dir
}

// eventTouches reports whether a watch event concerns the given file,
// for write, create, or rename (editor save patterns).
func eventTouches(event fsnotify.Event, path string) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	abs1, _ := filepath.Abs(event.Name)
	abs2, _ := filepath.Abs(path)
	return abs1 == abs2
}
