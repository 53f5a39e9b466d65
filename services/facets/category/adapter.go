// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package category scopes the facet pipeline to one category at a time,
// so each category gets its own independent facet space: one category's
// attributes never leak into another's paths or counts.
package category

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
	"github.com/AleutianAI/facetgen/services/facets/combo"
	"github.com/AleutianAI/facetgen/services/facets/index"
	"github.com/AleutianAI/facetgen/services/facets/pages"
	"github.com/AleutianAI/facetgen/services/facets/redirect"
)

var tracer = otel.Tracer("facetgen.facets.category")

// Group is one category's slice of the catalog, in catalog order.
type Group struct {
	Name  string
	Items []catalog.Item
}

// Summary is the listing-level facet overview for a category's own index
// page: the axes with their ordered values, the current selection state
// (empty at the listing level), and the overall count. It is the
// zero-filter view of the category reused as template input.
type Summary struct {
	Attributes []index.Attribute `json:"attributes"`
	Selected   catalog.FilterSet `json:"selected"`
	Total      int               `json:"total"`
}

// Result is everything the site generator consumes for one category.
type Result struct {
	Category  string              `json:"category"`
	BaseURL   string              `json:"base_url"`
	Pages     []pages.Page        `json:"pages"`
	Redirects []redirect.Redirect `json:"redirects"`
	Summary   Summary             `json:"summary"`
}

// Partition splits items by category membership, preserving catalog
// order within each group and first-seen order across groups. Items with
// an empty category land in their own "" group.
func Partition(items []catalog.Item) []Group {
	pos := make(map[string]int)
	var groups []Group
	for _, it := range items {
		name := catalog.NormalizeKey(it.Category)
		gi, ok := pos[name]
		if !ok {
			gi = len(groups)
			pos[name] = gi
			groups = append(groups, Group{Name: name})
		}
		groups[gi].Items = append(groups[gi].Items, it)
	}
	return groups
}

// Generate runs the full facet pipeline for one already-partitioned
// group: index → combinations → sort variants (+ sort-only pages) →
// built pages, plus redirects and the listing summary.
func Generate(ctx context.Context, g Group, baseURL string, logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	_, span := tracer.Start(ctx, "category.Generate")
	span.SetAttributes(
		attribute.String("category", g.Name),
		attribute.Int("items", len(g.Items)),
	)
	defer span.End()

	ix := index.For(g.Items)
	combos := combo.Generate(g.Items)

	scs := pages.ExpandSortVariants(combos)
	scs = append(scs, pages.SortOnlyPages(ix.Len(), len(ix.Attributes()) > 0)...)

	res := Result{
		Category:  g.Name,
		BaseURL:   baseURL,
		Pages:     pages.BuildAll(g.Items, scs),
		Redirects: redirect.Generate(g.Items, baseURL),
		Summary: Summary{
			Attributes: ix.Attributes(),
			Selected:   catalog.FilterSet{},
			Total:      ix.Len(),
		},
	}

	categoriesGenerated.Inc()
	pagesBuilt.Add(float64(len(res.Pages)))
	categoryDuration.Observe(time.Since(start).Seconds())

	logger.Info("category generated",
		slog.String("category", g.Name),
		slog.Int("items", len(g.Items)),
		slog.Int("combinations", len(combos)),
		slog.Int("pages", len(res.Pages)),
		slog.Int("redirects", len(res.Redirects)),
	)
	return res
}

// GenerateAll partitions the catalog and runs the pipeline per category,
// sequentially and independently. baseURLFor maps a category name to its
// search base URL (e.g. "/shoes/filter").
func GenerateAll(ctx context.Context, items []catalog.Item, baseURLFor func(category string) string, logger *slog.Logger) []Result {
	groups := Partition(items)
	out := make([]Result, 0, len(groups))
	for _, g := range groups {
		out = append(out, Generate(ctx, g, baseURLFor(g.Name), logger))
	}
	return out
}
