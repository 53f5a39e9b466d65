// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package pages

import (
	"github.com/AleutianAI/facetgen/services/facets/catalog"
	"github.com/AleutianAI/facetgen/services/facets/index"
)

// Page is one renderable page descriptor: a sorted combination plus the
// concrete ordered item list and the display metadata the template needs.
type Page struct {
	SortedCombination
	Items []catalog.Item `json:"items"`

	// DisplayLabels maps each active filter's value slug to its
	// human-readable form, resolved from the first occurrence of that
	// value in the catalog.
	DisplayLabels map[string]string `json:"display_labels,omitempty"`
}

// Build assembles the page for one sorted combination: items filtered
// through the shared match predicate, arranged by the sort key, plus
// display labels for the active filter values.
//
// The label lookup comes from the identity-memoized index, so repeated
// builds over the same catalog slice do not rescan it.
func Build(items []catalog.Item, sc SortedCombination) Page {
	ix := index.For(items)

	matched := make([]catalog.Item, 0, sc.Count)
	for _, pos := range ix.Matching(sc.Filters) {
		matched = append(matched, items[pos])
	}

	labels := make(map[string]string, len(sc.Filters))
	for _, slug := range sc.Filters {
		labels[slug] = ix.Label(slug)
	}

	return Page{
		SortedCombination: sc,
		Items:             OrderItems(matched, sc.Sort),
		DisplayLabels:     labels,
	}
}

// BuildAll assembles pages for every sorted combination against one
// catalog slice.
func BuildAll(items []catalog.Item, scs []SortedCombination) []Page {
	out := make([]Page, len(scs))
	for i, sc := range scs {
		out[i] = Build(items, sc)
	}
	return out
}
