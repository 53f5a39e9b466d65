// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package pages expands combinations into sort variants and assembles
// renderable page descriptors.
package pages

import (
	"sort"
	"strings"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
)

// SortKey identifies one supported listing order.
type SortKey string

const (
	// SortDefault is catalog (featured) order. Its path suffix is empty.
	SortDefault SortKey = "default"

	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// SortOption pairs a sort key with its URL suffix and display label.
type SortOption struct {
	Key    SortKey `json:"key"`
	Suffix string  `json:"suffix"` // empty for the default sort
	Label  string  `json:"label"`
}

// Options is the fixed, ordered list of supported sorts. The default
// sort is always first and is the only one with an empty suffix.
var Options = []SortOption{
	{Key: SortDefault, Suffix: "", Label: "Featured"},
	{Key: SortPriceAsc, Suffix: "price-asc", Label: "Price: Low to High"},
	{Key: SortPriceDesc, Suffix: "price-desc", Label: "Price: High to Low"},
	{Key: SortNameAsc, Suffix: "name-asc", Label: "Name: A to Z"},
	{Key: SortNameDesc, Suffix: "name-desc", Label: "Name: Z to A"},
}

// OrderItems returns the items arranged by the given sort key.
//
// Sorting is stable, so equal elements keep catalog order. The default
// (and any unknown) key returns the catalog order unchanged. The input
// slice is never modified.
func OrderItems(items []catalog.Item, key SortKey) []catalog.Item {
	out := make([]catalog.Item, len(items))
	copy(out, items)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents < out[j].PriceCents })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents > out[j].PriceCents })
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) > strings.ToLower(out[j].Name)
		})
	}
	return out
}
