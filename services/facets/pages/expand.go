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
	"github.com/AleutianAI/facetgen/services/facets/combo"
)

// SortedCombination is a combination multiplied by one sort option. Path
// is the base combination path plus the sort suffix segment (no suffix
// for the default sort).
type SortedCombination struct {
	combo.Combination
	Sort SortKey `json:"sort"`
}

// ExpandSortVariants multiplies every combination by every sort option:
// the result has exactly len(combos) * len(Options) entries, in
// (combination, option) order.
func ExpandSortVariants(combos []combo.Combination) []SortedCombination {
	out := make([]SortedCombination, 0, len(combos)*len(Options))
	for _, c := range combos {
		for _, opt := range Options {
			sc := SortedCombination{Combination: c, Sort: opt.Key}
			sc.Path = joinPath(c.Path, opt.Suffix)
			out = append(out, sc)
		}
	}
	return out
}

// SortOnlyPages produces one page per non-default sort option with an
// empty filter set and the overall item count, covering a user sorting
// the unfiltered listing.
//
// Facet UI and sort UI appear together: a listing with no filterable
// attributes gets no sort-only pages, so hasAttributes gates the whole
// result.
func SortOnlyPages(totalCount int, hasAttributes bool) []SortedCombination {
	if !hasAttributes {
		return nil
	}
	out := make([]SortedCombination, 0, len(Options)-1)
	for _, opt := range Options {
		if opt.Key == SortDefault {
			continue
		}
		out = append(out, SortedCombination{
			Combination: combo.Combination{
				Filters: catalog.FilterSet{},
				Path:    opt.Suffix,
				Count:   totalCount,
			},
			Sort: opt.Key,
		})
	}
	return out
}

// joinPath appends a sort suffix segment to a base combination path,
// tolerating either part being empty.
func joinPath(base, suffix string) string {
	switch {
	case suffix == "":
		return base
	case base == "":
		return suffix
	default:
		return base + "/" + suffix
	}
}
