// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package combo enumerates every non-empty filter combination with at
// least one matching item.
package combo

import (
	"time"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
	"github.com/AleutianAI/facetgen/services/facets/index"
)

// Combination is one reachable filter set with its canonical path and
// exact match count.
//
// Invariant: Count > 0. The generator prunes empty branches before they
// are emitted; a zero-count Combination in the output is a defect in the
// counting logic, not a condition callers should handle.
type Combination struct {
	Filters catalog.FilterSet `json:"filters"`
	Path    string            `json:"path"`
	Count   int               `json:"count"`
}

// Generate enumerates every filter set (of any size >= 1) that matches at
// least one item, each exactly once, with its canonical path and count.
//
// Description:
//
//	Attributes form an ordered list of axes (index first-seen order). A
//	partial filter set is extended only with axes strictly after the last
//	axis used, trying each value of each later axis. Never revisiting an
//	earlier axis is what guarantees each distinct filter set appears
//	exactly once — this is not a powerset scan with dedup, it is a
//	canonical enumeration.
//
//	A branch whose count drops to zero is discarded without recursing:
//	matching is a strict AND of equality constraints, so adding an axis
//	can only shrink the match set. If OR-semantics or range attributes
//	are ever introduced, this prune must be re-validated.
//
// Edge cases:
//
//	Zero attributes (or zero items) produce an empty, non-nil result: no
//	combinations exist beyond the unfiltered listing.
//
// Results are memoized by item-slice identity; repeated calls with the
// same slice value return the cached slice. Callers must not modify it.
func Generate(items []catalog.Item) []Combination {
	if combos, ok := memo.get(items); ok {
		return combos
	}

	start := time.Now()
	ix := index.For(items)
	attrs := ix.Attributes()

	out := []Combination{}
	var extend func(partial catalog.FilterSet, nextAxis int)
	extend = func(partial catalog.FilterSet, nextAxis int) {
		for axis := nextAxis; axis < len(attrs); axis++ {
			for _, value := range attrs[axis].Values {
				candidate := partial.Clone()
				candidate[attrs[axis].Name] = value

				count := ix.Count(candidate)
				if count == 0 {
					branchesPruned.Inc()
					continue
				}

				out = append(out, Combination{
					Filters: candidate,
					Path:    candidate.CanonicalPath(),
					Count:   count,
				})
				extend(candidate, axis+1)
			}
		}
	}
	extend(catalog.FilterSet{}, 0)

	combinationsEmitted.Add(float64(len(out)))
	generateDuration.Observe(time.Since(start).Seconds())

	memo.put(items, out)
	return out
}

// Verify re-counts every combination against the shared match predicate
// and returns ErrZeroCountCombination if any count is zero or stale.
//
// This is a defect detector for tests and debug builds, not a recovery
// path: the generator's pruning rule makes a zero-count combination
// impossible unless the counting logic itself is broken.
func Verify(items []catalog.Item, combos []Combination) error {
	for _, c := range combos {
		n := 0
		for _, it := range items {
			if it.Matches(c.Filters) {
				n++
			}
		}
		if n == 0 {
			return ErrZeroCountCombination
		}
		if n != c.Count {
			return ErrCountMismatch
		}
	}
	return nil
}
