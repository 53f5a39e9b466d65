// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package combo

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
)

func workedExample() []catalog.Item {
	return []catalog.Item{
		{ID: "p1", Attrs: map[string]string{"color": "red", "size": "s"}},
		{ID: "p2", Attrs: map[string]string{"color": "red", "size": "m"}},
		{ID: "p3", Attrs: map[string]string{"color": "blue", "size": "s"}},
	}
}

// countByPredicate is the independent oracle: a direct scan with the
// shared match predicate.
func countByPredicate(items []catalog.Item, fs catalog.FilterSet) int {
	n := 0
	for _, it := range items {
		if it.Matches(fs) {
			n++
		}
	}
	return n
}

func TestGenerate_WorkedExample(t *testing.T) {
	items := workedExample()
	combos := Generate(items)

	got := make(map[string]int, len(combos))
	for _, c := range combos {
		got[c.Filters.CanonicalKey()] = c.Count
	}

	want := map[string]int{
		"color=red":         2,
		"color=blue":        1,
		"size=s":            2,
		"size=m":            1,
		"color=red&size=s":  1,
		"color=red&size=m":  1,
		"color=blue&size=s": 1,
	}
	assert.Equal(t, want, got)

	// The empty intersection must have been pruned, not emitted.
	assert.NotContains(t, got, "color=blue&size=m")
}

func TestGenerate_PathsAreCanonical(t *testing.T) {
	for _, c := range Generate(workedExample()) {
		assert.Equal(t, c.Filters.CanonicalPath(), c.Path)
	}
}

func TestGenerate_NoDuplicateFilterSets(t *testing.T) {
	combos := Generate(workedExample())

	seen := make(map[string]bool, len(combos))
	for _, c := range combos {
		key := c.Filters.CanonicalKey()
		assert.False(t, seen[key], "duplicate combination %s", key)
		seen[key] = true
	}
}

func TestGenerate_NoAttributes(t *testing.T) {
	items := []catalog.Item{{ID: "p1"}, {ID: "p2"}}
	combos := Generate(items)

	require.NotNil(t, combos)
	assert.Empty(t, combos, "no attributes means no combinations")
}

func TestGenerate_EmptyCatalog(t *testing.T) {
	assert.Empty(t, Generate(nil))
}

func TestGenerate_MemoizedByIdentity(t *testing.T) {
	items := workedExample()

	first := Generate(items)
	second := Generate(items)
	require.NotEmpty(t, first)
	assert.Same(t, &first[0], &second[0], "same slice value must return the cached result")

	clone := make([]catalog.Item, len(items))
	copy(clone, items)
	third := Generate(clone)
	assert.Equal(t, first, third, "an equal-content copy recomputes but must agree")
}

// TestGenerate_RandomizedAgainstBruteForce checks completeness and
// soundness: every emitted combination has the exact predicate count,
// and every non-empty reachable filter set is emitted.
func TestGenerate_RandomizedAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	attrNames := []string{"color", "size", "material", "fit"}
	values := map[string][]string{
		"color":    {"red", "blue", "green"},
		"size":     {"s", "m", "l"},
		"material": {"wool", "cotton"},
		"fit":      {"slim", "relaxed"},
	}

	for trial := 0; trial < 25; trial++ {
		items := make([]catalog.Item, rng.Intn(12)+1)
		for i := range items {
			attrs := make(map[string]string)
			for _, name := range attrNames {
				if rng.Intn(3) == 0 {
					continue // attribute absent on this item
				}
				vals := values[name]
				attrs[name] = vals[rng.Intn(len(vals))]
			}
			items[i] = catalog.Item{ID: fmt.Sprintf("p%d", i), Attrs: attrs}
		}

		combos := Generate(items)

		// Soundness: emitted counts are exact and positive.
		emitted := make(map[string]int, len(combos))
		for _, c := range combos {
			require.Positive(t, c.Count, "trial %d: zero-count combination %s", trial, c.Path)
			require.Equal(t, countByPredicate(items, c.Filters), c.Count,
				"trial %d: wrong count for %s", trial, c.Path)
			emitted[c.Filters.CanonicalKey()] = c.Count
		}
		require.Len(t, emitted, len(combos), "trial %d: duplicate filter sets", trial)

		// Completeness: every filter set reachable by intersecting the
		// attribute bags of actual items must have been emitted.
		for _, it := range items {
			fs := catalog.FilterSet{}
			for k, v := range it.Attrs {
				fs[catalog.NormalizeKey(k)] = catalog.Slugify(v)
			}
			for key := range subsetKeys(fs) {
				if key == "" {
					continue
				}
				require.Contains(t, emitted, key,
					"trial %d: reachable combination missing", trial)
			}
		}

		require.NoError(t, Verify(items, combos))
	}
}

// subsetKeys enumerates the canonical keys of all subsets of fs.
func subsetKeys(fs catalog.FilterSet) map[string]bool {
	keys := fs.SortedKeys()
	out := make(map[string]bool)
	for mask := 0; mask < 1<<len(keys); mask++ {
		sub := catalog.FilterSet{}
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				sub[k] = fs[k]
			}
		}
		out[sub.CanonicalKey()] = true
	}
	return out
}

func TestVerify_DetectsCorruption(t *testing.T) {
	items := workedExample()
	combos := Generate(items)

	corrupted := make([]Combination, len(combos))
	copy(corrupted, combos)
	corrupted[0].Count++
	assert.ErrorIs(t, Verify(items, corrupted), ErrCountMismatch)

	impossible := []Combination{{
		Filters: catalog.FilterSet{"color": "blue", "size": "m"},
		Path:    "color/blue/size/m",
		Count:   1,
	}}
	assert.ErrorIs(t, Verify(items, impossible), ErrZeroCountCombination)
}
