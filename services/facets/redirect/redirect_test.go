// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package redirect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
	"github.com/AleutianAI/facetgen/services/facets/combo"
	"github.com/AleutianAI/facetgen/services/facets/pages"
)

const base = "/shop/filter"

func redirectItems() []catalog.Item {
	return []catalog.Item{
		{ID: "p1", Attrs: map[string]string{"color": "red", "size": "s"}},
		{ID: "p2", Attrs: map[string]string{"color": "red", "size": "m"}},
		{ID: "p3", Attrs: map[string]string{"color": "blue", "size": "s"}},
	}
}

func TestGenerate_BareAttributeRedirects(t *testing.T) {
	rules := Generate(redirectItems(), base)

	byFrom := make(map[string]string, len(rules))
	for _, r := range rules {
		byFrom[r.From] = r.To
	}

	// Root-level bare attributes go to the unfiltered listing.
	assert.Equal(t, base+"/#content", byFrom[base+"/color/"])
	assert.Equal(t, base+"/#content", byFrom[base+"/size/"])

	// Continuations go to the combination's own anchor.
	assert.Equal(t, base+"/color/red/#content", byFrom[base+"/color/red/size/"])
	assert.Equal(t, base+"/size/s/#content", byFrom[base+"/size/s/color/"])
}

func TestGenerate_CoverageAndSingleHop(t *testing.T) {
	items := redirectItems()
	rules := Generate(items, base)

	combos := combo.Generate(items)
	attrs := 2 // color, size

	// One root rule per attribute, plus one rule per (combination,
	// attribute-not-set) pair.
	wantRules := attrs
	for _, c := range combos {
		wantRules += attrs - len(c.Filters)
	}
	require.Len(t, rules, wantRules)

	sources := make(map[string]bool, len(rules))
	for _, r := range rules {
		assert.False(t, sources[r.From], "duplicate redirect source %s", r.From)
		sources[r.From] = true
	}
	for _, r := range rules {
		assert.False(t, sources[r.To], "redirect target %s is itself a source", r.To)
	}
}

func TestGenerate_NeverShadowsAPage(t *testing.T) {
	items := redirectItems()
	rules := Generate(items, base)

	pagePaths := make(map[string]bool)
	for _, sc := range pages.ExpandSortVariants(combo.Generate(items)) {
		pagePaths[base+"/"+sc.Path] = true
	}

	for _, r := range rules {
		assert.False(t, pagePaths[strings.TrimSuffix(r.From, "/")],
			"redirect source %s collides with a generated page", r.From)
	}
}

func TestGenerate_NoAttributes(t *testing.T) {
	items := []catalog.Item{{ID: "p1"}, {ID: "p2"}}
	rules := Generate(items, base)

	require.NotNil(t, rules)
	assert.Empty(t, rules)
}
