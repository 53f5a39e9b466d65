// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
)

func TestFor_SameSliceHitsCache(t *testing.T) {
	resetMemo()
	items := testItems()

	first := For(items)
	second := For(items)

	assert.Same(t, first, second, "the same slice value must reuse the computed index")
}

func TestFor_EqualContentDifferentSliceMisses(t *testing.T) {
	resetMemo()
	items := testItems()
	clone := make([]catalog.Item, len(items))
	copy(clone, items)

	first := For(items)
	second := For(clone)

	assert.NotSame(t, first, second,
		"a rebuilt catalog slice must never return another slice's index")
	assert.Equal(t, first.Attributes(), second.Attributes())
}

func TestFor_SubsliceMisses(t *testing.T) {
	resetMemo()
	items := testItems()

	whole := For(items)
	sub := For(items[:2])

	assert.NotSame(t, whole, sub)
	assert.Equal(t, 2, sub.Len())
}

func TestFor_EmptySliceNotCached(t *testing.T) {
	resetMemo()
	a := For(nil)
	b := For([]catalog.Item{})

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, a.Attributes())
}
