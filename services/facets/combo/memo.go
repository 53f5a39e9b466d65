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
	"reflect"
	"sync"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
)

type sliceKey struct {
	data uintptr
	len  int
}

// memoEntry pins the source slice so the key pointer cannot be recycled
// for a different catalog while the entry exists.
type memoEntry struct {
	items  []catalog.Item
	combos []Combination
}

// memoTable memoizes generation results by item-slice identity, same
// scheme as the index package's side table.
type memoTable struct {
	mu sync.RWMutex
	m  map[sliceKey]memoEntry
}

var memo = memoTable{m: make(map[sliceKey]memoEntry)}

func keyOf(items []catalog.Item) sliceKey {
	return sliceKey{
		data: reflect.ValueOf(items).Pointer(),
		len:  len(items),
	}
}

func (t *memoTable) get(items []catalog.Item) ([]Combination, bool) {
	if len(items) == 0 {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.m[keyOf(items)]
	return e.combos, ok
}

func (t *memoTable) put(items []catalog.Item, combos []Combination) {
	if len(items) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[keyOf(items)] = memoEntry{items: items, combos: combos}
}
