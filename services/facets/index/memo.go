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
	"reflect"
	"sync"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
)

// sliceKey identifies an item slice by its backing array pointer and
// length. Two slices share a key iff they are the same slice value, so a
// rebuilt catalog — even with identical contents — always misses.
type sliceKey struct {
	data uintptr
	len  int
}

func keyOf(items []catalog.Item) sliceKey {
	return sliceKey{
		data: reflect.ValueOf(items).Pointer(),
		len:  len(items),
	}
}

// memoTable is the identity-keyed side table for computed indexes.
//
// Each stored Index retains its source slice, which pins the backing
// array: the key pointer can never be recycled for a different catalog
// while the entry exists, so a hit is always the right index. Entries
// live for the process lifetime, which is bounded by the number of
// distinct catalogs one build touches. Population is single-writer per
// key under the lock; readers only ever observe finished entries.
type memoTable struct {
	mu sync.RWMutex
	m  map[sliceKey]*Index
}

var memo = memoTable{m: make(map[sliceKey]*Index)}

func (t *memoTable) get(items []catalog.Item) (*Index, bool) {
	if len(items) == 0 {
		// Empty slices are not cached; building one is free and their
		// backing pointers are not meaningful identities.
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	ix, ok := t.m[keyOf(items)]
	return ix, ok
}

func (t *memoTable) put(items []catalog.Item, ix *Index) {
	if len(items) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[keyOf(items)] = ix
}

// resetMemo clears the side table. Test hook only.
func resetMemo() {
	memo.mu.Lock()
	defer memo.mu.Unlock()
	memo.m = make(map[sliceKey]*Index)
}
