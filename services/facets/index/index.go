// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package index builds the per-catalog attribute index and item lookup.
//
// The Index is a read-only structure computed in one scan over an item
// slice: the ordered list of attributes and their distinct value slugs
// (first-seen order), posting lists mapping attr=value to item positions,
// and a first-occurrence lookup from value slug to raw display label.
//
// Indexes are memoized by slice identity (underlying array pointer plus
// length): repeated calls with the same slice value reuse the computed
// index, while a new slice — even one with equal contents — always misses.
package index

import (
	"sort"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
)

// Attribute is one facet axis: a normalized name and its distinct value
// slugs in order of first appearance among items.
//
// Order only affects combination enumeration order, never correctness.
type Attribute struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type postingKey struct {
	attr  string
	value string
}

// Index provides O(1)-keyed access to the facet structure of one item
// slice.
//
// Thread Safety: all state is read-only after construction; an Index is
// safe for concurrent use without locking.
//
// Ownership: the Index retains the source slice (to pin its backing array
// for the identity cache) but never mutates it.
type Index struct {
	items []catalog.Item

	// attrs in first-seen order; attrPos for O(1) axis lookup.
	attrs   []Attribute
	attrPos map[string]int

	// postings: attr=value → ascending item positions.
	postings map[postingKey][]int

	// labels: value slug → first-seen raw display value.
	labels map[string]string
}

// For returns the Index for the given item slice, computing it on first
// use and reusing it on every later call with the same slice value.
func For(items []catalog.Item) *Index {
	if ix, ok := memo.get(items); ok {
		return ix
	}
	ix := build(items)
	memo.put(items, ix)
	return ix
}

// build scans the items once and assembles every lookup structure.
//
// Within a single item the attribute bag is a Go map, so keys are visited
// in sorted name order to keep first-seen ordering deterministic across
// runs. Across items, order of appearance wins.
func build(items []catalog.Item) *Index {
	ix := &Index{
		items:    items,
		attrPos:  make(map[string]int),
		postings: make(map[postingKey][]int),
		labels:   make(map[string]string),
	}

	seenValue := make(map[postingKey]bool)
	for pos, it := range items {
		if len(it.Attrs) == 0 {
			continue
		}
		keys := make([]string, 0, len(it.Attrs))
		for k := range it.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, rawKey := range keys {
			name := catalog.NormalizeKey(rawKey)
			raw := it.Attrs[rawKey]
			slug := catalog.Slugify(raw)
			if name == "" || slug == "" {
				continue
			}

			ai, ok := ix.attrPos[name]
			if !ok {
				ai = len(ix.attrs)
				ix.attrPos[name] = ai
				ix.attrs = append(ix.attrs, Attribute{Name: name})
			}

			pk := postingKey{attr: name, value: slug}
			if !seenValue[pk] {
				seenValue[pk] = true
				ix.attrs[ai].Values = append(ix.attrs[ai].Values, slug)
			}
			// Two raw keys in one item can normalize to the same pair;
			// an item appears at most once per posting list.
			if list := ix.postings[pk]; len(list) == 0 || list[len(list)-1] != pos {
				ix.postings[pk] = append(ix.postings[pk], pos)
			}

			if _, ok := ix.labels[slug]; !ok {
				ix.labels[slug] = raw
			}
		}
	}
	return ix
}

// Attributes returns the facet axes in first-seen order.
//
// The returned slice is shared; callers must not modify it.
func (ix *Index) Attributes() []Attribute {
	return ix.attrs
}

// AttributeNames returns just the axis names, in first-seen order.
func (ix *Index) AttributeNames() []string {
	names := make([]string, len(ix.attrs))
	for i, a := range ix.attrs {
		names[i] = a.Name
	}
	return names
}

// Len returns the number of items the index was built over.
func (ix *Index) Len() int {
	return len(ix.items)
}

// Items returns the source slice the index was built over.
func (ix *Index) Items() []catalog.Item {
	return ix.items
}

// Label resolves a value slug to its first-seen raw display value.
// Unknown slugs resolve to themselves.
func (ix *Index) Label(slug string) string {
	if raw, ok := ix.labels[slug]; ok {
		return raw
	}
	return slug
}

// Count returns the number of items whose attributes are a superset of
// the filter set.
//
// Cost is proportional to the posting list of the most selective
// constraint, not to the total item count: the shortest list is walked
// and each candidate is binary-searched in the remaining lists.
//
// An attribute or value never seen in the catalog yields zero.
func (ix *Index) Count(filters catalog.FilterSet) int {
	if len(filters) == 0 {
		return len(ix.items)
	}
	return len(ix.Matching(filters))
}

// Matching returns the positions (in catalog order) of items whose
// attributes are a superset of the filter set.
func (ix *Index) Matching(filters catalog.FilterSet) []int {
	if len(filters) == 0 {
		all := make([]int, len(ix.items))
		for i := range all {
			all[i] = i
		}
		return all
	}

	lists := make([][]int, 0, len(filters))
	for name, value := range filters {
		list, ok := ix.postings[postingKey{attr: name, value: value}]
		if !ok {
			return nil
		}
		lists = append(lists, list)
	}

	// Walk the shortest list; probe the rest by binary search.
	sort.Slice(lists, func(i, j int) bool { return len(lists[i]) < len(lists[j]) })

	out := make([]int, 0, len(lists[0]))
	for _, pos := range lists[0] {
		ok := true
		for _, other := range lists[1:] {
			if !containsSorted(other, pos) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, pos)
		}
	}
	return out
}

// containsSorted reports whether a sorted int slice contains v.
func containsSorted(s []int, v int) bool {
	i := sort.SearchInts(s, v)
	return i < len(s) && s[i] == v
}
