// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

import (
	"sort"
	"strings"
)

// FilterSet maps attribute names to a single selected value slug.
//
// Keys are unique and the set is conceptually unordered; every
// serialization goes through a canonical ordering so the same set always
// yields the same path or cache key regardless of assembly order.
type FilterSet map[string]string

// Normalize returns a canonicalized copy: keys and values trimmed,
// lowercased, values slugified. Empty keys or values are dropped.
//
// The receiver is never modified.
func (fs FilterSet) Normalize() FilterSet {
	out := make(FilterSet, len(fs))
	for k, v := range fs {
		key := NormalizeKey(k)
		val := Slugify(v)
		if key == "" || val == "" {
			continue
		}
		out[key] = val
	}
	return out
}

// Clone returns a shallow copy of the set.
func (fs FilterSet) Clone() FilterSet {
	out := make(FilterSet, len(fs)+1)
	for k, v := range fs {
		out[k] = v
	}
	return out
}

// SortedKeys returns the attribute names in canonical (sorted) order.
func (fs FilterSet) SortedKeys() []string {
	keys := make([]string, 0, len(fs))
	for k := range fs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CanonicalPath renders the set as its canonical URL path:
// attribute/value segment pairs in sorted attribute-name order, joined
// by slashes, with no leading or trailing slash.
//
//	FilterSet{"size": "s", "color": "red"}.CanonicalPath() == "color/red/size/s"
//
// Two FilterSets with the same pairs always produce the same string, no
// matter how they were assembled.
func (fs FilterSet) CanonicalPath() string {
	if len(fs) == 0 {
		return ""
	}
	segs := make([]string, 0, len(fs)*2)
	for _, k := range fs.SortedKeys() {
		segs = append(segs, k, fs[k])
	}
	return strings.Join(segs, "/")
}

// CanonicalKey renders the set as a stable cache/dedup key:
// sorted "attr=value" pairs joined by "&".
func (fs FilterSet) CanonicalKey() string {
	if len(fs) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(fs))
	for _, k := range fs.SortedKeys() {
		pairs = append(pairs, k+"="+fs[k])
	}
	return strings.Join(pairs, "&")
}

// Equal reports whether two sets contain exactly the same pairs.
func (fs FilterSet) Equal(other FilterSet) bool {
	if len(fs) != len(other) {
		return false
	}
	for k, v := range fs {
		if other[k] != v {
			return false
		}
	}
	return true
}
