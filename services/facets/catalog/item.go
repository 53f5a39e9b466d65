// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package catalog defines the item model and the single attribute-matching
// predicate shared by the build-time generator and the runtime mirror.
//
// Items are opaque records with a flat attribute bag. Any key present in the
// bag is a filterable facet by convention; there is no registration step.
// Items are never mutated by the facet engine.
package catalog

import (
	"strings"
	"unicode"
)

// Item is one catalog entry (a product or a property listing).
//
// Attrs holds raw display values keyed by attribute name, e.g.
// {"color": "Forest Green", "size": "M"}. Matching and path construction
// operate on the slugified form of both keys and values; the raw value is
// retained for display labels.
//
// Items MUST NOT be mutated after being handed to the engine. The engine's
// caches key on slice identity and assume the contents are frozen.
type Item struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Slug       string            `json:"slug" yaml:"slug"`
	Category   string            `json:"category,omitempty" yaml:"category,omitempty"`
	PriceCents int               `json:"price_cents,omitempty" yaml:"price_cents,omitempty"`
	Attrs      map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Matches reports whether the item's attributes are a superset of the
// given filter set.
//
// This is the binding predicate for the whole engine: the combination
// generator, the page builder, and the runtime mirror all answer
// "does this item match these filters?" through this one function, so
// build output and runtime refinement can never disagree.
//
// A missing or empty attribute simply fails to match any value of that
// attribute; malformed catalog data is never an error here.
func (it Item) Matches(filters FilterSet) bool {
	return BagMatches(it.Attrs, filters)
}

// BagMatches reports whether an attribute bag is a superset of filters.
//
// Filter keys and values are expected in normalized (slug) form, as
// produced by FilterSet.Normalize. Bag keys and values are normalized on
// the fly, so callers can pass raw catalog data directly.
func BagMatches(attrs map[string]string, filters FilterSet) bool {
	if len(filters) == 0 {
		return true
	}
	if len(attrs) == 0 {
		return false
	}
	for name, want := range filters {
		found := false
		for key, raw := range attrs {
			if NormalizeKey(key) == name && Slugify(raw) == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// NormalizeKey canonicalizes an attribute name: trimmed and lowercased.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Slugify converts a raw attribute value into its URL slug form.
//
// Rules: trim, lowercase, collapse runs of non-alphanumeric characters
// into a single hyphen, and strip leading/trailing hyphens.
//
//	Slugify("Forest Green") == "forest-green"
//	Slugify("  3+ Beds ")   == "3-beds"
func Slugify(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(raw))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
