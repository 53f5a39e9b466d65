// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package snapshot serializes item attribute bags for embedding in
// rendered markup, and defines the DOM data-attribute contract the
// runtime mirror reads.
package snapshot

import (
	"encoding/json"
	"fmt"
	"html"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
)

// DOM attribute names shared between the generated markup and the
// runtime mirror. The mirror locates option elements and initial state
// through these.
const (
	DataFilterKey    = "data-filter-key"
	DataFilterValue  = "data-filter-value"
	DataRemoveFilter = "data-remove-filter"
	DataSortKey      = "data-sort-key"
)

// Item is the runtime-side view of one catalog entry: identity plus the
// raw attribute bag. Everything the mirror needs, nothing it doesn't.
type Item struct {
	ID    string            `json:"id"`
	Name  string            `json:"name,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// Encode serializes the items' identity and attribute bags as JSON,
// escaped for safe embedding in an HTML attribute value.
func Encode(items []catalog.Item) (string, error) {
	snap := make([]Item, len(items))
	for i, it := range items {
		snap[i] = Item{ID: it.ID, Name: it.Name, Attrs: it.Attrs}
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return html.EscapeString(string(raw)), nil
}

// Decode reverses Encode.
func Decode(s string) ([]Item, error) {
	var snap []Item
	if err := json.Unmarshal([]byte(html.UnescapeString(s)), &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}
