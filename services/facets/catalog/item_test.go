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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Forest Green", "forest-green"},
		{"  3+ Beds ", "3-beds"},
		{"RED", "red"},
		{"a--b", "a-b"},
		{"--", ""},
		{"", ""},
		{"Größe", "größe"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "color", NormalizeKey("  Color "))
	assert.Equal(t, "size", NormalizeKey("SIZE"))
	assert.Equal(t, "", NormalizeKey("   "))
}

func TestItem_Matches(t *testing.T) {
	it := Item{
		ID:    "p1",
		Attrs: map[string]string{"Color": "Forest Green", "size": "M"},
	}

	tests := []struct {
		name    string
		filters FilterSet
		want    bool
	}{
		{"empty filters match everything", FilterSet{}, true},
		{"single attribute", FilterSet{"color": "forest-green"}, true},
		{"two attributes", FilterSet{"color": "forest-green", "size": "m"}, true},
		{"wrong value", FilterSet{"color": "red"}, false},
		{"missing attribute", FilterSet{"material": "wool"}, false},
		{"superset of item attrs", FilterSet{"color": "forest-green", "size": "m", "fit": "slim"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, it.Matches(tt.filters))
		})
	}
}

func TestBagMatches_EmptyBag(t *testing.T) {
	// A missing attribute bag degrades to "no match", never an error.
	assert.False(t, BagMatches(nil, FilterSet{"color": "red"}))
	assert.True(t, BagMatches(nil, FilterSet{}))
}
