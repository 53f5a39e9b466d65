// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package redirect derives redirect rules for facet paths a user can
// reach but that have no generated page.
//
// The only structurally reachable dead ends are "bare attribute" paths:
// the user clicked an attribute-group link (e.g. .../color/) without yet
// choosing a value. Each such path redirects one hop to the nearest valid
// listing anchor. Paths with a full attribute/value pair either have a
// page or were pruned for matching nothing, and pruned value links are
// never rendered, so no other redirects are needed.
package redirect

import (
	"github.com/AleutianAI/facetgen/services/facets/catalog"
	"github.com/AleutianAI/facetgen/services/facets/combo"
	"github.com/AleutianAI/facetgen/services/facets/index"
)

// Redirect maps one structurally-plausible-but-invalid path to the path
// of a valid page (or the unfiltered listing).
type Redirect struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Generate derives every bare-attribute redirect for one catalog.
//
// For each attribute name with no value, the path off the listing root
// redirects to the unfiltered listing anchor. For each valid combination
// and each attribute not already set in it, the bare-attribute
// continuation path redirects to that combination's own anchor.
//
// Properties: every target carries a "#content" anchor and every source
// ends in a bare attribute segment, so no target is itself a source
// (single hop), and no source collides with a generated page path.
// With no filterable attributes the result is empty, never an error.
func Generate(items []catalog.Item, searchBaseURL string) []Redirect {
	ix := index.For(items)
	attrs := ix.Attributes()
	if len(attrs) == 0 {
		return []Redirect{}
	}

	combos := combo.Generate(items)
	out := make([]Redirect, 0, len(attrs)*(len(combos)+1))

	for _, a := range attrs {
		out = append(out, Redirect{
			From: searchBaseURL + "/" + a.Name + "/",
			To:   searchBaseURL + "/#content",
		})
	}

	for _, c := range combos {
		for _, a := range attrs {
			if _, set := c.Filters[a.Name]; set {
				continue
			}
			out = append(out, Redirect{
				From: searchBaseURL + "/" + c.Path + "/" + a.Name + "/",
				To:   searchBaseURL + "/" + c.Path + "/#content",
			})
		}
	}
	return out
}
