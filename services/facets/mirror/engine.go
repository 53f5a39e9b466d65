// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package mirror re-filters already-rendered items against the embedded
// snapshot, keeping displayed counts and option visibility consistent
// with what was statically generated.
//
// The engine only toggles visibility and rebuilds summary state — it
// never produces new pages. Its match predicate delegates to
// catalog.BagMatches, the same function the build-time generator counts
// with; that shared predicate is the binding equivalence requirement
// between build time and runtime.
//
// State machine: idle → filtering (on toggle) → idle. Every operation is
// synchronous and completes within one event-handler invocation; there is
// no suspension, retry, or cancellation.
package mirror

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/AleutianAI/facetgen/services/facets/catalog"
	"github.com/AleutianAI/facetgen/services/facets/snapshot"
)

// Option is one toggleable filter link: an attribute name plus a value
// slug.
type Option struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// Pill is one active-filter chip with its remove affordance payload
// (the attribute name the data-remove-filter element carries).
type Pill struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
	Label     string `json:"label"`
}

// ViewState is the full visibility outcome of one filter event: which
// items stay shown, which option links and groups are hidden, and the
// rebuilt active-filter summary.
type ViewState struct {
	VisibleIDs    []string `json:"visible_ids"`
	Count         int      `json:"count"`
	HiddenOptions []Option `json:"hidden_options,omitempty"`
	HiddenGroups  []string `json:"hidden_groups,omitempty"`
	Pills         []Pill   `json:"pills,omitempty"`
	ShowClearAll  bool     `json:"show_clear_all"`
	Summary       string   `json:"summary"`
}

// group is one attribute axis derived from the snapshot, values in
// first-seen order (sorted keys within an item, appearance order across
// items — the same rule the build-time index uses).
type group struct {
	name   string
	values []string
}

// Engine holds the decoded snapshot and the currently active filters.
//
// Not safe for concurrent use; the runtime it mirrors is a single UI
// thread handling one event at a time.
type Engine struct {
	items  []snapshot.Item
	groups []group
	labels map[string]string // value slug → first-seen raw value
	active catalog.FilterSet
	logger *slog.Logger
}

// New builds an engine over a decoded snapshot, seeded with the filters
// read from DOM state on load. initial may be nil (no active filters).
func New(items []snapshot.Item, initial catalog.FilterSet, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		items:  items,
		labels: make(map[string]string),
		active: catalog.FilterSet(initial).Normalize(),
		logger: logger,
	}
	e.deriveGroups()
	return e
}

// deriveGroups scans the snapshot once for attribute axes and display
// labels, mirroring the build-time index's first-seen ordering.
func (e *Engine) deriveGroups() {
	pos := make(map[string]int)
	seen := make(map[string]bool)
	for _, it := range e.items {
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
			gi, ok := pos[name]
			if !ok {
				gi = len(e.groups)
				pos[name] = gi
				e.groups = append(e.groups, group{name: name})
			}
			if key := name + "\x00" + slug; !seen[key] {
				seen[key] = true
				e.groups[gi].values = append(e.groups[gi].values, slug)
			}
			if _, ok := e.labels[slug]; !ok {
				e.labels[slug] = raw
			}
		}
	}
}

// ItemMatches reports whether one snapshot item matches the given
// filters. Exactly the build-time subset semantics.
func (e *Engine) ItemMatches(it snapshot.Item, filters catalog.FilterSet) bool {
	return catalog.BagMatches(it.Attrs, filters)
}

// Active returns a copy of the currently active filter set.
func (e *Engine) Active() catalog.FilterSet {
	return e.active.Clone()
}

// Toggle activates the option, or deactivates it when it is already the
// active value for its attribute, then recomputes the view.
//
// An option that does not exist in the snapshot is a no-op, mirroring
// "option not found in DOM": the current state is returned unchanged in
// meaning (it is still recomputed, which is idempotent).
func (e *Engine) Toggle(attribute, value string) ViewState {
	attribute = catalog.NormalizeKey(attribute)
	value = catalog.Slugify(value)

	if !e.hasOption(attribute, value) {
		e.logger.Debug("mirror: unknown option ignored",
			slog.String("attribute", attribute),
			slog.String("value", value),
		)
		return e.State()
	}

	if e.active[attribute] == value {
		delete(e.active, attribute)
	} else {
		e.active[attribute] = value
	}
	return e.State()
}

// Remove clears the active value for one attribute (a pill's remove
// affordance). Unknown attributes are a no-op.
func (e *Engine) Remove(attribute string) ViewState {
	delete(e.active, catalog.NormalizeKey(attribute))
	return e.State()
}

// ClearAll deactivates every filter.
func (e *Engine) ClearAll() ViewState {
	e.active = catalog.FilterSet{}
	return e.State()
}

// State recomputes the full view for the current filter set.
//
// Visibility rules: an option link is hidden when it is not already
// active and toggling it on would yield either zero matches or the same
// match count as the current selection (it narrows nothing). A whole
// attribute group is hidden only when every option within it is hidden.
func (e *Engine) State() ViewState {
	current := e.countMatches(e.active)

	vs := ViewState{
		VisibleIDs:   make([]string, 0, current),
		Count:        current,
		ShowClearAll: len(e.active) > 0,
	}
	for _, it := range e.items {
		if e.ItemMatches(it, e.active) {
			vs.VisibleIDs = append(vs.VisibleIDs, it.ID)
		}
	}

	for _, g := range e.groups {
		hiddenInGroup := 0
		for _, v := range g.values {
			if e.active[g.name] == v {
				continue
			}
			candidate := e.active.Clone()
			candidate[g.name] = v
			if n := e.countMatches(candidate); n == 0 || n == current {
				vs.HiddenOptions = append(vs.HiddenOptions, Option{Attribute: g.name, Value: v})
				hiddenInGroup++
			}
		}
		// An active option is always visible, so a group with an active
		// filter can never be fully hidden.
		if _, hasActive := e.active[g.name]; !hasActive && hiddenInGroup == len(g.values) {
			vs.HiddenGroups = append(vs.HiddenGroups, g.name)
		}
	}

	for _, name := range e.active.SortedKeys() {
		slug := e.active[name]
		vs.Pills = append(vs.Pills, Pill{
			Attribute: name,
			Value:     slug,
			Label:     e.label(slug),
		})
	}

	vs.Summary = e.summarize(vs)
	return vs
}

func (e *Engine) hasOption(attribute, value string) bool {
	for _, g := range e.groups {
		if g.name != attribute {
			continue
		}
		for _, v := range g.values {
			if v == value {
				return true
			}
		}
	}
	return false
}

func (e *Engine) countMatches(filters catalog.FilterSet) int {
	n := 0
	for _, it := range e.items {
		if catalog.BagMatches(it.Attrs, filters) {
			n++
		}
	}
	return n
}

func (e *Engine) label(slug string) string {
	if raw, ok := e.labels[slug]; ok {
		return raw
	}
	return slug
}

// summarize rebuilds the listing summary text, e.g.
// "3 items · color: Forest Green · size: M".
func (e *Engine) summarize(vs ViewState) string {
	noun := "items"
	if vs.Count == 1 {
		noun = "item"
	}
	parts := []string{fmt.Sprintf("%d %s", vs.Count, noun)}
	for _, p := range vs.Pills {
		parts = append(parts, p.Attribute+": "+p.Label)
	}
	return strings.Join(parts, " · ")
}
