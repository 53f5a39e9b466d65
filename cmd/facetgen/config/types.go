// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import "strings"

type FacetgenConfig struct {
	// Search: how facet page URLs are rooted per category
	Search SearchConfig `yaml:"search"`

	// Output: where generated descriptors land
	Output OutputConfig `yaml:"output"`

	// Preview: local preview server settings
	Preview PreviewConfig `yaml:"preview"`

	// Logging: level and optional log directory
	Logging LoggingConfig `yaml:"logging"`
}

type SearchConfig struct {
	// BasePattern is the search base URL for a category; the literal
	// "{category}" is replaced with the category slug. e.g. "/{category}/filter"
	BasePattern string `yaml:"base_pattern" validate:"required,startswith=/"`
}

type OutputConfig struct {
	Dir string `yaml:"dir" validate:"required"` // e.g. "dist"
}

type PreviewConfig struct {
	Addr string `yaml:"addr" validate:"required,contains=:"` // e.g. ":8380"
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Dir   string `yaml:"dir,omitempty"`
}

// BaseURLFor resolves the search base URL for one category. Items with
// no category collapse the "/{category}" segment entirely.
func (c FacetgenConfig) BaseURLFor(category string) string {
	if category == "" {
		return strings.ReplaceAll(c.Search.BasePattern, "/{category}", "")
	}
	return strings.ReplaceAll(c.Search.BasePattern, "{category}", category)
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() FacetgenConfig {
	return FacetgenConfig{
		Search:  SearchConfig{BasePattern: "/{category}/filter"},
		Output:  OutputConfig{Dir: "dist"},
		Preview: PreviewConfig{Addr: ":8380"},
		Logging: LoggingConfig{Level: "info"},
	}
}
