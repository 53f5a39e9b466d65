// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package category

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	categoriesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "facetgen",
		Subsystem: "category",
		Name:      "generated_total",
		Help:      "Total category pipelines run",
	})

	pagesBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "facetgen",
		Subsystem: "category",
		Name:      "pages_built_total",
		Help:      "Total page descriptors built across categories",
	})

	categoryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "facetgen",
		Subsystem: "category",
		Name:      "generate_duration_seconds",
		Help:      "Wall time of one category's full pipeline",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
	})
)
