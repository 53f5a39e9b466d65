// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package combo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	combinationsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "facetgen",
		Subsystem: "combo",
		Name:      "combinations_emitted_total",
		Help:      "Total filter combinations emitted by the generator",
	})

	branchesPruned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "facetgen",
		Subsystem: "combo",
		Name:      "branches_pruned_total",
		Help:      "Total search branches discarded for having zero matches",
	})

	generateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "facetgen",
		Subsystem: "combo",
		Name:      "generate_duration_seconds",
		Help:      "Wall time of one combination generation pass",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})
)
