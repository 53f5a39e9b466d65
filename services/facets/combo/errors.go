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

import "errors"

var (
	// ErrZeroCountCombination indicates a combination was produced with no
	// matching items. The pruning rule makes this unreachable; seeing it
	// means the counting logic is broken.
	ErrZeroCountCombination = errors.New("combination with zero matching items")

	// ErrCountMismatch indicates a combination's stored count disagrees
	// with a direct re-count against the match predicate.
	ErrCountMismatch = errors.New("combination count does not match re-count")
)
