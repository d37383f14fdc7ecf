// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staging

import (
	"slices"

	"github.com/MKhiriev/go-upload-stager/models"
)

// applyCapacity returns the buffer contents after inserting candidates into
// current under limit, and how many candidates did not fit.
//
//   - limit <= 0: every candidate is appended;
//   - limit == 1: the first candidate replaces whatever is staged;
//   - limit > 1: ErrUploadLimitReached when full, otherwise candidates are
//     appended up to the remaining room.
//
// current is never modified.
func applyCapacity(current, candidates []models.StagedFile, limit int) ([]models.StagedFile, int, error) {
	switch {
	case limit <= 0:
		return append(slices.Clone(current), candidates...), 0, nil

	case limit == 1:
		return []models.StagedFile{candidates[0]}, len(candidates) - 1, nil

	default:
		if len(current) >= limit {
			return nil, 0, ErrUploadLimitReached
		}

		accepted := candidates
		if room := limit - len(current); len(accepted) > room {
			accepted = accepted[:room]
		}

		next := make([]models.StagedFile, 0, len(current)+len(accepted))
		next = append(next, current...)
		next = append(next, accepted...)
		return next, len(candidates) - len(accepted), nil
	}
}
