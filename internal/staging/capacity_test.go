// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staging

import (
	"testing"

	"github.com/MKhiriev/go-upload-stager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staged(names ...string) []models.StagedFile {
	out := make([]models.StagedFile, 0, len(names))
	for _, n := range names {
		out = append(out, models.StagedFile{Name: n})
	}
	return out
}

func stagedNames(files []models.StagedFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}

func TestApplyCapacity(t *testing.T) {
	tests := []struct {
		name        string
		current     []string
		candidates  []string
		limit       int
		want        []string
		wantSkipped int
		wantErr     error
	}{
		{name: "unlimited appends", current: []string{"a"}, candidates: []string{"b", "c"}, want: []string{"a", "b", "c"}},
		{name: "negative limit is unlimited", current: []string{"a"}, candidates: []string{"b"}, limit: -1, want: []string{"a", "b"}},
		{name: "limit one into empty", candidates: []string{"a"}, limit: 1, want: []string{"a"}},
		{name: "limit one replaces", current: []string{"a"}, candidates: []string{"b"}, limit: 1, want: []string{"b"}},
		{name: "limit one keeps first candidate", current: []string{"a"}, candidates: []string{"b", "c"}, limit: 1, want: []string{"b"}, wantSkipped: 1},
		{name: "limit n with room", current: []string{"a"}, candidates: []string{"b"}, limit: 3, want: []string{"a", "b"}},
		{name: "limit n truncates", current: []string{"a"}, candidates: []string{"b", "c", "d"}, limit: 3, want: []string{"a", "b", "c"}, wantSkipped: 1},
		{name: "limit n full", current: []string{"a", "b"}, candidates: []string{"c"}, limit: 2, wantErr: ErrUploadLimitReached},
		{name: "limit n over full", current: []string{"a", "b", "c"}, candidates: []string{"d"}, limit: 2, wantErr: ErrUploadLimitReached},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := staged(tt.current...)
			before := stagedNames(current)

			got, skipped, err := applyCapacity(current, staged(tt.candidates...), tt.limit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, stagedNames(got))
			assert.Equal(t, tt.wantSkipped, skipped)
			assert.Equal(t, before, stagedNames(current), "current must not be modified")
		})
	}
}
