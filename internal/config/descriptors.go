// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-upload-stager/models"
)

// Descriptors is a list of default file descriptors. From the environment
// it is read as comma-separated "name=url" pairs; a pair without "=" is a
// name with no URL.
type Descriptors []models.FileDescriptor

// UnmarshalText implements encoding.TextUnmarshaler for caarlos0/env.
func (d *Descriptors) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*d = nil
		return nil
	}

	out := make(Descriptors, 0, strings.Count(raw, ",")+1)
	for pair := range strings.SplitSeq(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, url, _ := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("%w: descriptor %q has no name", ErrInvalidStagingConfigs, pair)
		}
		out = append(out, models.FileDescriptor{Name: name, URL: strings.TrimSpace(url)})
	}

	*d = out
	return nil
}

// MarshalText renders the list back in its "name=url" form.
func (d Descriptors) MarshalText() ([]byte, error) {
	parts := make([]string, 0, len(d))
	for _, desc := range d {
		if desc.URL == "" {
			parts = append(parts, desc.Name)
			continue
		}
		parts = append(parts, desc.Name+"="+desc.URL)
	}
	return []byte(strings.Join(parts, ",")), nil
}
