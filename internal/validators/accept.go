// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"mime"
	"path"
	"strings"

	"github.com/MKhiriev/go-upload-stager/models"
)

// AcceptFilter is a parsed HTML accept attribute: comma-separated exact
// MIME types ("application/pdf"), wildcards ("image/*") and extensions
// (".png"). The zero value accepts everything.
type AcceptFilter struct {
	exact      []string
	wildcards  []string
	extensions []string
	any        bool
}

// ParseAccept parses pattern. Tokens are case-insensitive; blank tokens are
// ignored.
func ParseAccept(pattern string) AcceptFilter {
	var f AcceptFilter
	for token := range strings.SplitSeq(pattern, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		switch {
		case token == "":
		case token == "*" || token == "*/*":
			f.any = true
		case strings.HasPrefix(token, "."):
			f.extensions = append(f.extensions, token)
		case strings.HasSuffix(token, "/*"):
			f.wildcards = append(f.wildcards, strings.TrimSuffix(token, "*"))
		default:
			f.exact = append(f.exact, token)
		}
	}
	return f
}

// IsZero reports whether the filter accepts everything without checks.
func (f AcceptFilter) IsZero() bool {
	return f.any || (len(f.exact) == 0 && len(f.wildcards) == 0 && len(f.extensions) == 0)
}

// Matches reports whether file passes the filter, by extension of its name
// or by its MIME type.
func (f AcceptFilter) Matches(file models.StagedFile) bool {
	if f.IsZero() {
		return true
	}

	ext := strings.ToLower(path.Ext(file.Name))
	for _, e := range f.extensions {
		if ext == e {
			return true
		}
	}

	mimeType := strings.ToLower(file.MIMEType)
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = mediaType
	}
	for _, t := range f.exact {
		if mimeType == t {
			return true
		}
	}
	for _, prefix := range f.wildcards {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}

	return false
}

// Extensions returns the file extensions a picker should offer. Exact MIME
// types contribute the extensions registered for them; wildcards cannot be
// expanded and are left to Matches.
func (f AcceptFilter) Extensions() []string {
	if f.IsZero() {
		return nil
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, len(f.extensions))
	add := func(ext string) {
		if _, ok := seen[ext]; ok {
			return
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}

	for _, ext := range f.extensions {
		add(ext)
	}
	for _, t := range f.exact {
		exts, err := mime.ExtensionsByType(t)
		if err != nil {
			continue
		}
		for _, ext := range exts {
			add(ext)
		}
	}
	return out
}
