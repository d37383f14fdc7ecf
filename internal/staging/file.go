// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staging

import (
	"fmt"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-upload-stager/internal/utils"
	"github.com/MKhiriev/go-upload-stager/models"
	"github.com/gabriel-vasile/mimetype"
)

// NewStagedFile builds a StagedFile from raw content. declaredType is the
// content type reported by the source, if any; when it is empty or generic the
// type is sniffed from the payload, then guessed from the name's extension.
func NewStagedFile(name string, payload []byte, declaredType, source string) models.StagedFile {
	return models.StagedFile{
		Name:     name,
		Size:     int64(len(payload)),
		MIMEType: DetectMIME(name, payload, declaredType),
		Source:   source,
		Digest:   utils.Digest(payload),
		Payload:  payload,
	}
}

// placeholder is the zero-byte stand-in for a descriptor without a URL or
// whose fetch failed.
func placeholder(name, source string) models.StagedFile {
	return NewStagedFile(name, nil, "", source)
}

// LoadLocalFile reads the file at p and stages it under its base name.
func LoadLocalFile(p string) (models.StagedFile, error) {
	payload, err := os.ReadFile(p)
	if err != nil {
		return models.StagedFile{}, fmt.Errorf("read local file: %w", err)
	}

	return NewStagedFile(filepath.Base(p), payload, "", ""), nil
}

// DetectMIME resolves the content type of a staged file.
func DetectMIME(name string, payload []byte, declaredType string) string {
	if declared := baseMediaType(declaredType); declared != "" && declared != models.DefaultMIMEType {
		return declared
	}

	if len(payload) > 0 {
		if detected := mimetype.Detect(payload); !detected.Is(models.DefaultMIMEType) {
			return baseMediaType(detected.String())
		}
	}

	if byExt := baseMediaType(mime.TypeByExtension(strings.ToLower(path.Ext(name)))); byExt != "" {
		return byExt
	}

	return models.DefaultMIMEType
}

// baseMediaType strips parameters ("; charset=utf-8") from a content type.
func baseMediaType(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mediaType
}

// descriptorName is the name a hydrated descriptor is staged under: the
// descriptor name without directory components, or the last segment of the
// URL path when the descriptor carries no name.
func descriptorName(d models.FileDescriptor) string {
	if name := strings.TrimSpace(d.Name); name != "" {
		return path.Base(strings.ReplaceAll(name, `\`, "/"))
	}

	if u, err := url.Parse(d.URL); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" {
			return base
		}
	}

	return "file"
}

// Fingerprint summarises a list of staged files for equality checks. Two
// lists with the same fingerprint hold the same files, in the same order, with
// the same content.
func Fingerprint(files []models.StagedFile) string {
	parts := make([]string, 0, len(files)*4+1)
	parts = append(parts, strconv.Itoa(len(files)))
	for _, f := range files {
		digest := f.Digest
		if digest == "" {
			digest = utils.Digest(f.Payload)
		}
		parts = append(parts, f.Name, strconv.FormatInt(f.Size, 10), f.MIMEType, digest)
	}

	return utils.DigestParts(parts...)
}
