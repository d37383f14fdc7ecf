// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable SHA-256 hash instances. Staged payloads are
// digested on every insertion, so hashers are pooled rather than allocated
// per call.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Digest returns the hex-encoded SHA-256 of data.
//
// Example usage:
//
//	d := utils.Digest([]byte("payload"))
func Digest(data []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}

// DigestParts returns the hex-encoded SHA-256 over parts, each part followed
// by a zero byte so that ("ab", "c") and ("a", "bc") produce different sums.
func DigestParts(parts ...string) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}
