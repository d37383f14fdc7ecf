// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest_MatchesSHA256(t *testing.T) {
	data := []byte("test-data")

	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), Digest(data))
}

func TestDigest_Deterministic(t *testing.T) {
	assert.Equal(t, Digest([]byte("a")), Digest([]byte("a")))
	assert.NotEqual(t, Digest([]byte("a")), Digest([]byte("b")))
}

func TestDigest_Empty(t *testing.T) {
	// sha256 of the empty input
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Digest(nil))
}

func TestDigestParts_BoundariesMatter(t *testing.T) {
	assert.NotEqual(t, DigestParts("ab", "c"), DigestParts("a", "bc"))
	assert.Equal(t, DigestParts("a", "b"), DigestParts("a", "b"))
}

func TestDigest_Concurrent(t *testing.T) {
	want := Digest([]byte("same"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Digest([]byte("same")))
		}()
	}
	wg.Wait()
}
