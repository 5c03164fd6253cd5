// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHashString_MatchesHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("key"))
	mac.Write([]byte("123456"))
	expected := hex.EncodeToString(mac.Sum(nil))

	if got := HashString("123456", "key"); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("data", "key") != HashString("data", "key") {
		t.Error("expected identical digests for identical input")
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	if HashString("data", "key-1") == HashString("data", "key-2") {
		t.Error("expected different digests for different keys")
	}
}

func TestHashString_DifferentPayloads(t *testing.T) {
	if HashString("123456", "key") == HashString("123457", "key") {
		t.Error("expected different digests for different payloads")
	}
}

func TestEqualHashes(t *testing.T) {
	a := HashString("x", "k")
	if !EqualHashes(a, a) {
		t.Error("expected equal hashes to match")
	}
	if EqualHashes(a, HashString("y", "k")) {
		t.Error("expected different hashes not to match")
	}
	if EqualHashes(a, "") {
		t.Error("expected empty hash not to match")
	}
}
