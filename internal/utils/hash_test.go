// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHashString_MatchesDirectHMAC(t *testing.T) {
	data, key := `{"to":"a@x.io"}`, "relay-token"

	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(data))
	expected := hex.EncodeToString(h.Sum(nil))

	if got := HashString(data, key); got != expected {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", expected, got)
	}
}

func TestHashString_DependsOnKey(t *testing.T) {
	if HashString("data", "k1") == HashString("data", "k2") {
		t.Fatal("different keys must give different signatures")
	}
	if HashString("data", "k1") != HashString("data", "k1") {
		t.Fatal("hash must be deterministic for the same input")
	}
}

func TestValidSignature(t *testing.T) {
	sig := HashString("payload", "key")

	if !ValidSignature("payload", sig, "key") {
		t.Fatal("expected signature to validate")
	}
	if ValidSignature("payload!", sig, "key") {
		t.Fatal("expected tampered payload to fail")
	}
	if ValidSignature("payload", "zz-not-hex", "key") {
		t.Fatal("expected malformed signature to fail")
	}
}
