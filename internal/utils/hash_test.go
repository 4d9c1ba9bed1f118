// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/calm-companion/models"
)

const testHashKey = "test-secret-key"

func TestInitHasherPoolAndHash(t *testing.T) {
	InitHasherPool(testHashKey)

	data := []byte("test-data")
	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	if expected := h.Sum(nil); !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHash_ConversationEntries(t *testing.T) {
	InitHasherPool(testHashKey)

	entries := []models.ConversationEntry{
		{Sender: models.SenderUser, Message: "I feel anxious", Timestamp: time.Unix(1700000000, 0).UTC()},
		{Sender: models.SenderAssistant, Message: "Let's take a breath together.", Timestamp: time.Unix(1700000002, 0).UTC()},
	}
	body, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("failed to marshal entries: %v", err)
	}

	got := hex.EncodeToString(Hash(body))
	if want := HashString(string(body), testHashKey); got != want {
		t.Errorf("pooled and one-off hashes differ:\n  got:  %s\n  want: %s", got, want)
	}

	entries[1].Message = "Something else"
	changed, _ := json.Marshal(entries)
	if hex.EncodeToString(Hash(changed)) == got {
		t.Error("different entries must produce different hashes")
	}
}

func TestHash_DifferentKeys(t *testing.T) {
	data := []byte(`{"message":"hello"}`)

	InitHasherPool("key-one")
	hash1 := hex.EncodeToString(Hash(data))

	InitHasherPool("key-two")
	hash2 := hex.EncodeToString(Hash(data))

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same payload")
	}
}

func TestHashEqual(t *testing.T) {
	InitHasherPool(testHashKey)
	data := []byte("payload")
	digest := HashString("payload", testHashKey)

	if !HashEqual(data, digest) {
		t.Error("expected digest to match")
	}
	if HashEqual([]byte("tampered"), digest) {
		t.Error("expected tampered payload to be rejected")
	}
	if HashEqual(data, "not-hex") {
		t.Error("expected malformed digest to be rejected")
	}
}
