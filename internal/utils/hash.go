package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the shared journal key.
// InitHasherPool must be called before Hash.
var hasherPool sync.Pool

// InitHasherPool (re)creates the pool so every hasher uses hashKey.
//
// Example usage:
//
//	utils.InitHasherPool(cfg.App.HashKey)
func InitHasherPool(hashKey string) {
	key := []byte(hashKey)
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, key)
		},
	}
}

// Hash returns the HMAC-SHA256 digest of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	defer hasherPool.Put(h)

	h.Reset()
	h.Write(data)
	return h.Sum(nil)
}

// HashString returns the hex-encoded HMAC-SHA256 of data under hashKey.
// It does not touch the pool.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashBytes([]byte(data), hashKey))
}

// HashEqual reports whether hexDigest is the hex HMAC of data under the
// pooled key. The comparison is constant-time.
func HashEqual(data []byte, hexDigest string) bool {
	expected, err := hex.DecodeString(hexDigest)
	if err != nil {
		return false
	}
	return hmac.Equal(Hash(data), expected)
}

func hashBytes(data []byte, hashKey string) []byte {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write(data)
	return h.Sum(nil)
}
