package store

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// RecordKey returns the key a backend stores a record under.
func RecordKey(id string) string {
	return "record:" + id
}

// SearchKey returns the key a backend stores a search run under.
// The query is hashed so arbitrary text maps to a fixed-size key.
func SearchKey(query string) string {
	return "search:" + Hash([]byte(query))
}
