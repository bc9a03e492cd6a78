package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a cache key of the form "kind:sha256(parts)". The kind
// ("graph", "artifact") keeps entry families distinguishable; hashing the
// parts keeps keys fixed-length no matter how large the document is.
func hashKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", kind, hex.EncodeToString(hash[:]))
}

// Hash returns the SHA-256 of data as a 64-character hex string. It is the
// content-hash primitive behind document identity: the pipeline hashes raw
// document bytes with it to key conversion results, the same form a graph's
// ContentHash takes.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
