package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
)

// hashKey returns "prefix:" followed by the SHA-256 of parts encoded as JSON.
// Struct fields are encoded in declaration order, so equal option values
// always produce the same key.
func hashKey(prefix string, parts ...any) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, p := range parts {
		// Encoding plain option structs cannot fail.
		_ = enc.Encode(p)
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 of data. Photos are keyed by the hash of
// their file contents, so a renamed file still hits the cache.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashReader returns the hex SHA-256 of everything read from r.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
