package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Canonicalize serializes v as JSON with object keys sorted lexicographically
// at every nesting level, so the byte stream is independent of the property
// order the client happened to send.
func Canonicalize(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	// Round-trip through any: objects become map[string]any at every level and
	// encoding/json emits map keys in sorted order.
	var norm any
	if err := json.Unmarshal(raw, &norm); err != nil {
		return nil, err
	}
	return json.Marshal(norm)
}

// Hash returns the lowercase hex SHA-256 digest of the canonical serialization
// of v. Identical logical content always yields the same hash.
func Hash(v any) (string, error) {
	canon, err := Canonicalize(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}
