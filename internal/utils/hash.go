package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data keyed by hashKey
// and returns it hex-encoded. Outbound relay requests are signed with it.
func HashString(data string, hashKey string) string {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// ValidSignature reports whether signature is the hex HMAC-SHA256 of data
// under hashKey. The comparison is constant-time.
func ValidSignature(data, signature, hashKey string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write([]byte(data))
	return hmac.Equal(h.Sum(nil), expected)
}
