package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes a keyed HMAC-SHA256 digest over the given string and
// returns it hex-encoded.
//
// The digest is deterministic: the same (data, hashKey) pair always yields
// the same output, which is what makes stored-digest comparison work. The
// server-side key is the only secret input; there is no per-record salt.
//
// Parameters:
//
//	data    - string to be hashed
//	hashKey - secret key used for the HMAC operation
//
// Returns:
//
//	string - hex-encoded HMAC-SHA256 digest
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// VerifyHash reports whether plaintext hashes to storedDigest under hashKey.
// The comparison is constant-time.
func VerifyHash(plaintext, storedDigest, hashKey string) bool {
	digest := hashString([]byte(plaintext), hashKey)
	stored, err := hex.DecodeString(storedDigest)
	if err != nil {
		return false
	}
	return hmac.Equal(digest, stored)
}

// hashString computes a raw HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
