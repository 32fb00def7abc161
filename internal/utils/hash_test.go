package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_Deterministic(t *testing.T) {
	first := HashString("secret-password", "hash-key")
	second := HashString("secret-password", "hash-key")

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestHashString_KeyChangesDigest(t *testing.T) {
	assert.NotEqual(t,
		HashString("secret-password", "key-one"),
		HashString("secret-password", "key-two"),
	)
}

func TestVerifyHash_TableTest(t *testing.T) {
	stored := HashString("secret-password", "hash-key")

	tests := []struct {
		name      string
		plaintext string
		digest    string
		hashKey   string
		want      bool
	}{
		{
			name:      "matching password",
			plaintext: "secret-password",
			digest:    stored,
			hashKey:   "hash-key",
			want:      true,
		},
		{
			name:      "wrong password",
			plaintext: "other-password",
			digest:    stored,
			hashKey:   "hash-key",
			want:      false,
		},
		{
			name:      "wrong key",
			plaintext: "secret-password",
			digest:    stored,
			hashKey:   "other-key",
			want:      false,
		},
		{
			name:      "stored digest is not hex",
			plaintext: "secret-password",
			digest:    "zzzz",
			hashKey:   "hash-key",
			want:      false,
		},
		{
			name:      "empty digest",
			plaintext: "secret-password",
			digest:    "",
			hashKey:   "hash-key",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyHash(tt.plaintext, tt.digest, tt.hashKey))
		})
	}
}
