package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		salt := GenerateSalt()
		require.Len(t, salt, SaltSize*2)
		_, dup := seen[salt]
		require.False(t, dup, "salt collision")
		seen[salt] = struct{}{}
	}
}

func TestDeriveHash(t *testing.T) {
	salt := GenerateSalt()

	tests := []struct {
		name      string
		plaintext string
		salt      string
		wantEmpty bool
	}{
		{name: "valid", plaintext: "secret1", salt: salt},
		{name: "empty plaintext", plaintext: "", salt: salt, wantEmpty: true},
		{name: "empty salt", plaintext: "secret1", salt: "", wantEmpty: true},
		{name: "malformed salt", plaintext: "secret1", salt: "not-hex!", wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveHash(tt.plaintext, tt.salt)
			if tt.wantEmpty {
				assert.Empty(t, got)
				return
			}
			assert.NotEmpty(t, got)
			assert.Equal(t, got, DeriveHash(tt.plaintext, tt.salt), "derivation must be deterministic")
		})
	}
}

func TestDeriveHash_SaltChangesHash(t *testing.T) {
	a := DeriveHash("secret1", GenerateSalt())
	b := DeriveHash("secret1", GenerateSalt())
	assert.NotEqual(t, a, b)
}

func TestVerify(t *testing.T) {
	passwords := []string{"secret1", "correct horse battery staple", "ünïcødé-pass", "123456"}

	for _, p := range passwords {
		t.Run(p, func(t *testing.T) {
			salt := GenerateSalt()
			hash := DeriveHash(p, salt)

			assert.True(t, Verify(p, salt, hash))
			assert.False(t, Verify(p+"x", salt, hash))
			assert.False(t, Verify("", salt, hash))
			assert.False(t, Verify(p, GenerateSalt(), hash))
			assert.False(t, Verify(p, "zz", hash))
			assert.False(t, Verify(p, salt, ""))
		})
	}
}
