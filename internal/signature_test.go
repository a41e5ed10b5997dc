package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Digests pinned against an independently computed SHA-384 of the canonical
// strings. The canonical form is part of the provider wire contract, so any
// change to field order, whitespace or quoting must fail here.
func TestRegisterSignPinnedDigest(t *testing.T) {
	sign := RegisterSign("abc123", 12345, 1000, "PLN", "test")
	assert.Equal(t, "f63e15e8f7fd8171e4ccee1705476f34e2d05325526e4bc78c5e770089d839b46caf5fc9257614e1821cd5b9d1927bc5", sign)
}

func TestVerifySignPinnedDigest(t *testing.T) {
	sign := VerifySign("abc123", 98765, 1000, "PLN", "test")
	assert.Equal(t, "1973f5e58e8f52ae12329a220947673894c5b1d9d757aabe652059a48dd972a89476d4fda98fb8aaceed3b2db46e7ae6", sign)
}

func TestRegisterSignDeterministic(t *testing.T) {
	first := RegisterSign("f1e2d3", 64195, 2500, "EUR", "d5c1")
	second := RegisterSign("f1e2d3", 64195, 2500, "EUR", "d5c1")
	assert.Equal(t, first, second)
	assert.Equal(t, "41bced833b56c04dc6dabf60e083c40838d8a7f8ed2e16304e0609ab91574df2ac7a3814288cd5d1dded75a7e3f4c828", first)
}

func TestRegisterSignChangesWithEveryField(t *testing.T) {
	base := RegisterSign("abc123", 12345, 1000, "PLN", "test")

	assert.NotEqual(t, base, RegisterSign("abc124", 12345, 1000, "PLN", "test"))
	assert.NotEqual(t, base, RegisterSign("abc123", 12346, 1000, "PLN", "test"))
	assert.NotEqual(t, base, RegisterSign("abc123", 12345, 1001, "PLN", "test"))
	assert.NotEqual(t, base, RegisterSign("abc123", 12345, 1000, "EUR", "test"))
	assert.NotEqual(t, base, RegisterSign("abc123", 12345, 1000, "PLN", "test2"))
}

// Register and verify signatures differ for the same values because the
// second field is named differently in the canonical string.
func TestRegisterAndVerifySignDiffer(t *testing.T) {
	register := RegisterSign("abc123", 12345, 1000, "PLN", "test")
	verify := VerifySign("abc123", 12345, 1000, "PLN", "test")
	assert.NotEqual(t, register, verify)
}

func TestSignIsLowercaseHex(t *testing.T) {
	sign := RegisterSign("abc123", 12345, 1000, "PLN", "test")
	assert.Len(t, sign, 96)
	for _, r := range sign {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'), "unexpected rune %q", r)
	}
}
