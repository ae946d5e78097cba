package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismoralesarg/micro-log/internal/common"
	"github.com/luismoralesarg/micro-log/internal/models"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	k1 := DeriveKey("correct horse battery staple", salt)
	k2 := DeriveKey("correct horse battery staple", salt)

	// Keys with identical inputs must decrypt each other's ciphertexts.
	doc := map[string]string{"hello": "world"}
	opaque, err := Encrypt(doc, k1)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, Decrypt(opaque, k2, &got))
	assert.Equal(t, doc, got)
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	k1 := DeriveKey("passphrase", []byte("salt-aaaaaaaaaaa"))
	k2 := DeriveKey("passphrase", []byte("salt-bbbbbbbbbbb"))

	opaque, err := Encrypt("payload", k1)
	require.NoError(t, err)

	var s string
	err = Decrypt(opaque, k2, &s)
	assert.ErrorIs(t, err, common.ErrDecryption)
}

func TestGenerateSalt(t *testing.T) {
	s1 := GenerateSalt()
	s2 := GenerateSalt()
	assert.Len(t, s1, SaltSize)
	assert.NotEqual(t, s1, s2)
}

func TestEncryptDecrypt_RoundTripDocument(t *testing.T) {
	key := DeriveKey("pass", GenerateSalt())

	doc := models.EmptyDocument()
	doc.Entries["2024-01-15"] = []models.Entry{{ID: 1705312800000, Text: "hello #work @alice", Time: "10:00"}}
	doc.Ideas = append(doc.Ideas, models.Idea{Entry: models.Entry{ID: 2, Text: "ship it", Time: "11:30"}, Status: models.IdeaStatusNew})

	opaque, err := Encrypt(doc, key)
	require.NoError(t, err)

	var got models.JournalDocument
	require.NoError(t, Decrypt(opaque, key, &got))
	assert.Equal(t, *doc, got)
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	key := DeriveKey("pass", GenerateSalt())

	a, err := Encrypt("same payload", key)
	require.NoError(t, err)
	b, err := Encrypt("same payload", key)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDecrypt_TamperDetection(t *testing.T) {
	key := DeriveKey("pass", GenerateSalt())

	opaque, err := Encrypt(map[string]int{"n": 7}, key)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(opaque)
	require.NoError(t, err)

	// Flipping any single bit must fail authentication, never produce
	// a different valid document.
	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		var got map[string]int
		err := Decrypt(base64.StdEncoding.EncodeToString(tampered), key, &got)
		assert.ErrorIs(t, err, common.ErrDecryption, "bit flip at byte %d", i)
	}
}

func TestDecrypt_MalformedPayloads(t *testing.T) {
	key := DeriveKey("pass", GenerateSalt())

	tests := []struct {
		name   string
		opaque string
	}{
		{"not base64", "!!! not base64 !!!"},
		{"too short", base64.StdEncoding.EncodeToString([]byte("short"))},
		{"empty", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var v any
			assert.ErrorIs(t, Decrypt(tc.opaque, key, &v), common.ErrDecryption)
		})
	}
}

func TestHashPassphrase(t *testing.T) {
	salt := GenerateSalt()

	h1 := HashPassphrase("secret", salt)
	h2 := HashPassphrase("secret", salt)
	assert.Equal(t, h1, h2)

	assert.NotEqual(t, h1, HashPassphrase("other", salt))
	assert.NotEqual(t, h1, HashPassphrase("secret", GenerateSalt()))

	// The verification hash must not equal or contain the derived key.
	key := DeriveKey("secret", salt)
	assert.NotEqual(t, h1, base64.StdEncoding.EncodeToString(key.raw))
}

func TestKeyZero(t *testing.T) {
	key := DeriveKey("pass", GenerateSalt())
	key.Zero()

	_, err := Encrypt("x", key)
	assert.ErrorIs(t, err, common.ErrNoKey)

	var v any
	assert.ErrorIs(t, Decrypt("whatever", key, &v), common.ErrNoKey)

	var nilKey *Key
	assert.NotPanics(t, func() { nilKey.Zero() })
	_, err = Encrypt("x", nilKey)
	assert.ErrorIs(t, err, common.ErrNoKey)
}
