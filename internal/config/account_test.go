package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *AccountStore {
	t.Helper()
	return NewAccountStore(filepath.Join(t.TempDir(), ".microlog", "account.json"))
}

func TestAccountStore_LoadMissingReturnsEmpty(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Load()
	require.NoError(t, err)
	assert.False(t, a.HasPassphrase())
	assert.Empty(t, a.StorageLocation)
}

func TestAccountStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	a := &Account{StorageLocation: "/vault", PassphraseHash: "h", Language: "es"}
	require.NoError(t, a.SetSalt([]byte("0123456789abcdef")))
	require.NoError(t, s.Save(a))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, a, got)

	salt, err := got.Salt()
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abcdef"), salt)
	assert.True(t, got.HasPassphrase())
}

func TestAccount_SaltIsImmutable(t *testing.T) {
	a := &Account{}
	require.NoError(t, a.SetSalt([]byte("first")))
	assert.ErrorIs(t, a.SetSalt([]byte("second")), ErrSaltAlreadySet)
}

func TestAccountStore_UpdateIsPartial(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Update(func(a *Account) error {
		a.StorageLocation = "/vault"
		a.PassphraseHash = "h"
		return nil
	})
	require.NoError(t, err)

	// Clearing the location must not touch the passphrase hash.
	got, err := s.Update(func(a *Account) error {
		a.StorageLocation = ""
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, got.StorageLocation)
	assert.Equal(t, "h", got.PassphraseHash)
}
