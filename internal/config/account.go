package config

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSaltAlreadySet guards the account salt: it is generated once at account
// creation and replacing it would invalidate all previously encrypted data.
var ErrSaltAlreadySet = errors.New("account salt already set")

// Account is the small persisted record holding everything that lives
// outside the journal document itself: the storage location pointer, the
// per-account salt, the passphrase verification hash, and UI language.
type Account struct {
	StorageLocation string `json:"storageLocation,omitempty"`
	AccountSalt     string `json:"accountSalt,omitempty"` // base64
	PassphraseHash  string `json:"passphraseVerificationHash,omitempty"`
	AccountID       string `json:"accountId,omitempty"`
	Language        string `json:"language,omitempty"`
	Created         string `json:"created,omitempty"` // RFC3339
}

// HasPassphrase reports whether a passphrase has been established, i.e.
// this is a returning account.
func (a *Account) HasPassphrase() bool {
	return a.PassphraseHash != "" && a.AccountSalt != ""
}

// Salt decodes the stored per-account salt.
func (a *Account) Salt() ([]byte, error) {
	if a.AccountSalt == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(a.AccountSalt)
}

// SetSalt stores the salt. The salt is immutable for the lifetime of the
// account; a second call fails.
func (a *Account) SetSalt(salt []byte) error {
	if a.AccountSalt != "" {
		return ErrSaltAlreadySet
	}
	a.AccountSalt = base64.StdEncoding.EncodeToString(salt)
	return nil
}

// AccountStore reads and writes the account record as a JSON file.
type AccountStore struct {
	path string
}

func NewAccountStore(path string) *AccountStore {
	return &AccountStore{path: path}
}

// Load returns the persisted account, or a zero-valued account when no
// record exists yet.
func (s *AccountStore) Load() (*Account, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read account %s: %w", s.path, err)
	}
	var a Account
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse account %s: %w", s.path, err)
	}
	return &a, nil
}

// Save persists the account record with owner-only permissions.
func (s *AccountStore) Save(a *Account) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("account dir: %w", err)
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write account %s: %w", s.path, err)
	}
	return nil
}

// Update applies a partial mutation to the stored record and persists it.
// The load-modify-save runs in one call so partial sets (e.g. clearing the
// storage location) never touch unrelated fields.
func (s *AccountStore) Update(apply func(*Account) error) (*Account, error) {
	a, err := s.Load()
	if err != nil {
		return nil, err
	}
	if err := apply(a); err != nil {
		return nil, err
	}
	if err := s.Save(a); err != nil {
		return nil, err
	}
	return a, nil
}
