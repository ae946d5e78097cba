// Package session implements the passphrase verification gate. A session is
// either Locked (no key held) or Unlocked (a live derived key in memory).
// Unlocking a new account establishes the salt and verification hash;
// unlocking a returning account verifies the passphrase against the stored
// hash before the slow key derivation runs.
package session

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luismoralesarg/micro-log/internal/common"
	"github.com/luismoralesarg/micro-log/internal/config"
	"github.com/luismoralesarg/micro-log/internal/cryptox"
	"github.com/luismoralesarg/micro-log/internal/logging"
)

// Session is the gate between a passphrase and a live encryption key.
// The key is read-only once derived; it is replaced wholesale on
// re-derivation and zeroized on Lock.
type Session struct {
	accounts *config.AccountStore
	log      logging.Logger

	mu  sync.Mutex
	key *cryptox.Key
	gen uint64
}

func NewSession(accounts *config.AccountStore, log logging.Logger) *Session {
	if log == nil {
		log = logging.NewNop()
	}
	return &Session{accounts: accounts, log: log}
}

// Unlocked reports whether a live key is held.
func (s *Session) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key != nil
}

// Key returns the session key, or common.ErrNoKey while Locked.
func (s *Session) Key() (*cryptox.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key == nil {
		return nil, common.ErrNoKey
	}
	return s.key, nil
}

// AccountID returns the stable account identifier, creating one on first use.
func (s *Session) AccountID() (string, error) {
	a, err := s.accounts.Load()
	if err != nil {
		return "", err
	}
	if a.AccountID != "" {
		return a.AccountID, nil
	}
	a, err = s.accounts.Update(func(a *config.Account) error {
		if a.AccountID == "" {
			a.AccountID = uuid.NewString()
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return a.AccountID, nil
}

// Unlock establishes or verifies the passphrase and derives the session key.
//
// New account: generates a salt, stores the verification hash, derives the
// key. Returning account: verifies the passphrase hash in constant time and
// fails with common.ErrInvalidPassphrase on mismatch, leaving the session
// Locked. If the session is locked again while the slow derivation is in
// flight, the derived key is discarded instead of being applied to the
// stale session.
func (s *Session) Unlock(ctx context.Context, passphrase string) error {
	account, err := s.accounts.Load()
	if err != nil {
		return err
	}

	var salt []byte
	if account.HasPassphrase() {
		salt, err = account.Salt()
		if err != nil {
			return fmt.Errorf("account salt: %w", err)
		}
		candidate := cryptox.HashPassphrase(passphrase, salt)
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(account.PassphraseHash)) == 0 {
			return common.ErrInvalidPassphrase
		}
	} else {
		salt = cryptox.GenerateSalt()
		hash := cryptox.HashPassphrase(passphrase, salt)
		if _, err := s.accounts.Update(func(a *config.Account) error {
			if err := a.SetSalt(salt); err != nil {
				return err
			}
			a.PassphraseHash = hash
			if a.AccountID == "" {
				a.AccountID = uuid.NewString()
			}
			if a.Created == "" {
				a.Created = time.Now().UTC().Format(time.RFC3339)
			}
			return nil
		}); err != nil {
			return fmt.Errorf("save account: %w", err)
		}
		s.log.Info(ctx, "account created")
	}

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	// Deliberately slow.
	key := cryptox.DeriveKey(passphrase, salt)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		key.Zero()
		return common.ErrNoKey
	}
	if err := ctx.Err(); err != nil {
		key.Zero()
		return err
	}
	if s.key != nil {
		s.key.Zero()
	}
	s.key = key
	s.log.Debug(ctx, "session unlocked")
	return nil
}

// Lock discards the key and returns the session to Locked. Any derivation
// still in flight will find the generation changed and discard its result.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.key != nil {
		s.key.Zero()
		s.key = nil
	}
}
