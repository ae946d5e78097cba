package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luismoralesarg/micro-log/internal/common"
	"github.com/luismoralesarg/micro-log/internal/cryptox"
	"github.com/luismoralesarg/micro-log/internal/models"
	"github.com/luismoralesarg/micro-log/internal/repositories/remote"
)

// KeyProvider hands out the session's live encryption key. The session gate
// implements it; a locked session reports common.ErrNoKey.
type KeyProvider interface {
	Key() (*cryptox.Key, error)
}

// RemoteRepository stores the whole document as a single encrypted field in
// a per-account remote record. Every save re-encrypts the full current
// document and replaces the record; there is no field-level remote diffing.
type RemoteRepository struct {
	store     remote.Store
	keys      KeyProvider
	accountID string
	now       func() time.Time
}

func NewRemoteRepository(store remote.Store, keys KeyProvider, accountID string) *RemoteRepository {
	return &RemoteRepository{store: store, keys: keys, accountID: accountID, now: time.Now}
}

func (r *RemoteRepository) Load(ctx context.Context) (*models.JournalDocument, error) {
	if r.accountID == "" {
		return nil, common.ErrNotConfigured
	}
	key, err := r.keys.Key()
	if err != nil {
		return nil, err
	}

	rec, err := r.store.GetRecord(ctx, r.accountID)
	if errors.Is(err, common.ErrNotFound) {
		return models.EmptyDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetch record: %v", common.ErrIO, err)
	}
	if rec.Encrypted == "" {
		return models.EmptyDocument(), nil
	}

	var doc models.JournalDocument
	if err := cryptox.Decrypt(rec.Encrypted, key, &doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return &doc, nil
}

func (r *RemoteRepository) SaveSlice(ctx context.Context, doc *models.JournalDocument, _ models.Slice) error {
	if r.accountID == "" {
		return common.ErrNotConfigured
	}
	key, err := r.keys.Key()
	if err != nil {
		return err
	}

	encrypted, err := cryptox.Encrypt(doc, key)
	if err != nil {
		return err
	}
	rec := &remote.Record{Encrypted: encrypted, UpdatedAt: r.now().UTC()}
	if err := r.store.PutRecord(ctx, r.accountID, rec); err != nil {
		return fmt.Errorf("%w: put record: %v", common.ErrIO, err)
	}
	return nil
}

// Reset leaves the remote record in place: logout discards in-memory state
// only, the encrypted document stays for the next unlock.
func (r *RemoteRepository) Reset(ctx context.Context) error {
	return nil
}
