// Package remote defines the per-account document store behind the
// encrypted storage backend, with S3, Postgres, and in-memory
// implementations. The store holds one opaque record per account; it never
// sees plaintext.
package remote

import (
	"context"
	"time"
)

// Record is the single remote row/object for an account: the encrypted
// journal blob plus its last-modified timestamp. Writes replace the whole
// record (last-write-wins).
type Record struct {
	Encrypted string    `json:"encrypted"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is the remote document store contract. GetRecord returns
// common.ErrNotFound when no record exists for the account. Implementations
// must provide read-after-write consistency for a single account record.
type Store interface {
	GetRecord(ctx context.Context, accountID string) (*Record, error)
	PutRecord(ctx context.Context, accountID string, r *Record) error
}
