package remote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismoralesarg/micro-log/internal/common"
)

func TestMemoryStore_MissReturnsNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetRecord(context.Background(), "nobody")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStore_PutGetRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.PutRecord(ctx, "acc-1", &Record{Encrypted: "blob-1", UpdatedAt: now}))

	got, err := s.GetRecord(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "blob-1", got.Encrypted)
	assert.Equal(t, now, got.UpdatedAt)

	// Whole-record replacement, last write wins.
	require.NoError(t, s.PutRecord(ctx, "acc-1", &Record{Encrypted: "blob-2", UpdatedAt: now.Add(time.Second)}))
	got, err = s.GetRecord(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "blob-2", got.Encrypted)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.PutRecord(ctx, "acc-1", &Record{Encrypted: "blob"}))

	got, err := s.GetRecord(ctx, "acc-1")
	require.NoError(t, err)
	got.Encrypted = "mutated"

	again, err := s.GetRecord(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "blob", again.Encrypted)
}
