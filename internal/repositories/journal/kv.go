package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/luismoralesarg/micro-log/internal/common"
	"github.com/luismoralesarg/micro-log/internal/models"
)

// kvKey is the fixed key the whole document lives under, the equivalent of
// the single localStorage slot in the original web build.
const kvKey = "microlog-journal"

// KVRepository stores the entire document as one JSON blob in a persistent
// diskv key-value store. Load and save are whole-document operations.
type KVRepository struct {
	d *diskv.Diskv
}

func NewKVRepository(basePath string) *KVRepository {
	if basePath == "" {
		return &KVRepository{}
	}
	return &KVRepository{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (r *KVRepository) Load(ctx context.Context) (*models.JournalDocument, error) {
	if r.d == nil {
		return nil, common.ErrNotConfigured
	}
	if !r.d.Has(kvKey) {
		return models.EmptyDocument(), nil
	}
	data, err := r.d.Read(kvKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read blob: %v", common.ErrIO, err)
	}
	var doc models.JournalDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse blob: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

// SaveSlice writes the full document; the slice granularity only matters
// for the per-file vault backend.
func (r *KVRepository) SaveSlice(ctx context.Context, doc *models.JournalDocument, _ models.Slice) error {
	if r.d == nil {
		return common.ErrNotConfigured
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := r.d.Write(kvKey, data); err != nil {
		return fmt.Errorf("%w: write blob: %v", common.ErrIO, err)
	}
	return nil
}

// Reset clears the stored blob. Unlike the vault backend this one owns its
// storage slot, so logout wipes it, matching the original localStorage
// behavior.
func (r *KVRepository) Reset(ctx context.Context) error {
	if r.d == nil {
		return common.ErrNotConfigured
	}
	if !r.d.Has(kvKey) {
		return nil
	}
	if err := r.d.Erase(kvKey); err != nil {
		return fmt.Errorf("%w: erase blob: %v", common.ErrIO, err)
	}
	return nil
}
