// Package journal contains the storage adapter: one Repository contract
// with filesystem-vault, local key-value, and encrypted-remote
// implementations. The model manager never knows which backend is active.
package journal

import (
	"context"

	"github.com/luismoralesarg/micro-log/internal/models"
)

// Repository translates between the canonical JournalDocument and one
// physical representation.
//
// Contract:
//   - Load assembles the full document; absent persisted state is the
//     empty document, not an error.
//   - SaveSlice persists the given slice of doc. Whole-blob backends may
//     ignore the slice and write the full document.
//   - Reset clears persisted state where the backend owns it (the local
//     key-value blob); the vault and remote backends treat their contents
//     as user-owned and leave them in place.
type Repository interface {
	Load(ctx context.Context) (*models.JournalDocument, error)
	SaveSlice(ctx context.Context, doc *models.JournalDocument, s models.Slice) error
	Reset(ctx context.Context) error
}
