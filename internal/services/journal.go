// Package services contains the application services for micro-log: the
// journal model manager that owns the live document, and the tag/mention
// index derived from it.
package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/luismoralesarg/micro-log/internal/common"
	"github.com/luismoralesarg/micro-log/internal/logging"
	"github.com/luismoralesarg/micro-log/internal/models"
	"github.com/luismoralesarg/micro-log/internal/repositories/journal"
)

// timeLayout is the locale-style clock time stamped on each entry.
const timeLayout = "15:04"

// JournalService owns the canonical in-memory JournalDocument. Mutations
// apply synchronously in memory and in call order; persistence of the
// affected slice is asynchronous, serialized per slice by the queue.
type JournalService struct {
	repo journal.Repository
	log  logging.Logger

	mu     sync.Mutex
	doc    *models.JournalDocument
	lastID int64

	queue *sliceQueue
	now   func() time.Time
}

func NewJournalService(repo journal.Repository, log logging.Logger) *JournalService {
	if log == nil {
		log = logging.NewNop()
	}
	return &JournalService{
		repo:  repo,
		log:   log,
		doc:   models.EmptyDocument(),
		queue: newSliceQueue(log),
		now:   time.Now,
	}
}

// Document returns a deep copy of the live document for presentation.
func (s *JournalService) Document() *models.JournalDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// nextID issues creation-ordered identifiers: current Unix milliseconds,
// bumped past the previous id when two entries land in the same instant.
func (s *JournalService) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist snapshots the document and enqueues an ordered save of the slice.
func (s *JournalService) persist(ctx context.Context, sl models.Slice) {
	snapshot := s.doc.Clone()
	s.queue.Enqueue(ctx, sl.Key(), func(ctx context.Context) error {
		return s.repo.SaveSlice(ctx, snapshot, sl)
	})
}

func sliceFor(c models.Category, date string) models.Slice {
	if c.Dated() {
		return models.Slice{Category: c, Date: date}
	}
	return models.Slice{Category: c}
}

// Append adds a new entry to the category (under date for dated
// categories). Blank or whitespace-only text is a no-op returning nil.
// The in-memory update is visible immediately; persistence of the affected
// slice happens asynchronously.
func (s *JournalService) Append(ctx context.Context, c models.Category, date, text string) (*models.Entry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if c.Dated() && !models.ValidDate(date) {
		return nil, common.ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.Entry{
		ID:   s.nextID(),
		Text: text,
		Time: s.now().Format(timeLayout),
	}

	switch {
	case c.Dated():
		dated := s.doc.DatedEntries(c)
		dated[date] = append(dated[date], entry)
	case c == models.CategoryNotes:
		s.doc.Notes = append(s.doc.Notes, entry)
	case c == models.CategoryIdeas:
		s.doc.Ideas = append(s.doc.Ideas, models.Idea{Entry: entry, Status: models.IdeaStatusNew})
	case c == models.CategoryWisdom:
		s.doc.Wisdom = append(s.doc.Wisdom, entry)
	default:
		return nil, common.ErrInvalidCategory
	}

	s.persist(ctx, sliceFor(c, date))
	return &entry, nil
}

// ToggleHighlight flips the highlight flag on the matching entry. A miss is
// a no-op. Ideas carry status instead of highlight and are not eligible.
func (s *JournalService) ToggleHighlight(ctx context.Context, id int64, date string, c models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	switch {
	case c.Dated():
		entries := s.doc.DatedEntries(c)[date]
		for i := range entries {
			if entries[i].ID == id {
				entries[i].Highlight = !entries[i].Highlight
				found = true
				break
			}
		}
	case c == models.CategoryNotes:
		found = toggleIn(s.doc.Notes, id)
	case c == models.CategoryWisdom:
		found = toggleIn(s.doc.Wisdom, id)
	default:
		return common.ErrInvalidCategory
	}

	if found {
		s.persist(ctx, sliceFor(c, date))
	}
	return nil
}

func toggleIn(entries []models.Entry, id int64) bool {
	for i := range entries {
		if entries[i].ID == id {
			entries[i].Highlight = !entries[i].Highlight
			return true
		}
	}
	return false
}

// Delete removes the matching entry. A miss is a no-op. Removing the last
// entry of a date keeps the (now empty) sequence for that date.
func (s *JournalService) Delete(ctx context.Context, id int64, date string, c models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	switch {
	case c.Dated():
		dated := s.doc.DatedEntries(c)
		if entries, ok := dated[date]; ok {
			kept, removed := deleteFrom(entries, id)
			dated[date] = kept
			found = removed
		}
	case c == models.CategoryNotes:
		s.doc.Notes, found = deleteFrom(s.doc.Notes, id)
	case c == models.CategoryWisdom:
		s.doc.Wisdom, found = deleteFrom(s.doc.Wisdom, id)
	case c == models.CategoryIdeas:
		kept := make([]models.Idea, 0, len(s.doc.Ideas))
		for _, idea := range s.doc.Ideas {
			if idea.ID == id {
				found = true
				continue
			}
			kept = append(kept, idea)
		}
		s.doc.Ideas = kept
	default:
		return common.ErrInvalidCategory
	}

	if found {
		s.persist(ctx, sliceFor(c, date))
	}
	return nil
}

func deleteFrom(entries []models.Entry, id int64) ([]models.Entry, bool) {
	kept := make([]models.Entry, 0, len(entries))
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	return kept, found
}

// SetIdeaStatus moves an idea through new → in-progress → done. Any other
// status value is rejected at the boundary with the document unchanged.
func (s *JournalService) SetIdeaStatus(ctx context.Context, id int64, status models.IdeaStatus) error {
	if _, err := models.ParseIdeaStatus(string(status)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Ideas {
		if s.doc.Ideas[i].ID == id {
			s.doc.Ideas[i].Status = status
			s.persist(ctx, sliceFor(models.CategoryIdeas, ""))
			return nil
		}
	}
	return nil
}

// Reload discards the in-memory document and replaces it from storage.
// Pending persists are flushed first so a reload right after a mutation
// cannot resurrect stale state.
func (s *JournalService) Reload(ctx context.Context) error {
	if err := s.queue.Wait(); err != nil {
		return err
	}
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	doc.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	return nil
}

// Reset clears the in-memory document without touching persisted storage.
// Used on logout; the persisted data stays for the next unlock.
func (s *JournalService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = models.EmptyDocument()
}

// Flush waits for all queued persists and reports the first failure.
func (s *JournalService) Flush(ctx context.Context) error {
	return s.queue.Wait()
}
