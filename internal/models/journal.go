// Package models defines the journal document and its item types.
package models

import (
	"time"

	"github.com/luismoralesarg/micro-log/internal/common"
)

// Category classifies where an item lives inside the journal document.
type Category string

const (
	CategoryJournal Category = "journal"
	CategoryDreams  Category = "dreams"
	CategoryNotes   Category = "notes"
	CategoryIdeas   Category = "ideas"
	CategoryWisdom  Category = "wisdom"
)

// ParseCategory resolves a user-supplied name (including the UI labels
// "log" and "quotes") to a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "journal", "log":
		return CategoryJournal, nil
	case "dreams":
		return CategoryDreams, nil
	case "notes":
		return CategoryNotes, nil
	case "ideas":
		return CategoryIdeas, nil
	case "wisdom", "quotes":
		return CategoryWisdom, nil
	}
	return "", common.ErrInvalidCategory
}

// Dated reports whether the category stores entries per date.
func (c Category) Dated() bool {
	return c == CategoryJournal || c == CategoryDreams
}

// DateLayout is the ISO date key format used throughout the document.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a well-formed ISO date key.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Entry is a single timestamped piece of journal content. Text is immutable
// after creation; only Highlight may flip and the entry may be removed.
type Entry struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Highlight bool   `json:"highlight"`
	Time      string `json:"time"`
}

// IdeaStatus is the lifecycle state of an idea.
type IdeaStatus string

const (
	IdeaStatusNew        IdeaStatus = "new"
	IdeaStatusInProgress IdeaStatus = "in-progress"
	IdeaStatusDone       IdeaStatus = "done"
)

// ParseIdeaStatus validates a user-supplied status value.
func ParseIdeaStatus(s string) (IdeaStatus, error) {
	switch IdeaStatus(s) {
	case IdeaStatusNew, IdeaStatusInProgress, IdeaStatusDone:
		return IdeaStatus(s), nil
	}
	return "", common.ErrInvalidStatus
}

// Idea is an Entry with a status. The embedded fields keep the persisted
// shape flat: {id, text, highlight, time, status}.
type Idea struct {
	Entry
	Status IdeaStatus `json:"status"`
}

// JournalDocument is the root aggregate: one per account or vault.
// Dated maps key entries by ISO date; sequences are insertion-ordered and
// never re-sorted in storage.
type JournalDocument struct {
	Entries map[string][]Entry `json:"entries"`
	Dreams  map[string][]Entry `json:"dreams"`
	Notes   []Entry            `json:"notes"`
	Ideas   []Idea             `json:"ideas"`
	Wisdom  []Entry            `json:"wisdom"`
}

// EmptyDocument returns a document with all collections initialized.
func EmptyDocument() *JournalDocument {
	return &JournalDocument{
		Entries: map[string][]Entry{},
		Dreams:  map[string][]Entry{},
		Notes:   []Entry{},
		Ideas:   []Idea{},
		Wisdom:  []Entry{},
	}
}

// Normalize replaces nil maps and slices with empty ones, so documents
// decoded from older or partial payloads are safe to mutate.
func (d *JournalDocument) Normalize() {
	if d.Entries == nil {
		d.Entries = map[string][]Entry{}
	}
	if d.Dreams == nil {
		d.Dreams = map[string][]Entry{}
	}
	if d.Notes == nil {
		d.Notes = []Entry{}
	}
	if d.Ideas == nil {
		d.Ideas = []Idea{}
	}
	if d.Wisdom == nil {
		d.Wisdom = []Entry{}
	}
}

// DatedEntries returns the date map for a dated category.
func (d *JournalDocument) DatedEntries(c Category) map[string][]Entry {
	if c == CategoryDreams {
		return d.Dreams
	}
	return d.Entries
}

// Slice identifies the persisted unit of change: one date's sequence for a
// dated category, or one whole collection. Whole-blob backends ignore it.
type Slice struct {
	Category Category
	Date     string
}

// Key returns a stable identifier used to serialize persists per slice.
func (s Slice) Key() string {
	if s.Date == "" {
		return string(s.Category)
	}
	return string(s.Category) + "|" + s.Date
}
