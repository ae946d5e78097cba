package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/luismoralesarg/micro-log/internal/common"
	"github.com/luismoralesarg/micro-log/internal/filex"
	"github.com/luismoralesarg/micro-log/internal/models"
)

// VaultVersion is written to .microlog/config.json at vault creation.
const VaultVersion = "1.0.0"

const vaultMetaDir = ".microlog"

// VaultRepository persists the document as many small files under a root
// directory: one file per date for the dated categories, one file per
// undated collection. Writes stay proportional to the changed slice.
//
// Layout:
//
//	<root>/journal/<date>.json   JSON array of Entry
//	<root>/dreams/<date>.json    JSON array of Entry
//	<root>/notes/notes.json      JSON array of Entry
//	<root>/ideas/ideas.json      JSON array of Idea
//	<root>/wisdom/wisdom.json    JSON array of Entry
//	<root>/.microlog/config.json {created, version}
type VaultRepository struct {
	root string
	fs   filex.Filesystem
}

func NewVaultRepository(root string, fs filex.Filesystem) *VaultRepository {
	return &VaultRepository{root: root, fs: fs}
}

type vaultMeta struct {
	Created string `json:"created"`
	Version string `json:"version"`
}

// Init creates the vault directory structure and the vault metadata file.
// Existing metadata is left untouched, so pointing at an already
// initialized vault is safe.
func (r *VaultRepository) Init(ctx context.Context) error {
	if r.root == "" {
		return common.ErrNotConfigured
	}
	for _, dir := range []string{"journal", "dreams", "notes", "ideas", "wisdom", vaultMetaDir} {
		path, err := r.safePath(dir)
		if err != nil {
			return err
		}
		if err := r.fs.EnsureDirectory(path); err != nil {
			return fmt.Errorf("%w: create %s: %v", common.ErrIO, dir, err)
		}
	}

	metaPath, err := r.safePath(vaultMetaDir, "config.json")
	if err != nil {
		return err
	}
	existing, err := r.fs.ReadFile(metaPath)
	if err != nil {
		return fmt.Errorf("%w: read vault meta: %v", common.ErrIO, err)
	}
	if existing != nil {
		return nil
	}

	meta := vaultMeta{Created: time.Now().UTC().Format(time.RFC3339), Version: VaultVersion}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if err := r.fs.WriteFile(metaPath, data); err != nil {
		return fmt.Errorf("%w: write vault meta: %v", common.ErrIO, err)
	}
	return nil
}

// safePath validates every relative component before joining it under the
// vault root. No filesystem call is made for a rejected path.
func (r *VaultRepository) safePath(parts ...string) (string, error) {
	for _, p := range parts {
		if err := ValidateRelPath(p); err != nil {
			return "", err
		}
	}
	return filepath.Join(append([]string{r.root}, parts...)...), nil
}

func categoryDir(c models.Category) string { return string(c) }

func (r *VaultRepository) Load(ctx context.Context) (*models.JournalDocument, error) {
	if r.root == "" {
		return nil, common.ErrNotConfigured
	}

	doc := models.EmptyDocument()

	if err := r.loadDated(models.CategoryJournal, doc.Entries); err != nil {
		return nil, err
	}
	if err := r.loadDated(models.CategoryDreams, doc.Dreams); err != nil {
		return nil, err
	}
	if err := r.loadCollection(models.CategoryNotes, &doc.Notes); err != nil {
		return nil, err
	}
	if err := r.loadCollection(models.CategoryIdeas, &doc.Ideas); err != nil {
		return nil, err
	}
	if err := r.loadCollection(models.CategoryWisdom, &doc.Wisdom); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *VaultRepository) loadDated(c models.Category, into map[string][]models.Entry) error {
	dir, err := r.safePath(categoryDir(c))
	if err != nil {
		return err
	}
	names, err := r.fs.ListDirectory(dir)
	if err != nil {
		return fmt.Errorf("%w: list %s: %v", common.ErrIO, c, err)
	}
	for _, name := range names {
		date, ok := strings.CutSuffix(name, ".json")
		if !ok || !models.ValidDate(date) {
			continue
		}
		var entries []models.Entry
		if err := r.readJSON(&entries, categoryDir(c), name); err != nil {
			return err
		}
		if entries == nil {
			entries = []models.Entry{}
		}
		into[date] = entries
	}
	return nil
}

func (r *VaultRepository) loadCollection(c models.Category, into any) error {
	name := categoryDir(c) + ".json"
	return r.readJSON(into, categoryDir(c), name)
}

// readJSON reads and parses one vault file into v. A missing file leaves v
// untouched: that is the documented empty-state case.
func (r *VaultRepository) readJSON(v any, parts ...string) error {
	path, err := r.safePath(parts...)
	if err != nil {
		return err
	}
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", common.ErrIO, filepath.Join(parts...), err)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Join(parts...), err)
	}
	return nil
}

// SaveSlice writes only the file backing the changed slice. An empty
// sequence for a date is written as an empty array file, never an error.
func (r *VaultRepository) SaveSlice(ctx context.Context, doc *models.JournalDocument, s models.Slice) error {
	if r.root == "" {
		return common.ErrNotConfigured
	}

	if s.Category.Dated() {
		if !models.ValidDate(s.Date) {
			return common.ErrInvalidDate
		}
		entries := doc.DatedEntries(s.Category)[s.Date]
		if entries == nil {
			entries = []models.Entry{}
		}
		return r.writeJSON(entries, categoryDir(s.Category), s.Date+".json")
	}

	switch s.Category {
	case models.CategoryNotes:
		return r.writeJSON(doc.Notes, "notes", "notes.json")
	case models.CategoryIdeas:
		return r.writeJSON(doc.Ideas, "ideas", "ideas.json")
	case models.CategoryWisdom:
		return r.writeJSON(doc.Wisdom, "wisdom", "wisdom.json")
	}
	return common.ErrInvalidCategory
}

func (r *VaultRepository) writeJSON(v any, parts ...string) error {
	path, err := r.safePath(parts...)
	if err != nil {
		return err
	}
	if err := r.fs.EnsureDirectory(filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: ensure dir for %s: %v", common.ErrIO, filepath.Join(parts...), err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := r.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", common.ErrIO, filepath.Join(parts...), err)
	}
	return nil
}

// Reset leaves the vault untouched. Vault contents are user-owned files and
// are never auto-deleted; logging out only discards the in-memory document.
func (r *VaultRepository) Reset(ctx context.Context) error {
	return nil
}
