// Package store persists blueprints. The default backend is a single JSON
// document at a per-user location, read and written whole on every
// operation; a Firestore-backed remote store shares the same interface.
//
// Neither backend takes a lock: the contract assumes one CLI process at a
// time. Two concurrent invocations can lose updates.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/stencilcli/stencil/internal/domain"
)

// FileStore keeps all blueprints in one ordered JSON array on disk. Writes
// go through a temp file and rename, so a crashed write never corrupts the
// previous document.
type FileStore struct {
	fs   domain.FileSystemPort
	path string
}

func NewFileStore(fs domain.FileSystemPort, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// EnsureStore idempotently creates the storage location and an empty
// collection. Failures are absorbed; they surface later as degraded reads.
func (s *FileStore) EnsureStore(ctx context.Context) {
	_ = s.fs.MkdirAll(filepath.Dir(s.path))
	if !s.fs.Exists(s.path) {
		_ = s.fs.WriteFile(s.path, []byte("[]\n"))
	}
}

// Load returns the ordered blueprint sequence. An unreadable or corrupt
// document degrades to an empty list plus a recoverable warning wrapping
// domain.ErrStoreCorrupt; Load never fails hard.
func (s *FileStore) Load(ctx context.Context) ([]domain.Blueprint, error) {
	if !s.fs.Exists(s.path) {
		return []domain.Blueprint{}, nil
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return []domain.Blueprint{}, fmt.Errorf("%s: %w", s.path, domain.ErrStoreCorrupt)
	}
	var list []domain.Blueprint
	if err := json.Unmarshal(data, &list); err != nil {
		return []domain.Blueprint{}, fmt.Errorf("%s: %w", s.path, domain.ErrStoreCorrupt)
	}
	if list == nil {
		list = []domain.Blueprint{}
	}
	return list, nil
}

// Save appends a blueprint. Name uniqueness is the caller's responsibility;
// two processes appending concurrently is a documented race, not solved
// here.
func (s *FileStore) Save(ctx context.Context, bp domain.Blueprint) error {
	list, _ := s.Load(ctx)
	bp.Config.Name = ""
	list = append(list, bp)
	return s.persist(list)
}

// GetByName does a linear lookup over the document.
func (s *FileStore) GetByName(ctx context.Context, name string) (*domain.Blueprint, bool) {
	list, _ := s.Load(ctx)
	for i := range list {
		if list[i].Name == name {
			return &list[i], true
		}
	}
	return nil, false
}

// Update replaces a blueprint in place, preserving its position.
func (s *FileStore) Update(ctx context.Context, name string, bp domain.Blueprint) error {
	list, _ := s.Load(ctx)
	for i := range list {
		if list[i].Name == name {
			bp.Config.Name = ""
			list[i] = bp
			return s.persist(list)
		}
	}
	return fmt.Errorf("%q: %w", name, domain.ErrNotFound)
}

// Delete removes a blueprint. A missing name is an explicit NotFound, not a
// silent no-op.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	list, _ := s.Load(ctx)
	kept := list[:0]
	found := false
	for _, bp := range list {
		if bp.Name == name {
			found = true
			continue
		}
		kept = append(kept, bp)
	}
	if !found {
		return fmt.Errorf("%q: %w", name, domain.ErrNotFound)
	}
	return s.persist(kept)
}

// ExportAll serializes the current collection to an external file.
func (s *FileStore) ExportAll(ctx context.Context, path string) error {
	list, _ := s.Load(ctx)
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(path, append(data, '\n')); err != nil {
		return &domain.IOFailure{Op: "write", Path: path, Err: err}
	}
	return nil
}

// ImportAll merges records from an external file. Records missing name,
// config, or createdAt are skipped silently. With overwrite false, existing
// names are never replaced. Returns the count of records actually imported.
func (s *FileStore) ImportAll(ctx context.Context, path string, overwrite bool) (int, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return 0, &domain.IOFailure{Op: "read", Path: path, Err: err}
	}

	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	list, _ := s.Load(ctx)
	index := make(map[string]int, len(list))
	for i, bp := range list {
		index[bp.Name] = i
	}

	imported := 0
	for _, rec := range records {
		if !rec.valid() {
			continue
		}
		bp := rec.blueprint()
		if i, exists := index[bp.Name]; exists {
			if !overwrite {
				continue
			}
			list[i] = bp
		} else {
			index[bp.Name] = len(list)
			list = append(list, bp)
		}
		imported++
	}

	if imported == 0 {
		return 0, nil
	}
	if err := s.persist(list); err != nil {
		return 0, err
	}
	return imported, nil
}

func (s *FileStore) persist(list []domain.Blueprint) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := s.fs.MkdirAll(filepath.Dir(s.path)); err != nil {
		return &domain.IOFailure{Op: "mkdir", Path: filepath.Dir(s.path), Err: err}
	}
	if err := s.fs.WriteFile(tmp, append(data, '\n')); err != nil {
		return &domain.IOFailure{Op: "write", Path: tmp, Err: err}
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return &domain.IOFailure{Op: "rename", Path: s.path, Err: err}
	}
	return nil
}

// importRecord mirrors Blueprint with pointer fields so required keys can be
// distinguished from zero values during validation.
type importRecord struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Config      *domain.ProjectConfig `json:"config"`
	CreatedAt   *time.Time            `json:"created_at"`
}

func (r importRecord) valid() bool {
	return r.Name != "" && r.Config != nil && r.CreatedAt != nil
}

func (r importRecord) blueprint() domain.Blueprint {
	cfg := *r.Config
	cfg.Name = ""
	return domain.Blueprint{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Config:      cfg,
		CreatedAt:   *r.CreatedAt,
	}
}
