package domain

import "context"

// FileSystemPort defines the interface for file and directory operations.
type FileSystemPort interface {
	MkdirAll(path string) error
	WriteFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
	Rename(oldPath, newPath string) error
	Remove(path string) error
	Exists(path string) bool
}

// TemplatePort defines the interface for rendering templates. Known reports
// whether the identifier belongs to the closed template set; Render returns
// empty content for unknown identifiers.
type TemplatePort interface {
	Known(id TemplateID) bool
	Render(id TemplateID, cfg ProjectConfig) ([]byte, error)
}

// BlueprintRepository defines CRUD over persisted configuration snapshots.
// Name uniqueness on Save is checked by the caller; concurrent writers from
// separate processes are a documented, unsolved race.
type BlueprintRepository interface {
	EnsureStore(ctx context.Context)
	Load(ctx context.Context) ([]Blueprint, error)
	Save(ctx context.Context, bp Blueprint) error
	GetByName(ctx context.Context, name string) (*Blueprint, bool)
	Update(ctx context.Context, name string, bp Blueprint) error
	Delete(ctx context.Context, name string) error
	ExportAll(ctx context.Context, path string) error
	ImportAll(ctx context.Context, path string, overwrite bool) (int, error)
}
