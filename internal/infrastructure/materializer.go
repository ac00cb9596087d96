package infrastructure

import (
	"fmt"
	"path/filepath"

	"github.com/stencilcli/stencil/internal/domain"
)

// Event describes one materialization step. Dry runs emit the exact same
// event sequence as real runs, so the stream is a faithful preview.
type Event struct {
	Op   string // "mkdir" or "write"
	Path string
}

// Materializer executes scaffold plans against the filesystem, or simulates
// them. It renders file contents through the template port; all side effects
// of a run happen here.
type Materializer struct {
	fs       domain.FileSystemPort
	renderer domain.TemplatePort
	observe  func(Event)
	warnf    func(format string, args ...any)
}

// NewMaterializer builds a materializer. observe receives one event per
// planned directory and file; warnf receives degradation notices (unknown
// template ids). Either may be nil.
func NewMaterializer(fs domain.FileSystemPort, renderer domain.TemplatePort, observe func(Event), warnf func(string, ...any)) *Materializer {
	m := &Materializer{fs: fs, renderer: renderer, observe: observe, warnf: warnf}
	if m.observe == nil {
		m.observe = func(Event) {}
	}
	if m.warnf == nil {
		m.warnf = func(string, ...any) {}
	}
	return m
}

// CreateProjectRoot prepares the destination directory. An existing
// destination is a conflict, checked before any write; the check is skipped
// only for dry runs, which never mutate anything.
func (m *Materializer) CreateProjectRoot(path string, dryRun bool) error {
	if m.fs.Exists(path) && !dryRun {
		return fmt.Errorf("%s: %w", path, domain.ErrConflict)
	}
	if dryRun {
		return nil
	}
	if err := m.fs.MkdirAll(path); err != nil {
		return &domain.IOFailure{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// Materialize creates the planned directories, then renders and writes the
// planned files. Directory creation is idempotent; existing files are
// overwritten silently (path conflicts were already resolved by the
// planner). The first I/O error aborts the rest of the plan and carries the
// offending path; partially written output is not rolled back.
func (m *Materializer) Materialize(plan domain.Plan, rootPath string, cfg domain.ProjectConfig, dryRun bool) error {
	for _, dir := range plan.Dirs {
		full := filepath.Join(rootPath, filepath.FromSlash(dir))
		m.observe(Event{Op: "mkdir", Path: dir})
		if dryRun {
			continue
		}
		if err := m.fs.MkdirAll(full); err != nil {
			return &domain.IOFailure{Op: "mkdir", Path: full, Err: err}
		}
	}

	for _, f := range plan.Files {
		if !m.renderer.Known(f.Template) {
			m.warnf("unknown template %q for %s, writing empty content", f.Template, f.Path)
		}
		content, err := m.renderer.Render(f.Template, cfg)
		if err != nil {
			return &domain.IOFailure{Op: "render", Path: f.Path, Err: err}
		}

		full := filepath.Join(rootPath, filepath.FromSlash(f.Path))
		m.observe(Event{Op: "write", Path: f.Path})
		if dryRun {
			continue
		}
		if err := m.fs.MkdirAll(filepath.Dir(full)); err != nil {
			return &domain.IOFailure{Op: "mkdir", Path: filepath.Dir(full), Err: err}
		}
		if err := m.fs.WriteFile(full, content); err != nil {
			return &domain.IOFailure{Op: "write", Path: full, Err: err}
		}
	}

	return nil
}
