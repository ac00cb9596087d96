// Package application wires the core components together behind the
// operations the CLI exposes: creating projects and managing blueprints.
package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/stencilcli/stencil/internal/domain"
	"github.com/stencilcli/stencil/internal/infrastructure"
	"github.com/stencilcli/stencil/internal/planner"
	"github.com/stencilcli/stencil/internal/ui"
)

// ScaffoldService orchestrates resolver or blueprint input through the
// planner, renderer, and materializer, and fronts the blueprint repository.
type ScaffoldService struct {
	repo     domain.BlueprintRepository
	fs       domain.FileSystemPort
	renderer domain.TemplatePort
	log      *ui.Logger
	now      func() time.Time
	newID    func() string
}

func NewScaffoldService(repo domain.BlueprintRepository, fs domain.FileSystemPort, renderer domain.TemplatePort, log *ui.Logger) *ScaffoldService {
	return &ScaffoldService{
		repo:     repo,
		fs:       fs,
		renderer: renderer,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// CreateOptions carries the per-invocation overrides for project creation.
type CreateOptions struct {
	OutputRoot string
	DryRun     bool
}

// CreateProject plans, renders, and materializes one project. The full plan
// is computed before the first write; dry runs traverse the identical plan
// without touching the filesystem.
func (s *ScaffoldService) CreateProject(ctx context.Context, cfg domain.ProjectConfig, opts CreateOptions) error {
	plan := planner.Plan(cfg)
	root := filepath.Join(opts.OutputRoot, cfg.Name)

	mat := infrastructure.NewMaterializer(s.fs, s.renderer, func(ev infrastructure.Event) {
		s.log.Itemf("%s %s", ev.Op, ev.Path)
	}, s.log.Warnf)

	if opts.DryRun {
		s.log.Infof("dry run: previewing %s (no files will be written)", root)
	} else {
		s.log.Infof("creating %s", root)
	}

	if err := mat.CreateProjectRoot(root, opts.DryRun); err != nil {
		return err
	}
	if err := mat.Materialize(plan, root, cfg, opts.DryRun); err != nil {
		return err
	}

	if opts.DryRun {
		s.log.Successf("dry run complete: %d directories, %d files", len(plan.Dirs), len(plan.Files))
	} else {
		s.log.Successf("created %s", cfg.Name)
	}
	return nil
}

// CreateFromBlueprint resolves a stored blueprint plus a fresh project name
// and creates the project.
func (s *ScaffoldService) CreateFromBlueprint(ctx context.Context, blueprintName, projectName string, opts CreateOptions) error {
	bp, ok := s.repo.GetByName(ctx, blueprintName)
	if !ok {
		return fmt.Errorf("blueprint %q: %w", blueprintName, domain.ErrNotFound)
	}
	if err := domain.ValidateName(projectName); err != nil {
		return err
	}
	return s.CreateProject(ctx, bp.Apply(projectName), opts)
}

// SaveBlueprint persists a named snapshot of cfg. The project name is
// stripped; name uniqueness within the store is checked here, before the
// append.
func (s *ScaffoldService) SaveBlueprint(ctx context.Context, name, description string, cfg domain.ProjectConfig) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}
	if _, exists := s.repo.GetByName(ctx, name); exists {
		return fmt.Errorf("blueprint %q: %w", name, domain.ErrConflict)
	}
	bp := domain.Blueprint{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		Config:      cfg,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Save(ctx, bp); err != nil {
		return err
	}
	s.log.Successf("saved blueprint %q", name)
	return nil
}

// ListBlueprints returns the stored blueprints in insertion order. A corrupt
// store degrades to an empty listing with a warning.
func (s *ScaffoldService) ListBlueprints(ctx context.Context) []domain.Blueprint {
	list, err := s.repo.Load(ctx)
	if err != nil {
		s.logStoreWarning(err)
	}
	return list
}

// DeleteBlueprint removes a named blueprint; a missing name is NotFound.
func (s *ScaffoldService) DeleteBlueprint(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.log.Successf("deleted blueprint %q", name)
	return nil
}

// ExportBlueprints writes the whole collection to path.
func (s *ScaffoldService) ExportBlueprints(ctx context.Context, path string) error {
	if err := s.repo.ExportAll(ctx, path); err != nil {
		return err
	}
	s.log.Successf("exported blueprints to %s", path)
	return nil
}

// ImportBlueprints merges records from path into the store.
func (s *ScaffoldService) ImportBlueprints(ctx context.Context, path string, overwrite bool) error {
	n, err := s.repo.ImportAll(ctx, path, overwrite)
	if err != nil {
		return err
	}
	s.log.Successf("imported %d blueprint(s) from %s", n, path)
	return nil
}

func (s *ScaffoldService) logStoreWarning(err error) {
	if errors.Is(err, domain.ErrStoreCorrupt) {
		s.log.Warnf("blueprint store unreadable, continuing with an empty collection (%v)", err)
		return
	}
	s.log.Warnf("%v", err)
}
