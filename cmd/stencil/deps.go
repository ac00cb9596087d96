package main

import (
	"context"
	"os"

	"github.com/stencilcli/stencil/internal/application"
	"github.com/stencilcli/stencil/internal/domain"
	"github.com/stencilcli/stencil/internal/generator"
	"github.com/stencilcli/stencil/internal/infrastructure"
	"github.com/stencilcli/stencil/internal/paths"
	"github.com/stencilcli/stencil/internal/store"
	"github.com/stencilcli/stencil/internal/ui"
)

// runtimeDeps bundles the wired adapters each command needs.
type runtimeDeps struct {
	svc        *application.ScaffoldService
	fs         domain.FileSystemPort
	log        *ui.Logger
	outputRoot string
	cleanup    func()
}

// newDeps resolves paths, picks the blueprint store backend, and builds the
// service. The returned cleanup must run before exit.
func newDeps(ctx context.Context) (*runtimeDeps, error) {
	fs := infrastructure.NewOSFileSystem()
	log := ui.New(os.Stdout, os.Stderr)

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	var repo domain.BlueprintRepository
	cleanup := func() {}

	project := remoteProject
	if project == "" {
		project = os.Getenv("STENCIL_FIRESTORE_PROJECT")
	}
	if project != "" {
		fsStore, err := store.NewFirestoreStore(ctx, fs, project, os.Getenv("STENCIL_CREDENTIALS_FILE"))
		if err != nil {
			return nil, err
		}
		repo = fsStore
		cleanup = fsStore.Close
	} else {
		dataDir := paths.DataDir(os.Getenv, home)
		repo = store.NewFileStore(fs, paths.BlueprintDocPath(dataDir))
	}
	repo.EnsureStore(ctx)

	return &runtimeDeps{
		svc:        application.NewScaffoldService(repo, fs, generator.NewRenderer(), log),
		fs:         fs,
		log:        log,
		outputRoot: paths.OutputRoot(os.Getenv, home),
		cleanup:    cleanup,
	}, nil
}
