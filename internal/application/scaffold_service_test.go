package application

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencilcli/stencil/internal/domain"
	"github.com/stencilcli/stencil/internal/generator"
	"github.com/stencilcli/stencil/internal/infrastructure"
	"github.com/stencilcli/stencil/internal/store"
	"github.com/stencilcli/stencil/internal/ui"
)

func newTestService(t *testing.T) (*ScaffoldService, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	fs := infrastructure.NewOSFileSystem()
	repo := store.NewFileStore(fs, filepath.Join(t.TempDir(), "blueprints.json"))
	repo.EnsureStore(context.Background())

	var out, errOut bytes.Buffer
	svc := NewScaffoldService(repo, fs, generator.NewRenderer(), ui.New(&out, &errOut))
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "fixed-id" }
	return svc, &out, &errOut
}

func webConfig(name string) domain.ProjectConfig {
	return domain.ProjectConfig{
		Type:            domain.TypeWeb,
		Name:            name,
		StateManagement: domain.StateRedux,
		Features:        domain.Features{Authentication: true},
		APIType:         domain.APIRest,
		Backend:         domain.BackendOptions{Database: domain.DBMongo},
	}
}

func TestCreateProjectWritesTree(t *testing.T) {
	svc, out, _ := newTestService(t)
	root := t.TempDir()
	cfg := webConfig("myapp")

	err := svc.CreateProject(context.Background(), cfg, CreateOptions{OutputRoot: root})
	require.NoError(t, err)

	for _, rel := range []string{
		"package.json",
		".env",
		".env.example",
		filepath.Join("src", "index.jsx"),
		filepath.Join("src", "store", "index.js"),
		filepath.Join("server", "index.js"),
	} {
		_, statErr := os.Stat(filepath.Join(root, "myapp", rel))
		assert.NoError(t, statErr, "expected %s", rel)
	}
	assert.Contains(t, out.String(), "created myapp")
}

func TestCreateProjectDryRunWritesNothing(t *testing.T) {
	svc, out, _ := newTestService(t)
	root := t.TempDir()

	err := svc.CreateProject(context.Background(), webConfig("preview"), CreateOptions{OutputRoot: root, DryRun: true})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(root, "preview"))
	assert.True(t, os.IsNotExist(statErr), "dry run must not create the project root")
	assert.Contains(t, out.String(), "dry run complete")
	assert.Contains(t, out.String(), "package.json")
}

func TestCreateProjectRejectsExistingDestination(t *testing.T) {
	svc, _, _ := newTestService(t)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "taken"), 0755))

	err := svc.CreateProject(context.Background(), webConfig("taken"), CreateOptions{OutputRoot: root})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSaveAndCreateFromBlueprint(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	root := t.TempDir()

	require.NoError(t, svc.SaveBlueprint(ctx, "web-auth", "web app with auth", webConfig("ignored")))

	err := svc.CreateFromBlueprint(ctx, "web-auth", "revived", CreateOptions{OutputRoot: root})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(root, "revived", "package.json"))
	assert.NoError(t, statErr)
}

func TestCreateFromMissingBlueprint(t *testing.T) {
	svc, _, _ := newTestService(t)
	err := svc.CreateFromBlueprint(context.Background(), "ghost", "proj", CreateOptions{OutputRoot: t.TempDir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "ghost")
}

func TestCreateFromBlueprintValidatesProjectName(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.SaveBlueprint(ctx, "shape", "", webConfig("x")))

	err := svc.CreateFromBlueprint(ctx, "shape", "9bad", CreateOptions{OutputRoot: t.TempDir()})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSaveBlueprintRejectsDuplicateName(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveBlueprint(ctx, "dup", "", webConfig("a")))
	err := svc.SaveBlueprint(ctx, "dup", "", webConfig("b"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSaveBlueprintRejectsBadName(t *testing.T) {
	svc, _, _ := newTestService(t)
	err := svc.SaveBlueprint(context.Background(), "bad name!", "", webConfig("x"))
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSaveBlueprintStampsIdentityAndTime(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.SaveBlueprint(ctx, "stamped", "", webConfig("x")))

	list := svc.ListBlueprints(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "fixed-id", list[0].ID)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), list[0].CreatedAt)
	assert.Empty(t, list[0].Config.Name)
}

func TestListBlueprintsWarnsOnCorruptStore(t *testing.T) {
	fs := infrastructure.NewOSFileSystem()
	path := filepath.Join(t.TempDir(), "blueprints.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	var out, errOut bytes.Buffer
	svc := NewScaffoldService(store.NewFileStore(fs, path), fs, generator.NewRenderer(), ui.New(&out, &errOut))

	list := svc.ListBlueprints(context.Background())
	assert.Empty(t, list)
	assert.Contains(t, errOut.String(), "empty collection")
}

func TestDeleteBlueprint(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.SaveBlueprint(ctx, "gone", "", webConfig("x")))

	require.NoError(t, svc.DeleteBlueprint(ctx, "gone"))
	assert.Empty(t, svc.ListBlueprints(ctx))

	err := svc.DeleteBlueprint(ctx, "gone")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportImportBlueprints(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.SaveBlueprint(ctx, "a", "", webConfig("x")))
	require.NoError(t, svc.SaveBlueprint(ctx, "b", "", webConfig("y")))

	exportPath := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, svc.ExportBlueprints(ctx, exportPath))

	other, out, _ := newTestService(t)
	require.NoError(t, other.ImportBlueprints(ctx, exportPath, false))
	assert.Contains(t, out.String(), "imported 2 blueprint(s)")
	assert.Len(t, other.ListBlueprints(ctx), 2)
}
