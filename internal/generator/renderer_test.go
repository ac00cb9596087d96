package generator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencilcli/stencil/internal/domain"
)

func render(t *testing.T, id domain.TemplateID, cfg domain.ProjectConfig) string {
	t.Helper()
	out, err := NewRenderer().Render(id, cfg)
	require.NoError(t, err)
	return string(out)
}

func TestUnknownTemplateRendersEmpty(t *testing.T) {
	r := NewRenderer()
	assert.False(t, r.Known("no-such-template"))

	out, err := r.Render("no-such-template", domain.ProjectConfig{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPlannedTemplatesAreAllKnown(t *testing.T) {
	r := NewRenderer()
	ids := []domain.TemplateID{
		domain.TemplateManifest, domain.TemplateReadme, domain.TemplateGitignore,
		domain.TemplateEnvReal, domain.TemplateEnvExample, domain.TemplateServerEntry,
		domain.TemplateRouteIndex, domain.TemplateVersionedIdx, domain.TemplateDBConfig,
		domain.TemplateWebEntry, domain.TemplateAppShell, domain.TemplateMobileApp,
		domain.TemplateAuthSlice, domain.TemplateAuthContext, domain.TemplateThemeToggle,
	}
	for _, id := range ids {
		assert.True(t, r.Known(id), "template %q must be known", id)
	}
}

func TestExampleEnvNeverLeaksRealSecret(t *testing.T) {
	cfgs := []domain.ProjectConfig{
		{Type: domain.TypeBackend, Name: "api", Features: domain.Features{Authentication: true},
			Backend: domain.BackendOptions{Database: domain.DBMongo}},
		{Type: domain.TypeWeb, Name: "app", Features: domain.Features{Authentication: true},
			Backend: domain.BackendOptions{Database: domain.DBPostgres, JWTSetup: true}},
		{Type: domain.TypeMobile, Name: "mob", Features: domain.Features{Authentication: true}},
	}

	for _, cfg := range cfgs {
		real := render(t, domain.TemplateEnvReal, cfg)
		example := render(t, domain.TemplateEnvExample, cfg)

		require.Contains(t, real, "JWT_SECRET=")
		require.Contains(t, example, "JWT_SECRET=")

		realSecret := envValue(t, real, "JWT_SECRET")
		exampleSecret := envValue(t, example, "JWT_SECRET")

		assert.NotEqual(t, realSecret, exampleSecret)
		assert.NotContains(t, example, devJWTSecret)
	}
}

func TestEnvOmitsSecretWithoutAuthOrJWT(t *testing.T) {
	cfg := domain.ProjectConfig{Type: domain.TypeBackend, Name: "api",
		Backend: domain.BackendOptions{Database: domain.DBMongo}}
	assert.NotContains(t, render(t, domain.TemplateEnvReal, cfg), "JWT_SECRET")
}

func TestEnvIgnoresBackendOptionsForMobile(t *testing.T) {
	cfg := domain.ProjectConfig{
		Type:    domain.TypeMobile,
		Name:    "mob",
		Backend: domain.BackendOptions{Database: domain.DBMongo, JWTSetup: true, APIVersioning: true},
	}

	for _, id := range []domain.TemplateID{domain.TemplateEnvReal, domain.TemplateEnvExample} {
		out := render(t, id, cfg)
		assert.NotContains(t, out, "JWT_SECRET", "%s must not consume jwt setup for mobile", id)
		assert.NotContains(t, out, "/api/v1", "%s must not consume api versioning for mobile", id)
	}

	assert.Contains(t, render(t, domain.TemplateEnvReal, cfg), "API_BASE_URL=http://localhost:4000/api")
}

func TestEnvDatabaseVariants(t *testing.T) {
	base := domain.ProjectConfig{Type: domain.TypeBackend, Name: "api"}

	base.Backend.Database = domain.DBMongo
	assert.Contains(t, render(t, domain.TemplateEnvReal, base), "MONGO_URI=mongodb://localhost:27017/api")

	base.Backend.Database = domain.DBPostgres
	assert.Contains(t, render(t, domain.TemplateEnvReal, base), "DATABASE_URL=postgres://")

	base.Backend.Database = domain.DBMySQL
	assert.Contains(t, render(t, domain.TemplateEnvReal, base), "DATABASE_URL=mysql://")
}

func TestServerEntryMountsVersionedPath(t *testing.T) {
	cfg := domain.ProjectConfig{
		Type:     domain.TypeBackend,
		Name:     "api",
		Features: domain.Features{Authentication: true},
		Backend:  domain.BackendOptions{Database: domain.DBMongo, APIVersioning: true},
	}

	entry := render(t, domain.TemplateServerEntry, cfg)
	assert.Contains(t, entry, "require('./routes/v1')")
	assert.Contains(t, entry, "app.use('/api/v1', routes);")
	assert.NotContains(t, entry, "app.use('/api', routes);")
}

func TestServerEntryMountsUnversionedPath(t *testing.T) {
	cfg := domain.ProjectConfig{Type: domain.TypeBackend, Name: "api",
		Backend: domain.BackendOptions{Database: domain.DBMongo}}

	entry := render(t, domain.TemplateServerEntry, cfg)
	assert.Contains(t, entry, "require('./routes')")
	assert.Contains(t, entry, "app.use('/api', routes);")
	assert.NotContains(t, entry, "/api/v1")
}

func TestManifestDependenciesFollowFlags(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.ProjectConfig
		want    []string
		wantNot []string
		script  string
	}{
		{
			name: "backend mongo with auth",
			cfg: domain.ProjectConfig{Type: domain.TypeBackend, Name: "api",
				Features: domain.Features{Authentication: true},
				Backend:  domain.BackendOptions{Database: domain.DBMongo}},
			want:    []string{"express", "mongoose", "jsonwebtoken", "bcryptjs"},
			wantNot: []string{"react", "pg"},
			script:  "start",
		},
		{
			name: "web redux graphql",
			cfg: domain.ProjectConfig{Type: domain.TypeWeb, Name: "app",
				StateManagement: domain.StateRedux, APIType: domain.APIGraphQL,
				Backend: domain.BackendOptions{Database: domain.DBPostgres}},
			want:    []string{"react", "@reduxjs/toolkit", "react-redux", "@apollo/client", "pg"},
			wantNot: []string{"mongoose", "react-native"},
			script:  "dev",
		},
		{
			name: "mobile plain",
			cfg:  domain.ProjectConfig{Type: domain.TypeMobile, Name: "mob"},
			want: []string{"react-native", "@react-navigation/native"},
			wantNot: []string{
				"express", "mongoose", "jsonwebtoken",
			},
			script: "android",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, domain.TemplateManifest, tt.cfg)

			var m struct {
				Name         string            `json:"name"`
				Scripts      map[string]string `json:"scripts"`
				Dependencies map[string]string `json:"dependencies"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &m))
			assert.Equal(t, tt.cfg.Name, m.Name)
			assert.Contains(t, m.Scripts, tt.script)

			for _, dep := range tt.want {
				assert.Contains(t, m.Dependencies, dep)
			}
			for _, dep := range tt.wantNot {
				assert.NotContains(t, m.Dependencies, dep)
			}
		})
	}
}

func TestManifestIsDeterministic(t *testing.T) {
	cfg := domain.ProjectConfig{Type: domain.TypeWeb, Name: "app",
		StateManagement: domain.StateRedux,
		Features:        domain.Features{Authentication: true, CRUDSetup: true},
		Backend:         domain.BackendOptions{Database: domain.DBMongo}}

	first := render(t, domain.TemplateManifest, cfg)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, render(t, domain.TemplateManifest, cfg))
	}
}

func TestWebEntryWiresStateProvider(t *testing.T) {
	cfg := domain.ProjectConfig{Type: domain.TypeWeb, Name: "app",
		StateManagement: domain.StateRedux, Features: domain.Features{Authentication: true}}
	entry := render(t, domain.TemplateWebEntry, cfg)
	assert.Contains(t, entry, "react-redux")
	assert.Contains(t, entry, "<Provider store={store}>")

	cfg.StateManagement = domain.StateContext
	entry = render(t, domain.TemplateWebEntry, cfg)
	assert.Contains(t, entry, "AuthProvider")
	assert.NotContains(t, entry, "react-redux")
}

func TestLoginPageSwitchesOnTarget(t *testing.T) {
	web := render(t, domain.TemplateLoginPage, domain.ProjectConfig{Type: domain.TypeWeb})
	assert.Contains(t, web, "<form")
	assert.NotContains(t, web, "react-native")

	mobile := render(t, domain.TemplateLoginPage, domain.ProjectConfig{Type: domain.TypeMobile})
	assert.Contains(t, mobile, "react-native")
	assert.NotContains(t, mobile, "<form")
}

// envValue extracts KEY=value from rendered env text.
func envValue(t *testing.T, env, key string) string {
	t.Helper()
	for _, line := range strings.Split(env, "\n") {
		if strings.HasPrefix(line, key+"=") {
			return strings.TrimPrefix(line, key+"=")
		}
	}
	t.Fatalf("no %s line in:\n%s", key, env)
	return ""
}
