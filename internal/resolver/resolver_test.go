package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencilcli/stencil/internal/domain"
)

// walk answers questions from the given script until the graph is terminal,
// returning the order the fields were asked in.
func walk(t *testing.T, g *Graph, s *Session, script map[Field]Answer) []Field {
	t.Helper()
	var asked []Field
	for {
		q, ok := g.Next(s)
		if !ok {
			return asked
		}
		asked = append(asked, q.Field)
		a, scripted := script[q.Field]
		require.True(t, scripted, "no scripted answer for %q", q.Field)
		require.NoError(t, g.Answer(s, q.Field, a))
	}
}

func backendScript() map[Field]Answer {
	return map[Field]Answer{
		FieldProjectType:   {Text: "backend"},
		FieldProjectName:   {Text: "api"},
		FieldFeatures:      {List: []string{OptAuthentication, OptCRUDSetup}},
		FieldAPIType:       {Text: "rest"},
		FieldDatabase:      {Text: "postgres"},
		FieldRoleBasedAuth: {Bool: true},
		FieldJWTSetup:      {Bool: false},
		FieldAPIVersioning: {Bool: true},
	}
}

func TestBackendWalkSkipsClientQuestions(t *testing.T) {
	g := New()
	s := g.NewSession()

	asked := walk(t, g, s, backendScript())

	assert.NotContains(t, asked, FieldStateManagement)
	assert.NotContains(t, asked, FieldThemeToggle)
	assert.Contains(t, asked, FieldDatabase)
	assert.Contains(t, asked, FieldAPIVersioning)

	cfg := s.Config()
	assert.Equal(t, domain.TypeBackend, cfg.Type)
	assert.Equal(t, "api", cfg.Name)
	assert.Equal(t, domain.DBPostgres, cfg.Backend.Database)
	assert.True(t, cfg.Backend.RoleBasedAuth)
	assert.True(t, cfg.Backend.APIVersioning)
	assert.Equal(t, domain.StateNone, cfg.StateManagement, "unanswered state defaults to none")
}

func TestMobileWalkSkipsBackendQuestions(t *testing.T) {
	g := New()
	s := g.NewSession()

	asked := walk(t, g, s, map[Field]Answer{
		FieldProjectType:     {Text: "mobile"},
		FieldProjectName:     {Text: "mob"},
		FieldFeatures:        {List: []string{OptAuthentication}},
		FieldStateManagement: {Text: "context"},
		FieldThemeToggle:     {Bool: true},
		FieldAPIType:         {Text: "rest"},
	})

	assert.Contains(t, asked, FieldStateManagement)
	assert.Contains(t, asked, FieldThemeToggle)
	assert.NotContains(t, asked, FieldDatabase)
	assert.NotContains(t, asked, FieldRoleBasedAuth)
	assert.NotContains(t, asked, FieldAPIVersioning)

	cfg := s.Config()
	assert.Equal(t, domain.StateContext, cfg.StateManagement)
	assert.True(t, cfg.ThemeToggle)
}

func TestWebWalkAsksEverything(t *testing.T) {
	g := New()
	s := g.NewSession()

	asked := walk(t, g, s, map[Field]Answer{
		FieldProjectType:     {Text: "web"},
		FieldProjectName:     {Text: "app"},
		FieldFeatures:        {List: []string{OptResponsiveLayout}},
		FieldStateManagement: {Text: "redux"},
		FieldThemeToggle:     {Bool: false},
		FieldAPIType:         {Text: "graphql"},
		FieldDatabase:        {Text: "mongodb"},
		FieldRoleBasedAuth:   {Bool: false},
		FieldJWTSetup:        {Bool: true},
		FieldAPIVersioning:   {Bool: false},
	})

	assert.Len(t, asked, 10, "web walks the full graph")

	cfg := s.Config()
	assert.Equal(t, domain.APIGraphQL, cfg.APIType)
	assert.True(t, cfg.Backend.JWTSetup)
}

func TestProjectTypeIsAskedFirst(t *testing.T) {
	g := New()
	q, ok := g.Next(g.NewSession())
	require.True(t, ok)
	assert.Equal(t, FieldProjectType, q.Field)
	assert.Equal(t, KindSelect, q.Kind)
	assert.Equal(t, []string{"web", "mobile", "backend"}, q.Options)
}

func TestInvalidAnswerIsRecoverable(t *testing.T) {
	g := New()
	s := g.NewSession()

	err := g.Answer(s, FieldProjectType, Answer{Text: "desktop"})
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	// The field stays unanswered, so the same question comes back.
	q, ok := g.Next(s)
	require.True(t, ok)
	assert.Equal(t, FieldProjectType, q.Field)

	require.NoError(t, g.Answer(s, FieldProjectType, Answer{Text: "web"}))
	q, ok = g.Next(s)
	require.True(t, ok)
	assert.NotEqual(t, FieldProjectType, q.Field)
}

func TestNameCheckerRejectionKeepsAsking(t *testing.T) {
	taken := map[string]bool{"existing": true}
	g := New(WithNameChecker(func(name string) error {
		if err := domain.ValidateName(name); err != nil {
			return err
		}
		if taken[name] {
			return &domain.ValidationError{Field: "name", Msg: name + " already exists"}
		}
		return nil
	}))
	s := g.NewSession()
	require.NoError(t, g.Answer(s, FieldProjectType, Answer{Text: "web"}))

	err := g.Answer(s, FieldProjectName, Answer{Text: "existing"})
	require.Error(t, err)
	assert.False(t, s.answered[FieldProjectName])

	require.NoError(t, g.Answer(s, FieldProjectName, Answer{Text: "fresh"}))
	assert.Equal(t, "fresh", s.cfg.Name)
}

func TestPaddedProjectNameRejected(t *testing.T) {
	g := New()
	s := g.NewSession()
	require.NoError(t, g.Answer(s, FieldProjectType, Answer{Text: "web"}))

	err := g.Answer(s, FieldProjectName, Answer{Text: "  app  "})
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, s.cfg.Name, "a padded name must never reach the config")
	assert.False(t, s.answered[FieldProjectName])
}

func TestUnknownFeatureFails(t *testing.T) {
	g := New()
	s := g.NewSession()
	require.NoError(t, g.Answer(s, FieldProjectType, Answer{Text: "web"}))

	err := g.Answer(s, FieldFeatures, Answer{List: []string{"teleportation"}})
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUnknownFieldFails(t *testing.T) {
	g := New()
	assert.Error(t, g.Answer(g.NewSession(), Field("bogus"), Answer{}))
}

func TestAuthCouplingHidesAuthQuestions(t *testing.T) {
	g := New(WithAuthCoupling())
	s := g.NewSession()

	script := backendScript()
	script[FieldFeatures] = Answer{List: []string{OptCRUDSetup}} // no authentication
	asked := walk(t, g, s, script)

	assert.NotContains(t, asked, FieldRoleBasedAuth)
	assert.NotContains(t, asked, FieldJWTSetup)
	assert.Contains(t, asked, FieldAPIVersioning)
}

func TestAuthCouplingAsksWhenAuthEnabled(t *testing.T) {
	g := New(WithAuthCoupling())
	s := g.NewSession()

	asked := walk(t, g, s, backendScript())
	assert.Contains(t, asked, FieldRoleBasedAuth)
	assert.Contains(t, asked, FieldJWTSetup)
}

func TestBlueprintSessionOnlyAsksName(t *testing.T) {
	g := New()
	bp := domain.Blueprint{
		Name: "shape",
		Config: domain.ProjectConfig{
			Type:            domain.TypeWeb,
			StateManagement: domain.StateRedux,
			Features:        domain.Features{Authentication: true},
			Backend:         domain.BackendOptions{Database: domain.DBMongo},
		},
	}
	s := g.NewBlueprintSession(bp)

	q, ok := g.Next(s)
	require.True(t, ok)
	assert.Equal(t, FieldProjectName, q.Field)

	require.NoError(t, g.Answer(s, FieldProjectName, Answer{Text: "revived"}))
	_, ok = g.Next(s)
	assert.False(t, ok)

	cfg := s.Config()
	assert.Equal(t, "revived", cfg.Name)
	assert.Equal(t, domain.StateRedux, cfg.StateManagement)
	assert.True(t, cfg.Features.Authentication)
}
