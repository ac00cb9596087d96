// Package resolver models the dependency structure between successive
// configuration answers as a directed graph of typed question nodes with
// visible-if predicates. It is decoupled from prompt I/O: the CLI walks the
// graph with huh forms, tests walk it with canned answers.
package resolver

import (
	"fmt"

	"github.com/stencilcli/stencil/internal/domain"
)

// Field identifies one question group.
type Field string

const (
	FieldProjectType     Field = "projectType"
	FieldProjectName     Field = "projectName"
	FieldFeatures        Field = "features"
	FieldStateManagement Field = "stateManagement"
	FieldThemeToggle     Field = "themeToggle"
	FieldAPIType         Field = "apiType"
	FieldDatabase        Field = "backend.database"
	FieldRoleBasedAuth   Field = "backend.roleBasedAuth"
	FieldJWTSetup        Field = "backend.jwtSetup"
	FieldAPIVersioning   Field = "backend.apiVersioning"
)

// Kind is the constraint shape of a question.
type Kind int

const (
	KindSelect Kind = iota
	KindMultiSelect
	KindConfirm
	KindText
)

// Feature option labels for the multi-select node.
const (
	OptAuthentication   = "authentication"
	OptUserProfiles     = "userProfiles"
	OptUserSettings     = "userSettings"
	OptResponsiveLayout = "responsiveLayout"
	OptCRUDSetup        = "crudSetup"
)

// Question is what the caller must ask next: the field, its constraint kind,
// and the enumerated choices for selects.
type Question struct {
	Field   Field
	Kind    Kind
	Prompt  string
	Options []string
}

// Answer carries the value for one question. Text for selects and free
// text, Bool for confirms, List for multi-selects.
type Answer struct {
	Text string
	Bool bool
	List []string
}

// Session is a partially built config plus the set of answered fields.
type Session struct {
	cfg      domain.ProjectConfig
	answered map[Field]bool
}

// Config returns the resolved ProjectConfig. Only meaningful once the graph
// reports no next question.
func (s *Session) Config() domain.ProjectConfig {
	cfg := s.cfg
	if cfg.StateManagement == "" {
		cfg.StateManagement = domain.StateNone
	}
	return cfg
}

type node struct {
	q       Question
	visible func(*Session) bool
	apply   func(*Graph, *Session, Answer) error
}

// Graph is the fixed question graph. Node order is the prompt order; the
// visible-if predicates encode the conditional edges.
type Graph struct {
	nodes      []node
	nameCheck  func(string) error
	coupleAuth bool
}

// Option configures graph construction.
type Option func(*Graph)

// WithNameChecker supplies the project-name validator, typically shape
// validation plus a directory-collision check against the output root.
func WithNameChecker(fn func(string) error) Option {
	return func(g *Graph) { g.nameCheck = fn }
}

// WithAuthCoupling hides the roleBasedAuth and jwtSetup questions unless
// authentication is enabled. The default leaves them independent; the
// coupling is a predicate, not a hard rule.
func WithAuthCoupling() Option {
	return func(g *Graph) { g.coupleAuth = true }
}

// New builds the question graph.
func New(opts ...Option) *Graph {
	g := &Graph{nameCheck: domain.ValidateName}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = buildNodes(g)
	return g
}

// NewSession starts an empty resolution walk.
func (g *Graph) NewSession() *Session {
	return &Session{answered: make(map[Field]bool)}
}

// NewBlueprintSession short-circuits the graph with a blueprint: every field
// except the project name is taken as answered.
func (g *Graph) NewBlueprintSession(bp domain.Blueprint) *Session {
	s := &Session{cfg: bp.Config, answered: make(map[Field]bool)}
	for _, n := range g.nodes {
		if n.q.Field != FieldProjectName {
			s.answered[n.q.Field] = true
		}
	}
	return s
}

// Next returns the next required question, or ok=false when the session is
// terminal: every visible node answered, config invariant-satisfying.
func (g *Graph) Next(s *Session) (Question, bool) {
	for _, n := range g.nodes {
		if s.answered[n.q.Field] {
			continue
		}
		if n.visible != nil && !n.visible(s) {
			continue
		}
		return n.q, true
	}
	return Question{}, false
}

// Answer validates and applies a value for the given field, then marks it
// answered. Validation failures are recoverable: the caller re-prompts.
func (g *Graph) Answer(s *Session, f Field, a Answer) error {
	for _, n := range g.nodes {
		if n.q.Field != f {
			continue
		}
		if err := n.apply(g, s, a); err != nil {
			return err
		}
		s.answered[f] = true
		return nil
	}
	return fmt.Errorf("unknown field %q", f)
}

func buildNodes(g *Graph) []node {
	webOrMobile := func(s *Session) bool {
		return s.cfg.Type == domain.TypeWeb || s.cfg.Type == domain.TypeMobile
	}
	usesBackend := func(s *Session) bool {
		return s.cfg.UsesBackend()
	}
	backendAuth := func(s *Session) bool {
		if !s.cfg.UsesBackend() {
			return false
		}
		if g.coupleAuth {
			return s.cfg.Features.Authentication
		}
		return true
	}

	return []node{
		{
			q: Question{
				Field:   FieldProjectType,
				Kind:    KindSelect,
				Prompt:  "Project type",
				Options: []string{string(domain.TypeWeb), string(domain.TypeMobile), string(domain.TypeBackend)},
			},
			apply: func(g *Graph, s *Session, a Answer) error {
				switch domain.ProjectType(a.Text) {
				case domain.TypeWeb, domain.TypeMobile, domain.TypeBackend:
					s.cfg.Type = domain.ProjectType(a.Text)
					return nil
				}
				return &domain.ValidationError{Field: "type", Msg: fmt.Sprintf("unknown project type %q", a.Text)}
			},
		},
		{
			q: Question{
				Field:  FieldProjectName,
				Kind:   KindText,
				Prompt: "Project name",
			},
			apply: func(g *Graph, s *Session, a Answer) error {
				if err := g.nameCheck(a.Text); err != nil {
					return err
				}
				s.cfg.Name = a.Text
				return nil
			},
		},
		{
			q: Question{
				Field:  FieldFeatures,
				Kind:   KindMultiSelect,
				Prompt: "Features",
				Options: []string{
					OptAuthentication, OptUserProfiles, OptUserSettings,
					OptResponsiveLayout, OptCRUDSetup,
				},
			},
			apply: func(g *Graph, s *Session, a Answer) error {
				for _, feat := range a.List {
					switch feat {
					case OptAuthentication:
						s.cfg.Features.Authentication = true
					case OptUserProfiles:
						s.cfg.Features.UserProfiles = true
					case OptUserSettings:
						s.cfg.Features.UserSettings = true
					case OptResponsiveLayout:
						s.cfg.Features.ResponsiveLayout = true
					case OptCRUDSetup:
						s.cfg.Features.CRUDSetup = true
					default:
						return &domain.ValidationError{Field: "features", Msg: fmt.Sprintf("unknown feature %q", feat)}
					}
				}
				return nil
			},
		},
		{
			q: Question{
				Field:   FieldStateManagement,
				Kind:    KindSelect,
				Prompt:  "State management",
				Options: []string{string(domain.StateRedux), string(domain.StateContext), string(domain.StateNone)},
			},
			visible: webOrMobile,
			apply: func(g *Graph, s *Session, a Answer) error {
				switch domain.StateManagement(a.Text) {
				case domain.StateRedux, domain.StateContext, domain.StateNone:
					s.cfg.StateManagement = domain.StateManagement(a.Text)
					return nil
				}
				return &domain.ValidationError{Field: "stateManagement", Msg: fmt.Sprintf("unknown choice %q", a.Text)}
			},
		},
		{
			q: Question{
				Field:  FieldThemeToggle,
				Kind:   KindConfirm,
				Prompt: "Include a theme toggle?",
			},
			visible: webOrMobile,
			apply: func(g *Graph, s *Session, a Answer) error {
				s.cfg.ThemeToggle = a.Bool
				return nil
			},
		},
		{
			q: Question{
				Field:   FieldAPIType,
				Kind:    KindSelect,
				Prompt:  "API type",
				Options: []string{string(domain.APIRest), string(domain.APIGraphQL)},
			},
			apply: func(g *Graph, s *Session, a Answer) error {
				switch domain.APIType(a.Text) {
				case domain.APIRest, domain.APIGraphQL:
					s.cfg.APIType = domain.APIType(a.Text)
					return nil
				}
				return &domain.ValidationError{Field: "apiType", Msg: fmt.Sprintf("unknown API type %q", a.Text)}
			},
		},
		{
			q: Question{
				Field:   FieldDatabase,
				Kind:    KindSelect,
				Prompt:  "Database",
				Options: []string{string(domain.DBMongo), string(domain.DBPostgres), string(domain.DBMySQL)},
			},
			visible: usesBackend,
			apply: func(g *Graph, s *Session, a Answer) error {
				switch domain.Database(a.Text) {
				case domain.DBMongo, domain.DBPostgres, domain.DBMySQL:
					s.cfg.Backend.Database = domain.Database(a.Text)
					return nil
				}
				return &domain.ValidationError{Field: "database", Msg: fmt.Sprintf("unknown database %q", a.Text)}
			},
		},
		{
			q: Question{
				Field:  FieldRoleBasedAuth,
				Kind:   KindConfirm,
				Prompt: "Role-based authorization?",
			},
			visible: backendAuth,
			apply: func(g *Graph, s *Session, a Answer) error {
				s.cfg.Backend.RoleBasedAuth = a.Bool
				return nil
			},
		},
		{
			q: Question{
				Field:  FieldJWTSetup,
				Kind:   KindConfirm,
				Prompt: "JWT setup?",
			},
			visible: backendAuth,
			apply: func(g *Graph, s *Session, a Answer) error {
				s.cfg.Backend.JWTSetup = a.Bool
				return nil
			},
		},
		{
			q: Question{
				Field:  FieldAPIVersioning,
				Kind:   KindConfirm,
				Prompt: "Version the API routes?",
			},
			visible: usesBackend,
			apply: func(g *Graph, s *Session, a Answer) error {
				s.cfg.Backend.APIVersioning = a.Bool
				return nil
			},
		},
	}
}
