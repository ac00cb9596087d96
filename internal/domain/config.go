package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ProjectType selects the base skeleton of a generated project.
type ProjectType string

const (
	TypeWeb     ProjectType = "web"
	TypeMobile  ProjectType = "mobile"
	TypeBackend ProjectType = "backend"
)

// StateManagement selects the client-side state layer.
type StateManagement string

const (
	StateRedux   StateManagement = "redux"
	StateContext StateManagement = "context"
	StateNone    StateManagement = "none"
)

// APIType selects the API flavor wired into generated clients and servers.
type APIType string

const (
	APIRest    APIType = "rest"
	APIGraphQL APIType = "graphql"
)

// Database selects the database driver for backend targets.
type Database string

const (
	DBMongo    Database = "mongodb"
	DBPostgres Database = "postgres"
	DBMySQL    Database = "mysql"
)

// Features holds the optional feature toggles.
type Features struct {
	Authentication   bool `json:"authentication"`
	UserProfiles     bool `json:"user_profiles"`
	UserSettings     bool `json:"user_settings"`
	ResponsiveLayout bool `json:"responsive_layout"`
	CRUDSetup        bool `json:"crud_setup"`
}

// BackendOptions holds backend-specific choices. Carried for every project
// type but only consumed by the planner for web and backend targets.
type BackendOptions struct {
	Database      Database `json:"database"`
	RoleBasedAuth bool     `json:"role_based_auth"`
	JWTSetup      bool     `json:"jwt_setup"`
	APIVersioning bool     `json:"api_versioning"`
}

// ProjectConfig describes one project to scaffold. It is transient: rebuilt
// per invocation either from the resolver or from a blueprint plus a fresh
// name.
type ProjectConfig struct {
	Type            ProjectType     `json:"type"`
	Name            string          `json:"name,omitempty"`
	Features        Features        `json:"features"`
	StateManagement StateManagement `json:"state_management"`
	ThemeToggle     bool            `json:"theme_toggle"`
	APIType         APIType         `json:"api_type"`
	Backend         BackendOptions  `json:"backend"`
}

// UsesBackend reports whether the planner consumes Backend options for this
// config. For mobile the options are carried but ignored.
func (c ProjectConfig) UsesBackend() bool {
	return c.Type == TypeBackend || c.Type == TypeWeb
}

var nameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateName checks that a project name is non-empty and filesystem-safe.
// The raw input is what gets stored and materialized, so padding is rejected
// rather than trimmed. Collision with an existing directory is checked
// separately, at resolution time, against the chosen output root.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Msg: "project name is required"}
	}
	if !nameRe.MatchString(name) {
		return &ValidationError{
			Field: "name",
			Msg:   fmt.Sprintf("%q is not a valid project name (letters, digits, - and _, starting with a letter)", name),
		}
	}
	return nil
}

// ProjectTypes lists the recognized project types in prompt order.
func ProjectTypes() []ProjectType {
	return []ProjectType{TypeWeb, TypeMobile, TypeBackend}
}

// Databases lists the recognized database choices in prompt order.
func Databases() []Database {
	return []Database{DBMongo, DBPostgres, DBMySQL}
}
