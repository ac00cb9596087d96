package domain

import "time"

// Blueprint is a named, persisted ProjectConfig snapshot for reuse across
// invocations. The embedded config never carries a project name; a fresh name
// is supplied when the blueprint is applied.
type Blueprint struct {
	ID          string        `json:"id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Config      ProjectConfig `json:"config"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Apply returns a ProjectConfig built from the blueprint with the given
// project name filled in.
func (b Blueprint) Apply(projectName string) ProjectConfig {
	cfg := b.Config
	cfg.Name = projectName
	return cfg
}
