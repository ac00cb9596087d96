// Package paths resolves the per-user locations the CLI depends on: the
// blueprint document's data directory and the default output root. Nothing
// here touches the filesystem; env vars are read through an injected getter
// so resolution is testable.
package paths

import (
	"path/filepath"
	"runtime"
)

// Getenv looks up one environment variable, returning "" when unset.
type Getenv func(key string) string

// DataDir resolves the directory holding the blueprint document.
//
// Resolution order:
//  1. STENCIL_DATA_DIR
//  2. macOS: ~/Library/Application Support/stencil
//  3. XDG_DATA_HOME/stencil
//  4. ~/.local/share/stencil
func DataDir(env Getenv, homeDir string) string {
	return dataDirWithOS(env, homeDir, runtime.GOOS == "darwin")
}

func dataDirWithOS(env Getenv, homeDir string, isDarwin bool) string {
	if v := env("STENCIL_DATA_DIR"); v != "" {
		return v
	}
	if isDarwin {
		return filepath.Join(homeDir, "Library", "Application Support", "stencil")
	}
	if v := env("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "stencil")
	}
	return filepath.Join(homeDir, ".local", "share", "stencil")
}

// BlueprintDocPath returns the location of the single blueprint document.
func BlueprintDocPath(dataDir string) string {
	return filepath.Join(dataDir, "blueprints.json")
}

// OutputRoot resolves where generated projects land: the STENCIL_OUTPUT_ROOT
// override when present, otherwise a fixed per-user default.
func OutputRoot(env Getenv, homeDir string) string {
	if v := env("STENCIL_OUTPUT_ROOT"); v != "" {
		return v
	}
	return filepath.Join(homeDir, "stencil-projects")
}
