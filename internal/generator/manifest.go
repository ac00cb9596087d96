package generator

import (
	"encoding/json"

	"github.com/stencilcli/stencil/internal/domain"
)

// manifest is the shape of the generated package.json. Maps marshal with
// sorted keys, which keeps rendering deterministic.
type manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// renderManifest derives the dependency manifest purely from config flags.
// Versions are pinned statically; resolving them is out of scope.
func renderManifest(cfg domain.ProjectConfig) ([]byte, error) {
	m := manifest{
		Name:            cfg.Name,
		Version:         "0.1.0",
		Private:         true,
		Scripts:         scriptsFor(cfg.Type),
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}

	switch cfg.Type {
	case domain.TypeMobile:
		m.Dependencies["react"] = "18.2.0"
		m.Dependencies["react-native"] = "0.73.1"
		m.Dependencies["@react-navigation/native"] = "^6.1.9"
		m.Dependencies["@react-navigation/native-stack"] = "^6.9.17"
		m.Dependencies["react-native-screens"] = "^3.29.0"
		m.Dependencies["react-native-safe-area-context"] = "^4.8.2"
		m.Dependencies["axios"] = "^1.6.5"
	case domain.TypeBackend:
		m.Dependencies["express"] = "^4.18.2"
		m.Dependencies["cors"] = "^2.8.5"
		m.Dependencies["dotenv"] = "^16.3.1"
		m.Dependencies["morgan"] = "^1.10.0"
		m.DevDependencies["nodemon"] = "^3.0.2"
	default: // web, and the fallback for unrecognized types
		m.Dependencies["react"] = "^18.2.0"
		m.Dependencies["react-dom"] = "^18.2.0"
		m.Dependencies["react-router-dom"] = "^6.21.1"
		m.Dependencies["axios"] = "^1.6.5"
		m.DevDependencies["vite"] = "^5.0.11"
		m.DevDependencies["@vitejs/plugin-react"] = "^4.2.1"
	}
	m.DevDependencies["eslint"] = "^8.56.0"

	if cfg.Type != domain.TypeBackend {
		switch cfg.StateManagement {
		case domain.StateRedux:
			m.Dependencies["@reduxjs/toolkit"] = "^2.0.1"
			m.Dependencies["react-redux"] = "^9.0.4"
		}
		if cfg.Features.Authentication {
			m.Dependencies["jwt-decode"] = "^4.0.0"
		}
	}

	if cfg.APIType == domain.APIGraphQL {
		m.Dependencies["graphql"] = "^16.8.1"
		if cfg.Type == domain.TypeBackend {
			m.Dependencies["apollo-server-express"] = "^3.13.0"
		} else {
			m.Dependencies["@apollo/client"] = "^3.8.8"
		}
	}

	if cfg.UsesBackend() {
		if cfg.Type == domain.TypeWeb {
			// Full-stack web targets embed the API server.
			m.Dependencies["express"] = "^4.18.2"
			m.Dependencies["cors"] = "^2.8.5"
			m.Dependencies["dotenv"] = "^16.3.1"
		}
		switch cfg.Backend.Database {
		case domain.DBPostgres:
			m.Dependencies["pg"] = "^8.11.3"
		case domain.DBMySQL:
			m.Dependencies["mysql2"] = "^3.6.5"
		default:
			m.Dependencies["mongoose"] = "^8.0.3"
		}
		if cfg.Features.Authentication {
			m.Dependencies["bcryptjs"] = "^2.4.3"
		}
		if cfg.Features.Authentication || cfg.Backend.JWTSetup {
			m.Dependencies["jsonwebtoken"] = "^9.0.2"
		}
	}

	if len(m.DevDependencies) == 0 {
		m.DevDependencies = nil
	}

	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// scriptsFor is the three-way script switch on project type.
func scriptsFor(t domain.ProjectType) map[string]string {
	switch t {
	case domain.TypeMobile:
		return map[string]string{
			"start":   "react-native start",
			"android": "react-native run-android",
			"ios":     "react-native run-ios",
			"lint":    "eslint src",
		}
	case domain.TypeBackend:
		return map[string]string{
			"start": "node src/index.js",
			"dev":   "nodemon src/index.js",
			"lint":  "eslint src",
		}
	default:
		return map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
			"lint":    "eslint src",
		}
	}
}
