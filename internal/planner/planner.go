// Package planner turns a ProjectConfig into a scaffold plan: the ordered
// directories to create and the files to render. Planning is pure; identical
// input always yields an identical plan, and no rule can fail.
package planner

import (
	"path"

	"github.com/stencilcli/stencil/internal/domain"
)

// Plan computes the scaffold plan for cfg. The base skeleton is selected by
// project type, then additive feature rules are applied in a fixed order.
// Unrecognized project types fall back to the web skeleton.
func Plan(cfg domain.ProjectConfig) domain.Plan {
	b := newBuilder()

	switch cfg.Type {
	case domain.TypeBackend:
		backendSkeleton(b)
		backendRules(b, cfg, "src")
	case domain.TypeMobile:
		mobileSkeleton(b)
		mobileRules(b, cfg)
	case domain.TypeWeb:
		webSkeleton(b)
		webRules(b, cfg)
	default:
		webSkeleton(b)
		webRules(b, cfg)
	}

	return b.plan()
}

// builder accumulates directories and files. Duplicate directories collapse;
// a file rule targeting an already-planned path replaces its template, so the
// later rule wins without reordering.
type builder struct {
	dirs    []string
	dirSeen map[string]bool
	files   []domain.FileSpec
	fileIdx map[string]int
}

func newBuilder() *builder {
	return &builder{
		dirSeen: make(map[string]bool),
		fileIdx: make(map[string]int),
	}
}

func (b *builder) dir(paths ...string) {
	for _, p := range paths {
		if b.dirSeen[p] {
			continue
		}
		b.dirSeen[p] = true
		b.dirs = append(b.dirs, p)
	}
}

func (b *builder) file(p string, id domain.TemplateID) {
	if i, ok := b.fileIdx[p]; ok {
		b.files[i].Template = id
		return
	}
	b.fileIdx[p] = len(b.files)
	b.files = append(b.files, domain.FileSpec{Path: p, Template: id})
}

func (b *builder) plan() domain.Plan {
	return domain.Plan{Dirs: b.dirs, Files: b.files}
}

func webSkeleton(b *builder) {
	b.dir("public", "src", "src/components", "src/pages", "src/services", "src/styles")
	b.file("package.json", domain.TemplateManifest)
	b.file("README.md", domain.TemplateReadme)
	b.file(".gitignore", domain.TemplateGitignore)
	b.file(".eslintrc.json", domain.TemplateLintConfig)
	b.file("vite.config.js", domain.TemplateBuildConfig)
	b.file(".env", domain.TemplateEnvReal)
	b.file(".env.example", domain.TemplateEnvExample)
	b.file("public/index.html", domain.TemplateIndexHTML)
	b.file("src/index.jsx", domain.TemplateWebEntry)
	b.file("src/App.jsx", domain.TemplateAppShell)
	b.file("src/styles/global.css", domain.TemplateGlobalCSS)
	b.file("src/services/api.js", domain.TemplateAPIClient)
}

func webRules(b *builder, cfg domain.ProjectConfig) {
	if cfg.Features.Authentication {
		b.dir("src/auth")
		b.file("src/auth/Login.jsx", domain.TemplateLoginPage)
		b.file("src/auth/Register.jsx", domain.TemplateRegisterPage)
		stateRule(b, cfg, ".jsx")
	}
	if cfg.Features.UserProfiles {
		b.file("src/pages/Profile.jsx", domain.TemplateProfilePage)
	}
	if cfg.Features.UserSettings {
		b.file("src/pages/Settings.jsx", domain.TemplateSettingsPage)
	}
	if cfg.Features.ResponsiveLayout {
		b.file("src/styles/responsive.css", domain.TemplateResponsiveCSS)
	}
	if cfg.ThemeToggle {
		b.file("src/components/ThemeToggle.jsx", domain.TemplateThemeToggle)
	}
	if cfg.Features.CRUDSetup {
		b.dir("src/features", "src/features/items")
		b.file("src/features/items/ItemList.jsx", domain.TemplateCRUDList)
		b.file("src/features/items/ItemForm.jsx", domain.TemplateCRUDForm)
		b.file("src/features/items/service.js", domain.TemplateCRUDService)
	}
	// Full-stack web targets carry an embedded API server.
	backendRules(b, cfg, "server")
}

func mobileSkeleton(b *builder) {
	b.dir("assets", "src", "src/components", "src/navigation", "src/screens", "src/services")
	b.file("package.json", domain.TemplateManifest)
	b.file("README.md", domain.TemplateReadme)
	b.file(".gitignore", domain.TemplateGitignore)
	b.file(".eslintrc.json", domain.TemplateLintConfig)
	b.file("app.json", domain.TemplateMobileConfig)
	b.file(".env", domain.TemplateEnvReal)
	b.file(".env.example", domain.TemplateEnvExample)
	b.file("App.js", domain.TemplateMobileApp)
	b.file("src/navigation/index.js", domain.TemplateNavIndex)
	b.file("src/screens/HomeScreen.js", domain.TemplateHomeScreen)
	b.file("src/services/api.js", domain.TemplateAPIClient)
}

func mobileRules(b *builder, cfg domain.ProjectConfig) {
	if cfg.Features.Authentication {
		b.file("src/screens/LoginScreen.js", domain.TemplateLoginPage)
		b.file("src/screens/RegisterScreen.js", domain.TemplateRegisterPage)
		stateRule(b, cfg, ".js")
	}
	if cfg.Features.UserProfiles {
		b.file("src/screens/ProfileScreen.js", domain.TemplateProfilePage)
	}
	if cfg.Features.UserSettings {
		b.file("src/screens/SettingsScreen.js", domain.TemplateSettingsPage)
	}
	// TODO: theme toggle for mobile targets needs an appearance-hook template
	// before the planner can honor cfg.ThemeToggle here.
	if cfg.Features.CRUDSetup {
		b.dir("src/features", "src/features/items")
		b.file("src/features/items/ItemList.js", domain.TemplateCRUDList)
		b.file("src/features/items/ItemForm.js", domain.TemplateCRUDForm)
		b.file("src/features/items/service.js", domain.TemplateCRUDService)
	}
	// Backend options are carried for mobile configs but never consumed.
}

func backendSkeleton(b *builder) {
	b.dir("src", "src/config", "src/controllers", "src/middleware", "src/models", "src/routes")
	b.file("package.json", domain.TemplateManifest)
	b.file("README.md", domain.TemplateReadme)
	b.file(".gitignore", domain.TemplateGitignore)
	b.file(".eslintrc.json", domain.TemplateLintConfig)
	b.file(".env", domain.TemplateEnvReal)
	b.file(".env.example", domain.TemplateEnvExample)
	b.file("src/index.js", domain.TemplateServerEntry)
	b.file("src/routes/index.js", domain.TemplateRouteIndex)
	b.file("src/config/db.js", domain.TemplateDBConfig)
}

// backendRules applies the server-side rules under the given root ("src" for
// backend targets, "server" for full-stack web). Only runs when the config
// consumes backend options.
func backendRules(b *builder, cfg domain.ProjectConfig, root string) {
	if !cfg.UsesBackend() {
		return
	}
	if root != "src" {
		b.dir(root, path.Join(root, "config"), path.Join(root, "controllers"),
			path.Join(root, "middleware"), path.Join(root, "models"), path.Join(root, "routes"))
		b.file(path.Join(root, "index.js"), domain.TemplateServerEntry)
		b.file(path.Join(root, "routes/index.js"), domain.TemplateRouteIndex)
		b.file(path.Join(root, "config/db.js"), domain.TemplateDBConfig)
	}
	if cfg.Features.Authentication {
		b.file(path.Join(root, "routes/auth.js"), domain.TemplateAuthRoutes)
		b.file(path.Join(root, "controllers/authController.js"), domain.TemplateAuthCtrl)
		b.file(path.Join(root, "models/User.js"), domain.TemplateUserModel)
		b.file(path.Join(root, "middleware/auth.js"), domain.TemplateAuthMW)
	}
	if cfg.Backend.RoleBasedAuth {
		b.file(path.Join(root, "middleware/roles.js"), domain.TemplateRolesMW)
	}
	if cfg.Backend.JWTSetup {
		b.dir(path.Join(root, "utils"))
		b.file(path.Join(root, "utils/jwt.js"), domain.TemplateJWTUtil)
	}
	if cfg.Backend.APIVersioning {
		b.dir(path.Join(root, "routes/v1"))
		b.file(path.Join(root, "routes/v1/index.js"), domain.TemplateVersionedIdx)
	}
	if cfg.Features.CRUDSetup {
		b.file(path.Join(root, "models/Item.js"), domain.TemplateItemModel)
		b.file(path.Join(root, "controllers/itemController.js"), domain.TemplateItemCtrl)
		b.file(path.Join(root, "routes/items.js"), domain.TemplateItemRoutes)
	}
}

// stateRule adds the state-management file for the auth feature. Exactly one
// of the redux and context variants is planned; none adds nothing.
func stateRule(b *builder, cfg domain.ProjectConfig, ext string) {
	switch cfg.StateManagement {
	case domain.StateRedux:
		b.dir("src/store")
		b.file("src/store/index.js", domain.TemplateStoreIndex)
		b.file("src/store/authSlice.js", domain.TemplateAuthSlice)
	case domain.StateContext:
		b.dir("src/context")
		b.file("src/context/AuthContext"+ext, domain.TemplateAuthContext)
	}
}
