package domain

// TemplateID selects which rendering function produces a given file's text.
// The set is closed; identifiers outside it can only enter through imported
// blueprints and render to empty content as a logged degradation.
type TemplateID string

const (
	TemplateManifest      TemplateID = "manifest"
	TemplateReadme        TemplateID = "readme"
	TemplateGitignore     TemplateID = "gitignore"
	TemplateLintConfig    TemplateID = "lint-config"
	TemplateBuildConfig   TemplateID = "build-config"
	TemplateEnvReal       TemplateID = "env-real"
	TemplateEnvExample    TemplateID = "env-example"
	TemplateWebEntry      TemplateID = "web-entry"
	TemplateAppShell      TemplateID = "app-shell"
	TemplateIndexHTML     TemplateID = "index-html"
	TemplateGlobalCSS     TemplateID = "global-css"
	TemplateResponsiveCSS TemplateID = "responsive-css"
	TemplateThemeToggle   TemplateID = "theme-toggle"
	TemplateAPIClient     TemplateID = "api-client"
	TemplateLoginPage     TemplateID = "login-page"
	TemplateRegisterPage  TemplateID = "register-page"
	TemplateProfilePage   TemplateID = "profile-page"
	TemplateSettingsPage  TemplateID = "settings-page"
	TemplateAuthSlice     TemplateID = "auth-slice"
	TemplateStoreIndex    TemplateID = "store-index"
	TemplateAuthContext   TemplateID = "auth-context"
	TemplateCRUDList      TemplateID = "crud-list"
	TemplateCRUDForm      TemplateID = "crud-form"
	TemplateCRUDService   TemplateID = "crud-service"
	TemplateMobileApp     TemplateID = "mobile-app"
	TemplateMobileConfig  TemplateID = "mobile-config"
	TemplateNavIndex      TemplateID = "nav-index"
	TemplateHomeScreen    TemplateID = "home-screen"
	TemplateServerEntry   TemplateID = "server-entry"
	TemplateRouteIndex    TemplateID = "route-index"
	TemplateVersionedIdx  TemplateID = "versioned-route-index"
	TemplateDBConfig      TemplateID = "db-config"
	TemplateAuthRoutes    TemplateID = "auth-routes"
	TemplateAuthCtrl      TemplateID = "auth-controller"
	TemplateUserModel     TemplateID = "user-model"
	TemplateAuthMW        TemplateID = "auth-middleware"
	TemplateRolesMW       TemplateID = "roles-middleware"
	TemplateJWTUtil       TemplateID = "jwt-util"
	TemplateItemModel     TemplateID = "item-model"
	TemplateItemCtrl      TemplateID = "item-controller"
	TemplateItemRoutes    TemplateID = "item-routes"
)

// FileSpec binds one planned file path to the template that renders it.
type FileSpec struct {
	Path     string
	Template TemplateID
}

// Plan is the ordered output of the planner: directories to create, then
// files to render and write. Deterministic for a given config; duplicate
// directories are collapsed and later file rules have already won.
type Plan struct {
	Dirs  []string
	Files []FileSpec
}
