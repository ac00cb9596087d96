// Package generator renders file contents for planned template identifiers.
// Rendering is a pure function of (template id, config): no side effects, no
// filesystem access, deterministic output.
package generator

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/stencilcli/stencil/internal/domain"
)

// Renderer implements domain.TemplatePort over the closed template set.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Known reports whether id belongs to the template set. Unknown identifiers
// can only arrive through externally supplied blueprints; callers log the
// degradation, Render keeps the scaffold complete by emitting empty content.
func (r *Renderer) Known(id domain.TemplateID) bool {
	if id == domain.TemplateManifest {
		return true
	}
	_, ok := source(id)
	return ok
}

// Render produces the file text for id. Unknown ids render to empty content
// without error.
func (r *Renderer) Render(id domain.TemplateID, cfg domain.ProjectConfig) ([]byte, error) {
	if id == domain.TemplateManifest {
		return renderManifest(cfg)
	}
	src, ok := source(id)
	if !ok {
		return nil, nil
	}

	funcMap := template.FuncMap{
		"title": func(s string) string {
			if s == "" {
				return ""
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"lower": strings.ToLower,
	}

	tObj, err := template.New(string(id)).Funcs(funcMap).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", id, err)
	}

	var buf bytes.Buffer
	if err := tObj.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("template %s: %w", id, err)
	}

	return buf.Bytes(), nil
}

// source maps a template id to its text. The switch is exhaustive over the
// constant set; anything else is unknown.
func source(id domain.TemplateID) (string, bool) {
	switch id {
	case domain.TemplateReadme:
		return readmeTemplate, true
	case domain.TemplateGitignore:
		return gitignoreTemplate, true
	case domain.TemplateLintConfig:
		return lintConfigTemplate, true
	case domain.TemplateBuildConfig:
		return buildConfigTemplate, true
	case domain.TemplateEnvReal:
		return envRealTemplate, true
	case domain.TemplateEnvExample:
		return envExampleTemplate, true
	case domain.TemplateWebEntry:
		return webEntryTemplate, true
	case domain.TemplateAppShell:
		return appShellTemplate, true
	case domain.TemplateIndexHTML:
		return indexHTMLTemplate, true
	case domain.TemplateGlobalCSS:
		return globalCSSTemplate, true
	case domain.TemplateResponsiveCSS:
		return responsiveCSSTemplate, true
	case domain.TemplateThemeToggle:
		return themeToggleTemplate, true
	case domain.TemplateAPIClient:
		return apiClientTemplate, true
	case domain.TemplateLoginPage:
		return loginPageTemplate, true
	case domain.TemplateRegisterPage:
		return registerPageTemplate, true
	case domain.TemplateProfilePage:
		return profilePageTemplate, true
	case domain.TemplateSettingsPage:
		return settingsPageTemplate, true
	case domain.TemplateAuthSlice:
		return authSliceTemplate, true
	case domain.TemplateStoreIndex:
		return storeIndexTemplate, true
	case domain.TemplateAuthContext:
		return authContextTemplate, true
	case domain.TemplateCRUDList:
		return crudListTemplate, true
	case domain.TemplateCRUDForm:
		return crudFormTemplate, true
	case domain.TemplateCRUDService:
		return crudServiceTemplate, true
	case domain.TemplateMobileApp:
		return mobileAppTemplate, true
	case domain.TemplateMobileConfig:
		return mobileConfigTemplate, true
	case domain.TemplateNavIndex:
		return navIndexTemplate, true
	case domain.TemplateHomeScreen:
		return homeScreenTemplate, true
	case domain.TemplateServerEntry:
		return serverEntryTemplate, true
	case domain.TemplateRouteIndex:
		return routeIndexTemplate, true
	case domain.TemplateVersionedIdx:
		return versionedRouteIndexTemplate, true
	case domain.TemplateDBConfig:
		return dbConfigTemplate, true
	case domain.TemplateAuthRoutes:
		return authRoutesTemplate, true
	case domain.TemplateAuthCtrl:
		return authControllerTemplate, true
	case domain.TemplateUserModel:
		return userModelTemplate, true
	case domain.TemplateAuthMW:
		return authMiddlewareTemplate, true
	case domain.TemplateRolesMW:
		return rolesMiddlewareTemplate, true
	case domain.TemplateJWTUtil:
		return jwtUtilTemplate, true
	case domain.TemplateItemModel:
		return itemModelTemplate, true
	case domain.TemplateItemCtrl:
		return itemControllerTemplate, true
	case domain.TemplateItemRoutes:
		return itemRoutesTemplate, true
	}
	return "", false
}
