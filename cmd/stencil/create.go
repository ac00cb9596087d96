package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/stencilcli/stencil/internal/application"
	"github.com/stencilcli/stencil/internal/domain"
)

func createCmd() *cobra.Command {
	var (
		blueprintName string
		dryRun        bool
		outputRoot    string
	)

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Scaffold a new project",
		Long: `Create a new project, either by answering the interactive questions or
from a saved blueprint plus a fresh project name.

Examples:
  stencil create
  stencil create my-app --blueprint saas-starter
  stencil create my-app --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps, err := newDeps(ctx)
			if err != nil {
				return err
			}
			defer deps.cleanup()

			if outputRoot == "" {
				outputRoot = deps.outputRoot
			}
			opts := application.CreateOptions{OutputRoot: outputRoot, DryRun: dryRun}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			if blueprintName != "" {
				if name == "" {
					if name, err = promptProjectName(); err != nil {
						return err
					}
				}
				if err := deps.svc.CreateFromBlueprint(ctx, blueprintName, name, opts); err != nil {
					return err
				}
				printNextSteps(deps, name, dryRun)
				return nil
			}

			cfg, err := resolveInteractive(deps, outputRoot, name)
			if err != nil {
				return err
			}
			if err := deps.svc.CreateProject(ctx, cfg, opts); err != nil {
				return err
			}
			if !dryRun {
				offerBlueprintSave(cmd, deps, cfg)
			}
			printNextSteps(deps, cfg.Name, dryRun)
			return nil
		},
	}

	cmd.Flags().StringVarP(&blueprintName, "blueprint", "b", "", "Create from a saved blueprint")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the plan without writing anything")
	cmd.Flags().StringVarP(&outputRoot, "output", "o", "", "Output root (default: STENCIL_OUTPUT_ROOT or ~/stencil-projects)")

	return cmd
}

func promptProjectName() (string, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(&name).
				Validate(domain.ValidateName),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return name, nil
}

// offerBlueprintSave asks whether the freshly resolved configuration should
// be persisted for reuse. Declining or failing to save never fails the
// create that already succeeded.
func offerBlueprintSave(cmd *cobra.Command, deps *runtimeDeps, cfg domain.ProjectConfig) {
	var save bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this configuration as a blueprint?").
				Value(&save),
		),
	)
	if err := form.Run(); err != nil || !save {
		return
	}

	var (
		name        = cfg.Name
		description string
	)
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Blueprint Name").
				Value(&name).
				Validate(domain.ValidateName),
			huh.NewInput().
				Title("Description (optional)").
				Value(&description),
		),
	)
	if err := form.Run(); err != nil {
		return
	}

	if err := deps.svc.SaveBlueprint(cmd.Context(), name, description, cfg); err != nil {
		deps.log.Warnf("could not save blueprint: %v", err)
	}
}

func printNextSteps(deps *runtimeDeps, name string, dryRun bool) {
	if dryRun {
		return
	}
	deps.log.Infof("")
	deps.log.Infof("Next steps:")
	deps.log.Infof("  cd %s", name)
	deps.log.Infof("  npm install")
	deps.log.Infof("  npm run dev")
	fmt.Println()
}
