package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/stencilcli/stencil/internal/domain"
	"github.com/stencilcli/stencil/internal/ui"
)

// Version information set at build time.
var version = "dev"

var remoteProject string

func main() {
	// Pick up STENCIL_* overrides from a local .env, if present.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "stencil",
		Short: "Scaffold web, mobile, and backend projects from a saved configuration",
		Long: `Stencil generates project skeletons from a structured configuration:
target type, feature toggles, state management, and backend choices.
Configurations can be saved as named blueprints and reused across runs.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&remoteProject, "remote-project", "",
		"Firestore project id for a shared blueprint store (default: local store)")

	rootCmd.AddCommand(
		createCmd(),
		listBlueprintsCmd(),
		deleteBlueprintCmd(),
		exportBlueprintsCmd(),
		importBlueprintsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log := ui.New(os.Stdout, os.Stderr)
		log.Errorf("%v", err)
		os.Exit(domain.ExitCode(err))
	}
}
