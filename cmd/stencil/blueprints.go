package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listBlueprintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-blueprints",
		Short: "List saved blueprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.cleanup()

			list := deps.svc.ListBlueprints(cmd.Context())
			if len(list) == 0 {
				deps.log.Infof("no blueprints saved yet")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tCREATED\tDESCRIPTION")
			for _, bp := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					bp.Name, bp.Config.Type, bp.CreatedAt.Format("2006-01-02"), bp.Description)
			}
			return w.Flush()
		},
	}
}

func deleteBlueprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-blueprint <name>",
		Short: "Delete a saved blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.cleanup()

			return deps.svc.DeleteBlueprint(cmd.Context(), args[0])
		},
	}
}

func exportBlueprintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-blueprints <path>",
		Short: "Export all blueprints to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.cleanup()

			return deps.svc.ExportBlueprints(cmd.Context(), args[0])
		},
	}
}

func importBlueprintsCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import-blueprints <path>",
		Short: "Import blueprints from a JSON file",
		Long: `Import blueprint records from an exported JSON file. Records missing a
name, config, or creation time are skipped. Existing names are kept as-is
unless --overwrite is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.cleanup()

			return deps.svc.ImportBlueprints(cmd.Context(), args[0], overwrite)
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing blueprints with imported ones")
	return cmd
}
