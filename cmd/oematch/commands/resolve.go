package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/oematch/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Match build recipes against the layer index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			maxDistance, _ := cmd.Flags().GetString("max-version-distance")
			workers, _ := cmd.Flags().GetInt("workers")
			sbom, _ := cmd.Flags().GetString("sbom")
			project, _ := cmd.Flags().GetString("project")
			projectVersion, _ := cmd.Flags().GetString("project-version")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			showUnmatched, _ := cmd.Flags().GetBool("show-unmatched")
			metricsFile, _ := cmd.Flags().GetString("metrics-file")

			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				Inventory:          inventoryFlags(cmd),
				Catalog:            catalogFlags(cmd),
				MaxVersionDistance: maxDistance,
				Workers:            workers,
				SBOMPath:           sbom,
				Project:            project,
				ProjectVersion:     projectVersion,
				JSON:               jsonOutput,
				OutputMode:         outputMode(cmd),
				ShowUnmatched:      showUnmatched,
				MetricsFile:        metricsFile,
			})
		},
	}

	addInventoryFlags(cmd)
	cmd.Flags().String("layers-report", "", "Path to bitbake-layers show-recipes output")
	addCatalogFlags(cmd)
	cmd.Flags().Bool("offline", false, "Use only the cached layer index snapshot")
	cmd.Flags().Bool("refresh", false, "Download the layer index even when a snapshot is cached")
	cmd.Flags().String("max-version-distance", "", "Largest accepted MAJOR.MINOR.PATCH gap for close matches")
	cmd.Flags().Int("workers", 0, "Parallel resolution workers (default one per CPU)")
	cmd.Flags().String("sbom", "", "Write an SPDX 2.3 JSON document to this file")
	cmd.Flags().String("project", "", "Project name for the SBOM")
	cmd.Flags().String("project-version", "", "Project version for the SBOM")
	cmd.Flags().Bool("show-unmatched", false, "List recipes not found in the layer index")
	addReportFlags(cmd)
	return cmd
}
