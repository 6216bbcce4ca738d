package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/oematch/internal/app"
)

func (c *CLI) newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the cached layer index snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	fetch := &cobra.Command{
		Use:   "fetch",
		Short: "Download a fresh layer index snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.FetchCatalog(cmd.Context(), catalogFlags(cmd))
		},
	}
	addCatalogFlags(fetch)

	info := &cobra.Command{
		Use:   "info",
		Short: "Show the size of the cached layer index snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			return c.app.CatalogInfo(cmd.Context(), catalogFlags(cmd), jsonOutput)
		},
	}
	addCatalogFlags(info)
	info.Flags().Bool("json", false, "Print machine-readable JSON")

	cmd.AddCommand(fetch, info)
	return cmd
}

func addCatalogFlags(cmd *cobra.Command) {
	cmd.Flags().String("catalog-url", "", "Layer index API base URL")
	cmd.Flags().String("cache-dir", "", "Layer index cache directory")
}

func catalogFlags(cmd *cobra.Command) app.CatalogFlags {
	url, _ := cmd.Flags().GetString("catalog-url")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	flags := app.CatalogFlags{URL: url, CacheDir: cacheDir}
	if f := cmd.Flags().Lookup("offline"); f != nil {
		flags.Offline, _ = cmd.Flags().GetBool("offline")
	}
	if f := cmd.Flags().Lookup("refresh"); f != nil {
		flags.Refresh, _ = cmd.Flags().GetBool("refresh")
	}
	return flags
}
