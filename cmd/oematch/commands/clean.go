package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/oematch/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the cached layer index snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			return c.app.Clean(cmd.Context(), app.CleanOptions{CacheDir: cacheDir})
		},
	}

	cmd.Flags().String("cache-dir", "", "Layer index cache directory (default from oematch.yaml or .oematch/catalog)")

	return cmd
}
