package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/oematch/internal/core/domain"
)

func addInventoryFlags(cmd *cobra.Command) {
	cmd.Flags().String("license-manifest", "", "Path to the image license.manifest")
	cmd.Flags().String("task-depends", "", "Path to bitbake -g task-depends.dot")
	cmd.Flags().String("target", "", "Image target whose dependencies form the inventory")
	cmd.Flags().String("kernel-recipe", "", "Kernel recipe name (default linux-yocto)")
}

func inventoryFlags(cmd *cobra.Command) domain.InventorySources {
	var src domain.InventorySources
	src.LicenseManifest, _ = cmd.Flags().GetString("license-manifest")
	src.TaskDepends, _ = cmd.Flags().GetString("task-depends")
	src.Target, _ = cmd.Flags().GetString("target")
	src.KernelRecipe, _ = cmd.Flags().GetString("kernel-recipe")
	if cmd.Flags().Lookup("layers-report") != nil {
		src.LayersReport, _ = cmd.Flags().GetString("layers-report")
	}
	return src
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print machine-readable JSON")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, styled, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output (shorthand for --output-mode=plain)")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics in text format to this file")
}

func outputMode(cmd *cobra.Command) string {
	mode, _ := cmd.Flags().GetString("output-mode")
	ci, _ := cmd.Flags().GetBool("ci")
	if ci {
		return "plain"
	}
	if mode == "auto" {
		return ""
	}
	return mode
}
