package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/oematch/internal/app"
)

func (c *CLI) newRemediateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remediate",
		Short: "Mark vulnerabilities patched by the build as remediated in Black Duck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := app.RemediateOptions{
				Inventory:  inventoryFlags(cmd),
				OutputMode: outputMode(cmd),
			}
			opts.CVEFile, _ = cmd.Flags().GetString("cve-file")
			opts.ServerURL, _ = cmd.Flags().GetString("bd-url")
			opts.TokenEnv, _ = cmd.Flags().GetString("bd-token-env")
			opts.TrustCert, _ = cmd.Flags().GetBool("bd-trust-cert")
			opts.Project, _ = cmd.Flags().GetString("project")
			opts.ProjectVersion, _ = cmd.Flags().GetString("project-version")
			opts.Status, _ = cmd.Flags().GetString("status")
			opts.BatchSize, _ = cmd.Flags().GetInt("batch-size")
			opts.BatchDelay, _ = cmd.Flags().GetString("batch-delay")
			opts.Comment, _ = cmd.Flags().GetString("comment")
			opts.JSON, _ = cmd.Flags().GetBool("json")
			opts.MetricsFile, _ = cmd.Flags().GetString("metrics-file")

			return c.app.Remediate(cmd.Context(), opts)
		},
	}

	cmd.Flags().String("cve-file", "", "cve-check output (.json summary or .cve text)")
	addInventoryFlags(cmd)
	cmd.Flags().String("bd-url", "", "Black Duck server URL")
	cmd.Flags().String("bd-token-env", "", "Environment variable holding the Black Duck API token")
	cmd.Flags().Bool("bd-trust-cert", false, "Accept the server certificate without verification")
	cmd.Flags().String("project", "", "Black Duck project name")
	cmd.Flags().String("project-version", "", "Black Duck project version")
	cmd.Flags().String("status", "", "Remediation status to apply: PATCHED or IGNORED")
	cmd.Flags().Int("batch-size", 0, "Remediation requests per batch")
	cmd.Flags().String("batch-delay", "", "Pause between batches, e.g. 2s")
	cmd.Flags().String("comment", "", "Comment attached to remediated records")
	addReportFlags(cmd)
	return cmd
}
