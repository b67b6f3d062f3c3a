// Package manifest provides the parent command for operating on TOML
// compliance manifests: documents that group policy and configuration
// files together so a whole compliance sweep can be declared once.
package manifest

import "github.com/spf13/cobra"

// NewManifestCommand creates the manifest parent command.
func NewManifestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Operate on TOML compliance manifests",
	}

	cmd.AddCommand(newLintCommand())
	cmd.AddCommand(newCheckCommand())

	return cmd
}
