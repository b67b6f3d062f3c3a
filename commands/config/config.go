// Package config provides the parent command for operating on
// configuration documents.
package config

import "github.com/spf13/cobra"

// NewConfigCommand creates the config parent command.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Operate on configuration documents",
	}

	cmd.AddCommand(newCheckCommand())

	return cmd
}
