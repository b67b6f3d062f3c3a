// Package policy provides the parent command for operating on policy
// documents: checking their syntax in isolation, or checking them against
// one or more configuration documents.
package policy

import "github.com/spf13/cobra"

// NewPolicyCommand creates the policy parent command.
//
// This command doesn't perform any operation itself; it provides a
// namespace for the lint and check subcommands.
func NewPolicyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Operate on policy documents",
	}

	cmd.AddCommand(newLintCommand())
	cmd.AddCommand(newCheckCommand())

	return cmd
}
