// Package main provides the entry point for the fcc tool.
//
// fcc checks a flat, indentation-structured configuration dump against a
// policy document of the same shape, annotated with "#[...]" compliance
// directives, and reports one verdict per policy item.
//
// The CLI is organized into parent commands with subcommands:
//   - policy: operate on policy documents
//     - lint: check policy syntax
//     - check: check one policy against one or more configurations
//   - config: operate on configuration documents
//     - check: check one configuration against one or more policies
//   - manifest: operate on TOML compliance manifests
//     - lint: check manifest syntax
//     - check: run every policy/configuration pairing a manifest declares
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Clem-Fern/fcc/commands/config"
	"github.com/Clem-Fern/fcc/commands/manifest"
	"github.com/Clem-Fern/fcc/commands/policy"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "fcc",
		Short: "A flat configuration compliance checker",
		Long: `fcc checks a hierarchical, indentation-structured configuration dump
against a policy document of the same shape, annotated with "#[...]"
compliance directives, and reports one verdict per policy item.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetLevel(levelForVerbosity(verbosity))
			logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase logging verbosity (-v, -vv, -vvv)")

	rootCmd.AddCommand(policy.NewPolicyCommand())
	rootCmd.AddCommand(config.NewConfigCommand())
	rootCmd.AddCommand(manifest.NewManifestCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// levelForVerbosity mirrors clap_verbosity_flag's default-info scale: warn
// with no flag, then one step more verbose per repeated -v.
func levelForVerbosity(v int) logrus.Level {
	switch {
	case v <= 0:
		return logrus.WarnLevel
	case v == 1:
		return logrus.InfoLevel
	case v == 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
