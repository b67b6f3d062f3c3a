package policy

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Clem-Fern/fcc/internal/fcc"
	"github.com/Clem-Fern/fcc/internal/readinput"
)

// newCheckCommand creates the "policy check" subcommand.
//
// It parses POLICY once, then checks it against each CONFIG in turn,
// printing one line per verdict. The process exits non-zero if any
// verdict, across any configuration, is an error outcome.
func newCheckCommand() *cobra.Command {
	var ignoreInvalidConfig bool

	cmd := &cobra.Command{
		Use:   "check POLICY CONFIG...",
		Short: "Check a policy document against one or more configuration documents",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			policyPath, configPaths := args[0], args[1:]

			policyRaw, err := readinput.Read(policyPath)
			if err != nil {
				return fmt.Errorf("%s: %w", policyPath, err)
			}

			policyTree, err := fcc.ParsePolicy(string(policyRaw))
			if err != nil {
				return fmt.Errorf("%s: %w", policyPath, err)
			}

			failed := false

			for _, configPath := range configPaths {
				configRaw, err := readinput.Read(configPath)
				if err != nil {
					if ignoreInvalidConfig {
						fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", configPath, err)
						continue
					}
					return fmt.Errorf("%s: %w", configPath, err)
				}

				configTree, err := fcc.ParseConfiguration(string(configRaw))
				if err != nil {
					if ignoreInvalidConfig {
						fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", configPath, err)
						continue
					}
					return fmt.Errorf("%s: %w", configPath, err)
				}

				logrus.WithField("config", configPath).Debug("checking configuration against policy")
				fmt.Printf("%s:\n", configPath)
				for _, v := range fcc.Check(policyTree, configTree) {
					fmt.Println(v.String())
					if v.Outcome.IsErr() {
						failed = true
					}
				}
			}

			if failed {
				return fmt.Errorf("one or more compliance checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ignoreInvalidConfig, "ignore-invalid-config", false, "warn and skip configurations that fail to parse instead of aborting")

	return cmd
}
