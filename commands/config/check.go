package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Clem-Fern/fcc/internal/fcc"
	"github.com/Clem-Fern/fcc/internal/readinput"
)

// newCheckCommand creates the "config check" subcommand: the mirror image
// of "policy check", one configuration checked against multiple policies.
func newCheckCommand() *cobra.Command {
	var ignoreInvalidPolicy bool

	cmd := &cobra.Command{
		Use:   "check CONFIG POLICY...",
		Short: "Check a configuration document against one or more policy documents",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, policyPaths := args[0], args[1:]

			configRaw, err := readinput.Read(configPath)
			if err != nil {
				return fmt.Errorf("%s: %w", configPath, err)
			}

			configTree, err := fcc.ParseConfiguration(string(configRaw))
			if err != nil {
				return fmt.Errorf("%s: %w", configPath, err)
			}

			failed := false

			for _, policyPath := range policyPaths {
				policyRaw, err := readinput.Read(policyPath)
				if err != nil {
					if ignoreInvalidPolicy {
						fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", policyPath, err)
						continue
					}
					return fmt.Errorf("%s: %w", policyPath, err)
				}

				policyTree, err := fcc.ParsePolicy(string(policyRaw))
				if err != nil {
					if ignoreInvalidPolicy {
						fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", policyPath, err)
						continue
					}
					return fmt.Errorf("%s: %w", policyPath, err)
				}

				logrus.WithField("policy", policyPath).Debug("checking configuration against policy")
				fmt.Printf("%s:\n", policyPath)
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

	cmd.Flags().BoolVar(&ignoreInvalidPolicy, "ignore-invalid-policy", false, "warn and skip policies that fail to parse instead of aborting")

	return cmd
}
