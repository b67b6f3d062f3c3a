package manifest

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Clem-Fern/fcc/internal/fcc"
	"github.com/Clem-Fern/fcc/internal/manifest"
	"github.com/Clem-Fern/fcc/internal/readinput"
)

// newCheckCommand creates the "manifest check" subcommand.
//
// It resolves every policy declared by the manifest against every
// configuration declared by the manifest, printing a header before each
// pair's verdicts, and applies the same exit-code semantics as
// "policy check": non-zero if any verdict is an error outcome.
func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check MANIFEST...",
		Short: "Run every policy/configuration pairing a manifest declares",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false

			for _, manifestPath := range args {
				m, err := manifest.ParseFile(manifestPath)
				if err != nil {
					return fmt.Errorf("%s: %w", manifestPath, err)
				}

				policyPaths, err := collectFiles(manifestPath, m.Policies)
				if err != nil {
					return fmt.Errorf("%s: %w", manifestPath, err)
				}

				configGroupPaths := make([][]string, len(m.Configs))
				for i, group := range m.Configs {
					paths, err := group.Files(manifestPath)
					if err != nil {
						return fmt.Errorf("%s: %w", manifestPath, err)
					}
					configGroupPaths[i] = paths
				}

				for _, policyPath := range policyPaths {
					policyRaw, err := readinput.Read(policyPath)
					if err != nil {
						return fmt.Errorf("%s: %w", policyPath, err)
					}
					policyTree, err := fcc.ParsePolicy(string(policyRaw))
					if err != nil {
						return fmt.Errorf("%s: %w", policyPath, err)
					}

					for _, configPaths := range configGroupPaths {
						for _, configPath := range configPaths {
							configRaw, err := readinput.Read(configPath)
							if err != nil {
								return fmt.Errorf("%s: %w", configPath, err)
							}
							configTree, err := fcc.ParseConfiguration(string(configRaw))
							if err != nil {
								return fmt.Errorf("%s: %w", configPath, err)
							}

							logrus.WithField("manifest", manifestPath).
								WithField("policy", policyPath).
								WithField("config", configPath).
								Debug("checking manifest pairing")

							fmt.Printf("%s -- %s vs %s:\n", manifestPath, policyPath, configPath)
							for _, v := range fcc.Check(policyTree, configTree) {
								fmt.Println(v.String())
								if v.Outcome.IsErr() {
									failed = true
								}
							}
						}
					}
				}
			}

			if failed {
				return fmt.Errorf("one or more compliance checks failed")
			}
			return nil
		},
	}

	return cmd
}

func collectFiles(manifestPath string, groups []manifest.PolicyGroup) ([]string, error) {
	var all []string
	for _, g := range groups {
		files, err := g.Files(manifestPath)
		if err != nil {
			return nil, err
		}
		all = append(all, files...)
	}
	return all, nil
}
