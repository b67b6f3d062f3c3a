package policy

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Clem-Fern/fcc/internal/fcc"
	"github.com/Clem-Fern/fcc/internal/readinput"
)

// newLintCommand creates the "policy lint" subcommand.
//
// It parses each named policy file in turn, reporting either
// "<path>: Syntax OK." or the parse error, and never aborts the whole run
// because one file among many failed.
func newLintCommand() *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "lint POLICY...",
		Short: "Check the syntax of one or more policy documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false

			for _, path := range args {
				raw, err := readinput.Read(path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					failed = true
					continue
				}

				if _, err := fcc.ParsePolicy(string(raw)); err != nil {
					logrus.WithField("path", path).Debug("policy failed to parse")
					fmt.Printf("%s: %v\n", path, err)
					failed = true
					continue
				}

				fmt.Printf("%s: Syntax OK.\n", path)

				if showDiff {
					if diff := fcc.DiffFiltered(path, string(raw), false); diff != "" {
						fmt.Print(diff)
					}
				}
			}

			if failed {
				return fmt.Errorf("one or more policy documents failed to lint")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "show a unified diff between the raw document and the lines the parser kept as content")

	return cmd
}
