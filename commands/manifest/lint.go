package manifest

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Clem-Fern/fcc/internal/manifest"
)

// newLintCommand creates the "manifest lint" subcommand: the same
// continue-past-failure batch behavior as "policy lint", applied to
// manifest documents instead.
func newLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint MANIFEST...",
		Short: "Check the syntax of one or more compliance manifests",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false

			for _, path := range args {
				if _, err := manifest.ParseFile(path); err != nil {
					fmt.Printf("%s: %v\n", path, err)
					failed = true
					continue
				}
				fmt.Printf("%s: Syntax OK.\n", path)
			}

			if failed {
				return fmt.Errorf("one or more manifests failed to lint")
			}
			return nil
		},
	}

	return cmd
}
