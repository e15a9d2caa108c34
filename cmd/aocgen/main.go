// Command aocgen regenerates days/days.go, the file linking every day
// package into the aoc binary. It is run by go generate from cmd/aoc.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/fluxehub/AdventOfCode2025/pkg/logging"
	"github.com/fluxehub/AdventOfCode2025/pkg/scaffold"
)

func main() {
	var (
		root      string
		verbosity int
	)

	cmd := &cobra.Command{
		Use:   "aocgen",
		Short: "Regenerate days/days.go",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupWriter(os.Stderr, verbosity)
			days, err := scaffold.Generate(afero.NewOsFs(), root)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "aocgen: linked %d day(s)\n", len(days))
			return err
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&root, "root", ".", "project directory containing go.mod")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
