package root

import (
	"github.com/spf13/cobra"

	"github.com/fd-lab/quadra/cmd/batch"

	"github.com/fd-lab/quadra/cmd/pack"

	"github.com/fd-lab/quadra/cmd/verify"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quadra",
		Short: "Quadra packs consecutive squares into least-area rectangles",
		Long: `A finite-domain solver that packs the squares 1..n into a rectangle
of least area, with an independent SAT check for the result.
For more information visit https://github.com/fd-lab/quadra`,
	}

	// add sub-commands
	rootCmd.AddCommand(pack.NewPackCommand())
	rootCmd.AddCommand(verify.NewVerifyCommand())
	rootCmd.AddCommand(batch.NewBatchCommand())

	return rootCmd
}
