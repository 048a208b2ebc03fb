package verify

import (
	"github.com/spf13/cobra"
)

func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <n> <width> <height>",
		Short: "Check whether the squares 1..n fit into a given rectangle",
		Long: `Check with an independent SAT encoding whether the non-overlapping
squares of sizes 1 to n fit into a width x height rectangle. The exit
status is 0 when they fit and 1 when they do not, so the command can
confirm that the area found by pack is really the least one:

  $ quadra verify 4 7 5   # fits
  $ quadra verify 4 6 5   # does not`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, width, height, err := parseArgs(args)
			if err != nil {
				return err
			}
			noUnit, _ := cmd.Flags().GetBool("no-unit-square")
			return run(n, width, height, !noUnit)
		},
	}
	cmd.Flags().Bool("no-unit-square", false, "leave the 1x1 square out of the encoding")
	return cmd
}
