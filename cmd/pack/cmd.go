package pack

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewPackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <n>",
		Short: "Pack the squares 1..n into a rectangle of least area",
		Long: `Pack n non-overlapping squares of sizes 1 to n into a rectangle of
least area and print the placement as a grid, one glyph per square:

  $ quadra pack 2
  3x2 area 6 (1 nodes, 0 backtracks)
  2 2 .
  2 2 1

Sizes above 9 continue through the alphabet. With --json the packing
is printed as JSON instead of a grid.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("instance size (%s) is not a number", args[0])
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := strconv.Atoi(args[0])
			noUnit, _ := cmd.Flags().GetBool("no-unit-square")
			asJSON, _ := cmd.Flags().GetBool("json")
			limit, _ := cmd.Flags().GetUint64("limit")
			debug, _ := cmd.Flags().GetBool("debug")
			return run(options{
				n:      n,
				noUnit: noUnit,
				asJSON: asJSON,
				limit:  limit,
				debug:  debug,
			})
		},
	}
	cmd.Flags().Bool("no-unit-square", false, "leave the 1x1 square out of the search and slot it into a free cell afterwards")
	cmd.Flags().Bool("json", false, "print the packing as JSON instead of a grid")
	cmd.Flags().Uint64("limit", 0, "give up after this many search nodes (0 means no limit)")
	cmd.Flags().Bool("debug", false, "log every search event")
	return cmd
}
