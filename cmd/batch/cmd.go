package batch

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <config>",
		Short: "Solve a YAML list of packing cases and check expectations",
		Long: `Solve every case in a YAML config file and log one line per case:

  cases:
    - n: 2
      expect: {width: 3, height: 2, area: 6}
    - n: 3
      unitSquare: false

A case with an expect block fails when the solved rectangle differs
from it; a case without one only has to solve. The command exits
nonzero when any case fails.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().Bool("debug", false, "log case details before solving")
	return cmd
}
