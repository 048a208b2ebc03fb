package verify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fd-lab/quadra/internal/satcheck"
)

func parseArgs(args []string) (n, width, height int, err error) {
	if n, err = parseInt("instance size", args[0]); err != nil {
		return 0, 0, 0, err
	}
	if width, err = parseInt("width", args[1]); err != nil {
		return 0, 0, 0, err
	}
	if height, err = parseInt("height", args[2]); err != nil {
		return 0, 0, 0, err
	}
	return n, width, height, nil
}

func parseInt(name, arg string) (int, error) {
	value, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s (%s) is not a number", name, arg)
	}
	return value, nil
}

func run(n, width, height int, includeUnit bool) error {
	fits, err := satcheck.Feasible(context.Background(), n, width, height, includeUnit)
	if err != nil {
		return err
	}
	if !fits {
		return fmt.Errorf("the squares 1..%d do not fit into %dx%d", n, width, height)
	}
	fmt.Printf("the squares 1..%d fit into %dx%d\n", n, width, height)
	return nil
}
