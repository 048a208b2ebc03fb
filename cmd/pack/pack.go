package pack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fd-lab/quadra/pkg/quadra"
	"github.com/fd-lab/quadra/pkg/quadra/solver"
)

type options struct {
	n      int
	noUnit bool
	asJSON bool
	limit  uint64
	debug  bool
}

func run(opts options) error {
	var solverOptions []solver.Option
	if opts.noUnit {
		solverOptions = append(solverOptions, solver.WithoutUnitSquare())
	}
	if opts.limit > 0 {
		solverOptions = append(solverOptions, solver.WithNodeLimit(opts.limit))
	}
	if opts.debug {
		solverOptions = append(solverOptions, solver.WithTracer(logTracer{
			log: logrus.NewEntry(logrus.StandardLogger()),
		}))
	}

	s, err := solver.New(solverOptions...)
	if err != nil {
		return err
	}
	solution, err := s.Solve(context.Background(), opts.n)
	if err != nil {
		return err
	}

	packing := solution.Packing()
	if opts.asJSON {
		out, err := json.MarshalIndent(packing, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	stats := solution.Stats()
	fmt.Printf("%dx%d area %d (%d nodes, %d backtracks)\n",
		packing.Width, packing.Height, packing.Area, stats.Nodes, stats.Backtracks)
	fmt.Print(renderGrid(packing))
	return nil
}

// logTracer forwards search events to logrus at debug level.
type logTracer struct {
	log *logrus.Entry
}

func (t logTracer) Branch(p quadra.SearchPosition, variable string, value int) {
	t.at(p).Debugf("branch %s=%d", variable, value)
}

func (t logTracer) Fail(p quadra.SearchPosition, constraint string) {
	t.at(p).Debugf("fail at %s", constraint)
}

func (t logTracer) Backtrack(p quadra.SearchPosition, variable string) {
	t.at(p).Debugf("backtrack past %s", variable)
}

func (t logTracer) Solution(p quadra.SearchPosition) {
	t.at(p).Debug("solution")
}

func (t logTracer) at(p quadra.SearchPosition) *logrus.Entry {
	return t.log.WithFields(logrus.Fields{"depth": p.Depth(), "nodes": p.Nodes()})
}

const glyphs = "123456789abcdefghijklmnopqrstuvwxyz"

func glyph(size int) byte {
	if size < 1 || size > len(glyphs) {
		return '?'
	}
	return glyphs[size-1]
}

// renderGrid draws the packing one cell per glyph, free cells as dots.
// Rows are printed top to bottom, so y counts down.
func renderGrid(p quadra.Packing) string {
	cells := make([]byte, p.Width*p.Height)
	for i := range cells {
		cells[i] = '.'
	}
	for _, sq := range p.Squares {
		for y := sq.Y; y < sq.Y+sq.Size; y++ {
			for x := sq.X; x < sq.X+sq.Size; x++ {
				cells[y*p.Width+x] = glyph(sq.Size)
			}
		}
	}
	var sb strings.Builder
	for y := p.Height - 1; y >= 0; y-- {
		for x := 0; x < p.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cells[y*p.Width+x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
