package solver

import (
	"fmt"
	"io"

	"github.com/fd-lab/quadra/pkg/quadra"
)

// DefaultTracer ignores every event.
type DefaultTracer struct{}

func (DefaultTracer) Branch(_ quadra.SearchPosition, _ string, _ int) {}
func (DefaultTracer) Fail(_ quadra.SearchPosition, _ string)         {}
func (DefaultTracer) Backtrack(_ quadra.SearchPosition, _ string)    {}
func (DefaultTracer) Solution(_ quadra.SearchPosition)               {}

// LoggingTracer writes one line per search event.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Branch(p quadra.SearchPosition, variable string, value int) {
	fmt.Fprintf(t.Writer, "branch depth=%d nodes=%d %s=%d\n", p.Depth(), p.Nodes(), variable, value)
}

func (t LoggingTracer) Fail(p quadra.SearchPosition, constraint string) {
	fmt.Fprintf(t.Writer, "fail depth=%d nodes=%d constraint=%q\n", p.Depth(), p.Nodes(), constraint)
}

func (t LoggingTracer) Backtrack(p quadra.SearchPosition, variable string) {
	fmt.Fprintf(t.Writer, "backtrack depth=%d nodes=%d past=%s\n", p.Depth(), p.Nodes(), variable)
}

func (t LoggingTracer) Solution(p quadra.SearchPosition) {
	fmt.Fprintf(t.Writer, "solution depth=%d nodes=%d\n", p.Depth(), p.Nodes())
}
