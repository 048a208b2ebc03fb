package solver

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{4, 5, 6} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s, err := NewSolver()
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < b.N; i++ {
				if _, err := s.Solve(context.Background(), n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
