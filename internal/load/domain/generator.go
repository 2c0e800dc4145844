package domain

import "context"

// DefaultIterations is the number of terms summed per load request
const DefaultIterations = 1_000_000

// ResultMessage is returned with every completed load run
const ResultMessage = "Load generated"

// Generator burns CPU. The returned value has no meaning beyond keeping
// the computation observable.
type Generator interface {
	Generate(ctx context.Context) uint64
}

// SquareSum sums i*i for i in [0, Iterations)
type SquareSum struct {
	Iterations int
}

// NewSquareSum creates a generator summing the given number of squares
func NewSquareSum(iterations int) *SquareSum {
	return &SquareSum{Iterations: iterations}
}

// Generate implements Generator. The sum wraps around on overflow.
func (g *SquareSum) Generate(ctx context.Context) uint64 {
	var sum uint64
	for i := 0; i < g.Iterations; i++ {
		n := uint64(i)
		sum += n * n
	}
	return sum
}

// Result is the outcome of a load run
type Result struct {
	Message  string
	CPUUsage float64
}
