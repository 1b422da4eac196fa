package qtunnel

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DomainLength is the fixed extent of the simulation domain, centered at
// zero. Packets that reach the edges either reflect off the frozen
// boundary points or are damped by the absorbing ramp; callers choose
// evolution times accordingly.
const DomainLength = 20.0

// Grid is a uniform spatial grid of N points covering
// [-DomainLength/2, DomainLength/2).
type Grid struct {
	X  []float64 `json:"x"`  // strictly increasing, x_i = -L/2 + i*dx
	DX float64   `json:"dx"` // spacing, DomainLength/N
}

// NewGrid builds a uniform grid with n points. The last point falls one
// spacing short of +L/2, matching a linspace with the endpoint excluded.
func NewGrid(n int) (Grid, error) {
	if n < 3 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidGrid, n)
	}
	dx := DomainLength / float64(n)
	x := make([]float64, n)
	floats.Span(x, -DomainLength/2, DomainLength/2-dx)
	return Grid{X: x, DX: dx}, nil
}

// N returns the number of grid points.
func (g Grid) N() int { return len(g.X) }

// IndexOf maps a position to the nearest-below grid index, clamped to
// [0, N-1].
func (g Grid) IndexOf(pos float64) int {
	i := int((pos + DomainLength/2) / g.DX)
	if i < 0 {
		return 0
	}
	if i >= len(g.X) {
		return len(g.X) - 1
	}
	return i
}
