package qtunnel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// WaveFunction is a complex wavefunction sampled on a Grid, stored as
// separate real and imaginary component slices of equal length.
//
// The normalization invariant dx*sum(|psi|^2) = 1 holds exactly after
// NewGaussianPacket and only approximately after evolution; drift beyond
// tolerance is a diagnostic signal, not an error.
type WaveFunction struct {
	Re []float64 `json:"re"`
	Im []float64 `json:"im"`
}

// NewGaussianPacket builds a normalized Gaussian wave packet on g with
// the given center, width sigma, and carrier momentum k:
//
//	psi_i = exp(-((x_i-x0)/sigma)^2 / 2) * exp(i*k*x_i)
//
// A vanishing sigma produces a near-zero envelope; in that case the
// packet is returned unnormalized rather than divided by a zero norm.
func NewGaussianPacket(g Grid, center, momentum, sigma float64) WaveFunction {
	n := g.N()
	w := WaveFunction{Re: make([]float64, n), Im: make([]float64, n)}

	var totalSq float64
	for i, x := range g.X {
		s := (x - center) / sigma
		env := math.Exp(-0.5 * s * s)
		w.Re[i] = env * math.Cos(momentum*x)
		w.Im[i] = env * math.Sin(momentum*x)
		totalSq += w.Re[i]*w.Re[i] + w.Im[i]*w.Im[i]
	}

	norm := math.Sqrt(totalSq * g.DX)
	if norm < 1e-15 || math.IsNaN(norm) {
		return w
	}
	floats.Scale(1/norm, w.Re)
	floats.Scale(1/norm, w.Im)
	return w
}

// N returns the number of sample points.
func (w WaveFunction) N() int { return len(w.Re) }

// Clone returns a deep copy of w.
func (w WaveFunction) Clone() WaveFunction {
	out := WaveFunction{Re: make([]float64, len(w.Re)), Im: make([]float64, len(w.Im))}
	copy(out.Re, w.Re)
	copy(out.Im, w.Im)
	return out
}

// Norm returns dx*sum(|psi|^2), the discrete normalization integral.
func (w WaveFunction) Norm(dx float64) float64 {
	var total float64
	for i := range w.Re {
		total += w.Re[i]*w.Re[i] + w.Im[i]*w.Im[i]
	}
	return total * dx
}

// Density returns |psi_i|^2 per point. Non-finite magnitudes are
// reported as zero.
func (w WaveFunction) Density() []float64 {
	out := make([]float64, len(w.Re))
	for i := range w.Re {
		p := w.Re[i]*w.Re[i] + w.Im[i]*w.Im[i]
		if !math.IsInf(p, 0) && !math.IsNaN(p) {
			out[i] = p
		}
	}
	return out
}

// sanitize replaces non-finite components with zero in place. Run after
// evolution so unstable parameter regimes degrade into a visible norm
// loss instead of NaN-poisoned diagnostics.
func (w WaveFunction) sanitize() {
	for i := range w.Re {
		if math.IsNaN(w.Re[i]) || math.IsInf(w.Re[i], 0) {
			w.Re[i] = 0
		}
		if math.IsNaN(w.Im[i]) || math.IsInf(w.Im[i], 0) {
			w.Im[i] = 0
		}
	}
}
