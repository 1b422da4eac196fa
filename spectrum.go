package qtunnel

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// MomentumSpectrum is the momentum-space probability density of a
// wavefunction, on an ascending wavenumber axis. The density is scaled
// so that sum(Density)*dk is approximately 1 for a normalized packet.
//
// This is a diagnostic view only; the evolution schemes remain finite
// difference and never propagate through momentum space.
type MomentumSpectrum struct {
	K       []float64 `json:"k"`
	Density []float64 `json:"density"`
}

// NewMomentumSpectrum computes the spectrum of w via an FFT. The
// wavenumber axis follows the FFT-frequency convention
// k = 2*pi*f/(N*dx) with f in [-N/2, N/2), shifted into ascending order.
func NewMomentumSpectrum(w WaveFunction, g Grid) MomentumSpectrum {
	n := g.N()
	dk := 2 * math.Pi / (float64(n) * g.DX)

	c := make([]complex128, n)
	for i := range c {
		c[i] = complex(w.Re[i], w.Im[i])
	}
	psiK := fft.FFT(c)

	// Unshifted FFT ordering is [0..n/2-1, -n/2..-1]; rotate so the
	// axis ascends.
	neg := n - (n+1)/2
	spec := MomentumSpectrum{
		K:       make([]float64, n),
		Density: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		var freq float64
		if i < (n+1)/2 {
			freq = float64(i)
		} else {
			freq = float64(i - n)
		}
		j := (i + neg) % n
		spec.K[j] = freq * dk
		mag := real(psiK[i])*real(psiK[i]) + imag(psiK[i])*imag(psiK[i])
		if math.IsNaN(mag) || math.IsInf(mag, 0) {
			mag = 0
		}
		spec.Density[j] = mag
	}

	total := floats.Sum(spec.Density) * dk
	if total > 1e-15 {
		floats.Scale(1/total, spec.Density)
	}
	return spec
}

// PeakK returns the wavenumber carrying the highest spectral density.
func (s MomentumSpectrum) PeakK() float64 {
	if len(s.Density) == 0 {
		return 0
	}
	return s.K[floats.MaxIdx(s.Density)]
}
