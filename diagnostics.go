package qtunnel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Diagnostics summarizes a wavefunction snapshot: where the probability
// ended up, how well the conserved quantities held, and how the numeric
// transmission compares to the analytic WKB estimate.
type Diagnostics struct {
	// Region partition, each a fraction of TotalProbability.
	Transmission     float64 `json:"transmission"`
	Reflection       float64 `json:"reflection"`
	BarrierOccupancy float64 `json:"barrier_occupancy"`

	// WKB comparison. ActionIntegral accumulates only over classically
	// forbidden grid points; WKBTransmission is exactly 1 when the
	// particle energy is at or above the barrier height.
	WKBTransmission float64 `json:"wkb_transmission"`
	ActionIntegral  float64 `json:"action_integral"`

	// Conservation metrics. TotalProbability drifting away from 1 is
	// the caller's signal that the scheme/step combination was not
	// stable for the given parameters.
	TotalProbability    float64 `json:"total_probability"`
	PositionExpectation float64 `json:"position_expectation"`
	MomentumExpectation float64 `json:"momentum_expectation"`
	AverageEnergy       float64 `json:"average_energy"`

	// Derived descriptors of the initial packet and barrier.
	GroupVelocity       float64 `json:"group_velocity"`
	DeBroglieWavelength float64 `json:"de_broglie_wavelength"`
	ResonanceStrength   float64 `json:"resonance_strength"`
	ClassicalForbidden  bool    `json:"classical_forbidden"`
}

// Analyze computes the full diagnostics record for a wavefunction
// snapshot, final or intermediate. It never fails: non-finite
// contributions are dropped from the accumulations, and the partition
// ratios fall back to zero when the total probability is itself
// near zero.
func Analyze(w WaveFunction, v []float64, g Grid, p Parameters) Diagnostics {
	prob := w.Density()
	dx := g.DX
	n := g.N()

	d := Diagnostics{
		GroupVelocity:       p.Momentum / p.Mass,
		DeBroglieWavelength: 2 * math.Pi / p.Momentum,
		ResonanceStrength:   math.Abs(math.Sin(math.Sqrt(2*p.Mass*p.Energy) * p.BarrierWidth)),
		ClassicalForbidden:  p.Energy < p.BarrierHeight,
	}

	d.TotalProbability = floats.Sum(prob) * dx

	for i, pi := range prob {
		addFinite(&d.PositionExpectation, g.X[i]*pi*dx)
	}

	// Momentum expectation from the probability current, centered
	// differences on the interior.
	for i := 1; i < n-1; i++ {
		dRe := (w.Re[i+1] - w.Re[i-1]) / (2 * dx)
		dIm := (w.Im[i+1] - w.Im[i-1]) / (2 * dx)
		addFinite(&d.MomentumExpectation, (w.Re[i]*dIm-w.Im[i]*dRe)*dx)
	}

	// Average energy: finite-difference kinetic term plus potential
	// term, interior points only.
	dx2 := dx * dx
	for i := 1; i < n-1; i++ {
		lapRe := w.Re[i+1] - 2*w.Re[i] + w.Re[i-1]
		lapIm := w.Im[i+1] - 2*w.Im[i] + w.Im[i-1]
		kin := -(w.Re[i]*lapRe + w.Im[i]*lapIm) / (2 * p.Mass * dx2)
		addFinite(&d.AverageEnergy, (kin+v[i]*prob[i])*dx)
	}

	d.partitionRegions(prob, g, p)
	d.wkbEstimate(v, g, p)
	return d
}

// partitionRegions splits the probability into reflected, in-barrier,
// and transmitted fractions using the nominal barrier extent
// center +/- width/2 mapped to grid indices.
func (d *Diagnostics) partitionRegions(prob []float64, g Grid, p Parameters) {
	start := g.IndexOf(p.BarrierCenter - p.BarrierWidth/2)
	end := g.IndexOf(p.BarrierCenter + p.BarrierWidth/2)

	var reflected, inBarrier, transmitted float64
	for i, pi := range prob {
		switch {
		case i < start:
			reflected += pi
		case i > end:
			transmitted += pi
		default:
			inBarrier += pi
		}
	}

	total := reflected + inBarrier + transmitted
	if total < 1e-12 {
		// Zero-probability run: ratios are user-facing, so report 0
		// rather than NaN.
		return
	}
	d.Reflection = reflected / total
	d.Transmission = transmitted / total
	d.BarrierOccupancy = inBarrier / total
}

// wkbEstimate integrates the local decay rate kappa(x) over the
// classically forbidden region. Allowed points (V <= E) contribute
// nothing to the action.
func (d *Diagnostics) wkbEstimate(v []float64, g Grid, p Parameters) {
	for _, vi := range v {
		if vi > p.Energy {
			d.ActionIntegral += math.Sqrt(2*p.Mass*(vi-p.Energy)) * g.DX
		}
	}
	if d.ClassicalForbidden {
		d.WKBTransmission = math.Exp(-2 * d.ActionIntegral)
	} else {
		d.WKBTransmission = 1
	}
}

// addFinite accumulates v into sum, treating non-finite contributions
// as zero.
func addFinite(sum *float64, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	*sum += v
}
