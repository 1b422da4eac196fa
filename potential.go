package qtunnel

import "math"

// NewPotential samples the barrier profile of p on g, one energy value
// per grid point. If p.AbsorbingEdge is set, a quadratic ramp of
// magnitude 0.1*V0 is added over the outer 10% of the domain on each
// side. The ramp is a real potential term, not an imaginary absorber; it
// damps edge reflections only approximately.
func NewPotential(g Grid, p Parameters) []float64 {
	v := make([]float64, g.N())
	for i, x := range g.X {
		v[i] = barrierAt(x, p)
	}
	if p.AbsorbingEdge {
		addAbsorbingRamp(g, v, p.BarrierHeight)
	}
	return v
}

// barrierAt evaluates the chosen barrier shape at position x.
func barrierAt(x float64, p Parameters) float64 {
	v0 := p.BarrierHeight
	w := p.BarrierWidth
	d := x - p.BarrierCenter

	switch p.Shape {
	case Rectangular:
		if math.Abs(d) < w/2 {
			return v0
		}
		return 0

	case GaussianBump:
		// Effective half-width w/3 keeps the bump well inside the
		// nominal barrier region.
		s := d / (w / 3)
		return v0 * math.Exp(-0.5*s*s)

	case Triangular:
		half := w / 2
		if math.Abs(d) >= half {
			return 0
		}
		return v0 * (1 - math.Abs(d)/half)

	case DoubleWell:
		sigma := w / 6
		l := (d + w/3) / sigma
		r := (d - w/3) / sigma
		return v0 * (math.Exp(-0.5*l*l) + math.Exp(-0.5*r*r))

	case Coulomb:
		// 0.1 core floor avoids the singularity at the center.
		r := math.Max(math.Abs(d), 0.1)
		return v0 / r * math.Exp(-r/w)
	}
	return 0
}

// addAbsorbingRamp adds the edge penalty in place: zero at 10% of the
// domain length from each edge, growing quadratically to 0.1*v0 at the
// boundary points.
func addAbsorbingRamp(g Grid, v []float64, v0 float64) {
	ramp := 0.1 * DomainLength
	left := -DomainLength/2 + ramp
	right := DomainLength/2 - ramp
	for i, x := range g.X {
		switch {
		case x < left:
			s := (left - x) / ramp
			v[i] += 0.1 * v0 * s * s
		case x > right:
			s := (x - right) / ramp
			v[i] += 0.1 * v0 * s * s
		}
	}
}
