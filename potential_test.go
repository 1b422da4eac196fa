package qtunnel

import (
	"math"
	"testing"
)

func testParams(shape BarrierShape) Parameters {
	p := DefaultParameters()
	p.Shape = shape
	return p
}

func TestPotentialLengthAndSign(t *testing.T) {
	g, _ := NewGrid(256)
	for _, shape := range []BarrierShape{Rectangular, GaussianBump, Triangular, DoubleWell, Coulomb} {
		v := NewPotential(g, testParams(shape))
		if len(v) != g.N() {
			t.Fatalf("%v: len = %d, want %d", shape, len(v), g.N())
		}
		for i, vi := range v {
			if vi < 0 {
				t.Fatalf("%v: V[%d] = %g < 0", shape, i, vi)
			}
			if math.IsNaN(vi) || math.IsInf(vi, 0) {
				t.Fatalf("%v: V[%d] = %g not finite", shape, i, vi)
			}
		}
	}
}

func TestRectangularBarrier(t *testing.T) {
	g, _ := NewGrid(512)
	p := testParams(Rectangular)
	v := NewPotential(g, p)

	for i, x := range g.X {
		want := 0.0
		if math.Abs(x-p.BarrierCenter) < p.BarrierWidth/2 {
			want = p.BarrierHeight
		}
		if v[i] != want {
			t.Fatalf("V(%.3f) = %g, want %g", x, v[i], want)
		}
	}
}

func TestGaussianBarrierPeak(t *testing.T) {
	g, _ := NewGrid(512)
	p := testParams(GaussianBump)
	v := NewPotential(g, p)

	// Maximum at the grid point nearest the center, value close to V0.
	peak := v[g.IndexOf(p.BarrierCenter)]
	if math.Abs(peak-p.BarrierHeight) > 0.01*p.BarrierHeight {
		t.Errorf("peak = %g, want ~%g", peak, p.BarrierHeight)
	}
	// Far tail is negligible.
	if v[0] > 1e-6 {
		t.Errorf("V at left edge = %g, want ~0", v[0])
	}
}

func TestTriangularBarrier(t *testing.T) {
	g, _ := NewGrid(512)
	p := testParams(Triangular)
	v := NewPotential(g, p)

	i := g.IndexOf(p.BarrierCenter)
	if math.Abs(v[i]-p.BarrierHeight) > 0.05*p.BarrierHeight {
		t.Errorf("apex = %g, want ~%g", v[i], p.BarrierHeight)
	}
	// Zero beyond the half-width.
	if got := v[g.IndexOf(p.BarrierCenter+p.BarrierWidth)]; got != 0 {
		t.Errorf("V beyond ramp = %g, want 0", got)
	}
	// Linear: value at quarter width is half the apex.
	x := p.BarrierCenter + p.BarrierWidth/4
	want := p.BarrierHeight / 2
	if math.Abs(barrierAt(x, p)-want) > 1e-9 {
		t.Errorf("V(quarter width) = %g, want %g", barrierAt(x, p), want)
	}
}

func TestDoubleWellBumps(t *testing.T) {
	p := testParams(DoubleWell)

	lobe := barrierAt(p.BarrierCenter+p.BarrierWidth/3, p)
	mid := barrierAt(p.BarrierCenter, p)
	if lobe <= mid {
		t.Errorf("lobe %g should exceed midpoint %g", lobe, mid)
	}
	// Each lobe carries the full V0 plus the far lobe's tail.
	if lobe < p.BarrierHeight {
		t.Errorf("lobe = %g, want >= %g", lobe, p.BarrierHeight)
	}
}

func TestCoulombCoreFloor(t *testing.T) {
	p := testParams(Coulomb)

	// The 0.1 floor bounds the peak at 10*V0*exp(-0.1/width).
	peak := barrierAt(p.BarrierCenter, p)
	want := p.BarrierHeight / 0.1 * math.Exp(-0.1/p.BarrierWidth)
	assertFloat(t, "coulomb peak", peak, want)

	if barrierAt(p.BarrierCenter+5, p) >= peak {
		t.Error("coulomb potential should decay away from center")
	}
}

func TestAbsorbingRamp(t *testing.T) {
	g, _ := NewGrid(512)
	p := testParams(Rectangular)
	plain := NewPotential(g, p)
	p.AbsorbingEdge = true
	ramped := NewPotential(g, p)

	// Interior unchanged.
	mid := g.IndexOf(0)
	assertFloat(t, "interior", ramped[mid], plain[mid])

	// Edges gain up to 0.1*V0.
	gain := ramped[0] - plain[0]
	if gain <= 0 || gain > 0.1*p.BarrierHeight+1e-9 {
		t.Errorf("left edge gain = %g, want in (0, %g]", gain, 0.1*p.BarrierHeight)
	}
	gain = ramped[g.N()-1] - plain[g.N()-1]
	if gain <= 0 || gain > 0.1*p.BarrierHeight+1e-9 {
		t.Errorf("right edge gain = %g", gain)
	}

	// Ramp is zero at 10% of the domain length from the edge.
	inner := g.IndexOf(-DomainLength/2 + 0.1*DomainLength + 0.5)
	assertFloat(t, "inside ramp start", ramped[inner], plain[inner])
}
