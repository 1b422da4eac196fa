package qtunnel

import (
	"math"
	"testing"
)

func TestPartitionSumsToOne(t *testing.T) {
	g, _ := NewGrid(256)
	p := DefaultParameters()
	v := NewPotential(g, p)
	w := NewGaussianPacket(g, p.PacketCenter, p.Momentum, p.PacketWidth)

	d := Analyze(w, v, g, p)
	sum := d.Transmission + d.Reflection + d.BarrierOccupancy
	assertFloat(t, "T+R+B", sum, 1)
}

func TestInitialPacketMostlyReflectedSide(t *testing.T) {
	g, _ := NewGrid(256)
	p := DefaultParameters()
	v := NewPotential(g, p)
	w := NewGaussianPacket(g, p.PacketCenter, p.Momentum, p.PacketWidth)

	// Before evolution the packet sits left of the barrier.
	d := Analyze(w, v, g, p)
	if d.Reflection < 0.95 {
		t.Errorf("initial left-side fraction = %.4f, want > 0.95", d.Reflection)
	}
	if d.Transmission > 0.01 {
		t.Errorf("initial right-side fraction = %.4f, want ~0", d.Transmission)
	}
}

func TestConservationOnInitialPacket(t *testing.T) {
	g, _ := NewGrid(512)
	p := DefaultParameters()
	v := NewPotential(g, p)
	w := NewGaussianPacket(g, p.PacketCenter, p.Momentum, p.PacketWidth)

	d := Analyze(w, v, g, p)
	if math.Abs(d.TotalProbability-1) > 1e-6 {
		t.Errorf("totalProbability = %.9f, want 1", d.TotalProbability)
	}
	if math.Abs(d.PositionExpectation-p.PacketCenter) > 0.05 {
		t.Errorf("<x> = %.4f, want %.1f", d.PositionExpectation, p.PacketCenter)
	}
	if math.Abs(d.MomentumExpectation-p.Momentum) > 0.05 {
		t.Errorf("<p> = %.4f, want %.1f", d.MomentumExpectation, p.Momentum)
	}
	// Average energy: kinetic k^2/2m plus envelope spread 1/(4 m sigma^2),
	// barrier overlap negligible for a packet at -6.
	wantE := p.Momentum*p.Momentum/(2*p.Mass) + 1/(4*p.Mass*p.PacketWidth*p.PacketWidth)
	if math.Abs(d.AverageEnergy-wantE) > 0.1*wantE {
		t.Errorf("<E> = %.4f, want ~%.4f", d.AverageEnergy, wantE)
	}
}

func TestZeroProbabilityGuard(t *testing.T) {
	g, _ := NewGrid(128)
	p := DefaultParameters()
	v := NewPotential(g, p)
	w := WaveFunction{Re: make([]float64, g.N()), Im: make([]float64, g.N())}

	d := Analyze(w, v, g, p)
	assertFloat(t, "transmission", d.Transmission, 0)
	assertFloat(t, "reflection", d.Reflection, 0)
	assertFloat(t, "barrierOccupancy", d.BarrierOccupancy, 0)
	assertFloat(t, "totalProbability", d.TotalProbability, 0)
}

func TestWKBAllowedRegime(t *testing.T) {
	g, _ := NewGrid(256)
	p := DefaultParameters()
	p.Energy = 8
	p.BarrierHeight = 1
	v := NewPotential(g, p)
	w := NewGaussianPacket(g, p.PacketCenter, p.Momentum, p.PacketWidth)

	d := Analyze(w, v, g, p)
	if d.ClassicalForbidden {
		t.Error("E=8 over V0=1 flagged as classically forbidden")
	}
	if d.WKBTransmission != 1 {
		t.Errorf("wkbTransmission = %g, want exactly 1", d.WKBTransmission)
	}
	assertFloat(t, "actionIntegral", d.ActionIntegral, 0)
}

func TestWKBForbiddenRegime(t *testing.T) {
	g, _ := NewGrid(256)
	p := DefaultParameters()
	p.Energy = 1
	p.BarrierHeight = 5
	p.BarrierWidth = 2
	v := NewPotential(g, p)
	w := NewGaussianPacket(g, p.PacketCenter, p.Momentum, p.PacketWidth)

	d := Analyze(w, v, g, p)
	if !d.ClassicalForbidden {
		t.Error("E=1 under V0=5 not flagged as classically forbidden")
	}
	if d.WKBTransmission <= 0 || d.WKBTransmission >= 1 {
		t.Errorf("wkbTransmission = %g, want in (0,1)", d.WKBTransmission)
	}
	if d.ActionIntegral <= 0 {
		t.Errorf("actionIntegral = %g, want > 0", d.ActionIntegral)
	}

	// Rectangular barrier: action ~ sqrt(2m(V0-E)) * width.
	want := math.Sqrt(2*p.Mass*(p.BarrierHeight-p.Energy)) * p.BarrierWidth
	if math.Abs(d.ActionIntegral-want) > 0.1*want {
		t.Errorf("actionIntegral = %.4f, want ~%.4f", d.ActionIntegral, want)
	}
}

func TestWKBMonotoneInWidth(t *testing.T) {
	g, _ := NewGrid(256)
	p := DefaultParameters()
	p.Energy = 1
	p.BarrierHeight = 5
	w := NewGaussianPacket(g, p.PacketCenter, p.Momentum, p.PacketWidth)

	prev := 1.0
	for _, width := range []float64{1, 2, 3, 4} {
		p.BarrierWidth = width
		v := NewPotential(g, p)
		d := Analyze(w, v, g, p)
		if d.WKBTransmission >= prev {
			t.Errorf("width %.0f: wkbTransmission = %g, want < %g",
				width, d.WKBTransmission, prev)
		}
		prev = d.WKBTransmission
	}
}

func TestAuxiliaryDescriptors(t *testing.T) {
	g, _ := NewGrid(128)
	p := DefaultParameters()
	p.Momentum = 2
	p.Mass = 0.5
	v := NewPotential(g, p)
	w := NewGaussianPacket(g, p.PacketCenter, p.Momentum, p.PacketWidth)

	d := Analyze(w, v, g, p)
	assertFloat(t, "groupVelocity", d.GroupVelocity, 4)
	assertFloat(t, "deBroglie", d.DeBroglieWavelength, math.Pi)
	want := math.Abs(math.Sin(math.Sqrt(2*p.Mass*p.Energy) * p.BarrierWidth))
	assertFloat(t, "resonanceStrength", d.ResonanceStrength, want)
}
