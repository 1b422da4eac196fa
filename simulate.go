package qtunnel

// Result is the complete output of one simulation run. Every field is
// freshly allocated per call and never mutated afterwards.
type Result struct {
	Parameters Parameters       `json:"parameters"`
	Grid       Grid             `json:"grid"`
	Potential  []float64        `json:"potential"`
	Wave       WaveFunction     `json:"wave"`
	Density    []float64        `json:"density"`
	Spectrum   MomentumSpectrum `json:"spectrum"`

	Diagnostics Diagnostics `json:"diagnostics"`
}

// Simulate runs the full pipeline: grid and potential construction,
// Gaussian packet initialization, time evolution, diagnostics. It is a
// pure function of p.
//
// Only structural impossibilities are rejected (grid too small,
// non-positive mass, invalid enum); physical degenerates propagate into
// the numerics and surface through the diagnostics, matching the
// permissive error model of the engine core.
func Simulate(p Parameters) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	grid, err := NewGrid(p.GridPoints)
	if err != nil {
		return nil, err
	}
	potential := NewPotential(grid, p)
	packet := NewGaussianPacket(grid, p.PacketCenter, p.Momentum, p.PacketWidth)
	wave := Evolve(packet, potential, grid, p.Mass, p.Time, p.Method)

	return &Result{
		Parameters:  p,
		Grid:        grid,
		Potential:   potential,
		Wave:        wave,
		Density:     wave.Density(),
		Spectrum:    NewMomentumSpectrum(wave, grid),
		Diagnostics: Analyze(wave, potential, grid, p),
	}, nil
}
