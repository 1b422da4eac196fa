package qtunnel

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// BarrierShape selects the potential-energy profile of the barrier.
type BarrierShape int

const (
	Rectangular BarrierShape = iota + 1 // Flat-topped step of height V0.
	GaussianBump                        // Smooth bump, half-width Width/3.
	Triangular                          // Linear ramp peaking at the center.
	DoubleWell                          // Two Gaussian bumps at ±Width/3.
	Coulomb                             // Screened 1/r with a 0.1 core floor.
)

var (
	shapeNames = [...]string{
		Rectangular:  "rectangular",
		GaussianBump: "gaussian",
		Triangular:   "triangular",
		DoubleWell:   "double-well",
		Coulomb:      "coulomb",
	}
	shapeByName = map[string]BarrierShape{
		"rectangular": Rectangular,
		"gaussian":    GaussianBump,
		"triangular":  Triangular,
		"double-well": DoubleWell,
		"coulomb":     Coulomb,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = BarrierShape(0)
	_ json.Marshaler           = BarrierShape(0)
	_ json.Unmarshaler         = (*BarrierShape)(nil)
	_ encoding.TextMarshaler   = BarrierShape(0)
	_ encoding.TextUnmarshaler = (*BarrierShape)(nil)
)

// String returns the shape name ("rectangular", "gaussian", ...).
// For invalid values it returns "BarrierShape(n)".
func (s BarrierShape) String() string {
	if s.IsValid() {
		return shapeNames[s]
	}
	return fmt.Sprintf("BarrierShape(%d)", int(s))
}

// IsValid reports whether s is one of the five defined shapes.
func (s BarrierShape) IsValid() bool {
	return s >= Rectangular && s <= Coulomb
}

// MarshalText implements encoding.TextMarshaler.
func (s BarrierShape) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBarrierShape, int(s))
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *BarrierShape) UnmarshalText(text []byte) error {
	v, ok := shapeByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidBarrierShape, text)
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler. BarrierShape serializes as a
// JSON string.
func (s BarrierShape) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (s *BarrierShape) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBarrierShape, data)
	}
	return s.UnmarshalText([]byte(str))
}

// Method selects the time-integration scheme.
//
// All three schemes are finite-difference approximations with frozen
// boundary points. SplitOperator and CrankNicolson carry the names of
// their textbook namesakes but are deliberately simplified; see evolve.go.
type Method int

const (
	SplitOperator Method = iota + 1 // Potential phase rotation + explicit kinetic step.
	CrankNicolson                   // Explicit update with implicit-style coefficient grouping.
	Euler                           // First-order explicit step.
)

var (
	methodNames = [...]string{
		SplitOperator: "split-operator",
		CrankNicolson: "crank-nicolson",
		Euler:         "euler",
	}
	methodByName = map[string]Method{
		"split-operator": SplitOperator,
		"crank-nicolson": CrankNicolson,
		"euler":          Euler,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Method(0)
	_ json.Marshaler           = Method(0)
	_ json.Unmarshaler         = (*Method)(nil)
	_ encoding.TextMarshaler   = Method(0)
	_ encoding.TextUnmarshaler = (*Method)(nil)
)

// String returns the method name ("split-operator", "crank-nicolson",
// "euler"). For invalid values it returns "Method(n)".
func (m Method) String() string {
	if m.IsValid() {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// IsValid reports whether m is one of the three defined schemes.
func (m Method) IsValid() bool {
	return m >= SplitOperator && m <= Euler
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMethod, int(m))
	}
	return []byte(methodNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, ok := methodByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, text)
	}
	*m = v
	return nil
}

// MarshalJSON implements json.Marshaler. Method serializes as a JSON string.
func (m Method) MarshalJSON() ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (m *Method) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMethod, data)
	}
	return m.UnmarshalText([]byte(str))
}

// Parameters is the complete input snapshot for one simulation run.
//
// All numeric fields are taken at face value: the engine does not clamp
// physical degenerates (zero width, vanishing packet width). Unstable
// combinations surface through Diagnostics.TotalProbability drifting away
// from 1, not through errors. Simulate rejects only structural
// impossibilities: GridPoints < 3, non-positive Mass, invalid enums.
type Parameters struct {
	BarrierHeight float64      `json:"barrier_height" yaml:"barrier_height"` // V0, energy units
	BarrierWidth  float64      `json:"barrier_width" yaml:"barrier_width"`   // a, length units
	BarrierCenter float64      `json:"barrier_center" yaml:"barrier_center"`
	Energy        float64      `json:"energy" yaml:"energy"` // particle energy E
	Mass          float64      `json:"mass" yaml:"mass"`
	PacketWidth   float64      `json:"packet_width" yaml:"packet_width"`   // Gaussian sigma
	PacketCenter  float64      `json:"packet_center" yaml:"packet_center"` // x0
	Momentum      float64      `json:"momentum" yaml:"momentum"`           // initial wavenumber k
	Time          float64      `json:"time" yaml:"time"`                   // target evolution time
	Shape         BarrierShape `json:"shape" yaml:"shape"`
	Method        Method       `json:"method" yaml:"method"`
	AbsorbingEdge bool         `json:"absorbing_edge" yaml:"absorbing_edge"`
	GridPoints    int          `json:"grid_points" yaml:"grid_points"` // N, practical range 128-1024
}

// DefaultParameters returns a stable, mid-barrier tunneling scenario:
// a packet with E = 2 approaching a rectangular barrier of height 3,
// evolved with the split-operator scheme on a 256-point grid.
func DefaultParameters() Parameters {
	return Parameters{
		BarrierHeight: 3.0,
		BarrierWidth:  2.0,
		BarrierCenter: 0.0,
		Energy:        2.0,
		Mass:          1.0,
		PacketWidth:   1.5,
		PacketCenter:  -6.0,
		Momentum:      2.0,
		Time:          5.0,
		Shape:         Rectangular,
		Method:        SplitOperator,
		GridPoints:    256,
	}
}

// validate checks the structural fields of p. Physical ranges are
// deliberately not checked.
func (p Parameters) validate() error {
	if p.GridPoints < 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidGrid, p.GridPoints)
	}
	if p.Mass <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidMass, p.Mass)
	}
	if !p.Shape.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidBarrierShape, int(p.Shape))
	}
	if !p.Method.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidMethod, int(p.Method))
	}
	return nil
}
