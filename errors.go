package qtunnel

import "errors"

// Sentinel errors for the qtunnel package.
// Use errors.Is to check: errors.Is(err, qtunnel.ErrInvalidGrid)
var (
	ErrInvalidGrid         = errors.New("qtunnel: grid must have at least 3 points")
	ErrInvalidMass         = errors.New("qtunnel: particle mass must be positive")
	ErrInvalidBarrierShape = errors.New("qtunnel: invalid barrier shape")
	ErrInvalidMethod       = errors.New("qtunnel: invalid integration method")
)
