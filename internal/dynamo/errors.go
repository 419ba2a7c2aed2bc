package dynamo

import "errors"

// Domain errors for simulation construction.
var (
	// ErrInvalidParameter indicates a physical parameter outside its
	// valid range (non-positive mass or length, non-finite gravity).
	ErrInvalidParameter = errors.New("dynamo: parameter out of valid bounds")

	// ErrInvalidConfig indicates a simulation configuration that cannot
	// produce a stable run (non-positive timestep, zero substeps,
	// negative trail capacity).
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")
)
