package integrators

import "github.com/san-kum/pendulab/internal/dynamo"

// Euler is the explicit (forward) Euler method. First-order accurate;
// kept for accuracy comparisons, not for interactive simulation.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, dt float64) dynamo.State {
	dx := dyn.Derive(x)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
