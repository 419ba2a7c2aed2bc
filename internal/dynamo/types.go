package dynamo

import "math"

// State is the vector of dynamic variables of a system. For the double
// pendulum the layout is [theta1, omega1, theta2, omega2].
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is a finite number.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is an autonomous ODE right-hand side: dx/dt = f(x).
type System interface {
	Derive(x State) State
	StateDim() int
}

// Stepper advances a state by one fixed step dt.
type Stepper interface {
	Step(dyn System, x State, dt float64) State
}

// Hamiltonian is implemented by systems that can report total
// mechanical energy, used for drift diagnostics.
type Hamiltonian interface {
	Energy(x State) float64
}
