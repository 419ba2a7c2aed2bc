// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental types for fixed-step numerical
// simulation of ordinary differential equations:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dx/dt = f(x))
//   - [Stepper]: fixed-step numerical integrator interface
//   - [Hamiltonian]: energy reporting for drift diagnostics
//
// Concrete systems live in the physics package and concrete steppers in
// the integrators package; the sim package orchestrates them.
package dynamo
