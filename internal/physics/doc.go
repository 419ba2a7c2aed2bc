// Package physics implements the double-pendulum model: two point
// masses on massless rigid rods, swinging under gravity from a fixed
// pivot. The model implements [dynamo.System] for integration and
// [dynamo.Hamiltonian] for energy diagnostics.
//
// State layout is [theta1, omega1, theta2, omega2], angles measured
// from the downward vertical, positive counterclockwise. Angles are
// unbounded reals; no wraparound normalization is applied.
package physics
