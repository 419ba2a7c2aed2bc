package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/pendulab/internal/dynamo"
)

const (
	DefaultMass    = 1.0
	DefaultLength  = 1.0
	DefaultGravity = 9.81

	// DefaultTheta is the starting angle of both rods for a pendulum
	// created in the default configuration.
	DefaultTheta = 1.0
)

// Params holds the fixed physical parameters of one double pendulum.
// They are constant for the life of the instance.
type Params struct {
	Length1 float64
	Length2 float64
	Mass1   float64
	Mass2   float64
	Gravity float64
}

func DefaultParams() Params {
	return Params{
		Length1: DefaultLength,
		Length2: DefaultLength,
		Mass1:   DefaultMass,
		Mass2:   DefaultMass,
		Gravity: DefaultGravity,
	}
}

// Validate rejects parameters that would make the equations of motion
// singular or the integrator produce NaN/Inf states.
func (p Params) Validate() error {
	if p.Length1 <= 0 || p.Length2 <= 0 {
		return fmt.Errorf("%w: lengths must be positive (l1=%g, l2=%g)",
			dynamo.ErrInvalidParameter, p.Length1, p.Length2)
	}
	if p.Mass1 <= 0 || p.Mass2 <= 0 {
		return fmt.Errorf("%w: masses must be positive (m1=%g, m2=%g)",
			dynamo.ErrInvalidParameter, p.Mass1, p.Mass2)
	}
	if math.IsNaN(p.Gravity) || math.IsInf(p.Gravity, 0) {
		return fmt.Errorf("%w: gravity must be finite", dynamo.ErrInvalidParameter)
	}
	return nil
}

// DoublePendulum is the ODE system for two coupled point-mass
// pendulums. It is stateless apart from its parameters; one instance
// can serve any number of independent state vectors.
type DoublePendulum struct {
	p Params
}

func NewDoublePendulum(p Params) (*DoublePendulum, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &DoublePendulum{p: p}, nil
}

func (d *DoublePendulum) Params() Params { return d.p }

func (d *DoublePendulum) StateDim() int { return 4 }

// DefaultState returns the fixed starting configuration: both rods at
// DefaultTheta, at rest.
func (d *DoublePendulum) DefaultState() dynamo.State {
	return dynamo.State{DefaultTheta, 0, DefaultTheta, 0}
}

// Derive evaluates the equations of motion. The closed form follows
// the Lagrangian derivation for two point masses on massless rods;
// the denominators stay strictly positive for positive masses and
// lengths, so the function is total over valid parameters.
func (d *DoublePendulum) Derive(x dynamo.State) dynamo.State {
	theta1, omega1, theta2, omega2 := x[0], x[1], x[2], x[3]
	m1, m2 := d.p.Mass1, d.p.Mass2
	l1, l2 := d.p.Length1, d.p.Length2
	g := d.p.Gravity

	delta := theta2 - theta1
	sinD, cosD := math.Sin(delta), math.Cos(delta)

	den1 := (m1+m2)*l1 - m2*l1*cosD*cosD
	den2 := (l2 / l1) * den1

	alpha1 := (m2*l1*omega1*omega1*sinD*cosD +
		m2*g*math.Sin(theta2)*cosD +
		m2*l2*omega2*omega2*sinD -
		(m1+m2)*g*math.Sin(theta1)) / den1

	alpha2 := (-m2*l2*omega2*omega2*sinD*cosD +
		(m1+m2)*(g*math.Sin(theta1)*cosD-
			l1*omega1*omega1*sinD-
			g*math.Sin(theta2))) / den2

	return dynamo.State{omega1, alpha1, omega2, alpha2}
}

// Energy returns total mechanical energy (kinetic + potential).
// Potential is measured from the pivot, so the rest configuration has
// negative energy.
func (d *DoublePendulum) Energy(x dynamo.State) float64 {
	theta1, omega1, theta2, omega2 := x[0], x[1], x[2], x[3]
	m1, m2 := d.p.Mass1, d.p.Mass2
	l1, l2 := d.p.Length1, d.p.Length2
	g := d.p.Gravity

	v1sq := l1 * l1 * omega1 * omega1
	v2sq := v1sq + l2*l2*omega2*omega2 +
		2*l1*l2*omega1*omega2*math.Cos(theta1-theta2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq
	y1 := -l1 * math.Cos(theta1)
	y2 := y1 - l2*math.Cos(theta2)
	pe := m1*g*y1 + m2*g*y2

	return ke + pe
}

// Positions converts a state to the Cartesian coordinates of both
// bobs. The pivot is the origin, y points up, so a pendulum at rest
// hangs at negative y.
func (d *DoublePendulum) Positions(x dynamo.State) (x1, y1, x2, y2 float64) {
	x1 = d.p.Length1 * math.Sin(x[0])
	y1 = -d.p.Length1 * math.Cos(x[0])
	x2 = x1 + d.p.Length2*math.Sin(x[2])
	y2 = y1 - d.p.Length2*math.Cos(x[2])
	return
}
