package sim

import (
	"math"
	"math/rand"

	"github.com/san-kum/pendulab/internal/dynamo"
	"github.com/san-kum/pendulab/internal/integrators"
	"github.com/san-kum/pendulab/internal/physics"
	"github.com/san-kum/pendulab/internal/trail"
)

// Pendulum is one independent double pendulum: its dynamic state, the
// trail of its outer bob, and a display color. The physics model is
// shared (it is stateless); the stepper is per-pendulum because RK4
// reuses scratch buffers.
type Pendulum struct {
	model   *physics.DoublePendulum
	stepper dynamo.Stepper
	state   dynamo.State
	trail   *trail.Buffer
	color   string
}

func newPendulum(model *physics.DoublePendulum, state dynamo.State, trailCapacity int, color string) *Pendulum {
	return &Pendulum{
		model:   model,
		stepper: integrators.NewRK4(),
		state:   state,
		trail:   trail.New(trailCapacity),
		color:   color,
	}
}

// randomState returns a state with both angles drawn uniformly from
// [-pi, pi) and zero angular velocity.
func randomState(rng *rand.Rand) dynamo.State {
	theta1 := -math.Pi + 2*math.Pi*rng.Float64()
	theta2 := -math.Pi + 2*math.Pi*rng.Float64()
	return dynamo.State{theta1, 0, theta2, 0}
}

// Tick advances the pendulum by dt using the configured number of
// integrator substeps, then records the outer bob position. The trail
// is always appended; visibility only gates rendering.
func (p *Pendulum) Tick(dt float64, substeps int) {
	sub := dt / float64(substeps)
	for i := 0; i < substeps; i++ {
		p.state = p.stepper.Step(p.model, p.state, sub)
	}
	_, _, x2, y2 := p.model.Positions(p.state)
	p.trail.Push(trail.Point{X: x2, Y: y2})
}

// ResetState replaces the dynamic state and clears the trail. Color
// and parameters are unchanged.
func (p *Pendulum) ResetState(state dynamo.State) {
	p.state = state.Clone()
	p.trail.Clear()
}
