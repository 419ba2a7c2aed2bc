// Package sim owns the collection of double pendulums and applies the
// global commands: create, reset, toggle trails, tick, snapshot.
//
// The simulation is single-threaded and tick-driven: one update pass
// per frame followed by one read pass. Nothing here is safe for
// concurrent use.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/pendulab/internal/dynamo"
	"github.com/san-kum/pendulab/internal/physics"
	"github.com/san-kum/pendulab/internal/trail"
)

const DefaultSubsteps = 4

// defaultPalette is the fallback color cycle when the caller supplies
// none (viz generates a nicer HCL-spaced one).
var defaultPalette = []string{
	"#00ffff", "#ff00ff", "#ffff00", "#00ff88", "#ff8800", "#8888ff",
}

// Options configures a Simulation. The zero value is not valid; start
// from DefaultOptions.
type Options struct {
	Params        physics.Params
	Substeps      int      // integrator substeps per tick
	TrailCapacity int      // max points per trail
	MaxPendulums  int      // 0 = unlimited
	ShowTrails    bool     // initial trail visibility
	Palette       []string // hex color cycle for new pendulums
}

func DefaultOptions() Options {
	return Options{
		Params:        physics.DefaultParams(),
		Substeps:      DefaultSubsteps,
		TrailCapacity: 100,
		ShowTrails:    true,
	}
}

func (o Options) validate() error {
	if err := o.Params.Validate(); err != nil {
		return err
	}
	if o.Substeps < 1 {
		return fmt.Errorf("%w: substeps must be >= 1, got %d", dynamo.ErrInvalidConfig, o.Substeps)
	}
	if o.TrailCapacity < 0 {
		return fmt.Errorf("%w: trail capacity must be >= 0, got %d", dynamo.ErrInvalidConfig, o.TrailCapacity)
	}
	if o.MaxPendulums < 0 {
		return fmt.Errorf("%w: max pendulums must be >= 0, got %d", dynamo.ErrInvalidConfig, o.MaxPendulums)
	}
	return nil
}

// Simulation owns an ordered collection of independent pendulums.
// Iteration order is insertion order, which makes runs deterministic
// for a fixed seed.
type Simulation struct {
	opts       Options
	model      *physics.DoublePendulum
	rng        *rand.Rand
	pendulums  []*Pendulum
	showTrails bool
	nextColor  int
}

// New validates the options and returns a simulation holding exactly
// one pendulum in the default configuration. The random source is used
// only by CreatePendulum, so tests can inject a fixed seed.
func New(opts Options, rng *rand.Rand) (*Simulation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	model, err := physics.NewDoublePendulum(opts.Params)
	if err != nil {
		return nil, err
	}
	if len(opts.Palette) == 0 {
		opts.Palette = defaultPalette
	}

	s := &Simulation{
		opts:       opts,
		model:      model,
		rng:        rng,
		showTrails: opts.ShowTrails,
	}
	s.Reset()
	return s, nil
}

func (s *Simulation) pickColor() string {
	c := s.opts.Palette[s.nextColor%len(s.opts.Palette)]
	s.nextColor++
	return c
}

// CreatePendulum appends a pendulum with randomized initial angles and
// an empty trail. At the optional cap this is a no-op; the returned
// bool reports whether a pendulum was added.
func (s *Simulation) CreatePendulum() bool {
	if s.opts.MaxPendulums > 0 && len(s.pendulums) >= s.opts.MaxPendulums {
		return false
	}
	p := newPendulum(s.model, randomState(s.rng), s.opts.TrailCapacity, s.pickColor())
	s.pendulums = append(s.pendulums, p)
	return true
}

// Reset discards the whole collection and recreates exactly one
// pendulum in the default configuration with an empty trail. The color
// cycle restarts so colors are reproducible after a reset.
func (s *Simulation) Reset() {
	s.pendulums = s.pendulums[:0]
	s.nextColor = 0
	p := newPendulum(s.model, s.model.DefaultState(), s.opts.TrailCapacity, s.pickColor())
	s.pendulums = append(s.pendulums, p)
}

// ToggleTrails flips trail visibility. Buffer contents are untouched:
// trails keep recording while hidden, so toggling back on shows an
// unbroken history.
func (s *Simulation) ToggleTrails() {
	s.showTrails = !s.showTrails
}

func (s *Simulation) TrailsVisible() bool { return s.showTrails }

func (s *Simulation) Count() int { return len(s.pendulums) }

// Tick advances every pendulum by dt. Pendulums are fully independent;
// there is no coupling or collision between them.
func (s *Simulation) Tick(dt float64) {
	for _, p := range s.pendulums {
		p.Tick(dt, s.opts.Substeps)
	}
}

// PendulumView is the read-only per-pendulum state handed to the
// renderer.
type PendulumView struct {
	State  dynamo.State // copy; [theta1, omega1, theta2, omega2]
	Bob1   trail.Point
	Bob2   trail.Point
	Energy float64
	Color  string
	Trail  []trail.Point
}

// Snapshot is consumed once per frame by the renderer.
type Snapshot struct {
	Pendulums     []PendulumView
	TrailsVisible bool
	Params        physics.Params
}

// Snapshot returns the current state of every pendulum. Scalar fields
// are copies; each Trail slice aliases the buffer's contiguous window
// and is valid until the next Tick. Callers must treat it as
// read-only, which the single-threaded tick-then-render loop makes
// safe.
func (s *Simulation) Snapshot() Snapshot {
	views := make([]PendulumView, len(s.pendulums))
	for i, p := range s.pendulums {
		x1, y1, x2, y2 := s.model.Positions(p.state)
		views[i] = PendulumView{
			State:  p.state.Clone(),
			Bob1:   trail.Point{X: x1, Y: y1},
			Bob2:   trail.Point{X: x2, Y: y2},
			Energy: s.model.Energy(p.state),
			Color:  p.color,
			Trail:  p.trail.Points(),
		}
	}
	return Snapshot{
		Pendulums:     views,
		TrailsVisible: s.showTrails,
		Params:        s.opts.Params,
	}
}
