package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/pendulab/internal/dynamo"
)

func TestDoublePendulumEquilibrium(t *testing.T) {
	dp, err := NewDoublePendulum(DefaultParams())
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	// At rest hanging straight down
	x := dynamo.State{0, 0, 0, 0}
	dx := dp.Derive(x)

	for i, v := range dx {
		if math.Abs(v) > 1e-12 {
			t.Errorf("expected zero derivative at equilibrium, got dx[%d]=%g", i, v)
		}
	}
}

func TestDoublePendulumSymmetry(t *testing.T) {
	dp, _ := NewDoublePendulum(DefaultParams())

	// Mirrored initial conditions should give mirrored accelerations
	dx1 := dp.Derive(dynamo.State{0.1, 0, 0.1, 0})
	dx2 := dp.Derive(dynamo.State{-0.1, 0, -0.1, 0})

	if math.Abs(dx1[1]+dx2[1]) > 1e-9 {
		t.Errorf("expected mirrored alpha1: %g vs %g", dx1[1], dx2[1])
	}
	if math.Abs(dx1[3]+dx2[3]) > 1e-9 {
		t.Errorf("expected mirrored alpha2: %g vs %g", dx1[3], dx2[3])
	}
}

func TestDoublePendulumPositions(t *testing.T) {
	p := DefaultParams()
	p.Length1 = 2.0
	p.Length2 = 3.0
	dp, _ := NewDoublePendulum(p)

	x1, y1, x2, y2 := dp.Positions(dynamo.State{0, 0, 0, 0})
	if math.Abs(x1) > 1e-12 || math.Abs(y1+2.0) > 1e-12 {
		t.Errorf("bob1 at rest: got (%g, %g), want (0, -2)", x1, y1)
	}
	if math.Abs(x2) > 1e-12 || math.Abs(y2+5.0) > 1e-12 {
		t.Errorf("bob2 at rest: got (%g, %g), want (0, -5)", x2, y2)
	}

	// Both rods horizontal
	x1, y1, x2, y2 = dp.Positions(dynamo.State{math.Pi / 2, 0, math.Pi / 2, 0})
	if math.Abs(x1-2.0) > 1e-12 || math.Abs(y1) > 1e-12 {
		t.Errorf("bob1 horizontal: got (%g, %g), want (2, 0)", x1, y1)
	}
	if math.Abs(x2-5.0) > 1e-12 || math.Abs(y2) > 1e-12 {
		t.Errorf("bob2 horizontal: got (%g, %g), want (5, 0)", x2, y2)
	}
}

func TestDoublePendulumEnergyAtRest(t *testing.T) {
	dp, _ := NewDoublePendulum(DefaultParams())

	got := dp.Energy(dynamo.State{0, 0, 0, 0})
	want := -(DefaultMass*DefaultGravity*DefaultLength +
		DefaultMass*DefaultGravity*2*DefaultLength)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("rest energy: got %g, want %g", got, want)
	}
}

func TestParamsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero length1", func(p *Params) { p.Length1 = 0 }},
		{"negative length2", func(p *Params) { p.Length2 = -1 }},
		{"zero mass1", func(p *Params) { p.Mass1 = 0 }},
		{"negative mass2", func(p *Params) { p.Mass2 = -0.5 }},
		{"nan gravity", func(p *Params) { p.Gravity = math.NaN() }},
		{"inf gravity", func(p *Params) { p.Gravity = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			_, err := NewDoublePendulum(p)
			if err == nil {
				t.Fatal("expected construction error, got nil")
			}
			if !errors.Is(err, dynamo.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}
