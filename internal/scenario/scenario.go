// Package scenario loads the projectile plot configuration from YAML.
//
// A file only needs the fields it changes; everything else keeps the value
// from Default.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"raytray/canvas"
	"raytray/geom"
	"raytray/internal/sim"

	"sigs.k8s.io/yaml"
)

var ErrInvalid = errors.New("invalid scenario")

type Vec struct {
	X geom.Scalar `json:"x"`
	Y geom.Scalar `json:"y"`
	Z geom.Scalar `json:"z"`
}

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type RGB struct {
	R geom.Scalar `json:"r"`
	G geom.Scalar `json:"g"`
	B geom.Scalar `json:"b"`
}

// Scenario describes one projectile plot.
type Scenario struct {
	Canvas Size `json:"canvas"`
	Start  Vec  `json:"start"`
	// Velocity is only a direction; its length is replaced by Speed.
	Velocity Vec         `json:"velocity"`
	Speed    geom.Scalar `json:"speed"`
	Gravity  Vec         `json:"gravity"`
	Wind     Vec         `json:"wind"`
	Color    RGB         `json:"color"`
	Label    string      `json:"label,omitempty"`
	MaxTicks int         `json:"maxTicks"`
}

// Default is a shot that crosses most of a 900×550 canvas.
func Default() Scenario {
	return Scenario{
		Canvas:   Size{Width: 900, Height: 550},
		Start:    Vec{X: 0, Y: 1, Z: 0},
		Velocity: Vec{X: 1, Y: 1.8, Z: 0},
		Speed:    11.25,
		Gravity:  Vec{X: 0, Y: -0.1, Z: 0},
		Wind:     Vec{X: -0.01, Y: 0, Z: 0},
		Color:    RGB{R: 1, G: 0.5, B: 0.5},
		MaxTicks: 10000,
	}
}

// Parse overlays data on Default and validates the result. Unknown fields
// are rejected.
func Parse(data []byte) (Scenario, error) {
	s := Default()
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s Scenario) Validate() error {
	switch {
	case s.Canvas.Width <= 0 || s.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, s.Canvas.Width, s.Canvas.Height)
	case s.Velocity == (Vec{}):
		return fmt.Errorf("%w: velocity has no direction", ErrInvalid)
	case s.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %g", ErrInvalid, s.Speed)
	case s.MaxTicks <= 0:
		return fmt.Errorf("%w: maxTicks must be positive, got %d", ErrInvalid, s.MaxTicks)
	}
	return nil
}

// Projectile returns the starting state with the velocity scaled to Speed.
func (s Scenario) Projectile() (sim.Projectile, error) {
	dir, err := s.Velocity.vector().Normalize()
	if err != nil {
		return sim.Projectile{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return sim.Projectile{
		Position: geom.P(s.Start.X, s.Start.Y, s.Start.Z),
		Velocity: dir.Scale(s.Speed),
	}, nil
}

func (s Scenario) Environment() sim.Environment {
	return sim.Environment{Gravity: s.Gravity.vector(), Wind: s.Wind.vector()}
}

func (s Scenario) PlotColor() canvas.Color {
	return canvas.RGB(s.Color.R, s.Color.G, s.Color.B)
}

// Marshal renders s as YAML.
func (s Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func (v Vec) vector() geom.Vector3D { return geom.V(v.X, v.Y, v.Z) }
