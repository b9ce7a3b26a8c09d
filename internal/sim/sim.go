// Package sim moves a projectile through a simple environment, one tick at
// a time. It drives the trace and plot commands.
package sim

import "raytray/geom"

// Projectile is a body with a position and a per-tick velocity.
type Projectile struct {
	Position geom.Point3D
	Velocity geom.Vector3D
}

// Environment holds the constant accelerations applied every tick.
type Environment struct {
	Gravity geom.Vector3D
	Wind    geom.Vector3D
}

// Tick advances p by one step: the position moves by the current velocity,
// then gravity and wind change the velocity.
func Tick(p Projectile, env Environment) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Run ticks p until visit returns false or maxTicks ticks have run. visit
// sees every new state, numbered from 1. Run returns the number of ticks
// taken and the last state.
func Run(p Projectile, env Environment, maxTicks int, visit func(tick int, p Projectile) bool) (int, Projectile) {
	for tick := 1; tick <= maxTicks; tick++ {
		p = Tick(p, env)
		if !visit(tick, p) {
			return tick, p
		}
	}
	return maxTicks, p
}

// Stepper runs the same simulation one tick per call, for callers that are
// driven by an external loop such as a window's update callback.
type Stepper struct {
	p        Projectile
	env      Environment
	tick     int
	maxTicks int
}

func NewStepper(p Projectile, env Environment, maxTicks int) *Stepper {
	return &Stepper{p: p, env: env, maxTicks: maxTicks}
}

// Step advances one tick. ok is false once maxTicks is reached.
func (s *Stepper) Step() (tick int, p Projectile, ok bool) {
	if s.tick >= s.maxTicks {
		return s.tick, s.p, false
	}
	s.tick++
	s.p = Tick(s.p, s.env)
	return s.tick, s.p, true
}
