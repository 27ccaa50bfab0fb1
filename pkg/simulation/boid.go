package simulation

import "github.com/albertb/go-boids/pkg/geometry"

// Boid is a single member of the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds. "Boid" is a shortened
// "bird-oid object". https://en.wikipedia.org/wiki/Boids
type Boid struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D

	// Weight is a mass-like scalar sampled once at creation, always >= 1.
	// Heavier boids pull their neighbours around more and are drawn larger.
	Weight float64

	// Heading is the visible orientation in radians, rotated towards the
	// velocity direction by the integrator each tick.
	Heading float64
}

// Calculations is the per-boid scratch state for one flocking step: the
// running sums of neighbour contributions. Each boid owns exactly one,
// reset in place after it is consumed, never reallocated.
type Calculations struct {
	Neighbours int
	Cohesion   geometry.Vector2D
	Separation geometry.Vector2D
	Alignment  geometry.Vector2D
}

// Reset zeroes the accumulator for the next tick.
func (c *Calculations) Reset() {
	c.Neighbours = 0
	c.Cohesion = geometry.Vector2D{}
	c.Separation = geometry.Vector2D{}
	c.Alignment = geometry.Vector2D{}
}
