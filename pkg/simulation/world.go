package simulation

import (
	"math"
	"math/rand/v2"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/albertb/go-boids/pkg/geometry"
)

// weightRate and weightScale shape the boid weight distribution: a draw
// from Exp(weightRate), scaled and shifted so weights live in [1, inf)
// with most of the mass near 1.
const (
	weightRate  = 20.0
	weightScale = 10.0
)

// PointerAction is the interaction the pointer device currently requests.
type PointerAction int

const (
	PointerNone PointerAction = iota
	PointerAttract
	PointerRepel
)

// World owns the flock and runs the tick pipeline. Boids and their
// interaction accumulators live in parallel slices indexed together; an
// accumulator shares its boid's lifetime and is reset in place each tick.
//
// All randomness flows through the injected generator so a seeded World
// is fully deterministic.
type World struct {
	params *Parameters
	boids  []*Boid
	calc   []Calculations

	rng        *rand.Rand
	weightDist distuv.Exponential
}

// NewWorld creates an empty world; the first Step grows the population to
// Parameters.NumBoids.
func NewWorld(params *Parameters, seed uint64) *World {
	return &World{
		params: params,
		rng:    rand.New(rand.NewPCG(seed, seed)),
		weightDist: distuv.Exponential{
			Rate: weightRate,
			Src:  xrand.NewSource(seed),
		},
	}
}

// Boids exposes the flock for rendering.
func (w *World) Boids() []*Boid { return w.boids }

// Count returns the current population.
func (w *World) Count() int { return len(w.boids) }

// Step runs one full simulation tick in fixed order: population
// reconciliation, the flocking scan, the optional pointer force, boundary
// handling, then integration over dt seconds.
func (w *World) Step(dt float64, pointer geometry.Vector2D, action PointerAction) {
	w.AdjustPopulation()
	w.Flock()
	w.ApplyPointerForce(pointer, action)
	w.HandleWalls()
	w.Fly(dt)
}

// AdjustPopulation reconciles the population to Parameters.NumBoids in a
// single call. Shrinking removes the most recently added boids first.
func (w *World) AdjustPopulation() {
	target := w.params.NumBoids
	switch {
	case len(w.boids) < target:
		for len(w.boids) < target {
			w.boids = append(w.boids, w.spawnBoid())
			w.calc = append(w.calc, Calculations{})
		}
	case len(w.boids) > target:
		w.boids = w.boids[:target]
		w.calc = w.calc[:target]
	}
}

// spawnBoid creates a boid with a random position inside the window, a
// random velocity with each component in [-MaxSpeed, MaxSpeed], and a
// weight drawn from the shifted exponential distribution. The velocity is
// deliberately not pre-clamped into the speed band; the first flocking
// interaction takes care of that.
func (w *World) spawnBoid() *Boid {
	p := w.params
	vel := geometry.Vector2D{
		X: (w.rng.Float64()*2 - 1) * p.MaxSpeed,
		Y: (w.rng.Float64()*2 - 1) * p.MaxSpeed,
	}
	b := &Boid{
		Pos:    w.randomPosition(),
		Vel:    vel,
		Weight: 1 + w.weightDist.Rand()*weightScale,
	}
	b.Heading = b.Vel.Angle()
	return b
}

func (w *World) randomPosition() geometry.Vector2D {
	p := w.params
	return geometry.Vector2D{
		X: (w.rng.Float64() - 0.5) * p.WindowWidth,
		Y: (w.rng.Float64() - 0.5) * p.WindowHeight,
	}
}

// ApplyPointerForce nudges every boid within four view distances of the
// pointer towards it (attract) or away from it (repel). The result is
// capped at MaxSpeed but not raised to MinSpeed.
func (w *World) ApplyPointerForce(pointer geometry.Vector2D, action PointerAction) {
	var direction float64
	switch action {
	case PointerAttract:
		direction = 1
	case PointerRepel:
		direction = -1
	default:
		return
	}

	p := w.params
	reach := p.ViewDistance * 4
	for _, b := range w.boids {
		if b.Pos.DistanceTo(pointer) > reach {
			continue
		}
		target := pointer.Sub(b.Pos).Mul(direction)
		b.Vel = b.Vel.
			Add(target.Mul(p.SteeringForce * p.CohesionForce * 0.5)).
			ClampLengthMax(p.MaxSpeed)
	}
}

// HandleWalls enforces the window boundary, each axis independently. A
// boid is corrected only while it sits outside the half-extent AND still
// moves outward. Bounce mode negates the velocity component; the default
// mode negates the position component instead, a mirror jump to the
// opposite edge rather than a true toroidal wrap.
func (w *World) HandleWalls() {
	p := w.params
	hw, hh := p.HalfWidth(), p.HalfHeight()

	for _, b := range w.boids {
		if outwardBound(b.Pos.X, b.Vel.X, hw) {
			if p.BounceOffWalls {
				b.Vel.X = -b.Vel.X
			} else {
				b.Pos.X = -b.Pos.X
			}
		}
		if outwardBound(b.Pos.Y, b.Vel.Y, hh) {
			if p.BounceOffWalls {
				b.Vel.Y = -b.Vel.Y
			} else {
				b.Pos.Y = -b.Pos.Y
			}
		}
	}
}

// outwardBound reports whether a coordinate lies beyond the half-extent
// with its velocity component still pointing further out.
func outwardBound(pos, vel, extent float64) bool {
	return math.Abs(pos) >= extent && math.Signbit(vel) == math.Signbit(pos)
}

// Fly advances positions from velocities over dt seconds and rotates each
// boid's heading to its velocity direction along the shortest arc.
func (w *World) Fly(dt float64) {
	for _, b := range w.boids {
		b.Pos = b.Pos.Add(b.Vel.Mul(dt))

		if b.Vel.LenSqr() > geometry.Epsilon {
			b.Heading += shortestArc(b.Heading, b.Vel.Angle())
		}
	}
}

// shortestArc returns the smallest signed rotation taking angle from to to.
func shortestArc(from, to float64) float64 {
	d := math.Mod(to-from, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// Resize updates the stored window extent and clamps every boid back into
// the new bounds, component-wise. Pure state reconciliation, no forces.
func (w *World) Resize(width, height float64) {
	p := w.params
	if p.WindowWidth == width && p.WindowHeight == height {
		return
	}
	p.WindowWidth = width
	p.WindowHeight = height

	min, max := p.MinPosition(), p.MaxPosition()
	for _, b := range w.boids {
		b.Pos.X = clamp(b.Pos.X, min.X, max.X)
		b.Pos.Y = clamp(b.Pos.Y, min.Y, max.Y)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Restart re-randomizes every boid's position within the current window,
// keeping velocities and weights.
func (w *World) Restart() {
	for _, b := range w.boids {
		b.Pos = w.randomPosition()
	}
}
