package simulation

import "math"

// minDistance is the floor applied to pair distances so the separation
// factor never divides by zero when two boids overlap.
const minDistance = 0.001

// separationFactor grows as boids get closer: 1/distance^bias. A bias
// above 1 sharpens the falloff with distance, below 1 flattens it.
func separationFactor(distance, bias float64) float64 {
	return 1 / math.Pow(distance, bias)
}

// alignmentFactor weighs a neighbour's velocity by how much its heading
// matches the preference implied by bias: bias^similarity, normalized by
// max(bias, 1/bias) so the factor never exceeds 1. A bias above 1 is
// maximized by similar headings (similarity = 1), below 1 by opposite
// headings (similarity = -1).
func alignmentFactor(similarity, bias float64) float64 {
	return math.Pow(bias, similarity) / math.Max(bias, 1/bias)
}

// Flock runs the pairwise interaction scan and folds the accumulated
// contributions into each boid's velocity.
//
// Every unordered pair of distinct boids is visited once (i < j). A pair
// is skipped outright with probability 1-Fidelity, and skipped when the
// boids are further apart than ViewDistance. Both sides of a surviving
// pair accumulate: the scan mutates two accumulators per pair, and the
// full scan completes before any accumulator is consumed.
func (w *World) Flock() {
	p := w.params

	for i := 0; i < len(w.boids); i++ {
		for j := i + 1; j < len(w.boids); j++ {
			if w.rng.Float64() > p.Fidelity {
				continue
			}

			b1, b2 := w.boids[i], w.boids[j]
			distance := b1.Pos.DistanceTo(b2.Pos)
			if distance > p.ViewDistance {
				continue
			}
			if distance < minDistance {
				distance = minDistance
			}

			separation := separationFactor(distance, p.SeparationBias)

			// Cosine similarity between the two velocities: 1 if they head
			// the same way, -1 if opposite. Zero-magnitude velocities yield
			// 0 instead of NaN.
			similarity := b1.Vel.CosineSimilarity(b2.Vel)
			alignment := alignmentFactor(similarity, p.AlignmentBias)

			// Heavier boids have a stronger influence: the pull of j on i
			// scales with weight(j)^2 / weight(i)^2 and symmetrically.
			b1w := (b1.Weight * b1.Weight) / (b2.Weight * b2.Weight)
			b2w := (b2.Weight * b2.Weight) / (b1.Weight * b1.Weight)

			c1, c2 := &w.calc[i], &w.calc[j]

			c1.Neighbours++
			c1.Cohesion = c1.Cohesion.Add(b2.Pos.Mul(b2w))
			c1.Separation = c1.Separation.Add(b1.Pos.Sub(b2.Pos).Mul(separation * b2w))
			c1.Alignment = c1.Alignment.Add(b2.Vel.Mul(alignment * b2w))

			c2.Neighbours++
			c2.Cohesion = c2.Cohesion.Add(b1.Pos.Mul(b1w))
			c2.Separation = c2.Separation.Add(b2.Pos.Sub(b1.Pos).Mul(separation * b1w))
			c2.Alignment = c2.Alignment.Add(b1.Vel.Mul(alignment * b1w))
		}
	}

	for i, b := range w.boids {
		c := &w.calc[i]
		if c.Neighbours <= 0 {
			// No steering impulse this tick; the accumulator is already zero.
			continue
		}

		n := float64(c.Neighbours)
		cohesion := c.Cohesion.Mul(-1 / n).ClampLengthMax(p.SteeringForce)
		separation := c.Separation.ClampLengthMax(p.SteeringForce)
		alignment := c.Alignment.ClampLengthMax(p.SteeringForce)

		b.Vel = b.Vel.
			Add(cohesion.Mul(p.CohesionForce)).
			Add(separation.Mul(p.SeparationForce)).
			Add(alignment.Mul(p.AlignmentForce))
		b.Vel = b.Vel.ClampLength(p.MinSpeed, p.MaxSpeed)

		c.Reset()
	}
}
