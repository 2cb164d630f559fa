// Package gravity computes pairwise gravitational accelerations.
//
// Brute-force all-pairs summation: O(n^2) per evaluation, which is the
// right trade at the tens-of-bodies scale this simulator targets.
package gravity

import (
	"math"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/vec"
)

// Evaluator accumulates the net acceleration on every body from every
// other body. The acceleration buffer is reused across calls; no
// allocation happens per evaluation once the buffer is sized.
type Evaluator struct {
	G         float64 // scaled gravitational constant
	Softening float64 // added to squared separation, keeps forces finite

	accel []vec.V3
}

func NewEvaluator(g, softening float64) *Evaluator {
	return &Evaluator{G: g, Softening: softening}
}

// Accelerations recomputes and returns the acceleration buffer for the
// current configuration. The returned slice is owned by the evaluator
// and overwritten on the next call.
func (e *Evaluator) Accelerations(s *body.System) []vec.V3 {
	n := len(s.Bodies)
	if len(e.accel) != n {
		e.accel = make([]vec.V3, n)
	}
	for i := range e.accel {
		e.accel[i] = vec.V3{}
	}

	eps2 := e.Softening * e.Softening

	// Each unordered pair is visited once; the equal-and-opposite
	// update covers both bodies (Newton's third law).
	for i := 0; i < n; i++ {
		bi := &s.Bodies[i]

		for j := i + 1; j < n; j++ {
			bj := &s.Bodies[j]

			d := bj.Position.Sub(bi.Position)
			r2 := d.NormSq() + eps2
			if r2 == 0 {
				// exactly coincident and unsoftened; no direction to
				// pull along, and 1/0 would poison the whole system
				continue
			}

			rInv := 1.0 / math.Sqrt(r2)
			r3Inv := rInv * rInv * rInv

			e.accel[i] = e.accel[i].Add(d.Scale(e.G * bj.Mass * r3Inv))
			e.accel[j] = e.accel[j].Sub(d.Scale(e.G * bi.Mass * r3Inv))
		}
	}

	return e.accel
}
