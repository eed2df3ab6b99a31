package contact

import "gonum.org/v1/gonum/spatial/r3"

// dedupe merges near-duplicate points into a canonical set: points are
// scanned in input order and any point within tol of an already accepted
// point is dropped. The scan is O(n²) which is fine for the point
// budgets the sampler produces. Output order follows input order, which
// in turn follows mesh declaration order, so results are reproducible.
func dedupe(pts []r3.Vec, tol float64) []r3.Vec {
	kept := make([]r3.Vec, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, q := range kept {
			if r3.Norm(r3.Sub(p, q)) < tol {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, p)
		}
	}
	return kept
}
