package atriatree

import "github.com/orneryd/atria/internal/atriaerr"

// Validate walks t and checks its structural invariants:
//
//  1. every point in [0, N) is either exactly one cluster's Center or
//     appears in exactly one terminal cluster's range — never both, never
//     neither, never twice.
//  2. every terminal cluster's points lie within RMax of its Center.
//  3. every cluster's two children have distinct centers, and those
//     centers differ from the cluster's own center.
//  4. every terminal cluster's Length does not exceed t.LeafThreshold,
//     unless it is marked Unsplittable — either every point coincides
//     with Center (RMax == 0, so any split would just produce an empty
//     child and a same-sized child), or the two-center split was
//     attempted and left one side empty (an outlier-dominated section
//     where retrying would pick the same two centers again). Both cases
//     would loop forever if the builder insisted on an exact split, so
//     it deliberately leaves the cluster oversized instead.
//
// Intended for tests and debugging, not the query path — it recomputes
// distances the tree already paid to compute once at build time.
func Validate(t *Tree) error {
	n := t.N()
	owner := make([]int, n) // -1 unseen, 0 center, 1 terminal-range
	for i := range owner {
		owner[i] = -1
	}

	if err := walkValidate(t, 0, owner); err != nil {
		return err
	}

	for i, o := range owner {
		if o == -1 {
			return corrupt("point %d belongs to no cluster's center or range", i)
		}
	}
	return nil
}

func walkValidate(t *Tree, idx int, owner []int) error {
	c := &t.Clusters[idx]
	if c.Center < 0 || c.Center >= t.N() {
		return corrupt("cluster %d center %d out of range [0,%d)", idx, c.Center, t.N())
	}
	if owner[c.Center] != -1 {
		return corrupt("point %d claimed as center by more than one cluster", c.Center)
	}
	owner[c.Center] = 0

	if c.IsLeaf() {
		if c.Length > t.LeafThreshold && !c.Unsplittable {
			return corrupt("terminal cluster %d has length %d exceeding leaf threshold %d", idx, c.Length, t.LeafThreshold)
		}
		if c.Start < 0 || c.Start+c.Length > len(t.Perm) {
			return corrupt("terminal cluster %d has invalid range [%d,%d)", idx, c.Start, c.Start+c.Length)
		}
		// Copied, not aliased: t.Points.Point may hand back a shared
		// scratch buffer, and the loop below calls Point again for every
		// point in range before cp is done being read.
		cp := append(make([]float64, 0, t.Dim()), t.Points.Point(c.Center)...)
		for i := c.Start; i < c.Start+c.Length; i++ {
			p := t.Perm[i]
			if p < 0 || p >= t.N() {
				return corrupt("terminal cluster %d holds point %d out of range [0,%d)", idx, p, t.N())
			}
			if owner[p] != -1 {
				return corrupt("point %d appears in more than one terminal cluster", p)
			}
			owner[p] = 1
			d := t.Metric.Distance(cp, t.Points.Point(p))
			if d > c.RMax+1e-9 {
				return corrupt("cluster %d: point %d at distance %g exceeds RMax %g", idx, p, d, c.RMax)
			}
		}
		return nil
	}

	if c.Left < 0 || c.Right < 0 {
		return corrupt("internal cluster %d missing a child", idx)
	}
	left, right := &t.Clusters[c.Left], &t.Clusters[c.Right]
	if left.Center == right.Center {
		return corrupt("internal cluster %d has two children sharing center %d", idx, left.Center)
	}
	if left.Center == c.Center || right.Center == c.Center {
		return corrupt("internal cluster %d has a child sharing its own center %d", idx, c.Center)
	}

	if err := walkValidate(t, c.Left, owner); err != nil {
		return err
	}
	return walkValidate(t, c.Right, owner)
}

func corrupt(format string, args ...any) error {
	return errorf(atriaerr.InvalidData, ErrCorruptTree, format, args...)
}
