package atriasearch

// SearchItem is one pending cluster in the best-first traversal's priority
// queue. DCenter is the query's distance to Cluster's own center, computed
// once by the parent when it pushes this item and never recomputed — the
// same cluster's DCenter differs per query, so it cannot live on Cluster
// itself. DMin and DMax are both frozen at construction time: a lower and
// upper bound, via the triangle inequality, on the distance from the
// query to any point under Cluster. Both tighten monotonically going down
// the tree — a child's bounds are always at least as tight as its
// parent's — which is what makes popping by ascending DMin a valid
// best-first order.
type SearchItem struct {
	Cluster int
	DCenter float64
	DMin    float64
	DMax    float64
}

// childBound derives [dMin, dMax] for a child X of the cluster that owns
// parentMin/parentMax, given:
//
//	dX   the query's distance to X's own center (becomes the child's DCenter)
//	dY   the query's distance to X's sibling's center
//	rMax X's RMax
//	gMin the GMin shared by X and its sibling
//
// Two independent lower bounds apply, and the tighter (larger) one wins:
//
//	local1 = dX - X.RMax              (ball bound: every point under X is
//	                                    within RMax of X's own center)
//	local2 = (dX - dY + X.GMin) / 2   (gap bound: every point under X is
//	                                    strictly closer to X's center than
//	                                    to the sibling's, by at least GMin)
//
// Both are clamped to be no smaller than the parent's own DMin, since a
// child's bound can never be looser than what its parent already proved.
// The upper bound is the ball bound, clamped to the parent's DMax.
func childBound(dX, dY, rMax, gMin, parentMin, parentMax float64) (dMin, dMax float64) {
	local1 := dX - rMax
	if local1 < 0 {
		local1 = 0
	}
	local2 := 0.5 * (dX - dY + gMin)
	if local2 < 0 {
		local2 = 0
	}
	dMin = local1
	if local2 > dMin {
		dMin = local2
	}
	if parentMin > dMin {
		dMin = parentMin
	}

	dMax = dX + rMax
	if dMax > parentMax {
		dMax = parentMax
	}
	return dMin, dMax
}
