package atriatree

import (
	"math"

	"github.com/orneryd/atria/internal/atriaerr"
	"github.com/orneryd/atria/internal/atrialog"
	"github.com/orneryd/atria/pkg/atriametric"
	"github.com/orneryd/atria/pkg/atriapoints"
	"github.com/orneryd/atria/pkg/math/vector"
)

// Build constructs a Tree over points using metric, via an iterative
// (stack-based, non-recursive) build: the root claims one point as its
// center; every other cluster's remaining points are split between two
// new child centers — the point farthest from the cluster's own center,
// and the point farthest from that one — continuing until a section is
// small enough, or degenerate enough, to become a terminal cluster
// scanned linearly by the searcher.
//
// Build allocates freely — unlike a query, it runs once per tree and its
// cost is amortized over every subsequent search.
func Build(points atriapoints.PointSet, metric atriametric.Metric, opts ...Option) (*Tree, error) {
	if points == nil {
		return nil, errorf(atriaerr.InvalidArgument, ErrNilPoints, "atriatree: Build")
	}
	if metric == nil {
		return nil, errorf(atriaerr.InvalidArgument, ErrNilMetric, "atriatree: Build")
	}
	if _, squared := metric.(atriametric.SquaredEuclidean); squared {
		return nil, errorf(atriaerr.InvalidArgument, ErrSquaredMetric, "atriatree: Build")
	}
	n := points.Len()
	if n <= 0 {
		return nil, errorf(atriaerr.EmptyPointSet, ErrEmptyPointSet, "atriatree: Build")
	}
	for i := 0; i < n; i++ {
		if !vector.Finite(points.Point(i)) {
			return nil, errorf(atriaerr.InvalidData, ErrNonFiniteCoordinate, "atriatree: Build point %d", i)
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tree{
		Metric:        metric,
		Points:        points,
		LeafThreshold: o.leafThreshold,
		Perm:          make([]int, n-1),
		Dist:          make([]float64, n-1),
		Clusters:      make([]Cluster, 1, 2*(n/o.leafThreshold+1)+1),
	}

	root := 0
	// Copied, not aliased: a PointSet's Point may hand back storage that a
	// later Point call reuses (the PointSet contract allows it, though Dense
	// and TimeDelayEmbedded do not), and the loop below calls points.Point
	// again for every other index before rootPoint is done being read.
	rootPoint := append(make([]float64, 0, points.Dim()), points.Point(root)...)
	j := 0
	rmax := 0.0
	for i := 0; i < n; i++ {
		if i == root {
			continue
		}
		t.Perm[j] = i
		d := metric.Distance(rootPoint, points.Point(i))
		t.Dist[j] = d
		if d > rmax {
			rmax = d
		}
		j++
	}
	t.Clusters[0] = Cluster{Kind: KindInternal, Center: root, RMax: rmax, GMin: 0, Left: -1, Right: -1}

	type frame struct{ idx, start, end int }
	stack := make([]frame, 0, 32)
	stack = append(stack, frame{0, 0, n - 1})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		left, right := t.buildFrame(f.idx, f.start, f.end)
		if left != nil {
			stack = append(stack, frame{left.idx, left.start, left.end})
		}
		if right != nil {
			stack = append(stack, frame{right.idx, right.start, right.end})
		}
	}

	t.TotalClusters = len(t.Clusters)
	for i := range t.Clusters {
		if t.Clusters[i].IsLeaf() {
			t.TerminalNodes++
		}
	}

	return t, nil
}

type childFrame struct{ idx, start, end int }

// buildFrame finalizes the cluster at t.Clusters[idx], whose non-center
// points occupy t.Perm[start:end] (and the paired t.Dist[start:end],
// each entry currently holding its point's distance to this cluster's own
// Center). It returns the left and right child frames still awaiting
// processing, or (nil, nil) if the cluster became terminal.
func (t *Tree) buildFrame(idx, start, end int) (left, right *childFrame) {
	c := &t.Clusters[idx]
	count := end - start
	if count <= t.LeafThreshold || c.RMax == 0 {
		if count > t.LeafThreshold {
			atrialog.Debugf("atriatree: cluster %d has %d coincident points, exceeding leaf threshold %d", idx, count, t.LeafThreshold)
			c.Unsplittable = true
		}
		c.Kind = KindTerminal
		c.Start, c.Length = start, count
		c.Left, c.Right = -1, -1
		return nil, nil
	}

	posR := start
	for i := start + 1; i < end; i++ {
		if t.Dist[i] > t.Dist[posR] {
			posR = i
		}
	}
	cR := t.Perm[posR]
	cRPoint := append(make([]float64, 0, t.Points.Dim()), t.Points.Point(cR)...)

	dR := make([]float64, end-start)
	for i := start; i < end; i++ {
		dR[i-start] = t.Metric.Distance(cRPoint, t.Points.Point(t.Perm[i]))
	}

	posL := -1
	for i := start; i < end; i++ {
		if i == posR {
			continue
		}
		if posL == -1 || dR[i-start] > dR[posL-start] {
			posL = i
		}
	}
	cL := t.Perm[posL]
	cLPoint := append(make([]float64, 0, t.Points.Dim()), t.Points.Point(cL)...)

	swap := func(i, j int) {
		t.Perm[i], t.Perm[j] = t.Perm[j], t.Perm[i]
		dR[i-start], dR[j-start] = dR[j-start], dR[i-start]
		if posR == i {
			posR = j
		} else if posR == j {
			posR = i
		}
		if posL == i {
			posL = j
		} else if posL == j {
			posL = i
		}
	}
	swap(posR, end-1)
	swap(posL, start)

	lo, hi := start+1, end-2
	gmin := math.Inf(1)
	for lo <= hi {
		dl := t.Metric.Distance(cLPoint, t.Points.Point(t.Perm[lo]))
		dr := dR[lo-start]
		gap := math.Abs(dl - dr)
		if gap < gmin {
			gmin = gap
		}
		if dl < dr {
			t.Dist[lo] = dl
			lo++
		} else {
			swap(lo, hi)
			hi--
		}
	}
	split := lo
	if math.IsInf(gmin, 1) {
		gmin = 0
	}
	for i := split; i < end-1; i++ {
		t.Dist[i] = dR[i-start]
	}

	leftEmpty := split == start+1
	rightEmpty := split == end-1
	if leftEmpty || rightEmpty {
		// Degenerate split: revert, keep C terminal over its full
		// original range (including the two candidate centers).
		atrialog.Debugf("atriatree: degenerate split at cluster %d (%d points), reverting to terminal", idx, count)
		centerPoint := append(make([]float64, 0, t.Points.Dim()), t.Points.Point(c.Center)...)
		for i := start; i < end; i++ {
			t.Dist[i] = t.Metric.Distance(centerPoint, t.Points.Point(t.Perm[i]))
		}
		c.Kind = KindTerminal
		c.Start, c.Length = start, count
		c.Left, c.Right = -1, -1
		c.Unsplittable = true
		return nil, nil
	}

	leftRMax := 0.0
	for i := start + 1; i < split; i++ {
		if t.Dist[i] > leftRMax {
			leftRMax = t.Dist[i]
		}
	}
	rightRMax := 0.0
	for i := split; i < end-1; i++ {
		if t.Dist[i] > rightRMax {
			rightRMax = t.Dist[i]
		}
	}

	leftIdx := len(t.Clusters)
	t.Clusters = append(t.Clusters, Cluster{Kind: KindInternal, Center: cL, RMax: leftRMax, GMin: gmin, Left: -1, Right: -1})
	rightIdx := len(t.Clusters)
	t.Clusters = append(t.Clusters, Cluster{Kind: KindInternal, Center: cR, RMax: rightRMax, GMin: gmin, Left: -1, Right: -1})

	c = &t.Clusters[idx]
	c.Left, c.Right = leftIdx, rightIdx

	return &childFrame{leftIdx, start + 1, split}, &childFrame{rightIdx, split, end - 1}
}
