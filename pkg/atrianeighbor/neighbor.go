// Package atrianeighbor defines the Neighbor result pair and the
// fixed-capacity max-heap used to track the k best candidates seen so far
// during a query.
package atrianeighbor

// Neighbor is a (point index, distance) pair with a total ordering on
// Distance.
type Neighbor struct {
	Index    int
	Distance float64
}
