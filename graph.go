package graph

import "cmp"

// EdgeRecord is one directed weighted edge stored under its source vertex:
// the destination endpoint and the weight carried by the edge.
type EdgeRecord[V cmp.Ordered, W any] struct {
	To     V
	Weight W
}

// Graph is an in-memory directed weighted graph over vertex values of type V
// and edge weights of type W.
//
// V supplies vertex identity (equality) and the total order used by
// Neighbors. W only needs to be copyable; the container performs no
// arithmetic on weights.
//
// Vertices and edges are only ever added, never removed: both sets grow
// monotonically for the life of the instance.
type Graph[V cmp.Ordered, W any] struct {
	vertices []V       // registry: identity + insertion order
	index    map[V]int // vertex → position in the registry

	// adj holds a row only for sources with at least one outgoing edge.
	// Every key and every record destination is a registered vertex.
	adj map[V][]EdgeRecord[V, W]
}

// New constructs an empty Graph. No capacity ceiling is enforced on either
// vertices or edges.
// Complexity: O(1)
func New[V cmp.Ordered, W any]() *Graph[V, W] {
	return &Graph[V, W]{
		index: make(map[V]int),
		adj:   make(map[V][]EdgeRecord[V, W]),
	}
}
