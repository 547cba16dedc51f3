// Package graph provides a generic, in-memory directed weighted graph
// container: vertex and edge insertion, weight lookup, neighbor enumeration,
// and basic introspection (counts, vertex listing, a diagnostic dump).
//
// The container is a building block for algorithms that operate on graphs
// (shortest path, traversal, connectivity); it deliberately ships none of
// those itself.
//
// Two cooperating pieces of state back a Graph[V, W]:
//
//   - Vertex registry: an insertion-ordered, duplicate-free sequence of V
//     that defines vertex identity and enumeration order.
//   - Adjacency index: a mapping from each source vertex to its edge
//     records (destination, weight). A source without outgoing edges has no
//     row; the two states are indistinguishable.
//
// Core methods:
//
//	// Vertex registry
//	AddVertex(v V) bool              // O(1) amortized; false on duplicate
//	HasVertex(v V) bool              // O(1)
//	Vertices() []V                   // O(V), insertion order, independent copy
//	VertexCount() int                // O(1)
//
//	// Edges & weights
//	AddEdge(from, to V, w W) bool    // O(d); false on unknown endpoint, overwrites weight
//	HasEdge(from, to V) bool         // O(d)
//	Weight(from, to V) (W, bool)     // O(d); pure query
//	EdgeCount() int                  // O(V), computed fresh
//	OutEdges(from V) []EdgeRecord    // O(d), independent copy
//
//	// Queries & diagnostics
//	Neighbors(v V) []V               // O(d log d), unique, sorted by value
//	Dump(w io.Writer)                // human-readable adjacency state
//
//	// Cloning
//	CloneEmpty() *Graph[V, W]        // O(V): vertices only
//	Clone() *Graph[V, W]             // O(V+E): deep copy
//
// Determinism:
//
//   - Vertices and OutEdges follow insertion order.
//   - Neighbors returns the natural ascending order of V, a deliberate
//     contract distinct from Vertices.
//   - Dump walks sources in registry insertion order.
//
// Error policy: expected failures (duplicate vertex, unknown endpoint,
// missing edge) are reported through boolean results; queries on unknown
// vertices return empty results. No method panics for any value of the
// correct type.
//
// Concurrency: a Graph has a single owner. No internal locking is performed;
// concurrent mutation is undefined and must be serialized by the caller.
// Every query returns an independent copy, so results can never be used to
// mutate internal state.
package graph
