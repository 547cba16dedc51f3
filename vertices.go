package graph

// AddVertex registers v and reports whether it was inserted.
// A duplicate vertex is rejected without mutation.
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddVertex(v V) bool {
	if _, ok := g.index[v]; ok {
		return false
	}
	g.index[v] = len(g.vertices)
	g.vertices = append(g.vertices, v)

	return true
}

// HasVertex reports whether v is registered.
// Complexity: O(1)
func (g *Graph[V, W]) HasVertex(v V) bool {
	_, ok := g.index[v]
	return ok
}

// Vertices returns all registered vertices in insertion order.
// The slice is an independent copy; mutating it does not affect the graph.
// Complexity: O(V)
func (g *Graph[V, W]) Vertices() []V {
	out := make([]V, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1)
func (g *Graph[V, W]) VertexCount() int {
	return len(g.vertices)
}
