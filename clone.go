package graph

// CloneEmpty returns a new Graph with the same vertex registry, in the same
// insertion order, and no edges.
// Complexity: O(V)
func (g *Graph[V, W]) CloneEmpty() *Graph[V, W] {
	clone := New[V, W]()

	clone.vertices = make([]V, len(g.vertices))
	copy(clone.vertices, g.vertices)
	for i, v := range clone.vertices {
		clone.index[v] = i
	}

	return clone
}

// Clone returns a deep copy of the Graph: registry, adjacency rows and edge
// records are all duplicated, so mutating either graph never affects the
// other.
// Complexity: O(V + E)
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	clone := g.CloneEmpty()

	for src, records := range g.adj {
		row := make([]EdgeRecord[V, W], len(records))
		copy(row, records)
		clone.adj[src] = row
	}

	return clone
}
