package graph

// AddEdge creates the directed edge from→to carrying weight, and reports
// whether the graph accepted it. Both endpoints must already be registered;
// otherwise nothing is mutated and false is returned.
//
// If the edge already exists its weight is overwritten in place, never
// duplicated, so re-adding an edge leaves EdgeCount unchanged. Self-loops
// (from == to) behave like any other edge.
// Complexity: O(d), where d is from's out-degree.
func (g *Graph[V, W]) AddEdge(from, to V, weight W) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}

	records := g.adj[from]
	for i := range records {
		if records[i].To == to {
			records[i].Weight = weight
			return true
		}
	}
	g.adj[from] = append(records, EdgeRecord[V, W]{To: to, Weight: weight})

	return true
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(d)
func (g *Graph[V, W]) HasEdge(from, to V) bool {
	_, ok := g.Weight(from, to)
	return ok
}

// Weight returns the weight stored on the edge from→to. The second result is
// false, and the weight is the zero value of W, when either endpoint is
// unregistered or no such edge exists. Pure query: no side effects.
// Complexity: O(d)
func (g *Graph[V, W]) Weight(from, to V) (W, bool) {
	var zero W
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return zero, false
	}

	for _, rec := range g.adj[from] {
		if rec.To == to {
			return rec.Weight, true
		}
	}

	return zero, false
}

// EdgeCount returns the number of directed edges, summed over every adjacency
// row on each call rather than cached, so it reflects the exact current
// state including weight overwrites (which do not change the count).
// Complexity: O(V)
func (g *Graph[V, W]) EdgeCount() int {
	count := 0
	for _, records := range g.adj {
		count += len(records)
	}

	return count
}

// OutEdges returns a copy of from's edge records in insertion order, or nil
// when from is unregistered or has no outgoing edges.
// Complexity: O(d)
func (g *Graph[V, W]) OutEdges(from V) []EdgeRecord[V, W] {
	records := g.adj[from]
	if len(records) == 0 {
		return nil
	}

	out := make([]EdgeRecord[V, W], len(records))
	copy(out, records)

	return out
}
