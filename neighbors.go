package graph

import "slices"

// Neighbors returns every vertex reachable from v along exactly one outgoing
// edge, deduplicated and sorted ascending by value. An unregistered v yields
// an empty result, not an error: absence and "no neighbors" are
// indistinguishable to the caller.
//
// Edge records are already unique per destination, so deduplication is a
// formality, but it is kept so the contract survives any future relaxation
// of that invariant.
// Complexity: O(d log d)
func (g *Graph[V, W]) Neighbors(v V) []V {
	records := g.adj[v]

	out := make([]V, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.To)
	}
	slices.Sort(out)

	return slices.Compact(out)
}
