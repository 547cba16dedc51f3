package graph

import (
	"fmt"
	"io"
)

// Dump writes the graph's adjacency state to w for debugging: one line per
// source vertex holding at least one outgoing edge, each edge rendered as
// (source,destination,weight). Sources follow registry insertion order.
//
// The format is diagnostic only. It is not a stable serialization and must
// not be parsed by other tools.
func (g *Graph[V, W]) Dump(w io.Writer) {
	for _, src := range g.vertices {
		records := g.adj[src]
		if len(records) == 0 {
			continue
		}

		fmt.Fprintf(w, "%v: ", src)
		for _, rec := range records {
			fmt.Fprintf(w, "(%v,%v,%v) ", src, rec.To, rec.Weight)
		}
		fmt.Fprintln(w)
	}
}
