package graph_test

import (
	"fmt"

	graph "github.com/FPolygon/Graph-Structure"
)

// ExampleGraph demonstrates basic construction, mutation, and queries.
func ExampleGraph() {
	g := graph.New[string, int]()

	// Register vertices first; edges may only reference known vertices.
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddEdge("A", "B", 5)

	fmt.Println("vertices:", g.VertexCount(), "edges:", g.EdgeCount())

	w, ok := g.Weight("A", "B")
	fmt.Println("weight A->B:", w, ok)

	// Re-adding an edge overwrites the weight in place.
	g.AddEdge("A", "B", 9)
	w, _ = g.Weight("A", "B")
	fmt.Println("after overwrite:", w, "edges:", g.EdgeCount())

	// Output:
	// vertices: 2 edges: 1
	// weight A->B: 5 true
	// after overwrite: 9 edges: 1
}

// ExampleGraph_Neighbors shows the sorted, deduplicated neighbor set.
func ExampleGraph_Neighbors() {
	g := graph.New[string, int]()
	for _, v := range []string{"hub", "c", "a", "b"} {
		g.AddVertex(v)
	}
	g.AddEdge("hub", "c", 1)
	g.AddEdge("hub", "a", 2)
	g.AddEdge("hub", "b", 3)
	g.AddEdge("hub", "a", 4) // overwrite: no duplicate neighbor

	// Sorted by value, not by insertion order.
	fmt.Println(g.Neighbors("hub"))
	// Unknown vertices simply have no neighbors.
	fmt.Println(g.Neighbors("ghost"))

	// Output:
	// [a b c]
	// []
}
