package core_test

import (
	"fmt"

	"github.com/katalvlaran/gravel/core"
)

// ExampleGraph builds a small directed social graph and exercises the
// adjacency queries backed by the lazily built structure index.
func ExampleGraph() {
	g := core.NewGraph(core.WithType(core.Directed), core.WithSelfLoops(false))

	for _, user := range []string{"ada", "bob", "cyd"} {
		if err := g.AddNode(user, nil); err != nil {
			fmt.Println("add node:", err)
			return
		}
	}
	_ = g.AddDirectedEdgeWithKey("f1", "ada", "bob", core.Attributes{"since": 2019})
	_ = g.AddDirectedEdgeWithKey("f2", "bob", "cyd", nil)

	fmt.Println("order:", g.Order())
	fmt.Println("size:", g.Size())
	fmt.Println("ada→bob:", g.HasDirectedEdge("ada", "bob"))
	fmt.Println("bob→ada:", g.HasDirectedEdge("bob", "ada"))

	if err := g.DropNode("bob"); err != nil {
		fmt.Println("drop:", err)
		return
	}
	fmt.Println("after drop, order:", g.Order(), "size:", g.Size())

	// Output:
	// order: 3
	// size: 2
	// ada→bob: true
	// bob→ada: false
	// after drop, order: 2 size: 0
}

// ExampleGraph_export round-trips a graph through its serialized form.
func ExampleGraph_export() {
	g := core.NewGraph(core.WithType(core.Undirected))
	_ = g.AddNode("x", nil)
	_ = g.AddNode("y", nil)
	_, _ = g.AddUndirectedEdge("x", "y", nil)

	clone, err := core.FromSerialized(g.Export())
	if err != nil {
		fmt.Println("import:", err)
		return
	}
	fmt.Println("order:", clone.Order(), "size:", clone.Size())
	fmt.Println("x—y:", clone.HasUndirectedEdge("y", "x"))

	// Output:
	// order: 2 size: 1
	// x—y: true
}
