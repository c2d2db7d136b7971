package core_test

import (
	"fmt"

	"github.com/Tobionecenobi/SEB/core"
)

// ExampleCatalog demonstrates graph allocation, growth, wrapping and links.
func ExampleCatalog() {
	c := core.NewCatalog()

	// 1) An unconnected sub-unit gets a fresh graph id:
	g1, _ := c.AddToNewGraph(core.Entry{Name: "A", Kind: core.KindSubunit})

	// 2) Linking B to A grows the same graph:
	_ = c.AddToGraph(g1, core.Entry{Name: "B", Kind: core.KindSubunit})
	_, _ = c.AddLink("B.end1", "A.end2")

	// 3) Wrapping the graph allocates a new id holding the structure:
	g2, _ := c.AddToNewGraph(core.Entry{Name: "AB", Kind: core.KindStructure, Wraps: g1})

	members, _ := c.Members(g1)
	fmt.Println("graph", g1, members)
	fmt.Println("graph", g2, "wraps", g1)
	fmt.Println("links", c.Links())
	fmt.Println("linked?", c.IsLinked("A.end2", "B.end1"))

	// Output:
	// graph 1 [A B]
	// graph 2 wraps 1
	// links [A.end2<--->B.end1]
	// linked? true
}
