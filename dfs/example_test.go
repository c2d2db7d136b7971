package dfs_test

import (
	"fmt"
	"strings"

	"github.com/Tobionecenobi/SEB/dfs"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a
// diamond-shaped graph.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// Starting at "A", expected post-order: E F D B C A
func ExampleDFS() {
	adj := map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {"E", "F"},
	}
	next := func(id string) ([]string, error) { return adj[id], nil }

	res, err := dfs.DFS([]string{"A"}, next)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, " "))
	// Output: E F D B C A
}

// ExampleTopologicalSort orders structures so that each one precedes the
// structures nested inside it.
func ExampleTopologicalSort() {
	nested := map[string][]string{
		"cell":    {"nucleus", "membrane"},
		"nucleus": {"chromatin"},
	}
	next := func(id string) ([]string, error) { return nested[id], nil }

	order, err := dfs.TopologicalSort([]string{"cell"}, next)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(order, " "))
	// Output: cell membrane nucleus chromatin
}
