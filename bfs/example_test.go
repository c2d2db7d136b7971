package bfs_test

import (
	"fmt"
	"strings"

	"github.com/Tobionecenobi/SEB/bfs"
)

// ExampleSearch finds a route from the ends of rod A to any reference point
// of rod C through linked rods.
func ExampleSearch() {
	// 1) Rod ends inside one rod are mutually reachable; links join rods.
	adj := map[string][]string{
		"A.end1": {"A.end2"},
		"A.end2": {"B.end1", "A.end1"},
		"B.end1": {"A.end2", "B.end2"},
		"B.end2": {"C.end1", "B.end1"},
		"C.end1": {"B.end2", "C.end2"},
	}
	next := func(id string) ([]string, error) { return adj[id], nil }

	// 2) Terminate on the first reference point of C.
	goal := func(id string) bool { return strings.HasPrefix(id, "C.") }

	res, err := bfs.Search([]string{"A.end1", "A.end2"}, next, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo(res.Found)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A.end2 B.end1 B.end2 C.end1]
}
