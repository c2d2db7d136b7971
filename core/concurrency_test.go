// Package core_test verifies thread-safety of core.Catalog under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/core"
)

// TestConcurrentAddToGraph ensures that concurrent AddToGraph calls on one
// graph are safe and every member appears exactly once.
func TestConcurrentAddToGraph(t *testing.T) {
	c := core.NewCatalog()
	gid, err := c.AddToNewGraph(core.Entry{Name: "root", Kind: core.KindSubunit})
	require.NoError(t, err)

	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, c.AddToGraph(gid, core.Entry{Name: fmt.Sprintf("S%d", id), Kind: core.KindSubunit}))
		}(i)
	}
	wg.Wait()

	members, err := c.Members(gid)
	require.NoError(t, err)
	require.Len(t, members, num+1)
	require.Equal(t, "root", members[0]) // first member keeps its slot
	require.Equal(t, num+1, c.Len())
}

// TestConcurrentLinksAndQueries mixes AddLink with IsLinked/Partners reads to
// verify no races or panics occur under concurrent modification.
func TestConcurrentLinksAndQueries(t *testing.T) {
	c := core.NewCatalog()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = c.AddLink("hub.end1", fmt.Sprintf("S%d.end1", id))
		}(i)
		go func(id int) {
			defer wg.Done()
			_ = c.IsLinked(fmt.Sprintf("S%d.end1", id), "hub.end1")
			_ = c.Partners("hub.end1")
		}(i)
	}
	wg.Wait()

	require.Len(t, c.Partners("hub.end1"), rounds)
	require.Equal(t, rounds, c.LinkCount())
}
