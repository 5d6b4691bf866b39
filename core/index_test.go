package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravel/core"
)

// buildTriangle returns a mixed graph with one directed and one
// undirected edge plus a self-loop, optionally with the index already
// materialized before any query runs.
func buildTriangle(t *testing.T, precompute bool) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(k, nil))
	}
	if precompute {
		g.ComputeIndex()
	}
	require.NoError(t, g.AddDirectedEdgeWithKey("ab", "a", "b", nil))
	require.NoError(t, g.AddUndirectedEdgeWithKey("bc", "b", "c", nil))
	require.NoError(t, g.AddEdgeWithKey("cc", "c", "c", nil))
	return g
}

// TestIndexConsistency checks that every stored edge answers its matching
// existence query, and stops answering after a drop — whether the index
// was materialized before the mutations (incremental path) or only at
// query time (rebuild path).
func TestIndexConsistency(t *testing.T) {
	for _, precompute := range []bool{false, true} {
		g := buildTriangle(t, precompute)
		require := require.New(t)

		require.True(g.HasDirectedEdge("a", "b"))
		require.False(g.HasDirectedEdge("b", "a"), "directed adjacency is one-way")
		require.True(g.HasUndirectedEdge("b", "c"))
		require.True(g.HasUndirectedEdge("c", "b"), "undirected adjacency is symmetric")
		require.True(g.HasDirectedEdge("c", "c"), "mixed default kind is directed")
		require.True(g.HasEdge("a", "b"))
		require.True(g.HasEdge("c", "b"))
		require.False(g.HasEdge("a", "c"))
		require.False(g.HasEdge("ghost", "b"), "missing nodes answer false, not an error")

		require.NoError(g.DropEdge("ab"))
		require.False(g.HasDirectedEdge("a", "b"), "precompute=%v", precompute)
		require.NoError(g.DropEdge("bc"))
		require.False(g.HasUndirectedEdge("c", "b"))
		require.NoError(g.DropEdge("cc"))
		require.False(g.HasEdge("c", "c"))
	}
}

func TestIndexClearedThenRecomputedMatchesNeverComputed(t *testing.T) {
	require := require.New(t)
	fresh := buildTriangle(t, false)
	churned := buildTriangle(t, true)
	churned.ClearIndex()
	require.False(churned.IndexComputed())

	for _, pair := range [][2]string{{"a", "b"}, {"b", "a"}, {"b", "c"}, {"c", "c"}, {"a", "c"}} {
		require.Equal(
			fresh.HasEdge(pair[0], pair[1]),
			churned.HasEdge(pair[0], pair[1]),
			"HasEdge(%s,%s) must not depend on index history", pair[0], pair[1],
		)
	}
}

func TestEdgeBetweenLookups(t *testing.T) {
	require := require.New(t)
	g := buildTriangle(t, false)

	key, ok := g.DirectedEdgeBetween("a", "b")
	require.True(ok)
	require.Equal("ab", key)
	_, ok = g.DirectedEdgeBetween("b", "a")
	require.False(ok)

	key, ok = g.UndirectedEdgeBetween("c", "b")
	require.True(ok)
	require.Equal("bc", key)

	key, ok = g.EdgeBetween("b", "c")
	require.True(ok)
	require.Equal("bc", key, "mixed lookup falls through to the undirected slot")

	_, ok = g.EdgeBetween("ghost", "b")
	require.False(ok)
}

func TestEdgeKeyQueriesValidateKind(t *testing.T) {
	require := require.New(t)
	g := buildTriangle(t, false)

	require.True(g.HasEdgeKey("ab"))
	require.True(g.HasDirectedEdgeKey("ab"))
	require.False(g.HasUndirectedEdgeKey("ab"))
	require.True(g.HasUndirectedEdgeKey("bc"))
	require.False(g.HasDirectedEdgeKey("bc"))
	require.False(g.HasEdgeKey("ghost"))
}

func TestMultigraphParallelEdges(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph(core.WithMulti())
	require.NoError(g.AddNode("a", nil))
	require.NoError(g.AddNode("b", nil))
	require.NoError(g.AddDirectedEdgeWithKey("p1", "a", "b", nil))
	require.NoError(g.AddDirectedEdgeWithKey("p2", "a", "b", nil))
	require.Equal(2, g.Size())

	key, ok := g.DirectedEdgeBetween("a", "b")
	require.True(ok)
	require.Contains([]string{"p1", "p2"}, key, "any member of the parallel set is acceptable")

	// Dropping one parallel edge keeps the other discoverable.
	require.NoError(g.DropEdge("p1"))
	key, ok = g.DirectedEdgeBetween("a", "b")
	require.True(ok)
	require.Equal("p2", key)
	require.True(g.HasDirectedEdge("a", "b"))

	// Dropping the last removes the adjacency entry on both sides.
	require.NoError(g.DropEdge("p2"))
	require.False(g.HasDirectedEdge("a", "b"))
	in, err := g.InDegree("b")
	require.NoError(err)
	require.Equal(0, in)
}

func TestMultigraphUndirectedParallelDropFromMirrorSide(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph(core.WithMulti())
	require.NoError(g.AddNode("a", nil))
	require.NoError(g.AddNode("b", nil))
	require.NoError(g.AddUndirectedEdgeWithKey("u1", "a", "b", nil))
	require.NoError(g.AddUndirectedEdgeWithKey("u2", "b", "a", nil))
	require.True(g.HasUndirectedEdge("a", "b"))

	// u2 was stored from b's side; its removal must be visible from a's.
	require.NoError(g.DropEdge("u2"))
	require.True(g.HasUndirectedEdge("a", "b"))
	require.True(g.HasUndirectedEdge("b", "a"))
	require.NoError(g.DropEdge("u1"))
	require.False(g.HasUndirectedEdge("a", "b"))
	require.False(g.HasUndirectedEdge("b", "a"))
}

func TestNodeAddedAfterIndexIsReachable(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	require.NoError(g.AddNode("a", nil))
	g.ComputeIndex()

	require.NoError(g.AddNode("late", nil))
	require.NoError(g.AddDirectedEdgeWithKey("al", "a", "late", nil))
	require.True(g.HasDirectedEdge("a", "late"))
	nbrs, err := g.Neighbors("late")
	require.NoError(err)
	require.Equal([]string{"a"}, nbrs)
}
