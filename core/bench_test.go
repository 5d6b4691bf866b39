package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/gravel/core"
)

// benchGraph returns a simple directed chain of n nodes with the
// structure index already materialized.
func benchGraph(n int) *core.Graph {
	g := core.NewGraph(core.WithType(core.Directed))
	for i := 0; i < n; i++ {
		_ = g.AddNode(strconv.Itoa(i), nil)
	}
	for i := 1; i < n; i++ {
		_, _ = g.AddDirectedEdge(strconv.Itoa(i-1), strconv.Itoa(i), nil)
	}
	g.ComputeIndex()
	return g
}

func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(core.WithType(core.Directed), core.WithMulti())
	_ = g.AddNode("a", nil)
	_ = g.AddNode("b", nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddDirectedEdge("a", "b", nil)
	}
}

func BenchmarkHasEdgeIndexed(b *testing.B) {
	g := benchGraph(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasDirectedEdge("10", "11")
	}
}

func BenchmarkComputeIndex(b *testing.B) {
	g := benchGraph(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ClearIndex()
		g.ComputeIndex()
	}
}
