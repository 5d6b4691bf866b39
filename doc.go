// Package gravel is an in-memory graph storage engine: keyed nodes and
// edges with attribute bags, directed / undirected / mixed graphs,
// optional parallel edges and self-loops, and constant-time adjacency
// queries through a lazily materialized structure index.
//
// gravel is a building block for graph algorithms, not an algorithm
// library: it owns the node/edge tables, degree bookkeeping, and the
// adjacency index that keeps edge-existence lookups O(1) under arbitrary
// interleavings of add and drop operations.
//
// The module is organized under three subpackages:
//
//	core/   — Graph facade, node/edge tables, mutation engine, structure index
//	codec/  — JSON / YAML / MessagePack encoding of exported graphs
//	keygen/ — pluggable edge-key generation strategies (sequential, UUID)
//
// Quick ASCII example:
//
//	    a──e1──▶b
//	    │       │
//	   e3      e2
//	    ▼       ▼
//	    c◀──e4──d
//
//	g := core.NewGraph(core.WithType(core.Directed))
//	_ = g.AddNode("a", nil)
//	_ = g.AddNode("b", nil)
//	_ = g.AddDirectedEdgeWithKey("e1", "a", "b", nil)
//	g.HasDirectedEdge("a", "b") // true, O(1) after index build
//
// All operations are synchronous and single-threaded by design: the
// graph performs no internal locking, and callers sharing an instance
// across goroutines must serialize access themselves.
package gravel
