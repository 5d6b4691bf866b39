// Package core provides the in-memory graph storage engine: node and
// edge tables with opaque attribute bags, degree bookkeeping, and a
// lazily maintained structure (adjacency) index answering edge existence
// and lookup in O(1).
//
// The Graph G = (V,E) supports a configurable mix of behaviors:
//
//   - Directed, undirected or mixed edge kinds (WithType)
//   - Parallel edges / multigraphs (WithMulti, UpgradeToMulti)
//   - Self-loop policy (WithSelfLoops)
//   - Pluggable edge-key generation (WithKeyGenerator)
//   - Lazily materialized adjacency index (ComputeIndex / ClearIndex),
//     kept consistent incrementally while materialized
//
// Configuration Options (Option):
//
//	– WithType(t GraphType)
//	    Mixed (default) admits both edge kinds; Directed and Undirected
//	    restrict the instance, and the wrong kind fails with ErrKindMismatch.
//
//	– WithMulti()
//	    Permits parallel edges of the same kind between a pair. Without it
//	    a second edge of the same kind fails with ErrParallelEdge.
//
//	– WithSelfLoops(allow bool)
//	    Self-loop policy; default allowed. AddEdge(v,v) with loops
//	    disabled fails with ErrLoopNotAllowed.
//
//	– WithKeyGenerator(fn EdgeKeyFunc)
//	    Generator behind the key-less add operations. Must return fresh
//	    keys; a collision surfaces as ErrDuplicateEdge.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(key, attrs) error            // O(1)
//	MergeNode(key, attrs) (bool, error)  // O(1), upsert-if-absent
//	HasNode(key) bool                    // O(1)
//	DropNode(key) error                  // O(deg(v)), drops incident edges first
//
//	// Edge lifecycle
//	AddEdgeWithKey / AddDirectedEdgeWithKey / AddUndirectedEdgeWithKey   // O(1)†
//	AddEdge / AddDirectedEdge / AddUndirectedEdge (generated keys)       // O(1)†
//	DropEdge(key) error                  // O(1)
//	ClearEdges()                         // O(V+E), keeps nodes
//	Clear()                              // O(1), releases index memory
//
//	// Existence & lookup (pair forms build the index on demand)
//	HasEdgeKey / HasDirectedEdgeKey / HasUndirectedEdgeKey               // O(1)
//	HasEdge / HasDirectedEdge / HasUndirectedEdge                        // O(1)†
//	EdgeBetween / DirectedEdgeBetween / UndirectedEdgeBetween            // O(1)†
//
//	// Degrees (stored counters, index not required)
//	Degree / InDegree / OutDegree / DirectedDegree / UndirectedDegree
//	and the ...WithoutSelfLoops variants                                 // O(1)
//
//	// Enumeration & snapshots
//	Nodes() []string / Edges() []string  // insertion order, copies
//	Neighbors / IncidentEdges            // O(d log d), sorted, unique
//	Node(key) (NodeInfo, error) / Edge(key) (EdgeInfo, error)
//
//	// Index control
//	ComputeIndex() / ClearIndex() / IndexComputed() / UpgradeToMulti()
//
//	// Bulk
//	Export() *SerializedGraph / Import(*SerializedGraph) error
//	Copy() / EmptyCopy()
//
// † amortized: the first index-consuming call on an unmaterialized index
// pays one O(V+E) rebuild.
//
// Errors: three kinds — ErrInvalidArgument, ErrNotFound, ErrUsage — with
// specific sentinels (ErrDuplicateNode, ErrKindMismatch, ...) wrapping
// their kind, so errors.Is works at either granularity. All failures are
// synchronous and commit no partial mutation.
//
// Concurrency: none. The engine is single-threaded by contract; no
// operation blocks or spawns work, and no internal locking exists.
// Callers sharing a Graph across goroutines must serialize access.
// Mutating the graph during an external enumeration over live index
// state is undefined behavior.
package core
