// Edge table and mutation engine: validated add/drop paths plus the
// existence and lookup queries built on the structure index.
//
// Validation order in addEdge is a contract: kind vs. graph type, key
// shape, endpoint existence, duplicate key, self-loop policy, parallel
// policy. No partial mutation is committed on any failure.

package core

// AddEdgeWithKey inserts an edge under an explicit key using the graph's
// default kind: directed unless the graph type is Undirected.
// Complexity: O(1) amortized (first call on a simple graph may trigger an
// O(V+E) index build for the parallel-edge check).
func (g *Graph) AddEdgeWithKey(key, source, target string, attrs Attributes) error {
	return g.addEdge(key, g.typ == Undirected, source, target, attrs)
}

// AddDirectedEdgeWithKey inserts a directed edge under an explicit key.
// Returns ErrKindMismatch on an Undirected graph.
func (g *Graph) AddDirectedEdgeWithKey(key, source, target string, attrs Attributes) error {
	return g.addEdge(key, false, source, target, attrs)
}

// AddUndirectedEdgeWithKey inserts an undirected edge under an explicit
// key. Returns ErrKindMismatch on a Directed graph.
func (g *Graph) AddUndirectedEdgeWithKey(key, source, target string, attrs Attributes) error {
	return g.addEdge(key, true, source, target, attrs)
}

// AddEdge inserts an edge of the graph's default kind under a generated
// key and returns that key. The generator's freshness contract is not
// enforced beyond normal duplicate detection.
func (g *Graph) AddEdge(source, target string, attrs Attributes) (string, error) {
	undirected := g.typ == Undirected
	key := g.keyFn(undirected, source, target, attrs)
	return key, g.addEdge(key, undirected, source, target, attrs)
}

// AddDirectedEdge inserts a directed edge under a generated key.
func (g *Graph) AddDirectedEdge(source, target string, attrs Attributes) (string, error) {
	key := g.keyFn(false, source, target, attrs)
	return key, g.addEdge(key, false, source, target, attrs)
}

// AddUndirectedEdge inserts an undirected edge under a generated key.
func (g *Graph) AddUndirectedEdge(source, target string, attrs Attributes) (string, error) {
	key := g.keyFn(true, source, target, attrs)
	return key, g.addEdge(key, true, source, target, attrs)
}

// addEdge is the single validated insertion path behind every Add*Edge*.
func (g *Graph) addEdge(key string, undirected bool, source, target string, attrs Attributes) error {
	// 1) Kind must be admissible for the graph type.
	if undirected && g.typ == Directed {
		return ErrKindMismatch
	}
	if !undirected && g.typ == Undirected {
		return ErrKindMismatch
	}
	// 2) Key shape.
	if key == "" || source == "" || target == "" {
		return ErrEmptyKey
	}
	// 3) Both endpoints must exist.
	src, ok := g.nodes[source]
	if !ok {
		return ErrNodeNotFound
	}
	tgt, ok := g.nodes[target]
	if !ok {
		return ErrNodeNotFound
	}
	// 4) Edge key must be free.
	if _, dup := g.edges[key]; dup {
		return ErrDuplicateEdge
	}
	// 5) Self-loop policy.
	if source == target && !g.selfLoops {
		return ErrLoopNotAllowed
	}
	// 6) Parallel policy: a simple graph admits at most one edge of a
	//    given kind per pair. Checked through the structure index, which
	//    is computed on demand for this check.
	if !g.multi {
		g.ComputeIndex()
		adj := src.out
		if undirected {
			adj = src.undirected
		}
		if adj[target] != nil {
			return ErrParallelEdge
		}
	}

	if attrs == nil {
		attrs = make(Attributes)
	}
	e := &edgeRecord{
		key:        key,
		source:     source,
		target:     target,
		undirected: undirected,
		attrs:      attrs,
		pos:        len(g.edgeKeys),
	}
	g.edges[key] = e
	g.edgeKeys = append(g.edgeKeys, key)

	// 7) Degree bookkeeping. A self-loop touches only the loop counter,
	//    never the in/out/undirected degrees.
	switch {
	case source == target:
		src.selfLoops++
	case undirected:
		src.undirDeg++
		tgt.undirDeg++
	default:
		src.outDeg++
		tgt.inDeg++
	}

	// 8) Incremental index maintenance (no-op while unmaterialized).
	g.updateOnAdd(e)
	return nil
}

// DropEdge removes the edge under key, reversing every effect of its add:
// edge table, size, degree counters and the structure index.
// Returns ErrEdgeNotFound if absent. Complexity: O(1).
func (g *Graph) DropEdge(key string) error {
	e, ok := g.edges[key]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeOnDrop(e)
	delete(g.edges, key)
	g.removeEdgeKey(e.pos)

	src, tgt := g.nodes[e.source], g.nodes[e.target]
	switch {
	case e.source == e.target:
		src.selfLoops--
	case e.undirected:
		src.undirDeg--
		tgt.undirDeg--
	default:
		src.outDeg--
		tgt.inDeg--
	}
	return nil
}

// ClearEdges removes every edge while keeping all nodes. Degree counters
// are zeroed and, if the index is materialized, its adjacency maps are
// reset to empty (the index stays computed). Complexity: O(V+E).
func (g *Graph) ClearEdges() {
	g.edges = make(map[string]*edgeRecord)
	g.edgeKeys = nil
	for _, n := range g.nodes {
		n.selfLoops, n.outDeg, n.inDeg, n.undirDeg = 0, 0, 0, 0
		if g.indexed {
			g.allocAdjacency(n)
		}
	}
}

// Clear empties both tables and releases the structure index memory.
// Configuration flags and the key generator are preserved.
// Complexity: O(1) plus garbage collection.
func (g *Graph) Clear() {
	g.nodes = make(map[string]*nodeRecord)
	g.edges = make(map[string]*edgeRecord)
	g.nodeKeys = nil
	g.edgeKeys = nil
	g.indexed = false
}

// Edges returns all edge keys in insertion order. The order is stable
// until a drop or clear; a drop may reorder the tail (swap-remove).
// The returned slice is a copy. Complexity: O(E).
func (g *Graph) Edges() []string {
	out := make([]string, len(g.edgeKeys))
	copy(out, g.edgeKeys)
	return out
}

// HasEdgeKey reports whether key names a live edge of any kind. O(1).
func (g *Graph) HasEdgeKey(key string) bool {
	_, ok := g.edges[key]
	return ok
}

// HasDirectedEdgeKey reports whether key names a live directed edge. O(1).
func (g *Graph) HasDirectedEdgeKey(key string) bool {
	e, ok := g.edges[key]
	return ok && !e.undirected
}

// HasUndirectedEdgeKey reports whether key names a live undirected edge. O(1).
func (g *Graph) HasUndirectedEdgeKey(key string) bool {
	e, ok := g.edges[key]
	return ok && e.undirected
}

// HasDirectedEdge reports whether a directed edge source→target exists.
// Forces the structure index; false when either node is absent.
// A directed self-loop is found in the node's own out slot (no mirror).
// Complexity: O(1) after the index build.
func (g *Graph) HasDirectedEdge(source, target string) bool {
	if g.typ == Undirected {
		return false
	}
	src, ok := g.nodes[source]
	if !ok || !g.HasNode(target) {
		return false
	}
	g.ComputeIndex()
	return src.out[target] != nil
}

// HasUndirectedEdge reports whether an undirected edge links source and
// target. Forces the structure index; false when either node is absent.
// Complexity: O(1) after the index build.
func (g *Graph) HasUndirectedEdge(source, target string) bool {
	if g.typ == Directed {
		return false
	}
	src, ok := g.nodes[source]
	if !ok || !g.HasNode(target) {
		return false
	}
	g.ComputeIndex()
	return src.undirected[target] != nil
}

// HasEdge reports whether any edge links source to target, trying the
// directed orientation first, then the undirected one (relevant for Mixed
// graphs). Complexity: O(1) after the index build.
func (g *Graph) HasEdge(source, target string) bool {
	return g.HasDirectedEdge(source, target) || g.HasUndirectedEdge(source, target)
}

// DirectedEdgeBetween returns the key of a directed edge source→target.
// On a multigraph the choice among parallel edges is non-deterministic;
// callers needing a stable order must enumerate explicitly.
// ok is false when no such edge (or either node) exists.
func (g *Graph) DirectedEdgeBetween(source, target string) (key string, ok bool) {
	if g.typ == Undirected {
		return "", false
	}
	src, present := g.nodes[source]
	if !present || !g.HasNode(target) {
		return "", false
	}
	g.ComputeIndex()
	entry := src.out[target]
	if entry == nil {
		return "", false
	}
	return entry.first()
}

// UndirectedEdgeBetween returns the key of an undirected edge between
// source and target; see DirectedEdgeBetween for the multigraph caveat.
func (g *Graph) UndirectedEdgeBetween(source, target string) (key string, ok bool) {
	if g.typ == Directed {
		return "", false
	}
	src, present := g.nodes[source]
	if !present || !g.HasNode(target) {
		return "", false
	}
	g.ComputeIndex()
	entry := src.undirected[target]
	if entry == nil {
		return "", false
	}
	return entry.first()
}

// EdgeBetween returns the key of any edge from source to target, trying
// the directed orientation first, then the undirected one.
func (g *Graph) EdgeBetween(source, target string) (key string, ok bool) {
	if key, ok = g.DirectedEdgeBetween(source, target); ok {
		return key, true
	}
	return g.UndirectedEdgeBetween(source, target)
}

// removeEdgeKey swap-removes edgeKeys[pos], fixing the moved record's pos.
func (g *Graph) removeEdgeKey(pos int) {
	last := len(g.edgeKeys) - 1
	if pos != last {
		moved := g.edgeKeys[last]
		g.edgeKeys[pos] = moved
		g.edges[moved].pos = pos
	}
	g.edgeKeys = g.edgeKeys[:last]
}
