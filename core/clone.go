// Copying. Both copies go through the official mutators, so every
// counter and index invariant holds in the result by construction.

package core

// EmptyCopy returns a new graph with identical configuration and nodes
// (attribute containers shallow-copied) but no edges and no materialized
// index. The default key-generator counter is carried forward so future
// generated keys cannot collide with keys copied later. Complexity: O(V).
func (g *Graph) EmptyCopy() *Graph {
	opts := []Option{WithType(g.typ), WithSelfLoops(g.selfLoops)}
	if g.multi {
		opts = append(opts, WithMulti())
	}
	if g.customKey {
		// A caller-supplied generator transfers as-is; the default one must
		// not, or the copy would feed the source's counter.
		opts = append(opts, WithKeyGenerator(g.keyFn))
	}
	out := NewGraph(opts...)
	out.nextEdgeKey = g.nextEdgeKey
	for _, key := range g.nodeKeys {
		// AddNode cannot fail here: keys are non-empty and unique by
		// construction in the source tables.
		_ = out.AddNode(key, g.nodes[key].attrs.clone())
	}
	return out
}

// Copy returns a deep copy of the graph: configuration, nodes, edges and
// degree counters. The structure index is not materialized in the copy;
// it rebuilds on first demand. Complexity: O(V+E).
func (g *Graph) Copy() *Graph {
	out := g.EmptyCopy()
	for _, key := range g.edgeKeys {
		// Replaying a consistent graph's own edge table cannot violate
		// its own policies, so the error is discarded.
		e := g.edges[key]
		if e.undirected {
			_ = out.AddUndirectedEdgeWithKey(e.key, e.source, e.target, e.attrs.clone())
		} else {
			_ = out.AddDirectedEdgeWithKey(e.key, e.source, e.target, e.attrs.clone())
		}
	}
	return out
}
