// Structure index: the lazily materialized adjacency maps embedded in
// node records.
//
// The index is optional and reconstructible: while unmaterialized, every
// incremental update is a no-op and the first index-consuming query pays
// one full O(V+E) rebuild. While materialized, adds and drops keep it
// consistent incrementally. A cleared index releases its memory rather
// than going merely stale, so "never computed" and "computed, cleared,
// recomputed" are behaviorally identical.
//
// The load-bearing invariant: for a non-loop edge between A and B, the
// entry under A's out/undirected slot for B and the one under B's
// in/undirected slot for A are the same *adjEntry, never a copy. A
// self-loop stores a single entry with no mirror.

package core

// IndexComputed reports whether the structure index is materialized. O(1).
func (g *Graph) IndexComputed() bool { return g.indexed }

// ComputeIndex materializes the structure index. Idempotent: if already
// computed this is a no-op. Otherwise every node gets fresh adjacency
// maps and every edge record is replayed through the incremental updater
// in insertion order. Complexity: O(V+E).
func (g *Graph) ComputeIndex() {
	if g.indexed {
		return
	}
	for _, n := range g.nodes {
		g.allocAdjacency(n)
	}
	g.indexed = true
	for _, key := range g.edgeKeys {
		g.updateOnAdd(g.edges[key])
	}
}

// ClearIndex tears the structure index down, releasing the per-node
// adjacency maps (reset to nil, not merely flagged stale). Degree
// counters are unaffected. Complexity: O(V).
func (g *Graph) ClearIndex() {
	for _, n := range g.nodes {
		n.out, n.in, n.undirected = nil, nil, nil
	}
	g.indexed = false
}

// UpgradeToMulti converts the instance to a multigraph in place. On a
// graph that is already multi this is a no-op. If the index is computed,
// every simple adjacency entry is wrapped into a one-element set.
//
// Directed entries are walked from the source side only; the in-side
// mirror holds the same shared entry and needs no second write. Each
// unordered undirected pair is processed exactly once, from the
// ordinally smaller key (self-loops compare equal and are processed).
// Complexity: O(V+E).
func (g *Graph) UpgradeToMulti() {
	if g.multi {
		return
	}
	g.multi = true
	if !g.indexed {
		return
	}
	for key, n := range g.nodes {
		for _, entry := range n.out {
			entry.toSet()
		}
		for nbr, entry := range n.undirected {
			if key > nbr {
				continue
			}
			entry.toSet()
		}
	}
}

// allocAdjacency gives n fresh, empty adjacency maps for the kinds the
// graph type admits. Existing maps are discarded.
func (g *Graph) allocAdjacency(n *nodeRecord) {
	if g.typ != Undirected {
		n.out = make(map[string]*adjEntry)
		n.in = make(map[string]*adjEntry)
	}
	if g.typ != Directed {
		n.undirected = make(map[string]*adjEntry)
	}
}

// updateOnAdd pushes one edge into the index. No-op while unmaterialized.
//
// The entry for (source, target) is created on first use: in multi mode a
// set seeded with e, in simple mode the record itself. A present entry
// only ever grows in multi mode (the simple case is excluded upstream by
// the parallel check). Self-loops stop after the source-side write; all
// other edges share the same entry into the target's mirror slot, guarded
// against an inconsistent pre-existing entry.
func (g *Graph) updateOnAdd(e *edgeRecord) {
	if !g.indexed {
		return
	}
	src, tgt := g.nodes[e.source], g.nodes[e.target]
	outAdj, inAdj := src.out, tgt.in
	if e.undirected {
		outAdj, inAdj = src.undirected, tgt.undirected
	}

	entry := outAdj[e.target]
	if entry == nil {
		entry = &adjEntry{}
		if g.multi {
			entry.set = map[string]*edgeRecord{e.key: e}
		} else {
			entry.single = e
		}
		outAdj[e.target] = entry
	} else if g.multi {
		entry.set[e.key] = e
	}

	if e.source == e.target {
		return // no mirror for self-loops
	}
	if inAdj[e.source] == nil {
		inAdj[e.source] = entry
	}
}

// removeOnDrop removes one edge from the index. No-op while
// unmaterialized or when the entry is already gone.
//
// Multi mode: a set of size one means this was the last parallel edge, so
// the entry disappears from both endpoints; otherwise only the record
// leaves the shared set. Simple mode: the entry is deleted outright from
// both sides. The mirror deletion is skipped for self-loops, which never
// had one.
func (g *Graph) removeOnDrop(e *edgeRecord) {
	if !g.indexed {
		return
	}
	src, tgt := g.nodes[e.source], g.nodes[e.target]
	outAdj, inAdj := src.out, tgt.in
	if e.undirected {
		outAdj, inAdj = src.undirected, tgt.undirected
	}

	entry := outAdj[e.target]
	if entry == nil {
		return
	}
	if g.multi && len(entry.set) > 1 {
		delete(entry.set, e.key)
		return
	}
	delete(outAdj, e.target)
	if e.source != e.target {
		delete(inAdj, e.source)
	}
}
