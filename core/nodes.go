// Node table: lifecycle and read access for node records.
//
// Mutations here keep three things consistent: the key→record map, the
// insertion-ordered key slice (swap-remove on drop), and — when the
// structure index is materialized — the per-node adjacency maps.

package core

import "sort"

// AddNode inserts a new node under key with the given attribute container
// (nil allocates an empty one; the graph takes ownership either way).
// Returns ErrEmptyKey for "", ErrDuplicateNode if the key is taken.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(key string, attrs Attributes) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, exists := g.nodes[key]; exists {
		return ErrDuplicateNode
	}
	if attrs == nil {
		attrs = make(Attributes)
	}
	n := &nodeRecord{attrs: attrs, pos: len(g.nodeKeys)}
	// Nodes born after ComputeIndex need live adjacency maps so that
	// incremental index updates can reach them.
	if g.indexed {
		g.allocAdjacency(n)
	}
	g.nodes[key] = n
	g.nodeKeys = append(g.nodeKeys, key)
	return nil
}

// MergeNode adds the node if absent and reports whether it was created.
// An existing record is left untouched, attributes included.
// Complexity: O(1) amortized.
func (g *Graph) MergeNode(key string, attrs Attributes) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	if _, exists := g.nodes[key]; exists {
		return false, nil
	}
	return true, g.AddNode(key, attrs)
}

// HasNode reports whether key names a live node. Complexity: O(1).
func (g *Graph) HasNode(key string) bool {
	_, ok := g.nodes[key]
	return ok
}

// DropNode removes the node and every edge incident to it.
// Returns ErrNodeNotFound if absent.
//
// This is the one mutation whose cost is proportional to the node's
// degree rather than O(1): incident edges are enumerated through the
// structure index (built on demand) and dropped one by one before the
// record itself goes away.
func (g *Graph) DropNode(key string) error {
	n, ok := g.nodes[key]
	if !ok {
		return ErrNodeNotFound
	}
	incident, err := g.IncidentEdges(key)
	if err != nil {
		return err
	}
	for _, ek := range incident {
		if err = g.DropEdge(ek); err != nil {
			return err
		}
	}
	g.removeNodeKey(n.pos)
	delete(g.nodes, key)
	return nil
}

// Nodes returns all node keys in insertion order. The order is stable
// until a drop or clear; a drop may reorder the tail (swap-remove).
// The returned slice is a copy. Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodeKeys))
	copy(out, g.nodeKeys)
	return out
}

// Neighbors returns the unique, sorted keys of all nodes adjacent to key,
// regardless of edge kind or orientation. Forces the structure index.
// Returns ErrNodeNotFound if key is absent.
// Complexity: O(d log d) where d is the neighbor count.
func (g *Graph) Neighbors(key string) ([]string, error) {
	n, ok := g.nodes[key]
	if !ok {
		return nil, ErrNodeNotFound
	}
	g.ComputeIndex()
	seen := make(map[string]struct{})
	for _, adj := range [3]map[string]*adjEntry{n.out, n.in, n.undirected} {
		for nbr := range adj {
			seen[nbr] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for nbr := range seen {
		out = append(out, nbr)
	}
	sort.Strings(out)
	return out, nil
}

// IncidentEdges returns the unique, sorted keys of all edges touching key
// in either orientation, self-loops included once. Forces the structure
// index. Returns ErrNodeNotFound if key is absent.
// Complexity: O(d log d) where d is the incident edge count.
func (g *Graph) IncidentEdges(key string) ([]string, error) {
	n, ok := g.nodes[key]
	if !ok {
		return nil, ErrNodeNotFound
	}
	g.ComputeIndex()
	seen := make(map[string]struct{})
	collect := func(adj map[string]*adjEntry) {
		for _, entry := range adj {
			if entry.single != nil {
				seen[entry.single.key] = struct{}{}
				continue
			}
			for ek := range entry.set {
				seen[ek] = struct{}{}
			}
		}
	}
	collect(n.out)
	collect(n.in)
	collect(n.undirected)
	out := make([]string, 0, len(seen))
	for ek := range seen {
		out = append(out, ek)
	}
	sort.Strings(out)
	return out, nil
}

// removeNodeKey swap-removes nodeKeys[pos], fixing the moved record's pos.
func (g *Graph) removeNodeKey(pos int) {
	last := len(g.nodeKeys) - 1
	if pos != last {
		moved := g.nodeKeys[last]
		g.nodeKeys[pos] = moved
		g.nodes[moved].pos = pos
	}
	g.nodeKeys = g.nodeKeys[:last]
}
