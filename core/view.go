// Read accessors: value snapshots of single records for the iteration and
// serialization layers built on top of the core.

package core

// NodeInfo is a read snapshot of one node record: its key, the live
// attribute container, and the stored degree fields. The Attributes map
// is the record's own container; callers must treat it as read-only.
type NodeInfo struct {
	Key              string
	Attributes       Attributes
	SelfLoops        int
	InDegree         int
	OutDegree        int
	UndirectedDegree int
}

// EdgeInfo is a read snapshot of one edge record. The Attributes map is
// the record's own container; callers must treat it as read-only.
type EdgeInfo struct {
	Key        string
	Source     string
	Target     string
	Undirected bool
	Attributes Attributes
}

// Node returns a snapshot of the node under key.
// Returns ErrNodeNotFound if absent. Complexity: O(1).
func (g *Graph) Node(key string) (NodeInfo, error) {
	n, ok := g.nodes[key]
	if !ok {
		return NodeInfo{}, ErrNodeNotFound
	}
	return NodeInfo{
		Key:              key,
		Attributes:       n.attrs,
		SelfLoops:        n.selfLoops,
		InDegree:         n.inDeg,
		OutDegree:        n.outDeg,
		UndirectedDegree: n.undirDeg,
	}, nil
}

// Edge returns a snapshot of the edge under key.
// Returns ErrEdgeNotFound if absent. Complexity: O(1).
func (g *Graph) Edge(key string) (EdgeInfo, error) {
	e, ok := g.edges[key]
	if !ok {
		return EdgeInfo{}, ErrEdgeNotFound
	}
	return EdgeInfo{
		Key:        e.key,
		Source:     e.source,
		Target:     e.target,
		Undirected: e.undirected,
		Attributes: e.attrs,
	}, nil
}
