// Export/Import: flat descriptor types mirroring the graph's state, and
// the batch entry point replaying them through the validated mutators.
// No wire format lives here; the codec package owns the byte encodings.

package core

// SerializedNode is one node descriptor of an exported graph.
type SerializedNode struct {
	Key        string     `json:"key" yaml:"key" msgpack:"key"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty" msgpack:"attributes,omitempty"`
}

// SerializedEdge is one edge descriptor of an exported graph.
type SerializedEdge struct {
	Key        string     `json:"key" yaml:"key" msgpack:"key"`
	Source     string     `json:"source" yaml:"source" msgpack:"source"`
	Target     string     `json:"target" yaml:"target" msgpack:"target"`
	Undirected bool       `json:"undirected,omitempty" yaml:"undirected,omitempty" msgpack:"undirected,omitempty"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty" msgpack:"attributes,omitempty"`
}

// SerializedOptions records the construction-time configuration of the
// exporting graph, so a compatible instance can be rebuilt.
type SerializedOptions struct {
	Type           string `json:"type" yaml:"type" msgpack:"type"`
	Multi          bool   `json:"multi" yaml:"multi" msgpack:"multi"`
	AllowSelfLoops bool   `json:"allowSelfLoops" yaml:"allowSelfLoops" msgpack:"allowSelfLoops"`
}

// SerializedGraph is the full exported state: options, then nodes, then
// edges, each in the graph's enumeration order.
type SerializedGraph struct {
	Options SerializedOptions `json:"options" yaml:"options" msgpack:"options"`
	Nodes   []SerializedNode  `json:"nodes" yaml:"nodes" msgpack:"nodes"`
	Edges   []SerializedEdge  `json:"edges" yaml:"edges" msgpack:"edges"`
}

// Export snapshots the whole graph into descriptor form. Attribute
// containers are shallow-copied so the export does not alias live
// records. Complexity: O(V+E).
func (g *Graph) Export() *SerializedGraph {
	s := &SerializedGraph{
		Options: SerializedOptions{
			Type:           g.typ.String(),
			Multi:          g.multi,
			AllowSelfLoops: g.selfLoops,
		},
		Nodes: make([]SerializedNode, 0, len(g.nodeKeys)),
		Edges: make([]SerializedEdge, 0, len(g.edgeKeys)),
	}
	for _, key := range g.nodeKeys {
		s.Nodes = append(s.Nodes, SerializedNode{
			Key:        key,
			Attributes: g.nodes[key].attrs.clone(),
		})
	}
	for _, key := range g.edgeKeys {
		e := g.edges[key]
		s.Edges = append(s.Edges, SerializedEdge{
			Key:        e.key,
			Source:     e.source,
			Target:     e.target,
			Undirected: e.undirected,
			Attributes: e.attrs.clone(),
		})
	}
	return s
}

// Import replays s into the graph through the validated add operations:
// all nodes first, then all edges, so edge-time existence checks always
// see already-imported nodes. Each add is independently atomic; the first
// failure aborts the batch and leaves previously committed records in
// place. Complexity: O(V+E).
func (g *Graph) Import(s *SerializedGraph) error {
	for _, n := range s.Nodes {
		if err := g.AddNode(n.Key, n.Attributes.clone()); err != nil {
			return err
		}
	}
	for _, e := range s.Edges {
		attrs := e.Attributes.clone()
		var err error
		if e.Undirected {
			err = g.AddUndirectedEdgeWithKey(e.Key, e.Source, e.Target, attrs)
		} else {
			err = g.AddDirectedEdgeWithKey(e.Key, e.Source, e.Target, attrs)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// FromSerialized builds a fresh graph configured from s.Options and
// imports its contents. Complexity: O(V+E).
func FromSerialized(s *SerializedGraph, opts ...Option) (*Graph, error) {
	typ, err := ParseGraphType(s.Options.Type)
	if err != nil {
		return nil, err
	}
	all := make([]Option, 0, len(opts)+3)
	all = append(all, WithType(typ), WithSelfLoops(s.Options.AllowSelfLoops))
	if s.Options.Multi {
		all = append(all, WithMulti())
	}
	all = append(all, opts...)
	g := NewGraph(all...)
	if err = g.Import(s); err != nil {
		return nil, err
	}
	return g, nil
}
