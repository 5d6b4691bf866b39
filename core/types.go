// Package core defines the central Graph type: node/edge tables keyed by
// string, per-node degree counters, and a lazily maintained adjacency
// (structure) index giving O(1) edge existence and lookup.
//
// This file declares Graph, GraphType, Attributes, EdgeKeyFunc, Option,
// the internal record types, and the NewGraph constructor.
package core

import "strconv"

// GraphType selects which edge kinds a Graph admits.
type GraphType int

const (
	// Mixed admits both directed and undirected edges (default).
	Mixed GraphType = iota
	// Directed admits directed edges only.
	Directed
	// Undirected admits undirected edges only.
	Undirected
)

// String returns the canonical lower-case name of the graph type.
func (t GraphType) String() string {
	switch t {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "mixed"
	}
}

// ParseGraphType maps a canonical name back to its GraphType.
// Returns ErrUnknownType for anything else.
func ParseGraphType(s string) (GraphType, error) {
	switch s {
	case "mixed":
		return Mixed, nil
	case "directed":
		return Directed, nil
	case "undirected":
		return Undirected, nil
	}
	return Mixed, ErrUnknownType
}

// Attributes is the opaque attribute container attached to every node and
// edge. The core never interprets its contents; it only creates, hands out
// and discards the container with its owning record.
type Attributes map[string]interface{}

// clone returns a shallow copy (nil-safe). Values are shared; the
// container itself is owned exclusively by one record.
func (a Attributes) clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// EdgeKeyFunc produces a key for an edge added without an explicit one.
// The contract is a precondition, not an enforced guarantee: the function
// must return a key not already present in the edge table. A colliding key
// surfaces as the ordinary ErrDuplicateEdge failure; the core never retries.
type EdgeKeyFunc func(undirected bool, source, target string, attrs Attributes) string

// Option configures a Graph before creation. Configuration is fixed for
// the lifetime of the instance (UpgradeToMulti being the one exception).
type Option func(*Graph)

// WithType sets which edge kinds the graph admits. Default: Mixed.
func WithType(t GraphType) Option {
	return func(g *Graph) { g.typ = t }
}

// WithMulti permits parallel edges of the same kind between a pair of nodes.
func WithMulti() Option {
	return func(g *Graph) { g.multi = true }
}

// WithSelfLoops sets the self-loop policy. Default: allowed.
func WithSelfLoops(allow bool) Option {
	return func(g *Graph) { g.selfLoops = allow }
}

// WithKeyGenerator installs the edge-key generator used by the key-less
// add operations. Default: a sequential "e1", "e2", ... counter.
func WithKeyGenerator(fn EdgeKeyFunc) Option {
	return func(g *Graph) {
		if fn == nil {
			return
		}
		g.keyFn = fn
		g.customKey = true
	}
}

// nodeRecord is the per-node storage owned by the node table.
//
// The degree counters live for the whole lifetime of the record,
// independent of whether the structure index is materialized. The out/in/
// undirected maps are nil until ComputeIndex allocates them; entries are
// *adjEntry pointers shared between the two endpoints of an edge.
type nodeRecord struct {
	attrs Attributes

	selfLoops int // self-loop edge count, any kind
	outDeg    int // directed out-degree (graphs admitting directed edges)
	inDeg     int // directed in-degree
	undirDeg  int // undirected degree (graphs admitting undirected edges)

	out        map[string]*adjEntry // neighbor key → shared entry, directed out
	in         map[string]*adjEntry // neighbor key → shared entry, directed in
	undirected map[string]*adjEntry // neighbor key → shared entry, undirected

	pos int // index into Graph.nodeKeys, maintained by swap-remove
}

// edgeRecord is the per-edge storage owned by the edge table.
// source, target and undirected are fixed at creation.
type edgeRecord struct {
	key        string
	source     string
	target     string
	undirected bool
	attrs      Attributes

	pos int // index into Graph.edgeKeys, maintained by swap-remove
}

// adjEntry is one adjacency slot. For a non-loop edge between A and B the
// same *adjEntry is stored under both endpoints (A's out/undirected slot
// for B, B's in/undirected slot for A), so an update through one side is
// visible from the other without a second write. Exactly one of the two
// representations is populated, chosen by the graph-wide multi flag:
// single for simple graphs, set (keyed by edge key) for multigraphs.
type adjEntry struct {
	single *edgeRecord
	set    map[string]*edgeRecord
}

// first returns an arbitrary edge key of the entry. For multigraphs the
// choice among parallel edges is non-deterministic (map iteration order).
func (en *adjEntry) first() (string, bool) {
	if en.single != nil {
		return en.single.key, true
	}
	for k := range en.set {
		return k, true
	}
	return "", false
}

// toSet converts a simple entry to the multi representation in place.
// The entry is shared between both endpoints, so the mirror side observes
// the conversion without a second write.
func (en *adjEntry) toSet() {
	if en.single == nil {
		return
	}
	en.set = map[string]*edgeRecord{en.single.key: en.single}
	en.single = nil
}

// Graph is the in-memory graph storage engine.
//
// It supports directed, undirected and mixed graphs, optional parallel
// edges (multi) and self-loops, opaque attribute bags on nodes and edges,
// and a lazily built structure index for O(1) adjacency queries.
//
// Concurrency: single-threaded by design. Every operation completes
// synchronously and the graph performs no internal locking; callers must
// serialize access when sharing an instance across goroutines. Mutating
// the graph while consuming a previously returned key slice is safe (the
// slices are copies) but the slice then describes a stale state.
type Graph struct {
	// Configuration, fixed at construction.
	typ       GraphType
	multi     bool // parallel edges permitted; UpgradeToMulti may flip this on
	selfLoops bool // self-loops permitted
	keyFn     EdgeKeyFunc
	customKey bool // keyFn was caller-supplied (copies must not rebind the default)

	nextEdgeKey uint64 // counter behind the default key generator

	// Storage.
	nodes map[string]*nodeRecord // node key → record
	edges map[string]*edgeRecord // edge key → record

	// Insertion-ordered key sequences, stable until a drop/clear.
	// Drops use swap-remove, so the tail may reorder after a drop.
	nodeKeys []string
	edgeKeys []string

	// Structure index state. While false the per-node adjacency maps are
	// nil and every incremental index update is a no-op; ComputeIndex
	// rebuilds from the edge table on demand.
	indexed bool
}

// NewGraph creates an empty Graph. Defaults: Mixed type, simple (no
// parallel edges), self-loops allowed, sequential edge-key generator.
// Complexity: O(1).
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		typ:       Mixed,
		selfLoops: true,
		nodes:     make(map[string]*nodeRecord),
		edges:     make(map[string]*edgeRecord),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.keyFn == nil {
		g.keyFn = g.sequentialKey
	}
	return g
}

// sequentialKey is the default edge-key generator: "e1", "e2", ...
// Monotonic per instance; keys are never reused after a drop.
func (g *Graph) sequentialKey(bool, string, string, Attributes) string {
	g.nextEdgeKey++
	return "e" + strconv.FormatUint(g.nextEdgeKey, 10)
}

// Type reports which edge kinds this graph admits. O(1).
func (g *Graph) Type() GraphType { return g.typ }

// Multi reports whether parallel edges are permitted. O(1).
func (g *Graph) Multi() bool { return g.multi }

// AllowsSelfLoops reports the self-loop policy. O(1).
func (g *Graph) AllowsSelfLoops() bool { return g.selfLoops }

// Order returns the number of live nodes. O(1).
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the number of live edges. O(1).
func (g *Graph) Size() int { return len(g.edges) }
