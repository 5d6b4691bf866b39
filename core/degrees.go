// Degree queries. Every variant sums stored counters in O(1); nothing
// here touches the structure index. Self-loops are tracked in their own
// counter and folded in once when the query counts them.

package core

// degreeKind selects which stored counters a query sums.
type degreeKind int

const (
	degAll degreeKind = iota
	degIn
	degOut
	degDirected
	degUndirected
)

// Degree returns the total degree of key, self-loops included.
// Returns ErrNodeNotFound if key is absent. Complexity: O(1).
func (g *Graph) Degree(key string) (int, error) {
	return g.degree(key, degAll, true)
}

// DegreeWithoutSelfLoops returns the total degree of key, ignoring
// self-loops. Complexity: O(1).
func (g *Graph) DegreeWithoutSelfLoops(key string) (int, error) {
	return g.degree(key, degAll, false)
}

// InDegree returns the directed in-degree plus self-loops.
// Returns ErrKindMismatch on an Undirected graph. Complexity: O(1).
func (g *Graph) InDegree(key string) (int, error) {
	return g.degree(key, degIn, true)
}

// InDegreeWithoutSelfLoops returns the directed in-degree, ignoring
// self-loops. Complexity: O(1).
func (g *Graph) InDegreeWithoutSelfLoops(key string) (int, error) {
	return g.degree(key, degIn, false)
}

// OutDegree returns the directed out-degree plus self-loops.
// Returns ErrKindMismatch on an Undirected graph. Complexity: O(1).
func (g *Graph) OutDegree(key string) (int, error) {
	return g.degree(key, degOut, true)
}

// OutDegreeWithoutSelfLoops returns the directed out-degree, ignoring
// self-loops. Complexity: O(1).
func (g *Graph) OutDegreeWithoutSelfLoops(key string) (int, error) {
	return g.degree(key, degOut, false)
}

// DirectedDegree returns in-degree + out-degree plus self-loops.
// Returns ErrKindMismatch on an Undirected graph. Complexity: O(1).
func (g *Graph) DirectedDegree(key string) (int, error) {
	return g.degree(key, degDirected, true)
}

// DirectedDegreeWithoutSelfLoops returns in-degree + out-degree, ignoring
// self-loops. Complexity: O(1).
func (g *Graph) DirectedDegreeWithoutSelfLoops(key string) (int, error) {
	return g.degree(key, degDirected, false)
}

// UndirectedDegree returns the undirected degree plus self-loops.
// Returns ErrKindMismatch on a Directed graph. Complexity: O(1).
func (g *Graph) UndirectedDegree(key string) (int, error) {
	return g.degree(key, degUndirected, true)
}

// UndirectedDegreeWithoutSelfLoops returns the undirected degree,
// ignoring self-loops. Complexity: O(1).
func (g *Graph) UndirectedDegreeWithoutSelfLoops(key string) (int, error) {
	return g.degree(key, degUndirected, false)
}

// degree is the single implementation behind every public variant.
func (g *Graph) degree(key string, kind degreeKind, loops bool) (int, error) {
	n, ok := g.nodes[key]
	if !ok {
		return 0, ErrNodeNotFound
	}
	var d int
	switch kind {
	case degAll:
		d = n.inDeg + n.outDeg + n.undirDeg
	case degIn:
		if g.typ == Undirected {
			return 0, ErrKindMismatch
		}
		d = n.inDeg
	case degOut:
		if g.typ == Undirected {
			return 0, ErrKindMismatch
		}
		d = n.outDeg
	case degDirected:
		if g.typ == Undirected {
			return 0, ErrKindMismatch
		}
		d = n.inDeg + n.outDeg
	case degUndirected:
		if g.typ == Directed {
			return 0, ErrKindMismatch
		}
		d = n.undirDeg
	}
	if loops {
		d += n.selfLoops
	}
	return d, nil
}
