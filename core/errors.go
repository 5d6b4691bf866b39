package core

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by the core wraps exactly one of
// these, so callers can branch on the kind with errors.Is without
// enumerating the specific sentinels.
var (
	// ErrInvalidArgument indicates a malformed call: an empty key or an
	// unknown type/format name.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrNotFound indicates a reference to a node or edge key absent from
	// the respective table.
	ErrNotFound = errors.New("core: not found")

	// ErrUsage indicates a structurally well-formed call that violates a
	// graph-level policy (duplicates, kind mismatch, loop/parallel policy).
	ErrUsage = errors.New("core: usage")
)

// Specific sentinels. Each wraps its kind, so both
// errors.Is(err, ErrDuplicateNode) and errors.Is(err, ErrUsage) hold.
var (
	// ErrEmptyKey rejects the empty string as a node or edge key.
	ErrEmptyKey = fmt.Errorf("%w: empty key", ErrInvalidArgument)

	// ErrUnknownType indicates an unrecognized graph type name.
	ErrUnknownType = fmt.Errorf("%w: unknown graph type", ErrInvalidArgument)

	// ErrNodeNotFound indicates an operation referenced a missing node.
	ErrNodeNotFound = fmt.Errorf("%w: node", ErrNotFound)

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = fmt.Errorf("%w: edge", ErrNotFound)

	// ErrDuplicateNode indicates the node key is already taken.
	ErrDuplicateNode = fmt.Errorf("%w: node key already exists", ErrUsage)

	// ErrDuplicateEdge indicates the edge key is already taken.
	ErrDuplicateEdge = fmt.Errorf("%w: edge key already exists", ErrUsage)

	// ErrKindMismatch indicates an edge kind the graph type cannot hold
	// (e.g. an undirected edge on a Directed graph).
	ErrKindMismatch = fmt.Errorf("%w: edge kind incompatible with graph type", ErrUsage)

	// ErrLoopNotAllowed indicates a self-loop while loops are disabled.
	ErrLoopNotAllowed = fmt.Errorf("%w: self-loops not allowed", ErrUsage)

	// ErrParallelEdge indicates a second edge of the same kind between a
	// pair of nodes on a non-multi graph.
	ErrParallelEdge = fmt.Errorf("%w: parallel edges not allowed", ErrUsage)
)
