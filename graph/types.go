package graph

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrNonSquare indicates that the connection matrix has a row whose
	// length differs from the number of rows.
	ErrNonSquare = errors.New("graph: connection matrix is not square")

	// ErrNodeOutOfRange indicates a node id outside [0, Size()).
	ErrNodeOutOfRange = errors.New("graph: node id out of range")

	// ErrNegativeWeight is reported by Validate for a connected edge with a
	// negative weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

const (
	// Infinity is the tentative distance of a node no path has reached yet.
	Infinity int64 = math.MaxInt64

	// Unreached is the parent id of a node no path has reached yet.
	Unreached = -1

	// DefaultNoEdge is the matrix value that means "no connection" unless
	// overridden with WithNoEdge.
	DefaultNoEdge int64 = 0
)

// Options configures how a connection matrix is turned into a Graph.
//
// NoEdge – matrix value denoting the absence of a connection. Edges holding
// this value are still materialized on their Node, the solver skips them.
type Options struct {
	NoEdge int64
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithNoEdge sets the matrix value that marks a missing connection.
// Use a value that never appears in the matrix (for example -1) to make
// zero a legitimate zero-cost edge.
func WithNoEdge(w int64) Option {
	return func(o *Options) {
		o.NoEdge = w
	}
}

// DefaultOptions returns the options used when New receives none.
//
// Defaults:
//   - NoEdge: DefaultNoEdge (zero means "no connection").
func DefaultOptions() Options {
	return Options{
		NoEdge: DefaultNoEdge,
	}
}
