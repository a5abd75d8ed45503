package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxSteps indicates that MaxSteps was set to a negative value.
	ErrBadMaxSteps = errors.New("dijkstra: MaxSteps must be non-negative")
)

// NoNode is returned by NextNodeID once every node has been finalized.
const NoNode = -1

// Options configures a Dijkstra session.
//
// OnVisit  – called after a node is finalized, with its id and distance.
// OnRelax  – called after an edge improves a neighbour: from, to and the
// new tentative distance of to.
// MaxSteps – caps the number of main-loop iterations. 0 means no cap.
type Options struct {
	OnVisit  func(id int, dist int64)
	OnRelax  func(from, to int, dist int64)
	MaxSteps int
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithOnVisit registers a callback to run whenever a node is finalized.
func WithOnVisit(fn func(id int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback to run on every successful relaxation.
func WithOnRelax(fn func(from, to int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithMaxSteps stops Solve after n main-loop iterations. A session stopped
// early reports the path only if the end node was already reached.
// Panics with ErrBadMaxSteps if n < 0.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxSteps.Error())
		}
		o.MaxSteps = n
	}
}

// DefaultOptions returns an Options struct with no-op hooks and no step cap.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(int, int64) {},
		OnRelax:  func(int, int, int64) {},
		MaxSteps: 0,
	}
}
