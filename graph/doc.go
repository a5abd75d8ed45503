// Package graph provides the data model for matrix-driven shortest-path
// queries: Edge, Node and Graph.
//
// A Graph is built once from a square connection matrix of int64 weights,
// where matrix[i][j] is the cost of the directed edge i→j. Row i becomes
// Node i, whose outgoing edges hold one slot per destination and are kept
// ascending by weight.
//
// The matrix value meaning "no connection" defaults to 0 and may be changed
// with WithNoEdge:
//
//	g, err := graph.New(m)                        // 0 = no edge
//	g, err := graph.New(m, graph.WithNoEdge(-1))  // 0 = zero-cost edge
//
// Slots holding the no-edge value are still present on the Node; solvers
// use Graph.Connected to skip them.
//
// Each Node also carries mutable solver state (tentative distance, visited
// flag, parent id). Graph never interprets it; Reset restores the defaults
// (Infinity, unvisited, Unreached) before a new run.
//
// Errors:
//
//   - ErrNonSquare       – New received a matrix with a row of the wrong length.
//   - ErrNodeOutOfRange  – Node received an id outside [0, Size()).
//   - ErrNegativeWeight  – Validate found a connected edge with negative weight.
package graph
