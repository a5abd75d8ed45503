// Package lvpath computes single-pair shortest paths over small, dense,
// directed graphs given as square connection matrices.
//
// What is inside:
//
//	graph/         — Edge, Node and Graph built from a [][]int64 matrix
//	dijkstra/      — the Dijkstra session: step-wise relaxation and path rebuild
//	cmd/shortpath/ — a command that solves a query described in a TOML file
//
// Quick example:
//
//	g, err := graph.New([][]int64{
//	    {0, 10, 20},
//	    {0,  0,  5},
//	    {0,  0,  0},
//	})
//	path, cost, err := dijkstra.ShortestPath(g, 0, 2) // [0 1 2], 15
//
// A zero in the matrix means "no connection" unless graph.WithNoEdge picks
// another value.
//
//	go get github.com/katalvlaran/lvpath
package lvpath
