package graph

import "fmt"

// Graph is a fixed-topology collection of Nodes built from a square
// connection matrix. Node i carries the edges of matrix row i.
//
// Nodes live in one contiguous array addressed by id; pointers returned by
// Node stay valid for the lifetime of the Graph because the array is never
// resized. A Graph is not safe for concurrent solves.
type Graph struct {
	nodes  []Node
	noEdge int64
}

// New builds a Graph from matrix, where matrix[i][j] is the cost of the
// directed edge i→j. Every row must have exactly len(matrix) entries.
// An empty matrix yields a Graph with no nodes.
//
// Weights are not validated here; see Validate.
//
// Complexity: O(V² log V).
func New(matrix [][]int64, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(matrix)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(row), n)
		}
	}

	g := &Graph{
		nodes:  make([]Node, n),
		noEdge: cfg.NoEdge,
	}
	for i, row := range matrix {
		g.nodes[i] = NewNode(i, row)
	}

	return g, nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) (*Node, error) {
	if id < 0 || id >= len(g.nodes) {
		return nil, fmt.Errorf("%w: id %d, size %d", ErrNodeOutOfRange, id, len(g.nodes))
	}

	return &g.nodes[id], nil
}

// Size returns the number of nodes.
func (g *Graph) Size() int { return len(g.nodes) }

// NoEdge returns the matrix value that marks a missing connection.
func (g *Graph) NoEdge() int64 { return g.noEdge }

// Connected reports whether e is a real connection rather than an empty
// matrix slot.
func (g *Graph) Connected(e Edge) bool { return e.Distance() != g.noEdge }

// Reset restores the solver-owned fields of every node.
func (g *Graph) Reset() {
	for i := range g.nodes {
		g.nodes[i].Reset()
	}
}

// Validate scans every connected edge and fails on the first negative
// weight. New does not call it; solving a graph that fails Validate has
// undefined results.
func (g *Graph) Validate() error {
	for i := range g.nodes {
		for _, e := range g.nodes[i].edges {
			if g.Connected(e) && e.Distance() < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From(), e.To(), e.Distance())
			}
		}
	}

	return nil
}
