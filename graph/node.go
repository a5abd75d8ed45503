package graph

import "sort"

// Node is a vertex of the Graph.
//
// The id and the outgoing edges are fixed at construction. tentative,
// visited and parent belong to the solver: Graph never reads them, and
// Reset restores them to their construction defaults.
type Node struct {
	id        int
	tentative int64
	visited   bool
	parent    int
	edges     []Edge // ascending by Distance
}

// NewNode builds node id from its per-destination weights: weights[j] is
// the cost of id→j. Every entry becomes an Edge, including the ones that
// carry the "no connection" value, and the edges are then sorted
// ascending by weight. Equal weights keep destination order.
//
// Complexity: O(k log k) for k = len(weights).
func NewNode(id int, weights []int64) Node {
	edges := make([]Edge, len(weights))
	for to, w := range weights {
		edges[to] = NewEdge(id, to, w)
	}
	sortEdges(edges)

	return Node{
		id:        id,
		tentative: Infinity,
		parent:    Unreached,
		edges:     edges,
	}
}

// ID returns the node id.
func (n *Node) ID() int { return n.id }

// TentativeDistance returns the best known distance from the start node,
// or Infinity.
func (n *Node) TentativeDistance() int64 { return n.tentative }

// Parent returns the predecessor on the best known path, or Unreached.
func (n *Node) Parent() int { return n.parent }

// Visited reports whether the node has been finalized.
func (n *Node) Visited() bool { return n.visited }

// Degree returns the number of edge slots, one per possible destination.
func (n *Node) Degree() int { return len(n.edges) }

// Edges returns a copy of the outgoing edges, ascending by weight.
func (n *Node) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Edge returns the edge towards node to.
func (n *Node) Edge(to int) (Edge, bool) {
	for _, e := range n.edges {
		if e.to == to {
			return e, true
		}
	}

	return Edge{}, false
}

// SetTentativeDistance records a new best known distance.
func (n *Node) SetTentativeDistance(d int64) { n.tentative = d }

// SetVisited marks the node as finalized.
func (n *Node) SetVisited() { n.visited = true }

// SetUnvisited clears the finalized flag.
func (n *Node) SetUnvisited() { n.visited = false }

// SetParent records the predecessor on the best known path.
func (n *Node) SetParent(id int) { n.parent = id }

// SetEdgeDistance re-weights the edge towards node to and restores the
// ascending order. It reports false if no such edge exists.
func (n *Node) SetEdgeDistance(to int, d int64) bool {
	for i := range n.edges {
		if n.edges[i].to == to {
			n.edges[i].SetDistance(d)
			sortEdges(n.edges)

			return true
		}
	}

	return false
}

// Reset restores the solver-owned fields: Infinity, unvisited, Unreached.
func (n *Node) Reset() {
	n.tentative = Infinity
	n.visited = false
	n.parent = Unreached
}

// sortEdges orders edges ascending by weight, ties by destination id.
func sortEdges(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].distance != edges[j].distance {
			return edges[i].Less(edges[j])
		}

		return edges[i].to < edges[j].to
	})
}
