package dijkstra

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvpath/graph"
)

// Dijkstra is a single-pair shortest-path session over one Graph.
//
// The session owns the solver state stored on the graph's nodes for as long
// as it runs. That state is left in place after Solve returns, so callers can
// inspect distances and parents; call Reset before solving again.
type Dijkstra struct {
	g         *graph.Graph
	start     int
	end       int
	unvisited []int // ids not yet finalized, by (tentative distance, id)
	steps     int
	options   Options
}

// New prepares a session that searches g for the cheapest path start→end.
// Every node is reset to unvisited and the unvisited set holds all ids in
// ascending order.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - graph.ErrNodeOutOfRange (wrapped) if start or end is not a node of g.
func New(g *graph.Graph, start, end int, opts ...Option) (*Dijkstra, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, err := g.Node(start); err != nil {
		return nil, fmt.Errorf("dijkstra: start: %w", err)
	}
	if _, err := g.Node(end); err != nil {
		return nil, fmt.Errorf("dijkstra: end: %w", err)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Dijkstra{
		g:       g,
		start:   start,
		end:     end,
		options: cfg,
	}
	d.Reset()

	return d, nil
}

// Reset marks every node unvisited, clears distances and parents, and
// rebuilds the unvisited set.
func (d *Dijkstra) Reset() {
	d.g.Reset()
	d.steps = 0
	d.unvisited = make([]int, d.g.Size())
	for id := range d.unvisited {
		d.unvisited[id] = id
	}
	d.sortUnvisited()
}

// SetStart gives the start node distance 0 and makes it its own parent,
// which marks it as the origin of every path.
func (d *Dijkstra) SetStart() {
	n := d.node(d.start)
	n.SetTentativeDistance(0)
	n.SetParent(d.start)
}

// Solve runs the search to completion and returns the path start→end, or
// an empty slice if end is unreachable.
//
// Each iteration relaxes the edges of the current node, finalizes it, and
// selects the unvisited node with the smallest tentative distance.
//
// Complexity: O(V² log V) time, O(V) extra space.
func (d *Dijkstra) Solve() []int {
	d.SetStart()
	current := d.NextNodeID()
	for current != NoNode && !d.Finished() {
		if d.options.MaxSteps > 0 && d.steps >= d.options.MaxSteps {
			break
		}
		d.UpdateNeighbours(current)
		d.MarkVisited(current)
		d.steps++
		current = d.NextNodeID()
	}

	return d.Solution()
}

// UpdateNeighbours relaxes every connected edge leaving id towards an
// unvisited node. A neighbour is updated only on a strict improvement.
func (d *Dijkstra) UpdateNeighbours(id int) {
	n := d.node(id)
	base := n.TentativeDistance()
	if base == graph.Infinity {
		return
	}

	for _, e := range n.Edges() {
		if !d.g.Connected(e) {
			continue
		}
		next := d.node(e.To())
		if next.Visited() {
			continue
		}

		candidate := add(base, e.Distance())
		if candidate >= next.TentativeDistance() {
			continue
		}
		next.SetTentativeDistance(candidate)
		next.SetParent(id)
		d.options.OnRelax(id, e.To(), candidate)
	}
}

// MarkVisited finalizes id and drops it from the unvisited set.
func (d *Dijkstra) MarkVisited(id int) {
	n := d.node(id)
	n.SetVisited()
	for i, u := range d.unvisited {
		if u == id {
			d.unvisited = append(d.unvisited[:i], d.unvisited[i+1:]...)
			break
		}
	}
	d.options.OnVisit(id, n.TentativeDistance())
}

// NextNodeID re-sorts the unvisited set and returns its closest node, or
// NoNode if the set is empty.
func (d *Dijkstra) NextNodeID() int {
	d.sortUnvisited()
	if len(d.unvisited) == 0 {
		return NoNode
	}

	return d.unvisited[0]
}

// Finished reports whether the search is over: the end node is finalized,
// or nothing left in the unvisited set is reachable from start.
func (d *Dijkstra) Finished() bool {
	if d.node(d.end).Visited() {
		return true
	}
	for _, id := range d.unvisited {
		if d.node(id).TentativeDistance() != graph.Infinity {
			return false
		}
	}

	return true
}

// Solution walks the parent links back from end and returns the path in
// start→end order. It is empty if end was never reached.
func (d *Dijkstra) Solution() []int {
	id := d.end
	if d.node(id).Parent() == graph.Unreached {
		return []int{}
	}

	// A valid parent chain visits each node at most once.
	path := make([]int, 0, d.g.Size())
	for len(path) < d.g.Size() {
		path = append(path, id)
		if id == d.start {
			break
		}
		id = d.node(id).Parent()
		if id == graph.Unreached {
			return []int{}
		}
	}
	if path[len(path)-1] != d.start {
		return []int{}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Unvisited returns the ids not yet finalized, in their current order.
func (d *Dijkstra) Unvisited() []int {
	out := make([]int, len(d.unvisited))
	copy(out, d.unvisited)

	return out
}

// Distance returns the tentative distance of the end node: the path cost
// once Solve has finished, graph.Infinity if end is unreachable.
func (d *Dijkstra) Distance() int64 { return d.node(d.end).TentativeDistance() }

// Steps returns the number of main-loop iterations run since the last Reset.
func (d *Dijkstra) Steps() int { return d.steps }

// Graph returns the graph under search.
func (d *Dijkstra) Graph() *graph.Graph { return d.g }

// Start returns the start node id.
func (d *Dijkstra) Start() int { return d.start }

// End returns the end node id.
func (d *Dijkstra) End() int { return d.end }

// ShortestPath solves a single query over g and returns the path and its
// cost. The cost is graph.Infinity and the path empty if end is unreachable.
// The graph's solver state is reset first and left in its final state.
func ShortestPath(g *graph.Graph, start, end int, opts ...Option) ([]int, int64, error) {
	d, err := New(g, start, end, opts...)
	if err != nil {
		return nil, 0, err
	}
	path := d.Solve()

	return path, d.Distance(), nil
}

// node resolves an id already known to be in range.
func (d *Dijkstra) node(id int) *graph.Node {
	n, err := d.g.Node(id)
	if err != nil {
		panic(fmt.Sprintf("dijkstra: %v", err))
	}

	return n
}

// sortUnvisited orders the unvisited set by tentative distance, ties by id.
func (d *Dijkstra) sortUnvisited() {
	sort.SliceStable(d.unvisited, func(i, j int) bool {
		di := d.node(d.unvisited[i]).TentativeDistance()
		dj := d.node(d.unvisited[j]).TentativeDistance()
		if di != dj {
			return di < dj
		}

		return d.unvisited[i] < d.unvisited[j]
	})
}

// add returns a+b, saturating at graph.Infinity.
func add(a, b int64) int64 {
	if b > 0 && a > graph.Infinity-b {
		return graph.Infinity
	}

	return a + b
}
