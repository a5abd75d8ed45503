// Package dijkstra finds the cheapest path between two nodes of a
// graph.Graph with non-negative edge weights.
//
// Overview:
//
//   - A session is created with New(g, start, end) and run with Solve, which
//     returns the node ids of the path from start to end inclusive, or an
//     empty slice if end cannot be reached.
//   - The solver keeps its state on the graph's nodes (tentative distance,
//     visited flag, parent id) and in an "unvisited" working set ordered by
//     tentative distance, ties broken by id.
//   - Edges holding the graph's no-edge value (see graph.WithNoEdge) are
//     skipped during relaxation.
//
// Algorithm:
//
//	SetStart()                    start.dist = 0, start.parent = start
//	current = NextNodeID()
//	while !Finished():
//	    UpdateNeighbours(current) relax edges to unvisited neighbours
//	    MarkVisited(current)      finalize, drop from the unvisited set
//	    current = NextNodeID()    re-sort, take the closest
//	return Solution()             walk parents back from end, reverse
//
// Finished holds once end is finalized or every remaining node is at
// graph.Infinity. The individual steps are exported so callers can drive
// the loop by hand.
//
// Complexity:
//
//   - Time:  O(V² log V), a full re-sort of the unvisited set per step.
//     Intended for small, dense matrix graphs.
//   - Space: O(V) on top of the graph.
//
// Options:
//
//   - WithOnVisit(fn):  called as each node is finalized.
//   - WithOnRelax(fn):  called on each improved tentative distance.
//   - WithMaxSteps(n):  stop after n iterations (panics if n < 0).
//
// Errors (sentinel):
//
//   - ErrNilGraph:              New received a nil graph.
//   - graph.ErrNodeOutOfRange:  start or end is not a node of the graph.
//   - ErrBadMaxSteps:           panic message of WithMaxSteps(n < 0).
//
// Once a session is constructed no errors occur; an unreachable end is a
// normal, empty result. Negative weights are not detected by the solver
// and give undefined results; use graph.Validate beforehand if needed.
//
// Thread safety:
//
//   - A session mutates its graph. Do not run two sessions over the same
//     Graph concurrently, and Reset before solving the graph again.
package dijkstra
