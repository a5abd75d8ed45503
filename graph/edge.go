package graph

// Edge is a directed connection From→To with a mutable weight.
// The endpoints are fixed for the lifetime of the edge.
type Edge struct {
	from     int
	to       int
	distance int64
}

// NewEdge returns the edge from→to weighted by distance.
func NewEdge(from, to int, distance int64) Edge {
	return Edge{from: from, to: to, distance: distance}
}

// From returns the source node id.
func (e Edge) From() int { return e.from }

// To returns the destination node id.
func (e Edge) To() int { return e.to }

// Distance returns the edge weight.
func (e Edge) Distance() int64 { return e.distance }

// SetDistance re-weights the edge.
func (e *Edge) SetDistance(d int64) { e.distance = d }

// Less reports whether e has priority over other, i.e. is strictly cheaper.
func (e Edge) Less(other Edge) bool { return e.distance < other.distance }
