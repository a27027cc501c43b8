package sweep

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"
)

// Edge is an adjacency record of a vertex: the section and the vertex at its other end.
type Edge struct {
	Section int
	Other   int
}

func (e Edge) String() string {
	return fmt.Sprintf("%d→%d", e.Section, e.Other)
}

// Vertex is a point where sections start or end. Enters are the sections that arrive at the
// vertex and Exits are the sections that leave it, in the direction of their paths.
type Vertex struct {
	Point
	Enters []Edge
	Exits  []Edge
}

// Degree returns the number of incident sections.
func (v Vertex) Degree() int {
	return len(v.Enters) + len(v.Exits)
}

////////////////////////////////////////////////////////////////

// vertexStore merges points within tolerance into vertices. Vertices are never removed and
// are referred to by their index.
type vertexStore struct {
	vertices []Vertex
	tol      float64

	// optional spatial index, points outside its bounds go to overflow
	qt       *quadtree.Quadtree
	overflow []int
}

type vertexPointer struct {
	p     orb.Point
	index int
}

func (v vertexPointer) Point() orb.Point {
	return v.p
}

func newVertexStore(tol float64) *vertexStore {
	return &vertexStore{
		tol: tol,
	}
}

// newSpatialVertexStore indexes vertices in a quadtree covering bounds.
func newSpatialVertexStore(tol float64, bounds Rect) *vertexStore {
	pad := tol + 1.0
	b := orb.Bound{
		Min: orb.Point{bounds.X0 - pad, bounds.Y0 - pad},
		Max: orb.Point{bounds.X1 + pad, bounds.Y1 + pad},
	}
	return &vertexStore{
		tol: tol,
		qt:  quadtree.New(b),
	}
}

// Len returns the number of vertices.
func (s *vertexStore) Len() int {
	return len(s.vertices)
}

// Lookup returns the index of the vertex within tolerance of p, creating it if none exists.
func (s *vertexStore) Lookup(p Point) int {
	if i, ok := s.find(p); ok {
		return i
	}

	i := len(s.vertices)
	s.vertices = append(s.vertices, Vertex{Point: p})
	if s.qt != nil {
		if err := s.qt.Add(vertexPointer{orb.Point{p.X, p.Y}, i}); err != nil {
			s.overflow = append(s.overflow, i)
		}
	}
	return i
}

func (s *vertexStore) find(p Point) (int, bool) {
	if s.qt == nil {
		for i, v := range s.vertices {
			if v.Point.Near(p, s.tol) {
				return i, true
			}
		}
		return 0, false
	}

	q := orb.Point{p.X, p.Y}
	if nearest := s.qt.Find(q); nearest != nil && planar.Distance(nearest.Point(), q) <= s.tol {
		return nearest.(vertexPointer).index, true
	}
	for _, i := range s.overflow {
		if s.vertices[i].Point.Near(p, s.tol) {
			return i, true
		}
	}
	return 0, false
}

// Connect registers section i running from vertex a to vertex b.
func (s *vertexStore) Connect(i, a, b int) {
	s.vertices[a].Exits = append(s.vertices[a].Exits, Edge{i, b})
	s.vertices[b].Enters = append(s.vertices[b].Enters, Edge{i, a})
}
