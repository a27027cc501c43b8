package sweep

import (
	"fmt"
	"math"
	"strings"
)

// Graph is the result of a sweep. Edges of vertices refer to sections by their index in
// Sections, and to vertices by their index in Vertices. A Graph is not shared with the sweep
// that built it.
type Graph struct {
	Vertices []Vertex
	Sections []Section
}

// Stats are counts describing a graph.
type Stats struct {
	Vertices  int
	Sections  int
	Isolated  int // vertices without sections
	MaxDegree int
}

// Stats returns the number of vertices and sections in the graph.
func (g *Graph) Stats() Stats {
	st := Stats{
		Vertices: len(g.Vertices),
		Sections: len(g.Sections),
	}
	for _, v := range g.Vertices {
		if v.Degree() == 0 {
			st.Isolated++
		}
		st.MaxDegree = max(st.MaxDegree, v.Degree())
	}
	return st
}

// Start returns the index of the vertex where section i starts in the direction of its path.
func (g *Graph) Start(i int) int {
	for vi, v := range g.Vertices {
		for _, e := range v.Exits {
			if e.Section == i {
				return vi
			}
		}
	}
	return -1
}

// SectionCurve returns the part of the curve covered by section i, in the direction of its path.
func (g *Graph) SectionCurve(ps Paths, i int) Curve {
	s := g.Sections[i]
	return ps.Curve(s.Curve).Portion(math.Min(s.F, s.T), math.Max(s.F, s.T))
}

// SectionsToPaths returns every section as a separate path, in the direction of its source path.
func (g *Graph) SectionsToPaths(ps Paths) Paths {
	out := make(Paths, 0, len(g.Sections))
	for i := range g.Sections {
		c := g.SectionCurve(ps, i)
		p0 := c.Eval(0.0)
		out = append(out, NewPath(p0.X, p0.Y).Append(c))
	}
	return out
}

// String lists every vertex with its position and the vertices at the other end of the
// sections entering and exiting it.
func (g *Graph) String() string {
	sb := strings.Builder{}
	for i, v := range g.Vertices {
		fmt.Fprintf(&sb, "%d %v [", i, v.Point)
		for _, e := range v.Enters {
			fmt.Fprintf(&sb, "%d, ", e.Other)
		}
		for _, e := range v.Exits {
			fmt.Fprintf(&sb, "%d, ", e.Other)
		}
		sb.WriteString("]\n")
	}
	for i, s := range g.Sections {
		fmt.Fprintf(&sb, "%d %v %v\n", i, s, s.Windings)
	}
	return sb.String()
}
