package sweep

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
)

// activeContext holds the sections crossing the sweep line, ordered along the perpendicular
// dimension. Entries are arena indices together with the index of their start vertex.
type activeContext struct {
	items []int
	vix   []int

	sections *[]Section
	paths    Paths
	d        Dim
	tol      float64
}

func newActiveContext(sections *[]Section, paths Paths, d Dim, tol float64) *activeContext {
	return &activeContext{
		sections: sections,
		paths:    paths,
		d:        d,
		tol:      tol,
	}
}

// Len returns the number of active sections.
func (c *activeContext) Len() int {
	return len(c.items)
}

// Insert adds the section at arena index i with start vertex v and returns its position.
func (c *activeContext) Insert(i, v int) int {
	k := sort.Search(len(c.items), func(k int) bool {
		return !c.Less(c.items[k], i)
	})
	c.items = slices.Insert(c.items, k, i)
	c.vix = slices.Insert(c.vix, k, v)
	return k
}

// Remove removes the entry at position k.
func (c *activeContext) Remove(k int) {
	c.items = slices.Delete(c.items, k, k+1)
	c.vix = slices.Delete(c.vix, k, k+1)
}

// Less returns true if the section at arena index i lies before the one at index j along the
// perpendicular dimension. Sections that touch are ordered by the direction in which they
// leave the shared point.
func (c *activeContext) Less(i, j int) bool {
	a, b := &(*c.sections)[i], &(*c.sections)[j]
	d, o := c.d, c.d.Other()

	ra, rb := a.Span(o), b.Span(o)
	if ra.Max <= rb.Min {
		return true
	} else if rb.Max <= ra.Min {
		return false
	}

	// perpendicular ranges overlap
	x0 := math.Max(a.FP.Coord(d), b.FP.Coord(d))
	x1 := math.Min(a.TP.Coord(d), b.TP.Coord(d))
	if x0 <= x1+c.tol {
		ta, tb := c.paramAt(a, x0), c.paramAt(b, x0)
		return c.order(a, ta, b, tb, x0, x1)
	}
	return lexoLess(a.FP, b.FP, o)
}

// order compares a at parameter ta with b at tb, both at sweep coordinate x0.
func (c *activeContext) order(a *Section, ta float64, b *Section, tb float64, x0, x1 float64) bool {
	o := c.d.Other()
	ca, cb := c.paths.Curve(a.Curve), c.paths.Curve(b.Curve)
	pa, pb := ca.Eval(ta), cb.Eval(tb)
	if !near(pa.Coord(o), pb.Coord(o), c.tol) {
		return pa.Coord(o) < pb.Coord(o)
	}

	// coincident, order by the trailing endpoints if they lie on opposite sides
	y := (pa.Coord(o) + pb.Coord(o)) / 2.0
	if ea, eb := a.TP.Coord(o)-y, b.TP.Coord(o)-y; ea < -c.tol && c.tol < eb || eb < -c.tol && c.tol < ea {
		return ea < eb
	}

	// tangents pointing forward along the sweep dimension
	ua, ub := leavingTangent(ca, ta, a), leavingTangent(cb, tb, b)
	if ao, bo := ua.Coord(o), ub.Coord(o); !near(ao, bo, Epsilon) {
		return ao < bo
	}

	// equal tangents, sample again at the end of the common range
	if x0+c.tol < x1 {
		pa, pb = ca.Eval(c.paramAt(a, x1)), cb.Eval(c.paramAt(b, x1))
		if !near(pa.Coord(o), pb.Coord(o), c.tol) {
			return pa.Coord(o) < pb.Coord(o)
		}
	}

	// indistinguishable, keep a deterministic order
	if a.Curve.Path != b.Curve.Path {
		return a.Curve.Path < b.Curve.Path
	} else if a.Curve.Curve != b.Curve.Curve {
		return a.Curve.Curve < b.Curve.Curve
	}
	return math.Min(a.F, a.T) < math.Min(b.F, b.T)
}

// paramAt returns the parameter of s where its coordinate along the sweep dimension is x.
// When root finding fails the middle of the section is used.
func (c *activeContext) paramAt(s *Section, x float64) float64 {
	if near(s.FP.Coord(c.d), x, c.tol) {
		return s.F
	} else if near(s.TP.Coord(c.d), x, c.tol) {
		return s.T
	}

	iv := s.Interval()
	for _, t := range c.paths.Curve(s.Curve).Roots(x, c.d) {
		if iv.Contains(t) {
			return t
		}
	}
	Logger().Warn("section root lookup failed, using midpoint", "section", s.String(), "dim", c.d.String(), "at", x)
	return iv.Mid()
}

// leavingTangent returns the unit tangent of c at t pointing from FP towards TP of s, which
// points along increasing sweep coordinate or, for sections along the sweep line, along
// increasing other coordinate.
func leavingTangent(c Curve, t float64, s *Section) Point {
	u := c.UnitTangent(t)
	if s.T < s.F {
		u = u.Neg()
	}
	return u
}

// Print writes the active sections in order.
func (c *activeContext) Print(w io.Writer) {
	for k, i := range c.items {
		fmt.Fprintln(w, k, i, c.vix[k], (*c.sections)[i])
	}
}
