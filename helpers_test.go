package sweep

import (
	"math"
	"math/rand/v2"
	"slices"
)

func RandomPath(rng *rand.Rand, n int, closed bool) *Path {
	p := NewPath(rng.NormFloat64(), rng.NormFloat64())
	for i := 0; i < n; i++ {
		switch rng.IntN(3) {
		case 0:
			p.LineTo(rng.NormFloat64(), rng.NormFloat64())
		case 1:
			p.QuadTo(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		case 2:
			p.CubeTo(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		}
	}
	if closed {
		p.Close()
	}
	return p
}

// Polygon returns a closed regular polygon with n corners on a circle of radius r.
func Polygon(n int, r float64) *Path {
	p := NewPath(r, 0.0)
	for i := 1; i < n; i++ {
		sin, cos := math.Sincos(2.0 * math.Pi * float64(i) / float64(n))
		p.LineTo(r*cos, r*sin)
	}
	return p.Close()
}

// sectionIntervals returns the sorted parameter intervals of the sections of every curve,
// keyed by the curve's position in the path collection.
func sectionIntervals(secs []Section) map[CurveRef][]Interval {
	m := map[CurveRef][]Interval{}
	for _, s := range secs {
		m[s.Curve] = append(m[s.Curve], s.Interval())
	}
	for _, ivs := range m {
		slices.SortFunc(ivs, func(a, b Interval) int {
			if a.Min < b.Min {
				return -1
			} else if b.Min < a.Min {
				return 1
			}
			return 0
		})
	}
	return m
}

// crossingsBelow counts per path the signed crossings of the curves below p along the line
// through p perpendicular to d. Curves running towards increasing d count +1. The point at
// tself on curve self is skipped. It returns false when the line passes close to p or a
// curve endpoint, or touches a curve.
func crossingsBelow(ps Paths, d Dim, p Point, self CurveRef, tself float64) ([]int, bool) {
	const tol = 1e-6
	o := d.Other()
	ws := make([]int, len(ps))
	for i, path := range ps {
		for j, c := range path.Curves() {
			deriv := c.Derivative()
			for _, t := range c.Roots(p.Coord(d), d) {
				if (CurveRef{i, j}) == self && math.Abs(t-tself) < tol {
					continue
				}
				q, dir := c.Eval(t), deriv.Eval(t).Coord(d)
				if math.Abs(q.Coord(o)-p.Coord(o)) < tol || t < 1e-9 || 1.0-1e-9 < t || math.Abs(dir) < 1e-9 {
					return nil, false
				}
				if q.Coord(o) < p.Coord(o) {
					if 0.0 < dir {
						ws[i]++
					} else {
						ws[i]--
					}
				}
			}
		}
	}
	return ws, true
}

// sectionPolyline samples section i at n+1 points.
func sectionPolyline(g *Graph, ps Paths, i, n int) []Point {
	s := g.Sections[i]
	c, iv := ps.Curve(s.Curve), s.Interval()
	pts := make([]Point, n+1)
	for k := range pts {
		pts[k] = c.Eval(iv.Min + iv.Extent()*float64(k)/float64(n))
	}
	return pts
}

// segmentCrossing returns where segments A and B cross, parallel segments do not cross.
func segmentCrossing(a0, a1, b0, b1 Point) (Point, bool) {
	da, db := a1.Sub(a0), b1.Sub(b0)
	div := da.PerpDot(db)
	if math.Abs(div) <= 1e-9*da.Length()*db.Length() {
		return Point{}, false
	}
	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	if ta < 0.0 || 1.0 < ta || tb < 0.0 || 1.0 < tb {
		return Point{}, false
	}
	return a0.Interpolate(a1, ta), true
}
