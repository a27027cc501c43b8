package sweep

import (
	"fmt"
	"math"
	"sort"
)

// Crossing is a point where two curves meet, given by the parameter on either curve.
type Crossing struct {
	TA, TB float64
}

func (z Crossing) String() string {
	return fmt.Sprintf("(%v,%v)", num(z.TA), num(z.TB))
}

// Intersect returns the points where curve a over parameter interval ia meets curve b over
// ib, ordered by TA. Crossings and touching points are both returned. When two lines are
// collinear the endpoints of their overlap are returned.
func Intersect(a Curve, ia Interval, b Curve, ib Interval) []Crossing {
	var zs []Crossing
	if la, ok := a.(Line); ok {
		if lb, ok := b.(Line); ok {
			zs = intersectionLineLine(la, lb)
		} else {
			zs = intersectionLineCurve(la, b)
		}
	} else if lb, ok := b.(Line); ok {
		zs = intersectionLineCurve(lb, a)
		for i := range zs {
			zs[i].TA, zs[i].TB = zs[i].TB, zs[i].TA
		}
	} else {
		zs = intersectionCurveCurve(a, ia, b, ib)
	}

	kept := zs[:0]
	for _, z := range zs {
		if ia.Contains(z.TA) && ib.Contains(z.TB) {
			z.TA = math.Max(ia.Min, math.Min(ia.Max, z.TA))
			z.TB = math.Max(ib.Min, math.Min(ib.Max, z.TB))
			kept = append(kept, z)
		}
	}
	return uniqueCrossings(kept)
}

// uniqueCrossings sorts by TA and removes crossings that are equal within tolerance.
func uniqueCrossings(zs []Crossing) []Crossing {
	const tol = 1e-7
	sort.Slice(zs, func(i, j int) bool {
		if zs[i].TA != zs[j].TA {
			return zs[i].TA < zs[j].TA
		}
		return zs[i].TB < zs[j].TB
	})
	unique := zs[:0]
	for _, z := range zs {
		dup := false
		for _, u := range unique {
			if near(u.TA, z.TA, tol) && near(u.TB, z.TB, tol) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, z)
		}
	}
	return unique
}

// http://www.cs.swan.ac.uk/~cssimon/line_intersection.html
func intersectionLineLine(a, b Line) []Crossing {
	da := a.P1.Sub(a.P0)
	db := b.P1.Sub(b.P0)
	la, lb := da.Length(), db.Length()
	if Equal(la, 0.0) || Equal(lb, 0.0) {
		return nil
	}

	div := da.PerpDot(db)
	if math.Abs(div) <= Epsilon*la*lb {
		// parallel
		if Epsilon*la < math.Abs(da.PerpDot(b.P0.Sub(a.P0)))/la {
			return nil
		}

		// collinear, return the endpoints of the overlap
		var zs []Crossing
		unit := Interval{0.0, 1.0}
		for _, ta := range []float64{0.0, 1.0} {
			if tb := a.Eval(ta).Sub(b.P0).Dot(db) / (lb * lb); unit.Contains(tb) {
				zs = append(zs, Crossing{ta, tb})
			}
		}
		for _, tb := range []float64{0.0, 1.0} {
			if ta := b.Eval(tb).Sub(a.P0).Dot(da) / (la * la); unit.Contains(ta) {
				zs = append(zs, Crossing{ta, tb})
			}
		}
		return zs
	}

	ta := db.PerpDot(a.P0.Sub(b.P0)) / div
	tb := da.PerpDot(a.P0.Sub(b.P0)) / div
	return []Crossing{{ta, tb}}
}

// intersectionLineCurve writes the line as A.X = bias and finds the roots of the curve
// projected on A.
// see https://www.particleincell.com/2013/cubic-line-intersection/
func intersectionLineCurve(l Line, c Curve) []Crossing {
	A := Point{l.P1.Y - l.P0.Y, l.P0.X - l.P1.X}
	if Equal(A.Length(), 0.0) {
		return nil
	}
	bias := l.P0.Dot(A)

	var a, b, cc, d float64
	switch c := c.(type) {
	case Quad:
		b = A.Dot(c.P0.Sub(c.P1.Mul(2.0)).Add(c.P2))
		cc = A.Dot(c.P1.Sub(c.P0).Mul(2.0))
		d = A.Dot(c.P0) - bias
	case Cube:
		a = A.Dot(c.P3.Sub(c.P0).Add(c.P1.Mul(3.0)).Sub(c.P2.Mul(3.0)))
		b = A.Dot(c.P0.Mul(3.0).Sub(c.P1.Mul(6.0)).Add(c.P2.Mul(3.0)))
		cc = A.Dot(c.P1.Mul(3.0).Sub(c.P0.Mul(3.0)))
		d = A.Dot(c.P0) - bias
	default:
		return intersectionCurveCurve(l, Interval{0.0, 1.0}, c, Interval{0.0, 1.0})
	}

	// position along the line by its dominant dimension
	dim := X
	if math.Abs(l.P1.X-l.P0.X) < math.Abs(l.P1.Y-l.P0.Y) {
		dim = Y
	}
	lineParam := func(p Point) float64 {
		return (p.Coord(dim) - l.P0.Coord(dim)) / (l.P1.Coord(dim) - l.P0.Coord(dim))
	}

	scale := math.Max(math.Max(math.Abs(a), math.Abs(b)), math.Max(math.Abs(cc), math.Abs(d)))
	if scale <= Epsilon*A.Length() || math.Abs(a)+math.Abs(b)+math.Abs(cc) <= Epsilon*scale {
		// curve lies on the line, return the endpoints of the overlap
		if Epsilon*A.Length() < math.Abs(d) {
			return nil
		}
		var zs []Crossing
		unit := Interval{0.0, 1.0}
		for _, t := range []float64{0.0, 1.0} {
			if s := lineParam(c.Eval(t)); unit.Contains(s) {
				zs = append(zs, Crossing{s, t})
			}
		}
		for _, s := range []float64{0.0, 1.0} {
			p := l.Eval(s)
			for _, t := range c.Roots(p.Coord(dim), dim) {
				if c.Eval(t).Near(p, 1e-9*(1.0+A.Length())) {
					zs = append(zs, Crossing{s, t})
				}
			}
		}
		return zs
	}

	var zs []Crossing
	for _, t := range polyRoots(a, b, cc, d) {
		zs = append(zs, Crossing{lineParam(c.Eval(t)), t})
	}
	return zs
}

////////////////////////////////////////////////////////////////

const (
	monoIntersectDepth = 24   // number of bisections of both curves together
	monoIntersectTol   = 1e-9 // box size at which bisection stops
)

// intersectionCurveCurve finds crossings of two general curves by bisecting monotone pieces.
// The box spanned by the endpoints of a monotone piece contains the piece, so pieces whose
// boxes do not touch cannot meet. Small pieces are intersected as lines and polished.
func intersectionCurveCurve(a Curve, ia Interval, b Curve, ib Interval) []Crossing {
	if zs, ok := curveOverlap(a, ia, b, ib); ok {
		return zs
	}

	sa, sb := monoSubintervals(a, ia), monoSubintervals(b, ib)
	var zs []Crossing
	for i := 1; i < len(sa); i++ {
		for j := 1; j < len(sb); j++ {
			zs = monoIntersect(zs, a, sa[i-1], sa[i], b, sb[j-1], sb[j], 0)
		}
	}
	for i, z := range zs {
		zs[i].TA, zs[i].TB = polishCrossing(a, z.TA, ia, b, z.TB, ib)
	}
	return zs
}

// curveOverlap returns the endpoints of the overlap when a and b trace the same curve over a
// part of their intervals.
func curveOverlap(a Curve, ia Interval, b Curve, ib Interval) ([]Crossing, bool) {
	var zs []Crossing
	for _, ta := range []float64{ia.Min, ia.Max} {
		if tb, ok := paramOn(b, ib, a.Eval(ta)); ok {
			zs = append(zs, Crossing{ta, tb})
		}
	}
	for _, tb := range []float64{ib.Min, ib.Max} {
		if ta, ok := paramOn(a, ia, b.Eval(tb)); ok {
			zs = append(zs, Crossing{ta, tb})
		}
	}
	zs = uniqueCrossings(zs)
	if len(zs) < 2 {
		return nil, false
	}

	z0, z1 := zs[0], zs[len(zs)-1]
	for _, f := range []float64{0.25, 0.5, 0.75} {
		if _, ok := paramOn(b, ib, a.Eval(z0.TA+f*(z1.TA-z0.TA))); !ok {
			return nil, false
		}
	}
	return zs, true
}

// paramOn returns the parameter within iv where c passes through p.
func paramOn(c Curve, iv Interval, p Point) (float64, bool) {
	tol := 1e-9 * (1.0 + math.Max(math.Abs(p.X), math.Abs(p.Y)))
	for _, d := range []Dim{X, Y} {
		for _, t := range c.Roots(p.Coord(d), d) {
			if iv.Contains(t) && c.Eval(t).Near(p, tol) {
				return math.Max(iv.Min, math.Min(iv.Max, t)), true
			}
		}
	}
	return 0.0, false
}

// monoSubintervals returns the boundaries of the monotone runs of c within iv.
func monoSubintervals(c Curve, iv Interval) []float64 {
	deriv := c.Derivative()
	splits := append(deriv.Roots(0.0, X), deriv.Roots(0.0, Y)...)
	return processSplits(splits, iv.Min, iv.Max)
}

func monoIntersect(zs []Crossing, a Curve, a0, a1 float64, b Curve, b0, b1 float64, depth int) []Crossing {
	if a1 <= a0 || b1 <= b0 {
		return zs
	}
	pa0, pa1 := a.Eval(a0), a.Eval(a1)
	pb0, pb1 := b.Eval(b0), b.Eval(b1)
	ra, rb := RectFromPoints(pa0, pa1), RectFromPoints(pb0, pb1)
	pad := monoIntersectTol
	if ra.X1+pad < rb.X0 || rb.X1+pad < ra.X0 || ra.Y1+pad < rb.Y0 || rb.Y1+pad < ra.Y0 {
		return zs
	}

	extA := math.Max(ra.W(), ra.H())
	extB := math.Max(rb.W(), rb.H())
	if monoIntersectDepth <= depth || extA < monoIntersectTol && extB < monoIntersectTol {
		if ta, tb, ok := chordIntersection(pa0, pa1, pb0, pb1); ok {
			zs = append(zs, Crossing{a0 + ta*(a1-a0), b0 + tb*(b1-b0)})
		}
		return zs
	}

	// bisect the larger piece
	if extB <= extA {
		mid := (a0 + a1) / 2.0
		zs = monoIntersect(zs, a, a0, mid, b, b0, b1, depth+1)
		return monoIntersect(zs, a, mid, a1, b, b0, b1, depth+1)
	}
	mid := (b0 + b1) / 2.0
	zs = monoIntersect(zs, a, a0, a1, b, b0, mid, depth+1)
	return monoIntersect(zs, a, a0, a1, b, mid, b1, depth+1)
}

// chordIntersection intersects two chords, parallel chords do not intersect. A degenerate
// chord intersects when it lies on the other one. Chords at the leaves are tiny, so
// parallelism is measured by the angle between them and not by the area they span.
func chordIntersection(a0, a1, b0, b1 Point) (float64, float64, bool) {
	const tol = 1e-6
	da, db := a1.Sub(a0), b1.Sub(b0)
	if da.IsZero() && db.IsZero() {
		return 0.0, 0.0, a0.Near(b0, monoIntersectTol)
	} else if da.IsZero() || db.IsZero() {
		if a0.Near(b0, monoIntersectTol) {
			return 0.0, 0.0, true
		} else if a0.Near(b1, monoIntersectTol) {
			return 0.0, 1.0, true
		} else if a1.Near(b0, monoIntersectTol) {
			return 1.0, 0.0, true
		}
		return 0.0, 0.0, false
	}

	div := da.PerpDot(db)
	if math.Abs(div) <= Epsilon*da.Length()*db.Length() {
		return 0.0, 0.0, false
	}
	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	if ta < -tol || 1.0+tol < ta || tb < -tol || 1.0+tol < tb {
		return 0.0, 0.0, false
	}
	return ta, tb, true
}

// polishCrossing refines a crossing with Newton's method on A(ta)-B(tb) = 0, keeping the
// parameters within their intervals.
func polishCrossing(a Curve, ta float64, ia Interval, b Curve, tb float64, ib Interval) (float64, float64) {
	da, db := a.Derivative(), b.Derivative()
	r := a.Eval(ta).Sub(b.Eval(tb))
	for i := 0; i < 8 && Epsilon < r.Length(); i++ {
		ja, jb := da.Eval(ta), db.Eval(tb).Neg()
		det := ja.PerpDot(jb)
		if Equal(det, 0.0) {
			break
		}
		ta2 := ta + r.Neg().PerpDot(jb)/det
		tb2 := tb + ja.PerpDot(r.Neg())/det
		ta2 = math.Max(ia.Min, math.Min(ia.Max, ta2))
		tb2 = math.Max(ib.Min, math.Min(ib.Max, tb2))
		r2 := a.Eval(ta2).Sub(b.Eval(tb2))
		if r.Length() <= r2.Length() {
			break
		}
		ta, tb, r = ta2, tb2, r2
	}
	return ta, tb
}
