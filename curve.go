package sweep

import (
	"fmt"
	"math"
)

// Curve is a parametric curve over t in [0,1]. The sweep only reads curves, it never
// modifies or retains them beyond a single call.
type Curve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point

	// Derivative returns the hodograph, the curve of first derivatives.
	Derivative() Curve

	// Roots returns the parameters in [0,1] where the coordinate along dimension d equals
	// v. Curves that are constant along d have no isolated roots and return nil.
	Roots(v float64, d Dim) []float64

	// UnitTangent returns the normalized direction of travel at t.
	UnitTangent(t float64) Point

	// Portion returns the curve between t0 and t1, reversed if t1 < t0.
	Portion(t0, t1 float64) Curve

	// Bounds returns a box containing the curve, for Béziers that is the control polygon.
	Bounds() Rect
}

// unitTangent returns the tangent direction of c at t from its derivatives, using higher
// derivatives where lower ones vanish, and the chord as a last resort.
func unitTangent(c Curve, t float64) Point {
	deriv := c.Derivative()
	for i := 0; i < 3; i++ {
		if dir := deriv.Eval(t); !Equal(dir.Length(), 0.0) {
			return dir.Norm(1.0)
		}
		deriv = deriv.Derivative()
	}
	return c.Eval(1.0).Sub(c.Eval(0.0)).Norm(1.0)
}

// polyRoots returns the roots in [0,1] of the cubic polynomial a*t^3 + b*t^2 + c*t + d.
func polyRoots(a, b, c, d float64) []float64 {
	if a == 0.0 && b == 0.0 && c == 0.0 {
		return nil // constant
	}
	x1, x2, x3 := solveCubicFormula(a, b, c, d)
	return unitRoots(x1, x2, x3)
}

////////////////////////////////////////////////////////////////

// Line is a straight segment from P0 to P1. A line with P0 == P1 is a constant curve.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at t.
func (l Line) Eval(t float64) Point {
	return l.P0.Interpolate(l.P1, t)
}

// Derivative returns the constant direction P1-P0 as a degenerate line.
func (l Line) Derivative() Curve {
	d := l.P1.Sub(l.P0)
	return Line{d, d}
}

// Roots returns where the line crosses v along d.
func (l Line) Roots(v float64, d Dim) []float64 {
	return polyRoots(0.0, 0.0, l.P1.Coord(d)-l.P0.Coord(d), l.P0.Coord(d)-v)
}

// UnitTangent returns the direction of the line.
func (l Line) UnitTangent(t float64) Point {
	return unitTangent(l, t)
}

// Portion returns the line between t0 and t1.
func (l Line) Portion(t0, t1 float64) Curve {
	return Line{l.Eval(t0), l.Eval(t1)}
}

// Bounds returns the bounding box.
func (l Line) Bounds() Rect {
	return RectFromPoints(l.P0, l.P1)
}

func (l Line) String() string {
	return fmt.Sprintf("L(%v %v)", l.P0, l.P1)
}

////////////////////////////////////////////////////////////////

// Quad is a quadratic Bézier with start P0, control point P1 and end P2.
type Quad struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at t.
func (q Quad) Eval(t float64) Point {
	t1 := 1.0 - t
	return q.P0.Mul(t1 * t1).Add(q.P1.Mul(2.0 * t1 * t)).Add(q.P2.Mul(t * t))
}

// Derivative returns the hodograph, which is a line.
func (q Quad) Derivative() Curve {
	return Line{q.P1.Sub(q.P0).Mul(2.0), q.P2.Sub(q.P1).Mul(2.0)}
}

// Roots returns where the curve crosses v along d.
func (q Quad) Roots(v float64, d Dim) []float64 {
	p0, p1, p2 := q.P0.Coord(d), q.P1.Coord(d), q.P2.Coord(d)
	return polyRoots(0.0, p0-2.0*p1+p2, 2.0*(p1-p0), p0-v)
}

// UnitTangent returns the direction of travel at t.
func (q Quad) UnitTangent(t float64) Point {
	return unitTangent(q, t)
}

// Portion returns the curve between t0 and t1 using blossoming.
func (q Quad) Portion(t0, t1 float64) Curve {
	blossom := func(u, v float64) Point {
		a := q.P0.Interpolate(q.P1, u)
		b := q.P1.Interpolate(q.P2, u)
		return a.Interpolate(b, v)
	}
	return Quad{q.Eval(t0), blossom(t0, t1), q.Eval(t1)}
}

// Bounds returns the bounding box of the control polygon.
func (q Quad) Bounds() Rect {
	return RectFromPoints(q.P0, q.P1, q.P2)
}

func (q Quad) String() string {
	return fmt.Sprintf("Q(%v %v %v)", q.P0, q.P1, q.P2)
}

////////////////////////////////////////////////////////////////

// Cube is a cubic Bézier with start P0, control points P1 and P2, and end P3.
type Cube struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at t.
func (c Cube) Eval(t float64) Point {
	t1 := 1.0 - t
	return c.P0.Mul(t1 * t1 * t1).Add(c.P1.Mul(3.0 * t1 * t1 * t)).Add(c.P2.Mul(3.0 * t1 * t * t)).Add(c.P3.Mul(t * t * t))
}

// Derivative returns the hodograph, which is a quadratic Bézier.
func (c Cube) Derivative() Curve {
	return Quad{c.P1.Sub(c.P0).Mul(3.0), c.P2.Sub(c.P1).Mul(3.0), c.P3.Sub(c.P2).Mul(3.0)}
}

// Roots returns where the curve crosses v along d.
func (c Cube) Roots(v float64, d Dim) []float64 {
	p0, p1, p2, p3 := c.P0.Coord(d), c.P1.Coord(d), c.P2.Coord(d), c.P3.Coord(d)
	return polyRoots(-p0+3.0*p1-3.0*p2+p3, 3.0*p0-6.0*p1+3.0*p2, 3.0*(p1-p0), p0-v)
}

// UnitTangent returns the direction of travel at t.
func (c Cube) UnitTangent(t float64) Point {
	return unitTangent(c, t)
}

// Portion returns the curve between t0 and t1 using blossoming.
func (c Cube) Portion(t0, t1 float64) Curve {
	blossom := func(u, v, w float64) Point {
		a := c.P0.Interpolate(c.P1, u)
		b := c.P1.Interpolate(c.P2, u)
		cc := c.P2.Interpolate(c.P3, u)
		a, b = a.Interpolate(b, v), b.Interpolate(cc, v)
		return a.Interpolate(b, w)
	}
	return Cube{c.Eval(t0), blossom(t0, t0, t1), blossom(t0, t1, t1), c.Eval(t1)}
}

// Bounds returns the bounding box of the control polygon.
func (c Cube) Bounds() Rect {
	return RectFromPoints(c.P0, c.P1, c.P2, c.P3)
}

func (c Cube) String() string {
	return fmt.Sprintf("C(%v %v %v %v)", c.P0, c.P1, c.P2, c.P3)
}

////////////////////////////////////////////////////////////////

// arcToCubes approximates an elliptical arc by cubic Béziers of at most 90 degrees each.
// The arc follows SVG semantics, with rot in degrees.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCubes(start Point, rx, ry, rot float64, large, sweep bool, end Point) []Curve {
	if start.Equals(end) {
		return nil
	} else if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return []Curve{Line{start, end}}
	}
	rx, ry = math.Abs(rx), math.Abs(ry)

	phi := rot * math.Pi / 180.0
	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(start.X-end.X)/2.0 + sinphi*(start.Y-end.Y)/2.0
	y1p := -sinphi*(start.X-end.X)/2.0 + cosphi*(start.Y-end.Y)/2.0

	// scale up radii when they are too small
	if lambda := x1p*x1p/rx/rx + y1p*y1p/ry/ry; 1.0 < lambda {
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	coef := math.Sqrt(math.Max(0.0, sq))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (start.X+end.X)/2.0
	cy := sinphi*cxp + cosphi*cyp + (start.Y+end.Y)/2.0

	u := Point{(x1p - cxp) / rx, (y1p - cyp) / ry}
	v := Point{(-x1p - cxp) / rx, (-y1p - cyp) / ry}
	theta0 := math.Atan2(u.Y, u.X)
	delta := math.Atan2(u.PerpDot(v), u.Dot(v))
	if !sweep && 0.0 < delta {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}

	ellipse := func(theta float64) (Point, Point) {
		sin, cos := math.Sincos(theta)
		pos := Point{cx + rx*cos*cosphi - ry*sin*sinphi, cy + rx*cos*sinphi + ry*sin*cosphi}
		deriv := Point{-rx*sin*cosphi - ry*cos*sinphi, -rx*sin*sinphi + ry*cos*cosphi}
		return pos, deriv
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2.0)))
	dtheta := delta / float64(n)
	kappa := 4.0 / 3.0 * math.Tan(dtheta/4.0)
	curves := make([]Curve, 0, n)
	p0, d0 := ellipse(theta0)
	p0 = start
	for i := 1; i <= n; i++ {
		p3, d3 := ellipse(theta0 + float64(i)*dtheta)
		if i == n {
			p3 = end
		}
		curves = append(curves, Cube{p0, p0.Add(d0.Mul(kappa)), p3.Sub(d3.Mul(kappa)), p3})
		p0, d0 = p3, d3
	}
	return curves
}
