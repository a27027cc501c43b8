package sweep

import (
	"fmt"
	"math"
)

// Epsilon is the numerical tolerance used for parameters and polynomial roots.
const Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// near returns true if a and b are equal with tolerance tol.
func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

////////////////////////////////////////////////////////////////

// Dim is a coordinate dimension.
type Dim int

// See Dim.
const (
	X Dim = iota
	Y
)

// Other returns the perpendicular dimension.
func (d Dim) Other() Dim {
	return 1 - d
}

func (d Dim) String() string {
	if d == X {
		return "X"
	}
	return "Y"
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// Coord returns the coordinate along dimension d.
func (p Point) Coord(d Dim) float64 {
	if d == X {
		return p.X
	}
	return p.Y
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// IsFinite returns true if neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Near returns true if the distance between P and Q is at most tol.
func (p Point) Near(q Point, tol float64) bool {
	return p.Sub(q).Length() <= tol
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Div divides x and y by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Norm normalized OP to be of certain length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if Equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

// lexoLess orders points along dimension d first and along the other dimension second.
func lexoLess(a, b Point, d Dim) bool {
	ad, bd := a.Coord(d), b.Coord(d)
	return ad < bd || ad == bd && a.Coord(d.Other()) < b.Coord(d.Other())
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned bounding box.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectFromPoints returns the smallest rectangle containing all points.
func RectFromPoints(ps ...Point) Rect {
	if len(ps) == 0 {
		return Rect{}
	}
	r := Rect{ps[0].X, ps[0].Y, ps[0].X, ps[0].Y}
	for _, p := range ps[1:] {
		r = r.AddPoint(p)
	}
	return r
}

// AddPoint extends the rectangle to contain p.
func (r Rect) AddPoint(p Point) Rect {
	r.X0 = math.Min(r.X0, p.X)
	r.Y0 = math.Min(r.Y0, p.Y)
	r.X1 = math.Max(r.X1, p.X)
	r.Y1 = math.Max(r.Y1, p.Y)
	return r
}

// Add returns the union of both rectangles.
func (r Rect) Add(q Rect) Rect {
	r.X0 = math.Min(r.X0, q.X0)
	r.Y0 = math.Min(r.Y0, q.Y0)
	r.X1 = math.Max(r.X1, q.X1)
	r.Y1 = math.Max(r.Y1, q.Y1)
	return r
}

// W returns the width.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// Span returns the interval covered along dimension d.
func (r Rect) Span(d Dim) Interval {
	if d == X {
		return Interval{r.X0, r.X1}
	}
	return Interval{r.Y0, r.Y1}
}

func (r Rect) finite() bool {
	return isFinite(r.X0) && isFinite(r.Y0) && isFinite(r.X1) && isFinite(r.Y1)
}

// Touches returns true if both rectangles overlap or touch.
func (r Rect) Touches(q Rect) bool {
	return r.X0 <= q.X1 && q.X0 <= r.X1 && r.Y0 <= q.Y1 && q.Y0 <= r.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X0, r.Y0, r.X1, r.Y1)
}

////////////////////////////////////////////////////////////////

// Interval is a closed range of values, Min <= Max.
type Interval struct {
	Min, Max float64
}

// NewInterval returns the interval spanned by a and b in any order.
func NewInterval(a, b float64) Interval {
	if b < a {
		a, b = b, a
	}
	return Interval{a, b}
}

// Contains returns true if v lies in the interval with tolerance Epsilon.
func (i Interval) Contains(v float64) bool {
	return i.Min-Epsilon <= v && v <= i.Max+Epsilon
}

// Intersects returns true if both intervals overlap or touch.
func (i Interval) Intersects(j Interval) bool {
	return i.Min <= j.Max && j.Min <= i.Max
}

// Mid returns the middle of the interval.
func (i Interval) Mid() float64 {
	return (i.Min + i.Max) / 2.0
}

// Extent returns the length of the interval.
func (i Interval) Extent() float64 {
	return i.Max - i.Min
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g, %g]", i.Min, i.Max)
}

////////////////////////////////////////////////////////////////

// Numerically stable quadratic formula, lowest root is returned first. Roots that do not
// exist are NaN.
// see https://math.stackexchange.com/a/2007723
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			// constant term only, either no solutions or all x satisfy the solution
			return math.NaN(), math.NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, math.NaN()
	}

	if c == 0.0 {
		// no constant term, one solution at zero and one from solving linearly
		x1, x2 := 0.0, -b/a
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		return x1, x2
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// Avoid catastrophic cancellation, which occurs when we subtract two nearly equal numbers and causes a large error
	// this can be the case when 4*a*c is small so that sqrt(discriminant) -> b, and the sign of b and in front of the radical are the same
	// instead we calculate x where b and the radical have different signs, and then use this result in the analytical equivalent
	// of the formula, called the Citardauq Formula.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		// apply sign of b
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}

// solveCubicFormula returns the real roots of a*x^3 + b*x^2 + c*x + d = 0 in ascending
// order, roots that do not exist are NaN and trail the existing ones.
// see https://momentsingraphics.de/CubicRoots.html
func solveCubicFormula(a, b, c, d float64) (float64, float64, float64) {
	const oneThird = 1.0 / 3.0
	sb := b / a * oneThird
	sc := c / a * oneThird
	sd := d / a
	if a == 0.0 || !isFinite(sb) || !isFinite(sc) || !isFinite(sd) {
		// cubic term vanishes
		x1, x2 := solveQuadraticFormula(b, c, d)
		return x1, x2, math.NaN()
	}

	d0 := -sb*sb + sc
	d1 := -sc*sb + sd
	d2 := sb*sd - sc*sc
	disc := 4.0*d0*d2 - d1*d1
	de := -2.0*sb*d0 + d1
	if disc < 0.0 {
		// one real root
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		return math.Cbrt(r+sq) + math.Cbrt(r-sq) - sb, math.NaN(), math.NaN()
	} else if disc == 0.0 {
		// one single and one double root
		t := math.Copysign(math.Sqrt(-d0), de)
		x1, x2 := t-sb, -2.0*t-sb
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		if x1 == x2 {
			return x1, math.NaN(), math.NaN()
		}
		return x1, x2, math.NaN()
	}

	// three distinct real roots
	theta := math.Atan2(math.Sqrt(disc), -de) * oneThird
	sin, cos := math.Sincos(theta)
	ss3 := sin * math.Sqrt(3.0)
	t := 2.0 * math.Sqrt(-d0)
	x1 := t*cos - sb
	x2 := t*0.5*(-cos+ss3) - sb
	x3 := t*0.5*(-cos-ss3) - sb
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if x3 < x2 {
		x2, x3 = x3, x2
		if x2 < x1 {
			x1, x2 = x2, x1
		}
	}
	return x1, x2, x3
}

// unitRoots keeps the finite roots that lie in [0,1] with tolerance Epsilon, clamping them.
func unitRoots(roots ...float64) []float64 {
	var ts []float64
	for _, t := range roots {
		if math.IsNaN(t) || t < -Epsilon || 1.0+Epsilon < t {
			continue
		}
		ts = append(ts, math.Max(0.0, math.Min(1.0, t)))
	}
	return ts
}
