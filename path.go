package sweep

import (
	"fmt"
	"strings"
)

// Path is a connected sequence of curves, the end of each curve is the start of the next.
type Path struct {
	curves []Curve
	start  Point
	pos    Point
	closed bool
}

// NewPath returns an empty path starting at (x,y).
func NewPath(x, y float64) *Path {
	p := &Path{}
	p.MoveTo(x, y)
	return p
}

// Len returns the number of curves.
func (p *Path) Len() int {
	return len(p.curves)
}

// Empty returns true if the path has no curves.
func (p *Path) Empty() bool {
	return len(p.curves) == 0
}

// Closed returns true if the path was closed.
func (p *Path) Closed() bool {
	return p.closed
}

// Curve returns the i-th curve.
func (p *Path) Curve(i int) Curve {
	return p.curves[i]
}

// Curves returns the list of curves, which must not be modified.
func (p *Path) Curves() []Curve {
	return p.curves
}

// StartPos returns the start position of the path.
func (p *Path) StartPos() Point {
	return p.start
}

// Pos returns the current position of the path, which is the end point of the last curve.
func (p *Path) Pos() Point {
	return p.pos
}

// Bounds returns a bounding box of all control points.
func (p *Path) Bounds() Rect {
	r := RectFromPoints(p.start)
	for _, c := range p.curves {
		r = r.Add(c.Bounds())
	}
	return r
}

// Append adds a curve to the path, it should start at the current position.
func (p *Path) Append(c Curve) *Path {
	p.curves = append(p.curves, c)
	p.pos = c.Eval(1.0)
	return p
}

// MoveTo sets the start position of the path. It must be called before adding curves.
func (p *Path) MoveTo(x, y float64) *Path {
	if !p.Empty() {
		panic("bug: MoveTo on non-empty path")
	}
	p.start = Point{x, y}
	p.pos = p.start
	return p
}

// LineTo adds a linear segment to (x,y).
func (p *Path) LineTo(x, y float64) *Path {
	return p.Append(Line{p.pos, Point{x, y}})
}

// QuadTo adds a quadratic Bézier with control point (cpx,cpy) to (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) *Path {
	return p.Append(Quad{p.pos, Point{cpx, cpy}, Point{x, y}})
}

// CubeTo adds a cubic Bézier with control points (cpx1,cpy1) and (cpx2,cpy2) to (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) *Path {
	return p.Append(Cube{p.pos, Point{cpx1, cpy1}, Point{cpx2, cpy2}, Point{x, y}})
}

// ArcTo adds an elliptical arc with radii rx and ry, with rot the counter clockwise rotation in degrees, and large and sweep the SVG arc flags. The arc is approximated by cubic Béziers.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *Path {
	for _, c := range arcToCubes(p.pos, rx, ry, rot, large, sweep, Point{x, y}) {
		p.Append(c)
	}
	return p
}

// Close closes the path with a line segment back to the start, if it isn't there already.
func (p *Path) Close() *Path {
	if !p.pos.Equals(p.start) {
		p.LineTo(p.start.X, p.start.Y)
	}
	p.closed = true
	return p
}

func (p *Path) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "M%v %v", num(p.start.X), num(p.start.Y))
	for _, c := range p.curves {
		switch c := c.(type) {
		case Line:
			fmt.Fprintf(&sb, "L%v %v", num(c.P1.X), num(c.P1.Y))
		case Quad:
			fmt.Fprintf(&sb, "Q%v %v %v %v", num(c.P1.X), num(c.P1.Y), num(c.P2.X), num(c.P2.Y))
		case Cube:
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(c.P1.X), num(c.P1.Y), num(c.P2.X), num(c.P2.Y), num(c.P3.X), num(c.P3.Y))
		default:
			fmt.Fprintf(&sb, " %v", c)
		}
	}
	if p.closed {
		sb.WriteString("z")
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// Paths is a collection of paths. Each path is a source for the winding vectors.
type Paths []*Path

// Curve returns the curve that ref points to.
func (ps Paths) Curve(ref CurveRef) Curve {
	return ps[ref.Path].curves[ref.Curve]
}

// Bounds returns a bounding box of all control points of all paths.
func (ps Paths) Bounds() Rect {
	var r Rect
	for i, p := range ps {
		if i == 0 {
			r = p.Bounds()
		} else {
			r = r.Add(p.Bounds())
		}
	}
	return r
}

// NumCurves returns the total number of curves.
func (ps Paths) NumCurves() int {
	n := 0
	for _, p := range ps {
		n += p.Len()
	}
	return n
}

type num float64

func (f num) String() string {
	return fmt.Sprintf("%g", float64(f))
}
