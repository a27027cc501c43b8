package sweep

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
)

// matrix is an affine transformation [a c e; b d f].
type matrix [2][3]float64

var identity = matrix{{1.0, 0.0, 0.0}, {0.0, 1.0, 0.0}}

// Mul returns the transformation that applies q first and m second.
func (m matrix) Mul(q matrix) matrix {
	return matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot transforms p.
func (m matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

func (m matrix) IsIdentity() bool {
	return m == identity
}

// transform applies m to all control points, which maps Béziers exactly.
func (p *Path) transform(m matrix) *Path {
	q := NewPath(m.Dot(p.start).X, m.Dot(p.start).Y)
	for _, c := range p.curves {
		switch c := c.(type) {
		case Line:
			q.Append(Line{m.Dot(c.P0), m.Dot(c.P1)})
		case Quad:
			q.Append(Quad{m.Dot(c.P0), m.Dot(c.P1), m.Dot(c.P2)})
		case Cube:
			q.Append(Cube{m.Dot(c.P0), m.Dot(c.P1), m.Dot(c.P2), m.Dot(c.P3)})
		default:
			panic(fmt.Sprintf("bug: cannot transform %T", c))
		}
	}
	q.closed = p.closed
	return q
}

////////////////////////////////////////////////////////////////

type svgParser struct {
	z   *parse.Input
	err error

	ms    []matrix // transformation per open tag
	paths Paths
}

func (svg *svgParser) setErr(format string, args ...interface{}) {
	if svg.err == nil {
		svg.err = parse.NewErrorLexer(svg.z, format, args...)
	}
}

func (svg *svgParser) parseDimension(v string) float64 {
	if len(v) == 0 {
		return 0.0
	}
	f, n := strconv.ParseFloat([]byte(v))
	if n == 0 {
		svg.setErr("bad dimension: %s", v)
		return 0.0
	}
	switch unit := strings.ToLower(strings.TrimSpace(v[n:])); unit {
	case "", "px":
	case "mm":
		f *= 96.0 / 25.4
	case "cm":
		f *= 96.0 / 2.54
	case "in":
		f *= 96.0
	case "pt":
		f *= 96.0 / 72.0
	default:
		svg.setErr("bad dimension unit: %s", v)
	}
	return f
}

func (svg *svgParser) parsePoints(v string) []float64 {
	b := []byte(v)
	vals := []float64{}
	for i := skipCommaWhitespace(b); i < len(b); i += skipCommaWhitespace(b[i:]) {
		val, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			svg.setErr("bad number array: %s", v)
			break
		}
		vals = append(vals, val)
		i += n
	}
	return vals
}

func (svg *svgParser) parseTransform(v string) matrix {
	i, j := 0, 0
	m := identity
	var fun string
	for i < len(v) {
		if v[i] == '(' {
			fun = strings.ToLower(strings.TrimSpace(v[j:i]))
			j = i + 1
		} else if v[i] == ')' {
			d := svg.parsePoints(v[j:i])
			switch fun {
			case "matrix":
				if len(d) != 6 {
					svg.setErr("bad transform matrix")
				} else {
					m = m.Mul(matrix{{d[0], d[2], d[4]}, {d[1], d[3], d[5]}})
				}
			case "translate":
				if len(d) != 1 && len(d) != 2 {
					svg.setErr("bad transform translate")
				} else if len(d) == 1 {
					m = m.Mul(matrix{{1.0, 0.0, d[0]}, {0.0, 1.0, 0.0}})
				} else {
					m = m.Mul(matrix{{1.0, 0.0, d[0]}, {0.0, 1.0, d[1]}})
				}
			case "scale":
				if len(d) != 1 && len(d) != 2 {
					svg.setErr("bad transform scale")
				} else if len(d) == 1 {
					m = m.Mul(matrix{{d[0], 0.0, 0.0}, {0.0, d[0], 0.0}})
				} else {
					m = m.Mul(matrix{{d[0], 0.0, 0.0}, {0.0, d[1], 0.0}})
				}
			case "rotate":
				if len(d) != 1 && len(d) != 3 {
					svg.setErr("bad transform rotate")
				} else {
					sin, cos := math.Sincos(d[0] * math.Pi / 180.0)
					rot := matrix{{cos, -sin, 0.0}, {sin, cos, 0.0}}
					if len(d) == 3 {
						rot = matrix{{1.0, 0.0, d[1]}, {0.0, 1.0, d[2]}}.Mul(rot).Mul(matrix{{1.0, 0.0, -d[1]}, {0.0, 1.0, -d[2]}})
					}
					m = m.Mul(rot)
				}
			case "skewx":
				if len(d) != 1 {
					svg.setErr("bad transform skewX")
				} else {
					m = m.Mul(matrix{{1.0, math.Tan(d[0] * math.Pi / 180.0), 0.0}, {0.0, 1.0, 0.0}})
				}
			case "skewy":
				if len(d) != 1 {
					svg.setErr("bad transform skewY")
				} else {
					m = m.Mul(matrix{{1.0, 0.0, 0.0}, {math.Tan(d[0] * math.Pi / 180.0), 1.0, 0.0}})
				}
			default:
				svg.setErr("bad transform function: %s", fun)
			}
			j = i + 1
		}
		i++
	}
	return m
}

func (svg *svgParser) add(ps ...*Path) {
	m := svg.ms[len(svg.ms)-1]
	for _, p := range ps {
		if !m.IsIdentity() {
			p = p.transform(m)
		}
		svg.paths = append(svg.paths, p)
	}
}

// element converts a shape element into paths.
func (svg *svgParser) element(tag string, attrs map[string]string) {
	switch tag {
	case "path":
		ps, err := ParseSVGPath(attrs["d"])
		if err != nil {
			if svg.err == nil {
				svg.err = fmt.Errorf("path element: %w", err)
			}
			return
		}
		svg.add(ps...)
	case "polygon", "polyline":
		points := svg.parsePoints(attrs["points"])
		if len(points) < 2 {
			return
		}
		p := NewPath(points[0], points[1])
		for i := 2; i+1 < len(points); i += 2 {
			p.LineTo(points[i], points[i+1])
		}
		if tag == "polygon" {
			p.Close()
		}
		svg.add(p)
	case "line":
		x1 := svg.parseDimension(attrs["x1"])
		y1 := svg.parseDimension(attrs["y1"])
		x2 := svg.parseDimension(attrs["x2"])
		y2 := svg.parseDimension(attrs["y2"])
		svg.add(NewPath(x1, y1).LineTo(x2, y2))
	case "rect":
		x := svg.parseDimension(attrs["x"])
		y := svg.parseDimension(attrs["y"])
		w := svg.parseDimension(attrs["width"])
		h := svg.parseDimension(attrs["height"])
		if w <= 0.0 || h <= 0.0 {
			return
		}
		svg.add(NewPath(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close())
	case "circle", "ellipse":
		cx := svg.parseDimension(attrs["cx"])
		cy := svg.parseDimension(attrs["cy"])
		rx, ry := svg.parseDimension(attrs["r"]), 0.0
		if tag == "ellipse" {
			rx, ry = svg.parseDimension(attrs["rx"]), svg.parseDimension(attrs["ry"])
		} else {
			ry = rx
		}
		if rx <= 0.0 || ry <= 0.0 {
			return
		}
		p := NewPath(cx+rx, cy)
		p.ArcTo(rx, ry, 0.0, false, true, cx-rx, cy)
		p.ArcTo(rx, ry, 0.0, false, true, cx+rx, cy)
		svg.add(p.Close())
	}
}

// ParseSVG reads the shapes of an SVG document as paths. Supported are path, polygon,
// polyline, line, rect, circle and ellipse elements, with their transform attributes and
// those of their ancestors. Styles are ignored, every shape is a curve outline.
func ParseSVG(r io.Reader) (Paths, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	svg := svgParser{
		z:  z,
		ms: []matrix{identity},
	}
	root := false
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			} else if svg.err != nil {
				return nil, svg.err
			} else if !root {
				return nil, fmt.Errorf("expected SVG tag")
			}
			for i, p := range svg.paths {
				if !p.Bounds().finite() {
					return nil, fmt.Errorf("path %d: %w", i, ErrNonFinite)
				}
			}
			return svg.paths, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				attrs[string(l.Text())] = string(val)
			}

			tag := string(data[1:])
			if tag == "svg" && !root {
				root = true
			} else if !root {
				return nil, fmt.Errorf("expected SVG tag")
			}

			m := svg.ms[len(svg.ms)-1]
			if transform, ok := attrs["transform"]; ok {
				m = m.Mul(svg.parseTransform(transform))
			}
			svg.ms = append(svg.ms, m)
			svg.element(tag, attrs)

			if tt == xml.StartTagCloseVoidToken {
				svg.ms = svg.ms[:len(svg.ms)-1]
			}
		case xml.EndTagToken:
			if 1 < len(svg.ms) {
				svg.ms = svg.ms[:len(svg.ms)-1]
			}
		}
	}
}
