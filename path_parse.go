package sweep

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// MustParseSVGPath parses an SVG path data string and panics if it fails.
func MustParseSVGPath(s string) Paths {
	ps, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return ps
}

// ParseSVGPath parses an SVG path data string, see https://www.w3.org/TR/SVG2/paths.html. Every subpath, started by a MoveTo command, becomes a separate path.
func ParseSVGPath(s string) (Paths, error) {
	return parseSVGPath([]byte(s))
}

// ReadSVGD reads raw SVG path data as stored in .svgd files.
func ReadSVGD(r io.Reader) (Paths, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseSVGPath(bytes.TrimSpace(b))
}

type pathParser struct {
	path []byte
	i    int
}

func (z *pathParser) num() (float64, error) {
	z.i += skipCommaWhitespace(z.path[z.i:])
	f, n := strconv.ParseFloat(z.path[z.i:])
	if n == 0 {
		return 0.0, fmt.Errorf("bad path: expected number at position %d", z.i+1)
	}
	z.i += n
	return f, nil
}

func (z *pathParser) nums(fs ...*float64) error {
	for _, f := range fs {
		var err error
		if *f, err = z.num(); err != nil {
			return err
		}
	}
	return nil
}

// flag parses arc flags, which may be written without separators.
func (z *pathParser) flag() (bool, error) {
	z.i += skipCommaWhitespace(z.path[z.i:])
	if z.i < len(z.path) && (z.path[z.i] == '0' || z.path[z.i] == '1') {
		z.i++
		return z.path[z.i-1] == '1', nil
	}
	return false, fmt.Errorf("bad path: expected flag at position %d", z.i+1)
}

func parseSVGPath(path []byte) (Paths, error) {
	z := &pathParser{path: path}
	ps := Paths{}
	var p *Path
	start := Point{}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // control points
	for {
		z.i += skipCommaWhitespace(z.path[z.i:])
		if len(z.path) <= z.i {
			break
		}

		cmd := prevCmd
		if c := z.path[z.i]; 'A' <= c && c <= 'z' {
			cmd = c
			z.i++
		} else if prevCmd == 0 {
			return nil, fmt.Errorf("bad path: path must start with command")
		} else if prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("bad path: unexpected number after close at position %d", z.i+1)
		}

		pos := start
		if p != nil {
			pos = p.Pos()
		}
		x, y := pos.X, pos.Y
		if cmd != 'M' && cmd != 'm' && (p == nil || p.Closed()) {
			// start a new subpath at the current point
			p = NewPath(x, y)
			ps = append(ps, p)
		}

		switch cmd {
		case 'M', 'm':
			var a, b float64
			if err := z.nums(&a, &b); err != nil {
				return nil, err
			}
			if cmd == 'm' {
				a += x
				b += y
			}
			p = NewPath(a, b)
			ps = append(ps, p)
			start = p.StartPos()
			// subsequent pairs are implicit LineTo commands
			if cmd == 'm' {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z', 'z':
			p.Close()
			start = p.StartPos()
		case 'L', 'l':
			var a, b float64
			if err := z.nums(&a, &b); err != nil {
				return nil, err
			}
			if cmd == 'l' {
				a += x
				b += y
			}
			p.LineTo(a, b)
		case 'H', 'h':
			a, err := z.num()
			if err != nil {
				return nil, err
			}
			if cmd == 'h' {
				a += x
			}
			p.LineTo(a, y)
		case 'V', 'v':
			b, err := z.num()
			if err != nil {
				return nil, err
			}
			if cmd == 'v' {
				b += y
			}
			p.LineTo(x, b)
		case 'C', 'c':
			var a, b, c, d, e, f float64
			if err := z.nums(&a, &b, &c, &d, &e, &f); err != nil {
				return nil, err
			}
			if cmd == 'c' {
				a += x
				b += y
				c += x
				d += y
				e += x
				f += y
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'S', 's':
			var c, d, e, f float64
			if err := z.nums(&c, &d, &e, &f); err != nil {
				return nil, err
			}
			if cmd == 's' {
				c += x
				d += y
				e += x
				f += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'Q', 'q':
			var a, b, c, d float64
			if err := z.nums(&a, &b, &c, &d); err != nil {
				return nil, err
			}
			if cmd == 'q' {
				a += x
				b += y
				c += x
				d += y
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'T', 't':
			var c, d float64
			if err := z.nums(&c, &d); err != nil {
				return nil, err
			}
			if cmd == 't' {
				c += x
				d += y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'A', 'a':
			var rx, ry, rot, f, g float64
			if err := z.nums(&rx, &ry, &rot); err != nil {
				return nil, err
			}
			large, err := z.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := z.flag()
			if err != nil {
				return nil, err
			}
			if err := z.nums(&f, &g); err != nil {
				return nil, err
			}
			if cmd == 'a' {
				f += x
				g += y
			}
			p.ArcTo(rx, ry, rot, large, sweep, f, g)
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d: %w", cmd, z.i, ErrUnsupported)
		}
		prevCmd = cmd
	}

	for i, p := range ps {
		for j, c := range p.curves {
			if !c.Bounds().finite() {
				return nil, fmt.Errorf("path %d curve %d: %w", i, j, ErrNonFinite)
			}
		}
	}
	return ps, nil
}
