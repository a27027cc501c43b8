package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits written for coordinates.
var Precision = 8

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", Precision, f)
	s = string(minify.Decimal([]byte(s), Precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}

// hsl returns the hex colour for hue, saturation and lightness in [0,1].
func hsl(h, s, l float64) string {
	h -= math.Floor(h)
	c := (1.0 - math.Abs(2.0*l-1.0)) * s
	x := c * (1.0 - math.Abs(math.Mod(h*6.0, 2.0)-1.0))
	m := l - c/2.0

	var r, g, b float64
	switch int(h * 6.0) {
	case 0:
		r, g, b = c, x, 0.0
	case 1:
		r, g, b = x, c, 0.0
	case 2:
		r, g, b = 0.0, c, x
	case 3:
		r, g, b = 0.0, x, c
	case 4:
		r, g, b = x, 0.0, c
	default:
		r, g, b = c, 0.0, x
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(math.Round((r+m)*255.0)), uint8(math.Round((g+m)*255.0)), uint8(math.Round((b+m)*255.0)))
}
