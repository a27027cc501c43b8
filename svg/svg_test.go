package svg

import (
	"bytes"
	"compress/gzip"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/sweep"
	"github.com/tdewolff/test"
)

func TestWriter(t *testing.T) {
	ps := sweep.MustParseSVGPath("M0 0L1 0L1 1L0 1z")
	g, err := sweep.SweepGraph(ps)
	test.Error(t, err)

	buf := &bytes.Buffer{}
	test.Error(t, Writer(buf, g, ps, nil))
	s := buf.String()
	test.That(t, strings.HasPrefix(s, `<svg version="1.1" width="21" height="21" viewBox="-10 -10 21 21" xmlns="http://www.w3.org/2000/svg">`), s)
	test.That(t, strings.HasSuffix(s, "</svg>"), s)
	test.T(t, strings.Count(s, "<path "), 4)
	test.T(t, strings.Count(s, "<circle "), 4)
	test.T(t, strings.Count(s, "<text "), 0)
	test.T(t, strings.Count(s, `stroke="#0052cc"`), 2) // bottom and left
	test.T(t, strings.Count(s, `stroke="#7e00cc"`), 2) // top and right

	opts := DefaultOptions
	opts.Labels = true
	buf.Reset()
	test.Error(t, Writer(buf, g, ps, &opts))
	test.T(t, strings.Count(buf.String(), "<text "), 4)
}

func TestWriterCompression(t *testing.T) {
	ps := sweep.MustParseSVGPath("M0 0L2 2M0 2L2 0")
	g, err := sweep.SweepGraph(ps)
	test.Error(t, err)

	opts := DefaultOptions
	opts.Compression = gzip.BestSpeed
	buf := &bytes.Buffer{}
	test.Error(t, Writer(buf, g, ps, &opts))

	r, err := gzip.NewReader(buf)
	test.Error(t, err)
	b, err := io.ReadAll(r)
	test.Error(t, err)
	test.That(t, strings.HasPrefix(string(b), "<svg "))
	test.T(t, strings.Count(string(b), "<path "), 4)
	test.T(t, strings.Count(string(b), "<circle "), 5)
}

func TestWriterNonFinite(t *testing.T) {
	g := &sweep.Graph{Vertices: []sweep.Vertex{{Point: sweep.Point{X: math.Inf(1)}}}}
	err := Writer(io.Discard, g, sweep.Paths{}, nil)
	test.That(t, err != nil)
}

func TestPathData(t *testing.T) {
	var tests = []struct {
		c        sweep.Curve
		expected string
	}{
		{sweep.Line{P0: sweep.Point{X: 0, Y: 0}, P1: sweep.Point{X: 1, Y: 2}}, "M0 0L1 2"},
		{sweep.Quad{P0: sweep.Point{X: 0, Y: 0}, P1: sweep.Point{X: 1, Y: 2}, P2: sweep.Point{X: 2, Y: 0}}, "M0 0Q1 2 2 0"},
		{sweep.Cube{P0: sweep.Point{X: 0, Y: 0}, P1: sweep.Point{X: 1, Y: 2}, P2: sweep.Point{X: 2, Y: 2}, P3: sweep.Point{X: 3, Y: 0}}, "M0 0C1 2 2 2 3 0"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			test.String(t, pathData(tt.c), tt.expected)
		})
	}
}

func TestWindingColour(t *testing.T) {
	test.String(t, WindingColour([]int{0}), "#0052cc")
	test.String(t, WindingColour([]int{1, 0}), "#7e00cc")
	test.String(t, WindingColour([]int{0, -1}), "#00cc76")
	test.String(t, hsl(0.0, 1.0, 0.5), "#ff0000")
	test.String(t, hsl(0.5, 1.0, 0.5), "#00ffff")
}

func TestNum(t *testing.T) {
	test.String(t, num(1.0).String(), "1")
	test.String(t, num(-2.5).String(), "-2.5")
	test.String(t, dec(10.0).String(), "10")
	test.String(t, dec(0.125).String(), ".125")
}
