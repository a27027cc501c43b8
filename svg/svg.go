// Package svg draws sweep graphs as scalable vector graphics.
package svg

import (
	"compress/gzip"
	"fmt"
	"io"
	"math"

	"github.com/tdewolff/sweep"
)

// Options are the drawing options.
type Options struct {
	Compression  int     // gzip compression level, zero writes plain SVG
	Margin       float64 // around the bounds of the graph
	StrokeWidth  float64
	VertexRadius float64
	Labels       bool // write vertex indices
}

// DefaultOptions are the default drawing options.
var DefaultOptions = Options{
	Margin:       10.0,
	StrokeWidth:  1.0,
	VertexRadius: 2.0,
}

// SVG is a scalable vector graphics writer.
type SVG struct {
	w    io.Writer
	opts *Options
}

// New starts an SVG document showing view, which is extended by the margin.
func New(w io.Writer, view sweep.Rect, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			opts.Compression = -1
		}
		w, _ = gzip.NewWriterLevel(w, opts.Compression)
	}

	m := opts.Margin
	width, height := view.W()+2.0*m, view.H()+2.0*m
	fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="%v %v %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(width), dec(height), dec(view.X0-m), dec(view.Y0-m), dec(width), dec(height))
	return &SVG{
		w:    w,
		opts: opts,
	}
}

// Close finishes and closes the SVG.
func (r *SVG) Close() error {
	_, err := fmt.Fprintf(r.w, "</svg>")
	if r.opts.Compression != 0 {
		if errClose := r.w.(*gzip.Writer).Close(); err == nil { // does not close underlying writer
			err = errClose
		}
	}
	return err
}

// DrawCurve strokes a curve in the given colour.
func (r *SVG) DrawCurve(c sweep.Curve, colour string) {
	fmt.Fprintf(r.w, `<path d="%s" fill="none" stroke="%s" stroke-width="%v"/>`, pathData(c), colour, dec(r.opts.StrokeWidth))
}

// DrawVertex draws a dot with an optional label.
func (r *SVG) DrawVertex(p sweep.Point, label string) {
	fmt.Fprintf(r.w, `<circle cx="%v" cy="%v" r="%v"/>`, num(p.X), num(p.Y), dec(r.opts.VertexRadius))
	if label != "" {
		fmt.Fprintf(r.w, `<text x="%v" y="%v" font-size="%v">%s</text>`, num(p.X+r.opts.VertexRadius), num(p.Y-r.opts.VertexRadius), dec(4.0*r.opts.VertexRadius), label)
	}
}

func pathData(c sweep.Curve) string {
	switch c := c.(type) {
	case sweep.Line:
		return fmt.Sprintf("M%v %vL%v %v", num(c.P0.X), num(c.P0.Y), num(c.P1.X), num(c.P1.Y))
	case sweep.Quad:
		return fmt.Sprintf("M%v %vQ%v %v %v %v", num(c.P0.X), num(c.P0.Y), num(c.P1.X), num(c.P1.Y), num(c.P2.X), num(c.P2.Y))
	case sweep.Cube:
		return fmt.Sprintf("M%v %vC%v %v %v %v %v %v", num(c.P0.X), num(c.P0.Y), num(c.P1.X), num(c.P1.Y), num(c.P2.X), num(c.P2.Y), num(c.P3.X), num(c.P3.Y))
	}
	// approximate unknown curves by a polyline
	const n = 16
	p := c.Eval(0.0)
	s := fmt.Sprintf("M%v %v", num(p.X), num(p.Y))
	for i := 1; i <= n; i++ {
		p = c.Eval(float64(i) / n)
		s += fmt.Sprintf("L%v %v", num(p.X), num(p.Y))
	}
	return s
}

// WindingColour returns the colour for a section, which depends on the sum of its windings.
func WindingColour(windings []int) string {
	sum := 0
	for _, w := range windings {
		sum += w
	}
	return hsl(0.6+0.17*float64(sum), 1.0, 0.4)
}

// Writer writes the graph as an SVG document. Sections are coloured by their winding vector.
func Writer(w io.Writer, g *sweep.Graph, ps sweep.Paths, opts *Options) error {
	view := ps.Bounds()
	for _, v := range g.Vertices {
		view = view.AddPoint(v.Point)
	}
	if math.IsInf(view.W(), 0) || math.IsNaN(view.W()) || math.IsInf(view.H(), 0) || math.IsNaN(view.H()) {
		return fmt.Errorf("svg: graph bounds are not finite")
	}

	r := New(w, view, opts)
	for i, s := range g.Sections {
		r.DrawCurve(g.SectionCurve(ps, i), WindingColour(s.Windings))
	}
	for i, v := range g.Vertices {
		label := ""
		if r.opts.Labels {
			label = fmt.Sprint(i)
		}
		r.DrawVertex(v.Point, label)
	}
	return r.Close()
}
