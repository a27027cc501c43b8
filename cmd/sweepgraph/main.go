package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweep"
	"github.com/tdewolff/sweep/svg"
)

type Sweep struct {
	Dim       string  `short:"d" default:"x" desc:"Sweep dimension, x or y"`
	Tolerance float64 `short:"t" default:"1e-6" desc:"Merge tolerance of vertices"`
	Spatial   bool    `desc:"Look up vertices in a quadtree"`
	MaxIter   int     `name:"max-iter" default:"0" desc:"Iteration ceiling, zero derives it from the input"`
	Output    string  `short:"o" desc:"Output SVG file"`
	Labels    bool    `desc:"Label vertices in the SVG output"`
	Verbose   bool    `short:"v" desc:"Log sweep details to stderr"`
	Input     string  `index:"0" desc:"Input file (.svgd or .svg)"`
}

type Stats struct {
	Dim       string  `short:"d" default:"x" desc:"Sweep dimension, x or y"`
	Tolerance float64 `short:"t" default:"1e-6" desc:"Merge tolerance of vertices"`
	Input     string  `index:"0" desc:"Input file (.svgd or .svg)"`
}

func main() {
	root := argp.NewCmd(&Sweep{}, "Planar sweep of curve paths into an intersection graph")
	root.AddCmd(&Stats{}, "stats", "Print graph statistics")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Sweep) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		sweep.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ps, g, err := run(cmd.Input, cmd.Dim, cmd.Tolerance,
		sweep.WithSpatialIndex(cmd.Spatial),
		sweep.WithMaxIterations(cmd.MaxIter),
	)
	if err != nil {
		return err
	}
	fmt.Print(g)

	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()

		opts := svg.DefaultOptions
		opts.Labels = cmd.Labels
		if strings.HasSuffix(cmd.Output, ".svgz") {
			opts.Compression = -1
		}
		if err := svg.Writer(f, g, ps, &opts); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *Stats) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	ps, g, err := run(cmd.Input, cmd.Dim, cmd.Tolerance)
	if err != nil {
		return err
	}
	st := g.Stats()
	fmt.Println("File name:", filepath.Base(cmd.Input))
	fmt.Println("Paths:", len(ps))
	fmt.Println("Curves:", ps.NumCurves())
	fmt.Println("Vertices:", st.Vertices)
	fmt.Println("Sections:", st.Sections)
	fmt.Println("Isolated vertices:", st.Isolated)
	fmt.Println("Max degree:", st.MaxDegree)
	return nil
}

func run(filename, dim string, tol float64, opts ...sweep.Option) (sweep.Paths, *sweep.Graph, error) {
	d := sweep.X
	switch strings.ToLower(dim) {
	case "x":
	case "y":
		d = sweep.Y
	default:
		return nil, nil, fmt.Errorf("bad dimension: %s", dim)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}
	ps, err := readPaths(filepath.Ext(filename), bytes.NewReader(b))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}

	opts = append(opts, sweep.WithDim(d), sweep.WithTolerance(tol))
	g, err := sweep.SweepGraph(ps, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ps, g, nil
}

func readPaths(ext string, r io.Reader) (sweep.Paths, error) {
	switch strings.ToLower(ext) {
	case ".svg":
		return sweep.ParseSVG(r)
	case ".svgd", ".txt", "":
		return sweep.ReadSVGD(r)
	}
	return nil, fmt.Errorf("unknown file extension %s: %w", ext, sweep.ErrUnsupported)
}
