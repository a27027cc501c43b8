package sweep

import (
	"fmt"
	"math"
)

// SweepGraph sweeps a line across the paths and returns their intersection graph. Curves
// are cut into sections at the points where they change direction and where they meet other
// curves, and the endpoints of sections that lie within tolerance of each other are merged
// into vertices. For every section the winding vector counts, per path, the signed number of
// crossings of that path below the section, where sections running along their path count
// +1 and sections running against it count -1.
//
// The paths are only read. It returns an error wrapping ErrNonFinite when a curve has
// non-finite coordinates, and ErrIterationLimit when degenerate input keeps splitting
// sections beyond the iteration ceiling.
func SweepGraph(paths Paths, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	monos, err := monoSections(paths, o.dim)
	if err != nil {
		return nil, err
	}

	s := newSweeper(paths, monos, o)
	if err := s.run(); err != nil {
		return nil, err
	}
	Logger().Debug("sweep done",
		"paths", len(paths),
		"monotone", len(monos),
		"sections", len(s.output),
		"vertices", s.vertices.Len(),
		"iterations", s.iterations,
	)
	return &Graph{
		Vertices: s.vertices.vertices,
		Sections: s.output,
	}, nil
}

// sweeper holds the state of a single sweep. Sections live in an arena and are referred to
// by index from the queue and the active context.
type sweeper struct {
	paths Paths
	d     Dim
	tol   float64

	sections []Section
	queue    *sectionQueue
	context  *activeContext
	vertices *vertexStore
	output   []Section

	iterations    int
	maxIterations int
}

func newSweeper(paths Paths, monos []Section, o options) *sweeper {
	s := &sweeper{
		paths:         paths,
		d:             o.dim,
		tol:           o.tolerance,
		sections:      monos,
		maxIterations: o.maxIterationsFor(len(monos)),
	}
	s.queue = newSectionQueue(&s.sections, s.d, s.tol)
	s.queue.items = make([]int, len(monos))
	for i := range monos {
		s.queue.items[i] = i
	}
	s.queue.Init()
	s.context = newActiveContext(&s.sections, paths, s.d, s.tol)
	if o.spatialIndex {
		s.vertices = newSpatialVertexStore(s.tol, paths.Bounds())
	} else {
		s.vertices = newVertexStore(s.tol)
	}
	return s
}

func (s *sweeper) run() error {
	for {
		s.iterations++
		if s.maxIterations < s.iterations {
			return fmt.Errorf("%d iterations, %d sections queued: %w", s.maxIterations, s.queue.Len(), ErrIterationLimit)
		}

		lim := math.Inf(1)
		if 0 < s.queue.Len() {
			lim = s.sections[s.queue.Top()].FP.Coord(s.d)
		}
		s.close(lim)

		if s.queue.Len() == 0 {
			if s.context.Len() != 0 {
				panic("bug: active sections remain after closing pass")
			}
			return nil
		}

		i := s.queue.Pop()
		v := s.vertices.Lookup(s.sections[i].FP)
		k := s.context.Insert(i, v)
		s.intersect(k)
	}
}

// close finalizes the active sections that end before lim, scanning from the top of the
// context so that the sections below a finalized one are still present.
func (s *sweeper) close(lim float64) {
	for k := s.context.Len() - 1; 0 <= k; k-- {
		i := s.context.items[k]
		if !math.IsInf(lim, 1) && lim-s.tol <= s.sections[i].TP.Coord(s.d) {
			continue
		}
		s.finalize(k)
	}
}

// finalize computes the windings of the section at context position k, connects its
// vertices and moves it to the output. A section that starts and ends at the same vertex
// is dropped.
func (s *sweeper) finalize(k int) {
	i, v0 := s.context.items[k], s.context.vix[k]
	sec := s.sections[i]
	s.context.Remove(k)

	v1 := s.vertices.Lookup(sec.TP)
	if v1 == v0 {
		return
	}

	sec.Windings = s.windings(k, sec.TP.Coord(s.d))
	j := len(s.output)
	s.output = append(s.output, sec)
	if sec.Forward() {
		s.vertices.Connect(j, v0, v1)
	} else {
		s.vertices.Connect(j, v1, v0)
	}
}

// windings counts the sections below context position k that cross the sweep line just
// before x. Sections along the sweep line do not cross it.
func (s *sweeper) windings(k int, x float64) []int {
	ws := make([]int, len(s.paths))
	for _, j := range s.context.items[:k] {
		below := &s.sections[j]
		x0, x1 := below.FP.Coord(s.d), below.TP.Coord(s.d)
		if near(x0, x1, s.tol) || x-s.tol <= x0 || x1 < x-s.tol {
			continue
		}
		if below.Forward() {
			ws[below.Curve.Path]++
		} else {
			ws[below.Curve.Path]--
		}
	}
	return ws
}

// intersect splits the section at context position k and every active section it meets at
// their crossings. The sections are shortened in place and the remainders are queued.
func (s *sweeper) intersect(k int) {
	i := s.context.items[k]
	o := s.d.Other()
	for _, j := range s.context.items {
		if j == i {
			continue
		}
		a, b := &s.sections[i], &s.sections[j]
		if !a.Span(o).Intersects(b.Span(o)) || !a.Span(s.d).Intersects(b.Span(s.d)) {
			continue
		}

		ca, cb := s.paths.Curve(a.Curve), s.paths.Curve(b.Curve)
		zs := Intersect(ca, a.Interval(), cb, b.Interval())
		if len(zs) == 0 {
			continue
		}
		ta := make([]float64, len(zs))
		tb := make([]float64, len(zs))
		for n, z := range zs {
			ta[n], tb[n] = z.TA, z.TB
		}

		restA := a.split(ca, s.d, ta, s.tol)
		restB := b.split(cb, s.d, tb, s.tol)
		s.push(restA...)
		s.push(restB...)
	}
}

// push adds sections to the arena and the queue.
func (s *sweeper) push(secs ...Section) {
	is := make([]int, len(secs))
	for n, sec := range secs {
		is[n] = len(s.sections)
		s.sections = append(s.sections, sec)
	}
	s.queue.PushAll(is...)
}
