package sweep

import (
	"fmt"
	"slices"
)

// CurveRef locates a curve within a Paths collection. It does not own the curve.
type CurveRef struct {
	Path, Curve int
}

func (ref CurveRef) String() string {
	return fmt.Sprintf("%d:%d", ref.Path, ref.Curve)
}

// Section is a span of a curve that is monotone along both dimensions. F and T are the
// parameters at its endpoints FP and TP, ordered so that TP does not come before FP along
// the sweep dimension. When F > T the section runs against the direction of its path.
type Section struct {
	Curve    CurveRef
	F, T     float64
	FP, TP   Point
	Windings []int // per path, the signed number of crossings below this section
}

func newSection(c Curve, d Dim, ref CurveRef, f, t float64) Section {
	s := Section{
		Curve: ref,
		F:     f,
		T:     t,
		FP:    c.Eval(f),
		TP:    c.Eval(t),
	}
	if lexoLess(s.TP, s.FP, d) {
		s.F, s.T = s.T, s.F
		s.FP, s.TP = s.TP, s.FP
	}
	return s
}

// Forward returns true if the section runs along the direction of its path.
func (s Section) Forward() bool {
	return s.F < s.T
}

// Interval returns the parameter interval.
func (s Section) Interval() Interval {
	return NewInterval(s.F, s.T)
}

// Bounds returns the bounding box, which is spanned by the endpoints since the section is monotone.
func (s Section) Bounds() Rect {
	return RectFromPoints(s.FP, s.TP)
}

// Span returns the interval covered along dimension d.
func (s Section) Span(d Dim) Interval {
	return NewInterval(s.FP.Coord(d), s.TP.Coord(d))
}

func (s Section) String() string {
	return fmt.Sprintf("S(%v %v→%v %v-%v)", s.Curve, num(s.F), num(s.T), s.FP, s.TP)
}

// setTo moves the trailing end of the section to parameter t, which must lie between F and T.
func (s *Section) setTo(c Curve, t float64) {
	s.T = t
	s.TP = c.Eval(t)
}

// split cuts the section at the given parameters. The section is shortened in place to the first piece and the remaining pieces are returned. Cuts whose position is within tol of an existing endpoint are ignored.
func (s *Section) split(c Curve, d Dim, cuts []float64, tol float64) []Section {
	kept := cuts[:0]
	for _, t := range cuts {
		if p := c.Eval(t); !p.Near(s.FP, tol) && !p.Near(s.TP, tol) {
			kept = append(kept, t)
		}
	}
	cuts = processSplits(kept, s.F, s.T)
	if len(cuts) <= 2 {
		return nil
	}

	rest := make([]Section, 0, len(cuts)-2)
	for i := 2; i < len(cuts); i++ {
		rest = append(rest, newSection(c, d, s.Curve, cuts[i-1], cuts[i]))
	}
	s.setTo(c, cuts[1])
	return rest
}

// processSplits returns the splits that lie strictly between f and t, sorted and made unique
// with tolerance Epsilon, with f prepended and t appended. If f > t the order is reversed.
func processSplits(splits []float64, f, t float64) []float64 {
	lo, hi := f, t
	if hi < lo {
		lo, hi = hi, lo
	}

	ts := make([]float64, 0, len(splits)+2)
	for _, s := range splits {
		if lo+Epsilon < s && s < hi-Epsilon {
			ts = append(ts, s)
		}
	}
	slices.Sort(ts)
	ts = slices.CompactFunc(ts, func(a, b float64) bool {
		return Equal(a, b)
	})

	ts = append(ts, 0.0)
	copy(ts[1:], ts)
	ts[0] = lo
	ts = append(ts, hi)
	if t < f {
		slices.Reverse(ts)
	}
	return ts
}

// monoSplits returns the sorted, unique parameters, including 0 and 1, where the curve
// changes direction along either dimension.
func monoSplits(c Curve) ([]float64, error) {
	deriv := c.Derivative()
	splits := deriv.Roots(0.0, X)
	splits = append(splits, deriv.Roots(0.0, Y)...)
	for _, t := range splits {
		if !isFinite(t) {
			return nil, ErrNonFinite
		}
	}
	return processSplits(splits, 0.0, 1.0), nil
}

// monoSections decomposes all curves of all paths into monotone sections. Sections are emitted
// in path and curve order, each curve's sections cover its domain exactly once.
func monoSections(ps Paths, d Dim) ([]Section, error) {
	var monos []Section
	for i, p := range ps {
		for j, c := range p.curves {
			if err := checkFinite(c); err != nil {
				return nil, fmt.Errorf("path %d curve %d: %w", i, j, err)
			}
			splits, err := monoSplits(c)
			if err != nil {
				return nil, fmt.Errorf("path %d curve %d: %w", i, j, err)
			}
			for k := 1; k < len(splits); k++ {
				monos = append(monos, newSection(c, d, CurveRef{i, j}, splits[k-1], splits[k]))
			}
		}
	}
	return monos, nil
}

// checkFinite verifies that the curve, its bounds, and its derivative are finite.
func checkFinite(c Curve) error {
	if !c.Eval(0.0).IsFinite() || !c.Eval(1.0).IsFinite() || !c.Bounds().finite() {
		return ErrNonFinite
	}
	deriv := c.Derivative()
	if !deriv.Eval(0.0).IsFinite() || !deriv.Eval(1.0).IsFinite() {
		return ErrNonFinite
	}
	return nil
}
