package sweep

import (
	"errors"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestPath(t *testing.T) {
	p := NewPath(0.0, 0.0)
	test.That(t, p.Empty())
	test.T(t, p.Pos(), Point{0.0, 0.0})

	p.LineTo(2.0, 0.0).QuadTo(3.0, 1.0, 2.0, 2.0).CubeTo(1.0, 3.0, 0.0, 3.0, 0.0, 2.0)
	test.T(t, p.Len(), 3)
	test.That(t, !p.Closed())
	test.T(t, p.Pos(), Point{0.0, 2.0})
	test.T(t, p.StartPos(), Point{0.0, 0.0})
	test.T(t, p.Curve(1), Curve(Quad{Point{2.0, 0.0}, Point{3.0, 1.0}, Point{2.0, 2.0}}))
	test.T(t, p.Bounds(), Rect{0.0, 0.0, 3.0, 3.0})

	p.Close()
	test.T(t, p.Len(), 4)
	test.That(t, p.Closed())
	test.T(t, p.Curve(3), Curve(Line{Point{0.0, 2.0}, Point{0.0, 0.0}}))
	test.String(t, p.String(), "M0 0L2 0Q3 1 2 2C1 3 0 3 0 2L0 0z")

	// closing at the start does not add a line
	q := NewPath(0.0, 0.0).LineTo(1.0, 0.0).LineTo(0.0, 0.0).Close()
	test.T(t, q.Len(), 2)
}

func TestPaths(t *testing.T) {
	ps := Paths{
		NewPath(0.0, 0.0).LineTo(1.0, 1.0),
		NewPath(-1.0, 2.0).LineTo(3.0, 2.0).LineTo(3.0, 4.0),
	}
	test.T(t, ps.NumCurves(), 3)
	test.T(t, ps.Bounds(), Rect{-1.0, 0.0, 3.0, 4.0})
	test.T(t, ps.Curve(CurveRef{1, 1}), Curve(Line{Point{3.0, 2.0}, Point{3.0, 4.0}}))
	test.T(t, Paths{}.Bounds(), Rect{})
}

func TestParseSVGPath(t *testing.T) {
	var tts = []struct {
		orig string
		res  []string
	}{
		{"M10 0L20 0H30V10C40 10 50 10 50 0Q55 10 60 0Z", []string{"M10 0L20 0L30 0L30 10C40 10 50 10 50 0Q55 10 60 0L10 0z"}},
		{"m10 0l10 0h10v10c10 0 20 0 20 -10q5 10 10 0z", []string{"M10 0L20 0L30 0L30 10C40 10 50 10 50 0Q55 10 60 0L10 0z"}},
		{"M0 0C0 10 10 10 10 0S20 -10 20 0", []string{"M0 0C0 10 10 10 10 0C10 -10 20 -10 20 0"}},
		{"m0 0c0 10 10 10 10 0s10 -10 10 0", []string{"M0 0C0 10 10 10 10 0C10 -10 20 -10 20 0"}},
		{"M0 0Q5 10 10 0T20 0", []string{"M0 0Q5 10 10 0Q15 -10 20 0"}},
		{"m0 0q5 10 10 0t10 0", []string{"M0 0Q5 10 10 0Q15 -10 20 0"}},
		{"M0 0S10 10 20 0", []string{"M0 0C0 0 10 10 20 0"}},
		{"M0 0 1 1 2 0z", []string{"M0 0L1 1L2 0L0 0z"}},
		{"M0,0L1,1M2 2L3 3", []string{"M0 0L1 1", "M2 2L3 3"}},
		{"m1 1l1 0m1 1l1 0", []string{"M1 1L2 1", "M3 2L4 2"}},
		{"M0 0L1 0ZL0 1", []string{"M0 0L1 0L0 0z", "M0 0L0 1"}},
		{"M5 5", []string{"M5 5"}},
		{"", []string{}},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			ps, err := ParseSVGPath(tt.orig)
			test.Error(t, err)
			test.T(t, len(ps), len(tt.res))
			for i := range ps {
				test.String(t, ps[i].String(), tt.res[i])
			}
		})
	}
}

func TestParseSVGPathArc(t *testing.T) {
	ps, err := ParseSVGPath("M1 0A1 1 0 0 1 -1 0a1 1 0 0 1 2 0z")
	test.Error(t, err)
	test.T(t, len(ps), 1)
	test.T(t, ps[0].Len(), 4)
	test.That(t, ps[0].Closed())
	for _, c := range ps[0].Curves() {
		test.That(t, c.Eval(0.5).Length() < 1.0+1e-3, c)
		test.That(t, 1.0-1e-3 < c.Eval(0.5).Length(), c)
	}

	// flags without separators
	ps, err = ParseSVGPath("M1 0A1 1 0 011 1")
	test.Error(t, err)
	test.T(t, ps[0].Pos(), Point{1.0, 1.0})
}

func TestParseSVGPathErrors(t *testing.T) {
	var tts = []struct {
		orig string
		err  string
	}{
		{"5", "bad path: path must start with command"},
		{"M0", "bad path: expected number at position 3"},
		{"M0 0z5", "bad path: unexpected number after close at position 6"},
		{"M0 0A1 1 0 2 0 1 1", "bad path: expected flag at position 12"},
		{"M0 0X1", "bad path: unknown command 'X' at position 5: unsupported"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			_, err := ParseSVGPath(tt.orig)
			test.That(t, err != nil)
			test.T(t, err.Error(), tt.err)
		})
	}

	_, err := ParseSVGPath("M0 0X1")
	test.That(t, errors.Is(err, ErrUnsupported))
}

func TestReadSVGD(t *testing.T) {
	ps, err := ReadSVGD(strings.NewReader("M0 0L10 10\nM0 10L10 0\n"))
	test.Error(t, err)
	test.T(t, len(ps), 2)
	test.String(t, ps[1].String(), "M0 10L10 0")
}
