package sweep

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestSectionQueue(t *testing.T) {
	secs := []Section{
		newSection(Line{Point{2.0, 0.0}, Point{3.0, 0.0}}, X, CurveRef{0, 0}, 0.0, 1.0),
		newSection(Line{Point{0.0, 1.0}, Point{1.0, 0.0}}, X, CurveRef{0, 1}, 0.0, 1.0),
		newSection(Line{Point{0.0, 0.0}, Point{1.0, 1.0}}, X, CurveRef{0, 2}, 0.0, 1.0),
		newSection(Line{Point{1e-9, 0.0}, Point{1.0, 2.0}}, X, CurveRef{0, 3}, 0.0, 1.0),
		newSection(Line{Point{1.0, 0.0}, Point{0.0, 0.0}}, X, CurveRef{0, 4}, 0.0, 1.0),
	}
	q := newSectionQueue(&secs, X, 1e-7)
	q.PushAll(0, 1, 2, 3, 4)
	test.T(t, q.Len(), 5)
	test.T(t, q.Top(), 2)

	// ties along the sweep dimension break on the other dimension, then on index
	order := []int{}
	for 0 < q.Len() {
		order = append(order, q.Pop())
	}
	test.T(t, order, []int{2, 3, 4, 1, 0})
}

func TestSectionQueueGrow(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	secs := []Section{}
	q := newSectionQueue(&secs, Y, 1e-9)
	for i := 0; i < 64; i++ {
		p := Point{rng.Float64(), rng.Float64()}
		secs = append(secs, newSection(Line{p, p.Add(Point{1.0, 1.0})}, Y, CurveRef{0, i}, 0.0, 1.0))
		q.Push(len(secs) - 1)
	}

	prev := -1.0
	for 0 < q.Len() {
		y := secs[q.Pop()].FP.Y
		test.That(t, prev <= y, prev, y)
		prev = y
	}
}

func TestSectionQueueInit(t *testing.T) {
	secs := []Section{}
	for i := 4; 0 <= i; i-- {
		x := float64(i)
		secs = append(secs, newSection(Line{Point{x, 0.0}, Point{x + 1.0, 0.0}}, X, CurveRef{0, 4 - i}, 0.0, 1.0))
	}
	q := newSectionQueue(&secs, X, 1e-7)
	q.items = []int{0, 1, 2, 3, 4}
	q.Init()

	sb := &bytes.Buffer{}
	q.Print(sb)
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	test.T(t, len(lines), 5)
	test.That(t, strings.HasPrefix(lines[0], "0 4 "), lines[0])
	test.That(t, strings.HasPrefix(lines[4], "4 0 "), lines[4])
	test.T(t, q.Len(), 5) // printing does not pop
}
