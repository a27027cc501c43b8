package sweep

import (
	"fmt"
	"io"
)

// sectionQueue is a heap priority queue of sections that have not been activated yet. It
// stores indices into the section arena so that the arena may grow while indices are queued.
type sectionQueue struct {
	items    []int
	sections *[]Section
	d        Dim
	tol      float64
}

func newSectionQueue(sections *[]Section, d Dim, tol float64) *sectionQueue {
	return &sectionQueue{
		sections: sections,
		d:        d,
		tol:      tol,
	}
}

// Len returns the number of queued sections.
func (q *sectionQueue) Len() int {
	return len(q.items)
}

// Less orders by the leading endpoint along the sweep dimension within tolerance, then
// along the perpendicular dimension, and finally by arena index.
func (q *sectionQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	pa, pb := (*q.sections)[a].FP, (*q.sections)[b].FP
	if ad, bd := pa.Coord(q.d), pb.Coord(q.d); !near(ad, bd, q.tol) {
		return ad < bd
	}
	if ao, bo := pa.Coord(q.d.Other()), pb.Coord(q.d.Other()); !near(ao, bo, q.tol) {
		return ao < bo
	}
	return a < b
}

func (q *sectionQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// Init establishes the heap order for all items.
func (q *sectionQueue) Init() {
	n := len(q.items)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

// Push adds the section at arena index i.
func (q *sectionQueue) Push(i int) {
	q.items = append(q.items, i)
	q.up(len(q.items) - 1)
}

// PushAll adds many sections at once.
func (q *sectionQueue) PushAll(is ...int) {
	for _, i := range is {
		q.Push(i)
	}
}

// Top returns the arena index of the minimum section without removing it.
func (q *sectionQueue) Top() int {
	return q.items[0]
}

// Pop removes and returns the arena index of the minimum section.
func (q *sectionQueue) Pop() int {
	n := len(q.items) - 1
	q.Swap(0, n)
	q.down(0, n)

	item := q.items[n]
	q.items = q.items[:n]
	return item
}

// from container/heap
func (q *sectionQueue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		j = i
	}
}

func (q *sectionQueue) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.Less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		i = j
	}
}

// Print writes the queued sections in pop order.
func (q *sectionQueue) Print(w io.Writer) {
	q2 := &sectionQueue{
		items:    append([]int{}, q.items...),
		sections: q.sections,
		d:        q.d,
		tol:      q.tol,
	}
	for k := 0; 0 < q2.Len(); k++ {
		i := q2.Pop()
		fmt.Fprintln(w, k, i, (*q.sections)[i])
	}
}
