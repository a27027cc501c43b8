package sweep

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func TestVertexStore(t *testing.T) {
	stores := map[string]*vertexStore{
		"linear":  newVertexStore(1e-6),
		"spatial": newSpatialVertexStore(1e-6, Rect{0.0, 0.0, 10.0, 10.0}),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			test.T(t, s.Lookup(Point{1.0, 1.0}), 0)
			test.T(t, s.Lookup(Point{2.0, 1.0}), 1)
			test.T(t, s.Lookup(Point{1.0 + 1e-7, 1.0 - 1e-7}), 0)
			test.T(t, s.Lookup(Point{1.0, 1.0 + 1e-5}), 2)
			test.T(t, s.Lookup(Point{50.0, -50.0}), 3) // outside the bounds
			test.T(t, s.Lookup(Point{50.0, -50.0 + 1e-7}), 3)
			test.T(t, s.Len(), 4)
			test.T(t, s.vertices[0].Point, Point{1.0, 1.0})

			s.Connect(0, 0, 1)
			s.Connect(1, 1, 3)
			test.T(t, s.vertices[0].Exits, []Edge{{0, 1}})
			test.T(t, len(s.vertices[0].Enters), 0)
			test.T(t, s.vertices[1].Enters, []Edge{{0, 0}})
			test.T(t, s.vertices[1].Exits, []Edge{{1, 3}})
			test.T(t, s.vertices[1].Degree(), 2)
			test.T(t, s.vertices[2].Degree(), 0)
			test.String(t, s.vertices[3].Enters[0].String(), "1→1")
		})
	}
}

func TestVertexStoreSpatial(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	linear := newVertexStore(1e-3)
	spatial := newSpatialVertexStore(1e-3, Rect{-1.0, -1.0, 1.0, 1.0})
	for i := 0; i < 500; i++ {
		// points on a coarse grid so that many coincide
		p := Point{float64(rng.IntN(20))/10.0 - 1.0, float64(rng.IntN(20))/10.0 - 1.0}
		p = p.Add(Point{rng.Float64() * 1e-4, rng.Float64() * 1e-4})
		test.T(t, spatial.Lookup(p), linear.Lookup(p), fmt.Sprint(i))
	}
	test.T(t, spatial.Len(), linear.Len())
	test.That(t, spatial.Len() <= 400)
}
