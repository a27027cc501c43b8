package sweep

// DefaultTolerance is the default merge tolerance, points closer than this are the same vertex.
const DefaultTolerance = 1e-6

// Option configures a sweep.
//
// Example:
//
//	g, err := sweep.SweepGraph(paths, sweep.WithDim(sweep.Y), sweep.WithTolerance(1e-4))
type Option func(*options)

type options struct {
	dim           Dim
	tolerance     float64
	maxIterations int
	spatialIndex  bool
}

func defaultOptions() options {
	return options{
		dim:       X,
		tolerance: DefaultTolerance,
	}
}

// WithDim sets the dimension along which the sweep line advances, the default is X.
func WithDim(d Dim) Option {
	return func(o *options) {
		o.dim = d
	}
}

// WithTolerance sets the merge tolerance for vertices and sweep coordinates.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if 0.0 < tol {
			o.tolerance = tol
		}
	}
}

// WithMaxIterations sets the iteration ceiling of the sweep loop. Zero derives the ceiling from the input size.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithSpatialIndex looks up vertices in a quadtree instead of by a linear scan. This is faster for large inputs, but may merge a point with the nearest vertex within tolerance rather than the first one created.
func WithSpatialIndex(spatial bool) Option {
	return func(o *options) {
		o.spatialIndex = spatial
	}
}

// maxIterationsFor returns the iteration ceiling for n initial sections. Every pair of
// sections can cross a bounded number of times, each crossing adds two queue entries.
func (o options) maxIterationsFor(n int) int {
	if 0 < o.maxIterations {
		return o.maxIterations
	}
	return 1024 + 64*n*n
}
