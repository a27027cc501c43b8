/*
Package sweep builds the intersection graph of a set of curve paths with a sweep line.

Curves are lines and quadratic or cubic Béziers. They are cut into sections that are monotone
in both dimensions, and the sections are swept along X (or Y) in order of their leading
endpoints. Sections that cross are split at their crossings, and endpoints that lie within
tolerance of each other become a single vertex. The result is a Graph of vertices and
sections, where every section carries a winding vector: per path, the signed number of times
that path passes below the section.

	ps, err := sweep.ParseSVGPath("M0 0L10 0L10 10L0 10z M5 5L15 5L15 15L5 15z")
	if err != nil {
		panic(err)
	}
	g, err := sweep.SweepGraph(ps)
	if err != nil {
		panic(err)
	}
	fmt.Print(g)

The paths are not modified and the returned graph does not share memory with the sweep.
*/
package sweep
