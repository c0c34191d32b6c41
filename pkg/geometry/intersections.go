package geometry

import (
	"math"
	"sort"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
)

// Intersection records a ray crossing an object at parametric distance t.
// Two intersections whose t values differ by less than Epsilon are
// considered equal, tolerating floating point noise at shared surfaces.
type Intersection struct {
	T      float64
	Object Object
}

// Equals reports whether two intersections have the same object and t
// values within Epsilon.
func (i Intersection) Equals(other Intersection) bool {
	return i.Object == other.Object && math.Abs(i.T-other.T) < core.Epsilon
}

// Intersections is a collection of intersections ordered ascending by t.
// It is built once per query and never mutated afterwards.
type Intersections []Intersection

// NewIntersections builds an ordered intersection set. Sorting uses the
// same epsilon tolerance as intersection equality: values within Epsilon
// keep their insertion order.
func NewIntersections(xs ...Intersection) Intersections {
	sorted := make(Intersections, len(xs))
	copy(sorted, xs)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[b].T-sorted[a].T >= core.Epsilon
	})
	return sorted
}

// Merge combines two ordered sets into a new ordered set
func (xs Intersections) Merge(other Intersections) Intersections {
	combined := make([]Intersection, 0, len(xs)+len(other))
	combined = append(combined, xs...)
	combined = append(combined, other...)
	return NewIntersections(combined...)
}

// Hit returns the first intersection with t >= 0, the visible surface along
// the ray. Candidates behind the ray origin are invisible; if every t is
// negative there is no hit.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, i := range xs {
		if i.T >= 0 {
			return i, true
		}
	}
	return Intersection{}, false
}

// HitIndex returns the index of the hit, or -1 when every intersection lies
// behind the ray origin. Shading precomputation needs the index because the
// refraction walk must see the whole set, not just the winner.
func (xs Intersections) HitIndex() int {
	for idx, i := range xs {
		if i.T >= 0 {
			return idx
		}
	}
	return -1
}
