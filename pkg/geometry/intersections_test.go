package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
)

func TestNewIntersections_SortsAscending(t *testing.T) {
	s := NewSphere()
	xs := NewIntersections(
		Intersection{T: 5, Object: s},
		Intersection{T: 7, Object: s},
		Intersection{T: -3, Object: s},
		Intersection{T: 2, Object: s},
	)

	require.Len(t, xs, 4)
	assert.Equal(t, []float64{-3, 2, 5, 7}, []float64{xs[0].T, xs[1].T, xs[2].T, xs[3].T})
}

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name      string
		ts        []float64
		expectHit bool
		expectedT float64
	}{
		{"all positive", []float64{1, 2}, true, 1},
		{"some negative", []float64{-1, 1}, true, 1},
		{"all negative", []float64{-2, -1}, false, 0},
		{"lowest non-negative wins", []float64{5, 7, -3, 2}, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]Intersection, len(tt.ts))
			for i, tv := range tt.ts {
				raw[i] = Intersection{T: tv, Object: s}
			}
			xs := NewIntersections(raw...)

			hit, ok := xs.Hit()
			assert.Equal(t, tt.expectHit, ok)
			if tt.expectHit {
				assert.Equal(t, tt.expectedT, hit.T)
				// Hit is idempotent
				again, _ := xs.Hit()
				assert.Equal(t, hit, again)
			}

			idx := xs.HitIndex()
			if tt.expectHit {
				require.GreaterOrEqual(t, idx, 0)
				assert.Equal(t, hit, xs[idx])
			} else {
				assert.Equal(t, -1, idx)
			}
		})
	}
}

func TestIntersections_EpsilonOrdering(t *testing.T) {
	a := NewSphere()
	b := NewSphere().WithTransform(core.Translate(0, 0, 1))

	// Two t values within Epsilon compare equal, so the stable sort keeps
	// insertion order between them.
	xs := NewIntersections(
		Intersection{T: 1.0 + core.Epsilon/10, Object: a},
		Intersection{T: 1.0, Object: b},
	)

	assert.Equal(t, a, xs[0].Object)
	assert.Equal(t, b, xs[1].Object)
}

func TestIntersection_Equals(t *testing.T) {
	s := NewSphere()
	i := Intersection{T: 3.5, Object: s}

	assert.True(t, i.Equals(Intersection{T: 3.5 + core.Epsilon/2, Object: s}))
	assert.False(t, i.Equals(Intersection{T: 3.5 + core.Epsilon*2, Object: s}))
	assert.False(t, i.Equals(Intersection{T: 3.5, Object: NewPlane()}))
}

func TestIntersections_Merge(t *testing.T) {
	s := NewSphere()
	a := NewIntersections(Intersection{T: 4, Object: s}, Intersection{T: 6, Object: s})
	b := NewIntersections(Intersection{T: 5, Object: s})

	merged := a.Merge(b)

	require.Len(t, merged, 3)
	assert.Equal(t, []float64{4, 5, 6}, []float64{merged[0].T, merged[1].T, merged[2].T})
	// The inputs are unchanged
	assert.Len(t, a, 2)
	assert.Len(t, b, 1)
}
