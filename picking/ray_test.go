package picking

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campsite-renderer/math"
)

func unitBox() AABB {
	return AABB{
		Min: math.Vec3{X: -1, Y: 0, Z: -1},
		Max: math.Vec3{X: 1, Y: 2, Z: 1},
	}
}

func TestIntersectFrontalHit(t *testing.T) {
	r := Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: -2},
		Dir:    math.Vec3{X: 0, Y: 0, Z: 1},
	}

	tNear, hit := Intersect(r, unitBox())
	require.True(t, hit)
	assert.InDelta(t, 1.0, tNear, 1e-5, "entry through the z=-1 face is one unit away")
}

func TestIntersectMiss(t *testing.T) {
	r := Ray{
		Origin: math.Vec3{X: 10, Y: 10, Z: 10},
		Dir:    math.Vec3{X: 1, Y: 0, Z: 0},
	}

	_, hit := Intersect(r, unitBox())
	assert.False(t, hit)
}

func TestIntersectOriginInside(t *testing.T) {
	r := Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: 0},
		Dir:    math.Vec3{X: 0, Y: 0, Z: 1},
	}

	tNear, hit := Intersect(r, unitBox())
	require.True(t, hit)
	assert.Equal(t, float32(0), tNear, "rays starting inside report zero distance")
}

func TestIntersectOriginOnFace(t *testing.T) {
	// Containment is inclusive, so a ray starting exactly on a face is
	// treated as inside.
	r := Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: -1},
		Dir:    math.Vec3{X: 0, Y: 0, Z: 1},
	}

	tNear, hit := Intersect(r, unitBox())
	require.True(t, hit)
	assert.Equal(t, float32(0), tNear)
}

func TestIntersectParallelOutsideSlab(t *testing.T) {
	// Direction has a zero Y component and the origin sits above the box.
	// The parallel guard must reject it without dividing by zero.
	r := Ray{
		Origin: math.Vec3{X: -5, Y: 5, Z: 0},
		Dir:    math.Vec3{X: 1, Y: 0, Z: 0},
	}

	_, hit := Intersect(r, unitBox())
	assert.False(t, hit)
}

func TestIntersectParallelInsideSlab(t *testing.T) {
	r := Ray{
		Origin: math.Vec3{X: -5, Y: 1, Z: 0},
		Dir:    math.Vec3{X: 1, Y: 0, Z: 0},
	}

	tNear, hit := Intersect(r, unitBox())
	require.True(t, hit)
	assert.InDelta(t, 4.0, tNear, 1e-5)
}

func TestIntersectBehindRay(t *testing.T) {
	r := Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: 5},
		Dir:    math.Vec3{X: 0, Y: 0, Z: 1},
	}

	_, hit := Intersect(r, unitBox())
	assert.False(t, hit, "box entirely behind the origin must not hit")
}

func TestIntersectNegativeDirection(t *testing.T) {
	r := Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: 5},
		Dir:    math.Vec3{X: 0, Y: 0, Z: -1},
	}

	tNear, hit := Intersect(r, unitBox())
	require.True(t, hit)
	assert.InDelta(t, 4.0, tNear, 1e-5)
}

func TestIntersectDegenerateBox(t *testing.T) {
	// A zero-volume box is a point; a ray aimed straight at it still hits.
	point := AABB{
		Min: math.Vec3{X: 2, Y: 2, Z: 2},
		Max: math.Vec3{X: 2, Y: 2, Z: 2},
	}
	d := math.Vec3{X: 1, Y: 1, Z: 1}.Normalize()
	r := Ray{Origin: math.Vec3Zero, Dir: d}

	tNear, hit := Intersect(r, point)
	require.True(t, hit)
	assert.InDelta(t, math.Vec3{X: 2, Y: 2, Z: 2}.Length(), tNear, 1e-4)
}

func TestIntersectDistanceMatchesAnalytic(t *testing.T) {
	// Hit point reconstructed from tNear must land on the entry face.
	box := AABB{
		Min: math.Vec3{X: 3, Y: -1, Z: -1},
		Max: math.Vec3{X: 5, Y: 1, Z: 1},
	}
	r := Ray{
		Origin: math.Vec3{X: 0, Y: 0.25, Z: -0.5},
		Dir:    math.Vec3{X: 1, Y: 0, Z: 0},
	}

	tNear, hit := Intersect(r, box)
	require.True(t, hit)

	p := r.Origin.Add(r.Dir.Scale(tNear))
	assert.InDelta(t, 3.0, p.X, 1e-4)
	assert.True(t, box.Contains(p))
}

func TestIntersectFarBoxStaysFinite(t *testing.T) {
	// A distant hit narrows the interval down from its float32 ceiling;
	// the reported distance must stay a finite float32.
	box := AABB{
		Min: math.Vec3{X: 1e6, Y: -1, Z: -1},
		Max: math.Vec3{X: 1e6 + 2, Y: 1, Z: 1},
	}
	r := Ray{
		Origin: math.Vec3Zero,
		Dir:    math.Vec3{X: 1, Y: 0, Z: 0},
	}

	tNear, hit := Intersect(r, box)
	require.True(t, hit)
	assert.False(t, math32.IsInf(tNear, 0))
	assert.InDelta(t, 1e6, tNear, 1.0)
}

func TestAABBContains(t *testing.T) {
	box := unitBox()

	assert.True(t, box.Contains(math.Vec3{X: 0, Y: 1, Z: 0}))
	assert.True(t, box.Contains(box.Min), "faces are inclusive")
	assert.True(t, box.Contains(box.Max))
	assert.False(t, box.Contains(math.Vec3{X: 0, Y: 2.01, Z: 0}))
}
