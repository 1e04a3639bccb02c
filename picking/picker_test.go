package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campsite-renderer/math"
)

// fixedBounds mirrors the campsite's pickable layout: campfire, log bench,
// stone cluster, lantern crate, water basin.
func fixedBounds() []TaggedBound {
	return []TaggedBound{
		{ID: 0, Bounds: AABB{Min: math.Vec3{X: -1, Y: 0, Z: -1}, Max: math.Vec3{X: 1, Y: 2, Z: 1}}},
		{ID: 1, Bounds: AABB{Min: math.Vec3{X: 2, Y: 0, Z: -0.5}, Max: math.Vec3{X: 3, Y: 1.5, Z: 0.5}}},
		{ID: 2, Bounds: AABB{Min: math.Vec3{X: -2, Y: 0, Z: 1}, Max: math.Vec3{X: -1.5, Y: 0.5, Z: 2}}},
		{ID: 3, Bounds: AABB{Min: math.Vec3{X: 0, Y: 0, Z: 2}, Max: math.Vec3{X: 0.5, Y: 1, Z: 2.5}}},
		{ID: 4, Bounds: AABB{Min: math.Vec3{X: -0.5, Y: 0, Z: -2}, Max: math.Vec3{X: 0.5, Y: 0.3, Z: -1.5}}},
	}
}

func TestPickClosestOfMany(t *testing.T) {
	r := Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: -2},
		Dir:    math.Vec3{X: 0, Y: 0, Z: 1},
	}

	// The ray passes through box 0 (entry z=-1) and box 3 (entry z=2).
	assert.Equal(t, 0, Pick(r, fixedBounds()))
}

func TestPickMissReturnsNoHit(t *testing.T) {
	r := Ray{
		Origin: math.Vec3{X: 10, Y: 10, Z: 10},
		Dir:    math.Vec3{X: 1, Y: 0, Z: 0},
	}

	assert.Equal(t, NoHit, Pick(r, fixedBounds()))
}

func TestPickEmptyCandidates(t *testing.T) {
	r := Ray{Origin: math.Vec3Zero, Dir: math.Vec3{X: 0, Y: 0, Z: 1}}

	assert.Equal(t, NoHit, Pick(r, nil))
	assert.Equal(t, NoHit, Pick(r, []TaggedBound{}))
}

func TestPickOrderIndependentForDistinctDistances(t *testing.T) {
	r := Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: -5},
		Dir:    math.Vec3{X: 0, Y: 0, Z: 1},
	}

	bounds := fixedBounds()
	forward := Pick(r, bounds)

	reversed := make([]TaggedBound, len(bounds))
	for i, b := range bounds {
		reversed[len(bounds)-1-i] = b
	}

	assert.Equal(t, forward, Pick(r, reversed))
	assert.Equal(t, 0, forward)
}

func TestPickTieGoesToFirstCandidate(t *testing.T) {
	shared := AABB{
		Min: math.Vec3{X: -1, Y: -1, Z: 4},
		Max: math.Vec3{X: 1, Y: 1, Z: 6},
	}
	candidates := []TaggedBound{
		{ID: 7, Bounds: shared},
		{ID: 8, Bounds: shared},
	}
	r := Ray{Origin: math.Vec3Zero, Dir: math.Vec3{X: 0, Y: 0, Z: 1}}

	assert.Equal(t, 7, Pick(r, candidates))
}

func TestPickIgnoresBoxesBehindRay(t *testing.T) {
	candidates := []TaggedBound{
		{ID: 1, Bounds: AABB{Min: math.Vec3{X: -1, Y: -1, Z: -6}, Max: math.Vec3{X: 1, Y: 1, Z: -4}}},
		{ID: 2, Bounds: AABB{Min: math.Vec3{X: -1, Y: -1, Z: 4}, Max: math.Vec3{X: 1, Y: 1, Z: 6}}},
	}
	r := Ray{Origin: math.Vec3Zero, Dir: math.Vec3{X: 0, Y: 0, Z: 1}}

	assert.Equal(t, 2, Pick(r, candidates))
}

func TestPickFromNilSource(t *testing.T) {
	r := Ray{Origin: math.Vec3Zero, Dir: math.Vec3{X: 0, Y: 0, Z: 1}}
	assert.Equal(t, NoHit, PickFrom(r, nil))
}

type staticBounds []TaggedBound

func (s staticBounds) ObjectBounds() []TaggedBound { return s }

func TestPickFromSource(t *testing.T) {
	r := Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: -2},
		Dir:    math.Vec3{X: 0, Y: 0, Z: 1},
	}

	assert.Equal(t, 0, PickFrom(r, staticBounds(fixedBounds())))
}

func TestScreenToRayCenterLooksAlongView(t *testing.T) {
	camPos := math.Vec3{X: 0, Y: 5, Z: 12}
	target := math.Vec3{X: 0, Y: 0, Z: 0}

	proj := math.Mat4Perspective(math.Radians(80), 16.0/9.0, 0.1, 100)
	view := math.Mat4LookAt(camPos, target, math.Vec3Up)

	r := ScreenToRay(640, 360, 1280, 720, proj, view, camPos)

	require.Equal(t, camPos, r.Origin)
	assert.InDelta(t, 1.0, r.Dir.Length(), 1e-5)

	want := target.Sub(camPos).Normalize()
	assert.InDelta(t, float64(want.X), float64(r.Dir.X), 1e-4)
	assert.InDelta(t, float64(want.Y), float64(r.Dir.Y), 1e-4)
	assert.InDelta(t, float64(want.Z), float64(r.Dir.Z), 1e-4)
}

func TestScreenToRayCornersDiverge(t *testing.T) {
	camPos := math.Vec3{X: 0, Y: 0, Z: 5}
	proj := math.Mat4Perspective(math.Radians(60), 1, 0.1, 100)
	view := math.Mat4LookAt(camPos, math.Vec3Zero, math.Vec3Up)

	left := ScreenToRay(0, 300, 600, 600, proj, view, camPos)
	right := ScreenToRay(600, 300, 600, 600, proj, view, camPos)

	assert.Less(t, left.Dir.X, float32(0))
	assert.Greater(t, right.Dir.X, float32(0))
	// Both still point away from the camera.
	assert.Less(t, left.Dir.Z, float32(0))
	assert.Less(t, right.Dir.Z, float32(0))
}

func BenchmarkPick(b *testing.B) {
	bounds := fixedBounds()
	r := Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: -5},
		Dir:    math.Vec3{X: 0, Y: 0, Z: 1},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Pick(r, bounds)
	}
}
