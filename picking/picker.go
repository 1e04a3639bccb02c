package picking

import (
	"github.com/chewxy/math32"

	"campsite-renderer/math"
)

// NoHit is returned by Pick when the ray strikes no candidate.
const NoHit = -1

// TaggedBound pairs a bounding box with an opaque object identifier.
// The identifier is returned verbatim on a winning hit.
type TaggedBound struct {
	ID     int
	Bounds AABB
}

// BoundsSource supplies the current pick candidates, ordered. The scene
// side owns the boxes; Pick only reads them.
type BoundsSource interface {
	ObjectBounds() []TaggedBound
}

// Pick tests the ray against every candidate and returns the identifier of
// the closest hit, or NoHit. Candidates are scanned linearly; n is small
// enough that a broad phase (e.g. a uniform grid walked with 3D-DDA) is
// not worth its bookkeeping here.
//
// Ties on tNear go to the earlier candidate: the comparison against the
// running minimum is strictly less-than.
func Pick(r Ray, candidates []TaggedBound) int {
	closestID := NoHit
	closestT := float32(math32.MaxFloat32)

	for _, c := range candidates {
		t, hit := Intersect(r, c.Bounds)
		if hit && t >= 0 && t < closestT {
			closestT = t
			closestID = c.ID
		}
	}

	return closestID
}

// PickFrom runs Pick against a BoundsSource's current candidates.
func PickFrom(r Ray, src BoundsSource) int {
	if src == nil {
		return NoHit
	}
	return Pick(r, src.ObjectBounds())
}

// ScreenToRay unprojects a cursor position into a world-space ray through
// the camera: screen -> NDC -> inverse projection -> inverse view. The
// returned direction is normalized.
func ScreenToRay(mouseX, mouseY, screenW, screenH float32, proj, view math.Mat4, camPos math.Vec3) Ray {
	ndcX := 2*mouseX/screenW - 1
	ndcY := 1 - 2*mouseY/screenH // screen Y grows downward

	clip := math.Vec4{X: ndcX, Y: ndcY, Z: 0, W: 1}

	viewPt := proj.Inverse().MulVec(clip)
	viewPt = viewPt.Scale(1 / viewPt.W)

	world := view.Inverse().MulVec(math.Vec4{X: viewPt.X, Y: viewPt.Y, Z: viewPt.Z, W: 1})

	dir := world.ToVec3().Sub(camPos).Normalize()
	return Ray{Origin: camPos, Dir: dir}
}
