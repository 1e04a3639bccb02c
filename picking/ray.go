// Package picking selects scene objects by casting a world-space ray
// against axis-aligned bounding boxes. It is pure computation with no
// shared state, so it is safe to call from multiple goroutines on
// disjoint inputs.
package picking

import (
	"github.com/chewxy/math32"

	"campsite-renderer/math"
)

// epsilon below which a direction component counts as parallel to a slab.
const epsilon = 1e-6

// Ray is a world-space ray. Dir must be normalized by the caller; the
// intersection math stays finite for any non-zero vector but the reported
// distances are only meaningful for unit directions.
type Ray struct {
	Origin math.Vec3
	Dir    math.Vec3
}

// AABB is an axis-aligned box given by two opposite corners.
// Min must be componentwise <= Max. Zero-extent axes are legal; the slab
// test degenerates to a plane test on those axes.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// Contains reports whether p lies inside the box, boundary inclusive.
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersect runs the slab-method ray/AABB test and returns the parametric
// distance to the nearest intersection.
//
// An origin inside the box (inclusive) is an immediate hit at t = 0.
// Otherwise each axis narrows the valid [tMin, tMax] interval; a direction
// component below epsilon is treated as parallel, which is an outright miss
// when the origin is outside that slab and a no-op otherwise.
//
// When tMin ends up negative but tMax is still ahead of the origin, the hit
// is reported at tMax: boxes that straddle the origin report the exit
// distance instead of missing.
func Intersect(r Ray, box AABB) (tNear float32, hit bool) {
	if box.Contains(r.Origin) {
		return 0, true
	}

	tMin := float32(0)
	tMax := float32(math32.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		d := r.Dir.Component(axis)
		o := r.Origin.Component(axis)

		if math32.Abs(d) < epsilon {
			// Parallel to this slab: the interval never narrows, so the
			// origin must already sit between the two planes.
			if o < box.Min.Component(axis) || o > box.Max.Component(axis) {
				return 0, false
			}
			continue
		}

		invD := 1 / d
		t0 := (box.Min.Component(axis) - o) * invD
		t1 := (box.Max.Component(axis) - o) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, false
		}
	}

	if tMin >= 0 {
		return tMin, true
	}
	if tMax >= 0 {
		return tMax, true
	}
	return 0, false
}
