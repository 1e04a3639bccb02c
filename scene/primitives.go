package scene

import (
	"github.com/chewxy/math32"

	"campsite-renderer/core"
	"campsite-renderer/math"
)

var primitiveColor = core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1.0}

// CreateSphere generates a UV-sphere mesh.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi := math32.Sin(phi)
		cosPhi := math32.Cos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			sinTheta := math32.Sin(theta)
			cosTheta := math32.Cos(theta)

			normal := math.Vec3{X: sinPhi * cosTheta, Y: cosPhi, Z: sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Scale(radius),
				Normal:   normal,
				UV:       math.Vec2{X: float32(seg) / float32(segments), Y: float32(ring) / float32(rings)},
				Color:    primitiveColor,
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateCylinder generates a cylinder mesh with capped ends.
func CreateCylinder(radius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	halfHeight := height / 2

	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		cosT := math32.Cos(theta)
		sinT := math32.Sin(theta)
		normal := math.Vec3{X: cosT, Y: 0, Z: sinT}
		u := float32(i) / float32(segments)

		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT * radius, Y: -halfHeight, Z: sinT * radius},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 0},
			Color:    primitiveColor,
		})
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT * radius, Y: halfHeight, Z: sinT * radius},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 1},
			Color:    primitiveColor,
		})
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	appendCap := func(y float32, normal math.Vec3, flip bool) {
		center := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: 0, Y: y, Z: 0},
			Normal:   normal,
			UV:       math.Vec2{X: 0.5, Y: 0.5},
			Color:    primitiveColor,
		})

		for i := 0; i < segments; i++ {
			theta := float32(i) * 2 * math32.Pi / float32(segments)
			nextTheta := float32(i+1) * 2 * math32.Pi / float32(segments)
			cosT, sinT := math32.Cos(theta), math32.Sin(theta)
			cosN, sinN := math32.Cos(nextTheta), math32.Sin(nextTheta)

			v1 := uint32(len(vertices))
			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: cosT * radius, Y: y, Z: sinT * radius},
				Normal:   normal,
				UV:       math.Vec2{X: cosT*0.5 + 0.5, Y: sinT*0.5 + 0.5},
				Color:    primitiveColor,
			})
			v2 := uint32(len(vertices))
			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: cosN * radius, Y: y, Z: sinN * radius},
				Normal:   normal,
				UV:       math.Vec2{X: cosN*0.5 + 0.5, Y: sinN*0.5 + 0.5},
				Color:    primitiveColor,
			})
			if flip {
				indices = append(indices, center, v2, v1)
			} else {
				indices = append(indices, center, v1, v2)
			}
		}
	}

	appendCap(halfHeight, math.Vec3Up, false)
	appendCap(-halfHeight, math.Vec3Down, true)

	return CreateMeshFromData("Cylinder", vertices, indices)
}

// CreateCone generates a cone mesh with the apex at +height/2.
func CreateCone(radius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	halfHeight := height / 2

	tipIdx := uint32(0)
	vertices = append(vertices, core.Vertex{
		Position: math.Vec3{X: 0, Y: halfHeight, Z: 0},
		Normal:   math.Vec3Up,
		UV:       math.Vec2{X: 0.5, Y: 0},
		Color:    primitiveColor,
	})

	slopeAngle := math32.Atan2(radius, height)
	ny := math32.Cos(slopeAngle)
	nr := math32.Sin(slopeAngle)

	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		cosT := math32.Cos(theta)
		sinT := math32.Sin(theta)

		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT * radius, Y: -halfHeight, Z: sinT * radius},
			Normal:   math.Vec3{X: cosT * nr, Y: ny, Z: sinT * nr}.Normalize(),
			UV:       math.Vec2{X: float32(i) / float32(segments), Y: 1},
			Color:    primitiveColor,
		})
	}

	for i := 0; i < segments; i++ {
		indices = append(indices, tipIdx, uint32(i+1), uint32(i+2))
	}

	botCenter := uint32(len(vertices))
	vertices = append(vertices, core.Vertex{
		Position: math.Vec3{X: 0, Y: -halfHeight, Z: 0},
		Normal:   math.Vec3Down,
		UV:       math.Vec2{X: 0.5, Y: 0.5},
		Color:    primitiveColor,
	})

	for i := 0; i < segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		nextTheta := float32(i+1) * 2 * math32.Pi / float32(segments)
		cosT, sinT := math32.Cos(theta), math32.Sin(theta)
		cosN, sinN := math32.Cos(nextTheta), math32.Sin(nextTheta)

		v1 := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT * radius, Y: -halfHeight, Z: sinT * radius},
			Normal:   math.Vec3Down,
			UV:       math.Vec2{X: cosT*0.5 + 0.5, Y: sinT*0.5 + 0.5},
			Color:    primitiveColor,
		})
		v2 := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosN * radius, Y: -halfHeight, Z: sinN * radius},
			Normal:   math.Vec3Down,
			UV:       math.Vec2{X: cosN*0.5 + 0.5, Y: sinN*0.5 + 0.5},
			Color:    primitiveColor,
		})
		indices = append(indices, botCenter, v2, v1)
	}

	return CreateMeshFromData("Cone", vertices, indices)
}

// CreateTorus generates a torus mesh lying in the XZ plane.
func CreateTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int) *Mesh {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	for i := 0; i <= majorSegments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(majorSegments)
		cosTheta := math32.Cos(theta)
		sinTheta := math32.Sin(theta)

		for j := 0; j <= minorSegments; j++ {
			phi := float32(j) * 2 * math32.Pi / float32(minorSegments)
			cosPhi := math32.Cos(phi)
			sinPhi := math32.Sin(phi)

			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{
					X: (majorRadius + minorRadius*cosPhi) * cosTheta,
					Y: minorRadius * sinPhi,
					Z: (majorRadius + minorRadius*cosPhi) * sinTheta,
				},
				Normal: math.Vec3{X: cosPhi * cosTheta, Y: sinPhi, Z: cosPhi * sinTheta}.Normalize(),
				UV:     math.Vec2{X: float32(i) / float32(majorSegments), Y: float32(j) / float32(minorSegments)},
				Color:  primitiveColor,
			})
		}
	}

	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			current := uint32(i*(minorSegments+1) + j)
			next := uint32((i+1)*(minorSegments+1) + j)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Torus", vertices, indices)
}

// CreatePlane generates a flat plane mesh in the XZ plane, facing up.
func CreatePlane(width, depth float32, subdivisions int) *Mesh {
	if subdivisions < 1 {
		subdivisions = 1
	}

	var vertices []core.Vertex
	var indices []uint32

	halfW := width / 2
	halfD := depth / 2

	for z := 0; z <= subdivisions; z++ {
		for x := 0; x <= subdivisions; x++ {
			u := float32(x) / float32(subdivisions)
			v := float32(z) / float32(subdivisions)

			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{
					X: -halfW + u*width,
					Y: 0,
					Z: -halfD + v*depth,
				},
				Normal: math.Vec3Up,
				UV:     math.Vec2{X: u, Y: v},
				Color:  primitiveColor,
			})
		}
	}

	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			topLeft := uint32(z*(subdivisions+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(subdivisions+1)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	return CreateMeshFromData("Plane", vertices, indices)
}

// CreatePyramid generates a pyramid with a square base, apex at +height/2.
func CreatePyramid(width, height float32) *Mesh {
	var vertices []core.Vertex
	var indices []uint32

	halfW := width / 2
	halfH := height / 2
	tip := math.Vec3{X: 0, Y: halfH, Z: 0}

	base := [4]math.Vec3{
		{X: -halfW, Y: -halfH, Z: -halfW},
		{X: halfW, Y: -halfH, Z: -halfW},
		{X: halfW, Y: -halfH, Z: halfW},
		{X: -halfW, Y: -halfH, Z: halfW},
	}

	// Base face, wound to face down.
	for i, p := range base {
		vertices = append(vertices, core.Vertex{
			Position: p,
			Normal:   math.Vec3Down,
			UV:       math.Vec2{X: float32(i & 1), Y: float32(i >> 1)},
			Color:    primitiveColor,
		})
	}
	indices = append(indices, 0, 2, 1, 0, 3, 2)

	// Four slanted faces, each with its own normal.
	for i := 0; i < 4; i++ {
		a := base[i]
		b := base[(i+1)%4]
		normal := b.Sub(a).Cross(tip.Sub(a)).Normalize().Negate()

		start := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: normal, UV: math.Vec2{X: 0, Y: 0}, Color: primitiveColor},
			core.Vertex{Position: b, Normal: normal, UV: math.Vec2{X: 1, Y: 0}, Color: primitiveColor},
			core.Vertex{Position: tip, Normal: normal, UV: math.Vec2{X: 0.5, Y: 1}, Color: primitiveColor},
		)
		indices = append(indices, start, start+2, start+1)
	}

	return CreateMeshFromData("Pyramid", vertices, indices)
}
