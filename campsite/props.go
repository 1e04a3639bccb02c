package campsite

import (
	"fmt"

	"github.com/chewxy/math32"

	"campsite-renderer/core"
	"campsite-renderer/math"
	"campsite-renderer/scene"
)

// moonPosition is where the moon disc hangs; the directional moonlight
// aims from here toward the fire.
var moonPosition = math.Vec3{X: 0.5, Y: 10.2, Z: -6}

// buildGround adds the grass terrain and the dark backdrop wall. The
// ground node is tagged so the renderer can hide it in the top-down
// orthographic view.
func buildGround(s *scene.Scene) {
	grass := scene.NewMaterial("ground", core.Color{R: 0.20, G: 0.32, B: 0.16, A: 1})
	grass.Specular = core.Color{R: 0.20, G: 0.20, B: 0.20, A: 1}
	grass.Shininess = 16
	grass.UVScale = 12
	grass.AlbedoTexture = scene.GetTexture("grass")

	ground := scene.NewNode("Ground")
	ground.Mesh = scene.CreatePlane(1, 1, 1)
	ground.Mesh.Material = grass
	ground.SetScale(math.Vec3{X: 40, Y: 1, Z: 20})
	ground.SetPosition(math.Vec3{Z: -2})
	ground.HideInOrtho = true
	s.AddNode(ground)

	backdrop := scene.NewUnlitMaterial("backdrop", core.Color{R: 0.02, G: 0.03, B: 0.08, A: 1})
	backdrop.UVScale = 0.5

	wall := scene.NewNode("Backdrop")
	wall.Mesh = scene.CreatePlane(1, 1, 1)
	wall.Mesh.Material = backdrop
	wall.SetScale(math.Vec3{X: 60, Y: 1, Z: 30})
	wall.SetEuler(math.Radians(90), 0, 0)
	wall.SetPosition(math.Vec3{Y: 10, Z: -12})
	wall.HideInOrtho = true
	s.AddNode(wall)
}

// buildTent raises the A-frame tent: a stretched cone canopy over a
// center pole, staked down with guy lines.
func buildTent() *scene.Node {
	center := math.Vec3{X: -7, Y: 0, Z: -6}
	root := scene.NewNode("Tent")

	canvas := scene.NewMaterial("tent_canvas", core.Color{R: 0.72, G: 0.66, B: 0.52, A: 1})
	canvas.Specular = core.Color{R: 0.10, G: 0.10, B: 0.10, A: 1}
	canvas.Shininess = 8
	canvas.UVScale = 2
	canvas.AlbedoTexture = scene.GetTexture("canvas")

	canopy := scene.NewNode("tent_canopy")
	canopy.Mesh = scene.CreateCone(1, 1, 24)
	canopy.Mesh.Material = canvas
	canopy.SetScale(math.Vec3{X: 3.9, Y: 8.5, Z: 6.5})
	canopy.SetEuler(0, math.Radians(300), 0)
	canopy.SetPosition(center.Add(math.Vec3{Y: 0.1 + 8.5/2}))
	root.AddChild(canopy)

	pole := scene.NewMaterial("tent_pole", woodColor)
	pole.Shininess = 12
	pole.AlbedoTexture = scene.GetTexture("bark")

	poleNode := scene.NewNode("tent_pole")
	poleNode.Mesh = scene.CreateCylinder(1, 1, 12)
	poleNode.Mesh.Material = pole
	poleNode.SetScale(math.Vec3{X: 0.08, Y: 9, Z: 0.08})
	poleNode.SetPosition(center.Add(math.Vec3{Y: 9.0 / 2}))
	root.AddChild(poleNode)

	stakeMat := scene.NewMaterial("tent_stake", core.Color{R: 0.35, G: 0.25, B: 0.15, A: 1})
	stakeMat.Shininess = 10
	stakeMat.AlbedoTexture = scene.GetTexture("bark")

	ropeMat := scene.NewMaterial("tent_rope", core.Color{R: 0.75, G: 0.70, B: 0.55, A: 1})
	ropeMat.Shininess = 4
	ropeMat.UVScale = 6
	ropeMat.AlbedoTexture = scene.GetTexture("rope")

	stakeMesh := scene.CreateCylinder(1, 1, 8)
	ropeMesh := scene.CreateCylinder(1, 1, 6)
	poleTop := center.Add(math.Vec3{Y: 9})

	stakeOffsets := []math.Vec3{
		{X: 5.5, Y: 0, Z: 0.5},
		{X: -1.2, Y: 0, Z: 4.9},
		{X: -4, Y: 0, Z: -2.5},
		{X: 5.5, Y: 0, Z: -4},
		{X: -5.9, Y: 0, Z: 0.10},
	}
	for i, off := range stakeOffsets {
		pos := center.Add(off)

		stake := scene.NewNode(fmt.Sprintf("tent_stake_%d", i))
		stake.Mesh = stakeMesh
		stake.Mesh.Material = stakeMat
		stake.SetScale(math.Vec3{X: 0.04, Y: 0.3, Z: 0.04})
		yaw := math32.Atan2(center.X-pos.X, center.Z-pos.Z)
		stake.SetEuler(0, yaw, 0)
		stake.SetPosition(math.Vec3{X: pos.X, Y: 0.15, Z: pos.Z})
		root.AddChild(stake)

		stakeTop := math.Vec3{X: pos.X, Y: 0.3, Z: pos.Z}
		root.AddChild(cylinderBetween(
			fmt.Sprintf("tent_guy_%d", i), ropeMesh, ropeMat, poleTop, stakeTop, 0.02))
	}

	return root
}

// cylinderBetween stretches a unit cylinder so it spans from a to b
// with the given radius. Used for guy lines and similar thin spans.
func cylinderBetween(name string, mesh *scene.Mesh, mat *scene.Material, a, b math.Vec3, radius float32) *scene.Node {
	d := b.Sub(a)
	length := d.Length()

	n := scene.NewNode(name)
	n.Mesh = &scene.Mesh{}
	*n.Mesh = *mesh
	n.Mesh.Material = mat
	n.SetScale(math.Vec3{X: radius, Y: length, Z: radius})
	if length > 1e-6 {
		n.SetRotation(math.QuatBetween(math.Vec3Up, d.Scale(1 / length)))
	}
	n.SetPosition(a.Add(d.Scale(0.5)))
	return n
}

// buildBackpack assembles the leather pack from boxes: body, straps,
// flaps, buckle and a front pocket, all sharing one yaw so the pack
// faces the fire.
func buildBackpack() *scene.Node {
	center := math.Vec3{X: -5.5, Y: 0, Z: 1}
	yaw := math.Radians(225)
	root := scene.NewNode("Backpack")

	canvas := scene.NewMaterial("pack_canvas", core.Color{R: 0.45, G: 0.38, B: 0.28, A: 1})
	canvas.Specular = core.Color{R: 0.12, G: 0.12, B: 0.12, A: 1}
	canvas.Shininess = 10
	canvas.AlbedoTexture = scene.GetTexture("canvas2")

	leather := scene.NewMaterial("pack_leather", core.Color{R: 0.50, G: 0.36, B: 0.22, A: 1})
	leather.Specular = core.Color{R: 0.20, G: 0.16, B: 0.10, A: 1}
	leather.Shininess = 18
	leather.AlbedoTexture = scene.GetTexture("tan-leather")

	brass := scene.NewMaterial("pack_buckle", core.Color{R: 0.85, G: 0.70, B: 0.30, A: 1})
	brass.Specular = core.Color{R: 0.80, G: 0.75, B: 0.50, A: 1}
	brass.Shininess = 64

	// yaw-rotates a local offset around the pack center.
	place := func(off math.Vec3) math.Vec3 {
		c, s := math32.Cos(yaw), math32.Sin(yaw)
		return center.Add(math.Vec3{
			X: off.X*c + off.Z*s,
			Y: off.Y,
			Z: -off.X*s + off.Z*c,
		})
	}

	addBox := func(name string, mat *scene.Material, size, off math.Vec3) {
		n := scene.NewNode(name)
		n.Mesh = scene.CreateBox(size.X, size.Y, size.Z)
		n.Mesh.Material = mat
		n.SetEuler(0, yaw, 0)
		n.SetPosition(place(off))
		root.AddChild(n)
	}

	addBox("pack_body", canvas, math.Vec3{X: 1.6, Y: 2.5, Z: 0.8}, math.Vec3{Y: 1.25})
	addBox("pack_strap_l", leather, math.Vec3{X: 0.08, Y: 2.2, Z: 0.12}, math.Vec3{X: -0.45, Y: 1.25, Z: -0.46})
	addBox("pack_strap_r", leather, math.Vec3{X: 0.08, Y: 2.2, Z: 0.12}, math.Vec3{X: 0.45, Y: 1.25, Z: -0.46})
	addBox("pack_top_flap", leather, math.Vec3{X: 1.6, Y: 0.15, Z: 0.8}, math.Vec3{Y: 2.575})
	addBox("pack_front_flap", leather, math.Vec3{X: 1.3, Y: 1.0, Z: 0.02}, math.Vec3{X: 0.3, Y: 2.0, Z: 0.27})
	addBox("pack_buckle", brass, math.Vec3{X: 0.3, Y: 0.05, Z: 0.04}, math.Vec3{X: 0.3, Y: 1.475, Z: 0.28})
	addBox("pack_pocket", canvas, math.Vec3{X: 1.6, Y: 1.0, Z: 0.02}, math.Vec3{X: 0.30, Y: 0.65, Z: 0.30})

	return root
}

// buildPineTree stacks a trunk and four foliage tiers; each tier is a
// main cone with a sphere cap and two smaller offset cones for an
// uneven silhouette.
func buildPineTree() *scene.Node {
	center := math.Vec3{X: 6, Y: 0, Z: -6}
	root := scene.NewNode("Tree")

	bark := barkMaterial("tree_trunk", core.Color{R: 0.38, G: 0.26, B: 0.16, A: 1})

	const (
		trunkH  = 4.0
		trunkR  = 0.6
		treeH   = 12.0
		canopyR = 3.5
	)

	trunk := scene.NewNode("tree_trunk")
	trunk.Mesh = scene.CreateCylinder(1, 1, 14)
	trunk.Mesh.Material = bark
	trunk.SetScale(math.Vec3{X: trunkR, Y: trunkH, Z: trunkR})
	trunk.SetPosition(center.Add(math.Vec3{Y: trunkH / 2}))
	root.AddChild(trunk)

	needles := scene.NewMaterial("tree_needles", core.Color{R: 0.25, G: 0.45, B: 0.25, A: 1})
	needles.Specular = core.Color{R: 0.06, G: 0.10, B: 0.06, A: 1}
	needles.Shininess = 6
	needles.UVScale = 3
	needles.AlbedoTexture = scene.GetTexture("pine-needle")

	coneMesh := scene.CreateCone(1, 1, 16)
	capMesh := scene.CreateSphere(1, 10, 6)

	tiers := []struct {
		frac, heightF, radiusF float32
	}{
		{0.00, 0.35, 1.00},
		{0.12, 0.30, 0.75},
		{0.24, 0.25, 0.55},
		{0.36, 0.20, 0.35},
	}
	for i, tier := range tiers {
		baseY := trunkH + tier.frac*treeH
		h := treeH * tier.heightF
		r := canopyR * tier.radiusF

		main := scene.NewNode(fmt.Sprintf("tree_tier_%d", i))
		main.Mesh = coneMesh
		main.Mesh.Material = needles
		main.SetScale(math.Vec3{X: r, Y: h, Z: r})
		main.SetPosition(center.Add(math.Vec3{Y: baseY + h/2}))
		root.AddChild(main)

		cap := scene.NewNode(fmt.Sprintf("tree_tier_%d_cap", i))
		cap.Mesh = &scene.Mesh{}
		*cap.Mesh = *capMesh
		cap.Mesh.Material = needles
		cap.SetScale(math.Vec3{X: r * 0.45, Y: r * 0.35, Z: r * 0.45})
		cap.SetPosition(center.Add(math.Vec3{Y: baseY + h*0.15}))
		root.AddChild(cap)

		for j := 0; j < 2; j++ {
			side := float32(1)
			if j != 0 {
				side = -1
			}
			sub := scene.NewNode(fmt.Sprintf("tree_tier_%d_sub_%d", i, j))
			sub.Mesh = &scene.Mesh{}
			*sub.Mesh = *coneMesh
			sub.Mesh.Material = needles
			sub.SetScale(math.Vec3{X: r * 0.55, Y: h * 0.7, Z: r * 0.55})
			sub.SetPosition(center.Add(math.Vec3{
				X: side * r * 0.35,
				Y: baseY + h*0.7/2 - 0.1,
				Z: -side * r * 0.25,
			}))
			root.AddChild(sub)
		}
	}

	return root
}

// buildMoon hangs a small unlit sphere in the sky. It renders additive
// with no depth write so it reads as a glow rather than a solid ball.
func buildMoon() *scene.Node {
	mat := scene.NewUnlitMaterial("moon", core.Color{R: 0.92, G: 0.93, B: 0.98, A: 1})
	mat.Additive = true
	mat.UVScale = 1
	mat.AlbedoTexture = scene.GetTexture("moon")

	moon := scene.NewNode("Moon")
	moon.Mesh = scene.CreateSphere(1, 24, 16)
	moon.Mesh.Material = mat
	moon.SetScale(math.Vec3{X: 0.75, Y: 0.75, Z: 0.75})
	moon.SetPosition(moonPosition)
	return moon
}
