package campsite

import (
	"fmt"

	"github.com/chewxy/math32"

	"campsite-renderer/core"
	"campsite-renderer/math"
	"campsite-renderer/scene"
)

// fireLightPos is where the campfire point light sits, just above the
// ember bed.
var fireLightPos = math.Vec3{X: 0, Y: 0.8, Z: 0}

// Flame palette, inner core to outer halo.
var (
	flameInner = core.Color{R: 1.00, G: 1.00, B: 0.95, A: 0.98}
	flameMid   = core.Color{R: 1.00, G: 0.75, B: 0.35, A: 0.75}
	flameOuter = core.Color{R: 0.95, G: 0.35, B: 0.05, A: 0.45}

	woodColor  = core.Color{R: 0.50, G: 0.34, B: 0.20, A: 1}
	stoneColor = core.Color{R: 0.45, G: 0.45, B: 0.45, A: 1}
)

// FlameRig describes one animated flame column: its rest pose plus the
// phase seed that drives per-flame turbulence.
type FlameRig struct {
	Node   *scene.Node
	Base   math.Vec3
	Height float32
	Radius float32
	LeanX  float32 // degrees
	Yaw    float32 // degrees
	Roll   float32 // degrees
	Seed   float32
}

// FireRig collects everything the Animator moves each frame.
type FireRig struct {
	Light  *scene.Light
	Flames []*FlameRig
}

// buildCampfire builds the fire: eight radial logs, scattered and ring
// stones, a pebble ground patch, guard boulders, glowing embers and the
// layered cone flames. Returns the animation rig and the subtree root.
func buildCampfire() (*FireRig, *scene.Node) {
	root := scene.NewNode("Campfire")
	rig := &FireRig{
		Light: scene.NewPointLight(fireLightPos, core.Color{R: 1.00, G: 0.70, B: 0.30, A: 1}, 1.0),
	}

	buildLogRing(root)
	buildStones(root)
	buildGroundPatch(root)
	buildGuardBoulders(root)
	buildEmbers(root)
	buildFlames(root, rig)

	return rig, root
}

func barkMaterial(name string, albedo core.Color) *scene.Material {
	m := scene.NewMaterial(name, albedo)
	m.Specular = core.Color{R: 0.08, G: 0.06, B: 0.04, A: 1}
	m.Shininess = 12
	m.UVScale = 2.5
	m.AlbedoTexture = scene.GetTexture("bark")
	return m
}

func stoneMaterial(name, texTag string, shininess float32) *scene.Material {
	m := scene.NewMaterial(name, stoneColor)
	m.Specular = core.Color{R: 0.18, G: 0.18, B: 0.20, A: 1}
	m.Shininess = shininess
	m.UVScale = 1.4
	m.AlbedoTexture = scene.GetTexture(texTag)
	return m
}

// buildLogRing places eight logs radially, tilted up toward the center
// like a teepee laid open.
func buildLogRing(root *scene.Node) {
	const (
		logCount   = 8
		logRadius  = 0.26
		logLength  = 3.20
		tiltUp     = 18.0 // degrees
		liftEps    = 0.20
	)
	ringR := float32(logLength) * 0.60
	logMesh := scene.CreateCylinder(1, 1, 16)
	logMat := barkMaterial("log", woodColor)
	logMat.UVScale = 2.5

	for i := 0; i < logCount; i++ {
		deg := float32(360.0/logCount) * float32(i)
		yawJ := float32(2.0)
		if i%2 != 0 {
			yawJ = -2.0
		}
		rollJ := float32(0.5)
		switch i % 3 {
		case 0:
			rollJ = 1.5
		case 1:
			rollJ = -1.0
		}
		liftJ := [4]float32{0.03, 0.00, 0.02, 0.01}[i%4]

		aRad := math.Radians(deg)
		dir := math.Vec3{X: math32.Cos(aRad), Y: 0, Z: math32.Sin(aRad)}

		halfRise := math32.Sin(math.Radians(tiltUp)) * (logLength / 2)
		center := dir.Scale(-(ringR - logLength/2))
		center.Y = logRadius + halfRise + liftJ + liftEps

		n := scene.NewNode(fmt.Sprintf("log_%d", i))
		n.Mesh = logMesh
		n.Mesh.Material = logMat
		n.SetScale(math.Vec3{X: logRadius, Y: logLength, Z: logRadius})
		n.SetEuler(
			math.Radians(90+tiltUp),
			math.Radians(deg+180+yawJ),
			math.Radians(rollJ),
		)
		n.SetPosition(center)
		root.AddChild(n)
	}
}

// buildStones scatters small stones inside the fire bed and a tighter
// ring of stones around it.
func buildStones(root *scene.Node) {
	const stoneLift = 0.03
	sphere := scene.CreateSphere(1, 12, 8)
	mat := stoneMaterial("stone", "pebblestone", 24)

	rockScale := func(r float32) math.Vec3 {
		return math.Vec3{X: r, Y: r * 0.6, Z: r}
	}

	// inner scattered stones
	const (
		innerCount = 12
		innerRMin  = 0.35
		innerRMax  = 1.10
		baseRadius = 0.25
	)
	for i := 0; i < innerCount; i++ {
		aDeg := float32(360.0/innerCount) * float32(i)
		switch i % 3 {
		case 0:
			aDeg += 12
		case 1:
			aDeg -= 7
		default:
			aDeg += 3
		}
		aRad := math.Radians(aDeg)

		rNorm := float32(i%5) / 4.0
		r := float32(innerRMin) + (innerRMax-innerRMin)*rNorm
		if i%2 == 0 {
			r += 0.06
		} else {
			r -= 0.04
		}

		sNorm := float32((i*37)%100) / 100.0
		rSize := baseRadius*0.55 + (baseRadius*0.90-baseRadius*0.55)*sNorm

		n := scene.NewNode(fmt.Sprintf("stone_inner_%d", i))
		n.Mesh = sphere
		n.Mesh.Material = mat
		n.SetScale(rockScale(rSize))
		n.SetPosition(math.Vec3{
			X: r * math32.Cos(aRad),
			Y: rSize*0.30 + stoneLift,
			Z: r * math32.Sin(aRad),
		})
		root.AddChild(n)
	}

	// mid ring stones
	const (
		ringCount  = 16
		ringRadius = 2.00
	)
	for i := 0; i < ringCount; i++ {
		a := math.Radians(float32(360.0/ringCount) * float32(i))
		rJit := float32(i%3-1) * 0.08

		rSize := float32(baseRadius) * (0.85 + 0.25*float32(i%4)/3.0)

		n := scene.NewNode(fmt.Sprintf("stone_ring_%d", i))
		n.Mesh = sphere
		n.Mesh.Material = mat
		n.SetScale(rockScale(rSize))
		n.SetPosition(math.Vec3{
			X: (ringRadius + rJit) * math32.Cos(a),
			Y: rSize*0.30 + stoneLift,
			Z: (ringRadius + rJit) * math32.Sin(a),
		})
		root.AddChild(n)
	}
}

// buildGroundPatch lays a flat pebble disc under the fire, inside the
// guard ring.
func buildGroundPatch(root *scene.Node) {
	n := scene.NewNode("fire_patch")
	n.Mesh = scene.CreateCylinder(1, 1, 32)
	n.Mesh.Material = stoneMaterial("fire_patch", "pebblestone", 24)
	n.Mesh.Material.UVScale = 1.2
	n.SetScale(math.Vec3{X: 2.95, Y: 0.01, Z: 2.95})
	n.SetPosition(math.Vec3{Y: 0.0065})
	root.AddChild(n)
}

// buildGuardBoulders surrounds the fire with overlapping granite blobs,
// four spheres per boulder for an irregular silhouette.
func buildGuardBoulders(root *scene.Node) {
	const (
		bigCount      = 18
		bigRingRadius = 3.10
		bigBase       = 0.48
	)
	sphere := scene.CreateSphere(1, 12, 8)
	mat := stoneMaterial("boulder", "granite", 32)
	mat.Albedo = core.Color{R: 0.60, G: 0.60, B: 0.62, A: 1}
	mat.Specular = core.Color{R: 0.25, G: 0.25, B: 0.27, A: 1}
	mat.UVScale = 1.2

	sizeJ := [5]float32{1.30, 1.15, 0.95, 1.05, 0.85}

	for i := 0; i < bigCount; i++ {
		a := math.Radians(float32(360.0/bigCount) * float32(i))
		rJit := (float32(i%4) - 1.5) * 0.18

		x := (bigRingRadius + rJit) * math32.Cos(a)
		z := (bigRingRadius + rJit) * math32.Sin(a)

		thisBase := float32(bigBase) * sizeJ[i%5]

		inward := float32(0.05)
		if i%2 != 0 {
			inward = -0.07
		}
		x += inward * math32.Cos(a)
		z += inward * math32.Sin(a)

		s0 := math.Vec3{
			X: thisBase * (1.20 + 0.25*float32((i+1)%3)),
			Y: thisBase * (0.70 + 0.20*float32((i+2)%3)),
			Z: thisBase * (1.10 + 0.30*float32((i+3)%3)),
		}
		s1 := s0.MulEach(math.Vec3{X: 0.70, Y: 0.80, Z: 0.65})
		s2 := s0.MulEach(math.Vec3{X: 0.60, Y: 0.72, Z: 0.78})
		s3 := s0.MulEach(math.Vec3{X: 0.45, Y: 0.55, Z: 0.50})

		flip := float32(1)
		if i%2 != 0 {
			flip = -1
		}
		flip2 := float32(1)
		if (i+1)%2 != 0 {
			flip2 = -1
		}
		off1 := math.Vec3{X: 0.16, Y: 0.04, Z: -0.10}.Scale(flip)
		off2 := math.Vec3{X: -0.12, Y: 0.02, Z: 0.14}.Scale(flip2)
		off3 := math.Vec3{X: 0.04, Y: 0.06, Z: 0.03}

		yHalfMax := math32.Max(math32.Max(s0.Y, s1.Y), math32.Max(s2.Y, s3.Y))
		center := math.Vec3{X: x, Y: 0.03 + yHalfMax*0.30, Z: z}

		blob := scene.NewNode(fmt.Sprintf("boulder_%d", i))
		parts := []struct {
			s   math.Vec3
			off math.Vec3
		}{
			{s0, math.Vec3Zero}, {s1, off1}, {s2, off2}, {s3, off3},
		}
		for pi, part := range parts {
			p := scene.NewNode(fmt.Sprintf("boulder_%d_%d", i, pi))
			p.Mesh = sphere
			p.Mesh.Material = mat
			p.SetScale(part.s)
			p.SetPosition(center.Add(part.off))
			blob.AddChild(p)
		}
		root.AddChild(blob)
	}
}

// emberLayers are the three additive shells of every coal, hot core to
// cool halo. The colors are the rest values the Animator scales.
var emberLayers = []struct {
	name   string
	suffix string
	grow   math.Vec3
	color  core.Color
}{
	{"ember_core", "core", math.Vec3One, core.Color{R: 1.00, G: 0.82, B: 0.35, A: 0.90}},
	{"ember_glow", "glow", math.Vec3{X: 1.35, Y: 1.00, Z: 1.35}, core.Color{R: 1.00, G: 0.55, B: 0.15, A: 0.55}},
	{"ember_halo", "halo", math.Vec3{X: 1.85, Y: 1.00, Z: 1.85}, core.Color{R: 0.92, G: 0.20, B: 0.05, A: 0.35}},
}

// buildEmbers fills the bed with additive glowing coals: a hot core, a
// mid glow shell and a cool halo per ember.
func buildEmbers(root *scene.Node) {
	const (
		emberLift = 0.03
		emberBase = 0.11
		coreCount = 18
		rimCount  = 22
		coreRMin  = 0.20
		coreRMax  = 0.80
		rimR      = 1.25
	)
	sphere := scene.CreateSphere(1, 10, 6)

	coalScale := func(r float32) math.Vec3 {
		return math.Vec3{X: r, Y: r * 0.45, Z: r}
	}

	// One shared material per layer, registered so the Animator can pulse
	// the whole ember bed with the fire flicker.
	for _, layer := range emberLayers {
		mat := scene.NewUnlitMaterial(layer.name, layer.color)
		mat.Additive = true
		scene.RegisterMaterial(mat)
	}

	placeEmber := func(name string, s math.Vec3, p math.Vec3) {
		for _, layer := range emberLayers {
			n := scene.NewNode(name + "_" + layer.suffix)
			n.Mesh = &scene.Mesh{}
			*n.Mesh = *sphere
			n.Mesh.Material = scene.GetMaterial(layer.name)
			n.SetScale(s.MulEach(layer.grow))
			n.SetPosition(p)
			root.AddChild(n)
		}
	}

	for i := 0; i < coreCount; i++ {
		aDeg := float32(360.0/coreCount) * float32(i)
		switch i % 3 {
		case 0:
			aDeg += 8
		case 1:
			aDeg -= 5
		default:
			aDeg += 3
		}
		aRad := math.Radians(aDeg)

		rNorm := float32(i%7) / 6.0
		r := float32(coreRMin) + (coreRMax-coreRMin)*rNorm
		if i%2 == 0 {
			r += 0.04
		} else {
			r -= 0.03
		}

		sNorm := float32((i*37)%100) / 100.0
		s := coalScale(emberBase * (0.85 + 0.35*sNorm))

		placeEmber(fmt.Sprintf("ember_core_%d", i), s, math.Vec3{
			X: r * math32.Cos(aRad),
			Y: emberLift + s.Y*0.30,
			Z: r * math32.Sin(aRad),
		})
	}

	for i := 0; i < rimCount; i++ {
		aDeg := float32(360.0/rimCount) * float32(i)
		switch i % 4 {
		case 0:
			aDeg -= 6
		case 1:
			aDeg += 4
		case 2:
			aDeg -= 2
		default:
			aDeg += 2
		}
		aRad := math.Radians(aDeg)

		rJit := float32(i%3-1) * 0.06
		s := coalScale(emberBase * (0.75 + 0.30*float32(i%5)/4.0))

		placeEmber(fmt.Sprintf("ember_rim_%d", i), s, math.Vec3{
			X: (rimR + rJit) * math32.Cos(aRad),
			Y: emberLift + s.Y*0.30,
			Z: (rimR + rJit) * math32.Sin(aRad),
		})
	}
}

// buildFlames raises the layered cone flames: a small central cluster
// plus a ring of flames near the inner log tips. Each flame is four
// nested cones from white-hot core to red halo; the Animator drives the
// wobble and flicker.
func buildFlames(root *scene.Node, rig *FireRig) {
	const (
		baseLift    = 0.02
		radialCount = 12
		innerRingR  = 0.90
		centerCount = 5

		hCenterMin, hCenterMax = 0.75, 3.15
		rCenterMin, rCenterMax = 0.48, 0.60
		hRingMin, hRingMax     = 0.75, 3.10
		rRingMin, rRingMax     = 0.10, 0.50
	)

	jitter := func(i int, amp float32) float32 {
		if i%2 == 0 {
			return amp
		}
		return -amp
	}

	// central flames
	for i := 0; i < centerCount; i++ {
		tH := float32((i*37)%100) / 100.0
		tR := float32((i*53)%100) / 100.0

		h := math.Lerp(hCenterMin, hCenterMax, tH)
		r := math.Lerp(rCenterMin, rCenterMax, tR)

		aDeg := 360.0 * float32(i) / float32(centerCount)
		aRad := math.Radians(aDeg)
		rad := 0.18 + 0.10*float32(i%3)/2.0

		lean := float32(2.0)
		if i%2 != 0 {
			lean = -2.0
		}

		rig.Flames = append(rig.Flames, newFlame(root,
			fmt.Sprintf("flame_center_%d", i),
			math.Vec3{X: rad * math32.Cos(aRad), Y: baseLift, Z: rad * math32.Sin(aRad)},
			h, r, lean, aDeg+180, jitter(i, 1.5)))
	}

	// ring flames near inner log ends
	for i := 0; i < radialCount; i++ {
		aDeg := float32(360.0/radialCount) * float32(i)
		aRad := math.Radians(aDeg)
		rj := float32(i%3-1) * 0.06

		h := math.Lerp(hRingMin, hRingMax, float32((i*29)%100)/100.0)
		r := math.Lerp(rRingMin, rRingMax, float32((i*47)%100)/100.0)

		rig.Flames = append(rig.Flames, newFlame(root,
			fmt.Sprintf("flame_ring_%d", i),
			math.Vec3{X: (innerRingR + rj) * math32.Cos(aRad), Y: baseLift, Z: (innerRingR + rj) * math32.Sin(aRad)},
			h, r, 6.0+jitter(i, 1.5), aDeg+180, jitter(i, 2.0)))
	}
}

// flame layer shape factors, innermost first.
var flameLayers = []struct {
	radiusF, heightF, yLiftF float32
	color                    func() core.Color
}{
	{0.40, 0.70, 0.15, func() core.Color { c := flameInner; c.A = math.Clamp(c.A*1.2, 0, 1); return c }},
	{0.65, 0.80, 0.08, func() core.Color { return flameMid }},
	{0.90, 0.90, 0.04, func() core.Color { c := flameOuter; c.A *= 0.8; return c }},
	{1.20, 1.10, 0.00, func() core.Color {
		return core.Color{R: flameOuter.R * 0.8, G: flameOuter.G * 0.3, B: flameOuter.B * 0.1, A: flameOuter.A * 0.6}
	}},
}

func newFlame(root *scene.Node, name string, base math.Vec3, h, r, leanX, yaw, roll float32) *FlameRig {
	cone := scene.CreateCone(1, 1, 14)

	pivot := scene.NewNode(name)
	pivot.SetPosition(base)

	for li, layer := range flameLayers {
		mat := scene.NewUnlitMaterial(fmt.Sprintf("%s_l%d", name, li), layer.color())
		mat.Additive = true

		n := scene.NewNode(fmt.Sprintf("%s_l%d", name, li))
		n.Mesh = &scene.Mesh{}
		*n.Mesh = *cone
		n.Mesh.Material = mat
		n.SetScale(math.Vec3{X: r * layer.radiusF, Y: h * layer.heightF, Z: r * layer.radiusF})
		n.SetPosition(math.Vec3{Y: h * layer.heightF * layer.yLiftF})
		pivot.AddChild(n)
	}

	root.AddChild(pivot)

	return &FlameRig{
		Node:   pivot,
		Base:   base,
		Height: h,
		Radius: r,
		LeanX:  leanX,
		Yaw:    yaw,
		Roll:   roll,
		Seed:   base.X*3.17 + base.Z*5.41,
	}
}
