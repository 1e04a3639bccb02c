package scene

import (
	"testing"

	"campsite-renderer/math"
)

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera(math.Vec3{Y: 5, Z: 12}, 16.0/9.0)

	c.ProcessMouseMovement(0, 10000)
	if c.Pitch > 89 {
		t.Errorf("Pitch: expected clamp at 89, got %v", c.Pitch)
	}

	c.ProcessMouseMovement(0, -20000)
	if c.Pitch < -89 {
		t.Errorf("Pitch: expected clamp at -89, got %v", c.Pitch)
	}
}

func TestCameraScrollClampsSpeed(t *testing.T) {
	c := NewCamera(math.Vec3{}, 1)

	c.ProcessMouseScroll(-1000)
	if c.MovementSpeed != 1 {
		t.Errorf("MovementSpeed: expected floor 1, got %v", c.MovementSpeed)
	}

	c.ProcessMouseScroll(1000)
	if c.MovementSpeed != 50 {
		t.Errorf("MovementSpeed: expected ceiling 50, got %v", c.MovementSpeed)
	}
}

func TestCameraOrthoSnap(t *testing.T) {
	c := NewCamera(math.Vec3{Y: 5, Z: 12}, 1)

	c.SetPerspective(false)
	if c.Perspective {
		t.Fatal("SetPerspective(false): still perspective")
	}
	if c.Front != (math.Vec3{Z: -1}) {
		t.Errorf("ortho Front: expected (0,0,-1), got %v", c.Front)
	}

	// Orthographic projection should ignore the FOV entirely: a point at
	// half the ortho height maps to NDC y=0.5.
	proj := c.GetProjectionMatrix()
	p := proj.MulVec(math.Vec4{X: 0, Y: c.OrthoHeight / 2, Z: -1, W: 1})
	if !almostEqual(p.Y/p.W, 0.5) {
		t.Errorf("ortho projection: expected NDC y=0.5, got %v", p.Y/p.W)
	}

	c.SetPerspective(true)
	if !c.Perspective {
		t.Error("SetPerspective(true): still orthographic")
	}
}

func TestFrustumCullsDistantBox(t *testing.T) {
	c := NewCamera(math.Vec3{Y: 5, Z: 12}, 16.0/9.0)
	vp := c.GetViewProjectionMatrix()
	if vp != c.GetViewMatrix().Mul(c.GetProjectionMatrix()) {
		t.Fatal("view-projection: expected view applied before projection")
	}
	f := FrustumFromVP(vp)

	near := AABB{Min: math.Vec3{X: -1, Y: 0, Z: -1}, Max: math.Vec3{X: 1, Y: 2, Z: 1}}
	if !near.IntersectsFrustum(&f) {
		t.Error("box in front of camera reported outside frustum")
	}

	behind := AABB{
		Min: math.Vec3{X: -1, Y: 0, Z: 500},
		Max: math.Vec3{X: 1, Y: 2, Z: 502},
	}
	if behind.IntersectsFrustum(&f) {
		t.Error("box behind camera reported inside frustum")
	}

	aside := AABB{
		Min: math.Vec3{X: -500, Y: 0, Z: 0},
		Max: math.Vec3{X: -498, Y: 2, Z: 2},
	}
	if aside.IntersectsFrustum(&f) {
		t.Error("box far left of camera reported inside frustum")
	}
}

func TestNodeWorldAABBUnionsChildren(t *testing.T) {
	root := NewNode("root")

	a := NewNode("a")
	a.Mesh = CreateSphere(1, 8, 6)
	a.SetPosition(math.Vec3{X: -5})
	root.AddChild(a)

	b := NewNode("b")
	b.Mesh = CreateSphere(1, 8, 6)
	b.SetPosition(math.Vec3{X: 5})
	root.AddChild(b)

	box, ok := root.WorldAABB()
	if !ok {
		t.Fatal("WorldAABB: no geometry found")
	}
	if box.Min.X > -5.9 || box.Max.X < 5.9 {
		t.Errorf("WorldAABB: expected span past both spheres, got %v to %v", box.Min, box.Max)
	}

	// invisible children are excluded
	b.Visible = false
	box, ok = root.WorldAABB()
	if !ok {
		t.Fatal("WorldAABB: no geometry after hiding one child")
	}
	if box.Max.X > 0 {
		t.Errorf("WorldAABB: hidden child still counted, Max.X=%v", box.Max.X)
	}
}

func TestPrimitivesCenteredOnOrigin(t *testing.T) {
	cyl := CreateCylinder(0.5, 2, 12)
	if !cyl.HasLocalAABB {
		t.Fatal("cylinder: no local AABB")
	}
	if !almostEqual(cyl.LocalAABB.Min.Y, -1) || !almostEqual(cyl.LocalAABB.Max.Y, 1) {
		t.Errorf("cylinder: expected Y span -1..1, got %v..%v",
			cyl.LocalAABB.Min.Y, cyl.LocalAABB.Max.Y)
	}

	cone := CreateCone(1, 3, 12)
	if !almostEqual(cone.LocalAABB.Max.Y, 1.5) {
		t.Errorf("cone: expected apex at 1.5, got %v", cone.LocalAABB.Max.Y)
	}

	box := CreateBox(2, 4, 6)
	if !almostEqual(box.LocalAABB.Max.Z, 3) {
		t.Errorf("box: expected half-depth 3, got %v", box.LocalAABB.Max.Z)
	}
}

func TestComputeAABBAppliesTransform(t *testing.T) {
	mesh := CreateBox(1, 1, 1)
	n := NewNode("n")
	n.Mesh = mesh
	n.SetPosition(math.Vec3{X: 10, Y: 2})
	n.SetScale(math.Vec3{X: 2, Y: 2, Z: 2})

	box := ComputeAABB(mesh, n.GetWorldMatrix())
	if !almostEqual(box.Min.X, 9) || !almostEqual(box.Max.X, 11) {
		t.Errorf("ComputeAABB: expected X 9..11, got %v..%v", box.Min.X, box.Max.X)
	}
	if !almostEqual(box.Min.Y, 1) || !almostEqual(box.Max.Y, 3) {
		t.Errorf("ComputeAABB: expected Y 1..3, got %v..%v", box.Min.Y, box.Max.Y)
	}
}

func TestWorldMatrixComposesScaleThenParent(t *testing.T) {
	// A child's own position must not pick up its scale, and the parent
	// offset applies after the child's local transform.
	parent := NewNode("parent")
	parent.SetPosition(math.Vec3{X: 100})

	child := NewNode("child")
	child.Mesh = CreateBox(1, 1, 1)
	child.SetPosition(math.Vec3{X: 10})
	child.SetScale(math.Vec3{X: 2, Y: 2, Z: 2})
	parent.AddChild(child)

	box := ComputeAABB(child.Mesh, child.GetWorldMatrix())
	if !almostEqual(box.Min.X, 109) || !almostEqual(box.Max.X, 111) {
		t.Errorf("world AABB: expected X 109..111, got %v..%v", box.Min.X, box.Max.X)
	}
}

func TestSparkEmitterSpawnsAndExpires(t *testing.T) {
	e := NewSparkEmitter(64)
	e.Position = math.Vec3{Y: 0.8}

	e.Update(0.5)
	spawned := len(e.Particles)
	if spawned == 0 {
		t.Fatal("emitter spawned no particles after 0.5s")
	}

	for _, p := range e.Particles {
		if p.Life <= 0 {
			t.Error("live particle with non-positive life")
		}
	}

	// long enough for every first-wave particle to die; the emitter keeps
	// spawning so the pool should still be bounded by maxParticles
	for i := 0; i < 100; i++ {
		e.Update(0.1)
	}
	if len(e.Particles) > 64 {
		t.Errorf("emitter exceeded pool size: %d", len(e.Particles))
	}

	e.Active = false
	for i := 0; i < 100; i++ {
		e.Update(0.1)
	}
	if len(e.Particles) != 0 {
		t.Errorf("inactive emitter still has %d particles", len(e.Particles))
	}
}

func TestWireBoxDrawMode(t *testing.T) {
	wb := CreateWireBox()
	if wb.DrawMode != DrawLines {
		t.Errorf("WireBox: expected DrawLines, got %v", wb.DrawMode)
	}
	if len(wb.Indices) != 24 {
		t.Errorf("WireBox: expected 24 line indices, got %d", len(wb.Indices))
	}
}

func almostEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.001
}
