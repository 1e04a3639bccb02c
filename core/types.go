package core

import (
	"campsite-renderer/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

// Scale multiplies the RGB channels, leaving alpha alone. Used for
// brightness animation such as firelight flicker.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: math.Lerp(c.R, o.R, t),
		G: math.Lerp(c.G, o.G, t),
		B: math.Lerp(c.B, o.B, t),
		A: math.Lerp(c.A, o.A, t),
	}
}

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Color    Color
}

type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3One,
	}
}

// GetMatrix composes the local matrix: scale, then rotation, then
// translation. Mul applies its receiver first, so scale leads the chain.
func (t Transform) GetMatrix() math.Mat4 {
	translation := math.Mat4Translation(t.Position)
	rotation := t.Rotation.ToMat4()
	scale := math.Mat4Scale(t.Scale)
	return scale.Mul(rotation).Mul(translation)
}

func (t Transform) GetForward() math.Vec3 {
	return t.Rotation.RotateVec(math.Vec3Front)
}

func (t Transform) GetRight() math.Vec3 {
	return t.Rotation.RotateVec(math.Vec3Right)
}

func (t Transform) GetUp() math.Vec3 {
	return t.Rotation.RotateVec(math.Vec3Up)
}

type Viewport struct {
	X, Y, Width, Height float32
}
