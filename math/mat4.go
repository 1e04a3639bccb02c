package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 float32 matrix stored as [col][row], matching the layout
// OpenGL expects when uploaded with transpose=false. Points transform as
// row vectors: world = local.MulMat(model).
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	return v.MulMat(m)
}

// MulVec3 transforms a point (w=1) and applies the perspective divide.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return m.MulVec(v.ToVec4(1)).ToVec3DivW()
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

func Mat4Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = t.X
	m[3][1] = t.Y
	m[3][2] = t.Z
	return m
}

func Mat4Scale(s Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = s.X
	m[1][1] = s.Y
	m[2][2] = s.Z
	return m
}

func Mat4RotationX(angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationZ(angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Perspective builds a right-handed perspective projection.
// fovY is in radians.
func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	tanHalf := math32.Tan(fovY / 2)
	var m Mat4
	m[0][0] = 1 / (aspect * tanHalf)
	m[1][1] = 1 / tanHalf
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

func Mat4Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	m := Mat4Identity()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)
	m[3][2] = -(far + near) / (far - near)
	return m
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	z := eye.Sub(target).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4{
		{x.X, y.X, z.X, 0},
		{x.Y, y.Y, z.Y, 0},
		{x.Z, y.Z, z.Z, 0},
		{-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1},
	}
}

// Mat4TRS composes scale first, then the X/Y/Z rotations, then the move,
// the same draw-order convention the scene builders use. Mul applies its
// receiver first, so scale leads the chain.
func Mat4TRS(translation, eulerRadians, scale Vec3) Mat4 {
	t := Mat4Translation(translation)
	rz := Mat4RotationZ(eulerRadians.Z)
	ry := Mat4RotationY(eulerRadians.Y)
	rx := Mat4RotationX(eulerRadians.X)
	s := Mat4Scale(scale)
	return s.Mul(rx).Mul(ry).Mul(rz).Mul(t)
}

// Inverse returns the full inverse computed from cofactors. A singular
// matrix yields the identity.
func (m Mat4) Inverse() Mat4 {
	a := m[0][0]
	b := m[0][1]
	c := m[0][2]
	d := m[0][3]
	e := m[1][0]
	f := m[1][1]
	g := m[1][2]
	h := m[1][3]
	i := m[2][0]
	j := m[2][1]
	k := m[2][2]
	l := m[2][3]
	mm := m[3][0]
	n := m[3][1]
	o := m[3][2]
	p := m[3][3]

	kplo := k*p - l*o
	jpln := j*p - l*n
	jokn := j*o - k*n
	iplm := i*p - l*mm
	iokm := i*o - k*mm
	injm := i*n - j*mm

	var inv Mat4
	inv[0][0] = f*kplo - g*jpln + h*jokn
	inv[0][1] = -(b*kplo - c*jpln + d*jokn)
	inv[1][0] = -(e*kplo - g*iplm + h*iokm)
	inv[1][1] = a*kplo - c*iplm + d*iokm
	inv[2][0] = e*jpln - f*iplm + h*injm
	inv[2][1] = -(a*jpln - b*iplm + d*injm)
	inv[3][0] = -(e*jokn - f*iokm + g*injm)
	inv[3][1] = a*jokn - b*iokm + c*injm

	gpho := g*p - h*o
	fphn := f*p - h*n
	fogn := f*o - g*n
	ephm := e*p - h*mm
	eogm := e*o - g*mm
	enfm := e*n - f*mm

	inv[0][2] = b*gpho - c*fphn + d*fogn
	inv[0][3] = -(b*(g*l-h*k) - c*(f*l-h*j) + d*(f*k-g*j))
	inv[1][2] = -(a*gpho - c*ephm + d*eogm)
	inv[1][3] = a*(g*l-h*k) - c*(e*l-h*i) + d*(e*k-g*i)
	inv[2][2] = a*fphn - b*ephm + d*enfm
	inv[2][3] = -(a*(f*l-h*j) - b*(e*l-h*i) + d*(e*j-f*i))
	inv[3][2] = -(a*fogn - b*eogm + c*enfm)
	inv[3][3] = a*(f*k-g*j) - b*(e*k-g*i) + c*(e*j-f*i)

	det := a*inv[0][0] + b*inv[1][0] + c*inv[2][0] + d*inv[3][0]
	if det == 0 {
		return Mat4Identity()
	}

	invDet := 1 / det
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			inv[col][row] *= invDet
		}
	}
	return inv
}
