package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got, want := v1.Add(v2), NewVec3(5, 7, 9); got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}

	if got, want := v2.Sub(v1), NewVec3(3, 3, 3); got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}

	if got, want := v1.Scale(2), NewVec3(2, 4, 6); got != want {
		t.Errorf("Scale: expected %v, got %v", want, got)
	}

	if got, want := v1.Dot(v2), float32(32); got != want {
		t.Errorf("Dot: expected %v, got %v", want, got)
	}

	// Right x Up = Front in the right-handed system
	if got := Vec3Right.Cross(Vec3Up); got != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	if got, want := v.Normalize(), NewVec3(1, 0, 0); got != want {
		t.Errorf("Normalize: expected %v, got %v", want, got)
	}

	l := NewVec3(1, 2, 3).Normalize().Length()
	if math32.Abs(l-1) > 1e-4 {
		t.Errorf("Normalize: expected unit length, got %v", l)
	}

	// The zero vector stays zero instead of producing NaN
	if got := Vec3Zero.Normalize(); got != Vec3Zero {
		t.Errorf("Normalize: zero vector should stay zero, got %v", got)
	}
}

func TestVec3Component(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for axis, want := range []float32{7, 8, 9} {
		if got := v.Component(axis); got != want {
			t.Errorf("Component(%d): expected %v, got %v", axis, want, got)
		}
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if m[i][j] != want {
				t.Errorf("Identity[%d][%d]: expected %v, got %v", i, j, want, m[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	m := Mat4Translation(NewVec3(1, 2, 3))
	got := m.MulVec3(Vec3Zero)
	if got != NewVec3(1, 2, 3) {
		t.Errorf("Translation: expected (1,2,3), got %v", got)
	}
}

func TestMat4LookAtMovesEyeToOrigin(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	m := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	got := m.MulVec3(eye)
	const tol = 1e-3
	if math32.Abs(got.X) > tol || math32.Abs(got.Y) > tol || math32.Abs(got.Z) > tol {
		t.Errorf("LookAt: expected eye at origin, got %v", got)
	}
}

func TestMat4TRSScalesBeforeTranslating(t *testing.T) {
	m := Mat4TRS(NewVec3(10, 0, 0), Vec3Zero, NewVec3(2, 2, 2))

	// The translation itself must not be scaled.
	if got := m.MulVec3(Vec3Zero); got != NewVec3(10, 0, 0) {
		t.Errorf("TRS: expected origin at (10,0,0), got %v", got)
	}
	if got := m.MulVec3(NewVec3(1, 0, 0)); got != NewVec3(12, 0, 0) {
		t.Errorf("TRS: expected (12,0,0), got %v", got)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Mat4TRS(
		NewVec3(3, -2, 7),
		NewVec3(0.4, 1.1, -0.3),
		NewVec3(2, 2, 2),
	)

	round := m.Mul(m.Inverse())
	id := Mat4Identity()
	const tol = 1e-4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math32.Abs(round[i][j]-id[i][j]) > tol {
				t.Fatalf("Inverse: M*M^-1 differs from identity at [%d][%d]: %v", i, j, round[i][j])
			}
		}
	}
}

func TestMat4InverseUnprojectsPoint(t *testing.T) {
	proj := Mat4Perspective(Radians(60), 16.0/9.0, 0.1, 100)
	view := Mat4LookAt(NewVec3(0, 5, 12), Vec3Zero, Vec3Up)

	world := NewVec3(1, 2, -3)
	clip := view.Mul(proj).MulVec3(world)
	back := proj.Inverse().MulVec3(clip)
	back = view.Inverse().MulVec3(back)

	const tol = 1e-3
	if back.Distance(world) > tol {
		t.Errorf("unproject round trip: expected %v, got %v", world, back)
	}
}

func TestQuatRotation(t *testing.T) {
	// 90 degrees around Y rotates +X onto -Z
	q := QuatFromAxisAngle(Vec3Up, math32.Pi/2)
	got := q.RotateVec(Vec3Right)

	const tol = 1e-3
	if math32.Abs(got.X) > tol || math32.Abs(got.Y) > tol || math32.Abs(got.Z+1) > tol {
		t.Errorf("RotateVec: expected approximately (0,0,-1), got %v", got)
	}
}

func TestQuatToMat4MatchesRotateVec(t *testing.T) {
	q := QuatFromEuler(0.3, -0.8, 1.2)
	v := NewVec3(1.5, -2, 0.5)

	byQuat := q.RotateVec(v)
	byMat := q.ToMat4().MulVec3(v)

	const tol = 1e-4
	if byQuat.Distance(byMat) > tol {
		t.Errorf("ToMat4: quaternion path %v, matrix path %v", byQuat, byMat)
	}
}

func TestClampAndLerp(t *testing.T) {
	if got := Clamp(5, 1, 3); got != 3 {
		t.Errorf("Clamp: expected 3, got %v", got)
	}
	if got := Clamp(-1, 1, 3); got != 1 {
		t.Errorf("Clamp: expected 1, got %v", got)
	}
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp: expected 3, got %v", got)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4TRS(NewVec3(1, 2, 3), NewVec3(0.1, 0.2, 0.3), Vec3One)
	m2 := Mat4TRS(NewVec3(-3, 0, 1), NewVec3(0.5, 0, 0), Vec3One)

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
