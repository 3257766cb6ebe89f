package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)
	
	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}
	
	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}
	
	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}
	
	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}
	
	// Cross product (Right x Up = Front in right-handed system)
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)
	
	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}
	
	// Check length is 1
	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	
	// Check diagonal is 1
	for i := 0; i < 4; i++ {
		if m[i][i] != 1 {
			t.Errorf("Identity: expected diagonal to be 1, got %v", m[i][i])
		}
	}
	
	// Check non-diagonal is 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j && m[i][j] != 0 {
				t.Errorf("Identity: expected non-diagonal to be 0, got %v", m[i][j])
			}
		}
	}
}

func TestMat4Multiplication(t *testing.T) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()
	
	result := m1.Mul(m2)
	
	// Identity * Identity = Identity
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if result[i][j] != expected {
				t.Errorf("Mul: expected [%d][%d] = %v, got %v", i, j, expected, result[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)
	
	// Check translation components
	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}
	
	// Test transforming a point
	point := NewVec4(0, 0, 0, 1)
	result := point.MulMat(m)
	
	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestQuaternionFromAxisAngleMatchesRotationAxis(t *testing.T) {
	axis := Vec3Up
	angle := float32(math.Pi / 2)

	q := QuaternionFromAxisAngle(axis, angle)
	m := q.ToMat4()

	point := NewVec3(1, 0, 0)
	rotated := m.MulVec3(point)
	expected := NewVec3(0, 0, -1)

	tolerance := float32(0.0001)
	if math.Abs(float64(rotated.X-expected.X)) > float64(tolerance) ||
		math.Abs(float64(rotated.Y-expected.Y)) > float64(tolerance) ||
		math.Abs(float64(rotated.Z-expected.Z)) > float64(tolerance) {
		t.Errorf("ToMat4: expected %v, got %v", expected, rotated)
	}

	// RotateVector must agree with the Mat4 form of the same rotation.
	direct := q.RotateVector(point)
	if math.Abs(float64(direct.X-rotated.X)) > float64(tolerance) ||
		math.Abs(float64(direct.Y-rotated.Y)) > float64(tolerance) ||
		math.Abs(float64(direct.Z-rotated.Z)) > float64(tolerance) {
		t.Errorf("RotateVector: expected agreement with ToMat4, got %v vs %v", direct, rotated)
	}
}

func TestQuaternionIsUnitNorm(t *testing.T) {
	q := QuaternionFromAxisAngle(NewVec3(1, 1, 0), 1.2)
	normSqr := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if math.Abs(float64(normSqr-1)) > 0.0001 {
		t.Errorf("expected unit norm, got %v", normSqr)
	}
}

func TestQuaternionIdentityRotatesNothing(t *testing.T) {
	q := QuaternionIdentity()
	v := NewVec3(2, 3, 4)
	if got := q.RotateVector(v); got != v {
		t.Errorf("identity quaternion: expected %v, got %v", v, got)
	}
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)
	
	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func TestLineAt(t *testing.T) {
	l := NewLine(NewVec3(1, 0, 0), NewVec3(0, 1, 0))
	p := l.At(3)
	expected := NewVec3(1, 3, 0)
	if p != expected {
		t.Errorf("At: expected %v, got %v", expected, p)
	}
}

func TestPlaneIntersect(t *testing.T) {
	plane := NewPlane(Vec3Up, 2)
	l := NewLine(NewVec3(0, 0, 0), NewVec3(0, 1, 0))

	tval, ok := plane.Intersect(l)
	if !ok {
		t.Fatal("Intersect: expected a hit")
	}
	if math.Abs(float64(tval-2)) > 0.0001 {
		t.Errorf("Intersect: expected t=2, got %v", tval)
	}

	parallel := NewLine(NewVec3(0, 2, 0), NewVec3(1, 0, 0))
	if _, ok := plane.Intersect(parallel); ok {
		t.Error("Intersect: expected no hit for a parallel line")
	}
}

func TestPlaneSignedDistance(t *testing.T) {
	plane := NewPlane(Vec3Up, 2)
	if d := plane.SignedDistance(NewVec3(0, 5, 0)); math.Abs(float64(d-3)) > 0.0001 {
		t.Errorf("SignedDistance: expected 3, got %v", d)
	}
	if d := plane.SignedDistance(NewVec3(0, 0, 0)); math.Abs(float64(d+2)) > 0.0001 {
		t.Errorf("SignedDistance: expected -2, got %v", d)
	}
}
