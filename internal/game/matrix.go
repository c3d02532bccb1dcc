package game

import "math"

// Mat4 is a column-major 4x4 matrix, the layout OpenGL's uniform matrix
// upload expects directly.
type Mat4 [16]float32

func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns a*b (applies b first, then a).
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// ModelFromBasis builds the rigid transform placing an object at pos with
// the given orthonormal forward/up/right basis, uniformly scaled.
func ModelFromBasis(pos Vector3, forward, up, right Vector3, scale float64) Mat4 {
	s := float32(scale)
	return Mat4{
		float32(right.X) * s, float32(right.Y) * s, float32(right.Z) * s, 0,
		float32(up.X) * s, float32(up.Y) * s, float32(up.Z) * s, 0,
		float32(forward.X) * s, float32(forward.Y) * s, float32(forward.Z) * s, 0,
		float32(pos.X), float32(pos.Y), float32(pos.Z), 1,
	}
}

// LookAt builds a right-handed view matrix.
func LookAt(eye, center, up Vector3) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)
	return Mat4{
		float32(s.X), float32(u.X), float32(-f.X), 0,
		float32(s.Y), float32(u.Y), float32(-f.Y), 0,
		float32(s.Z), float32(u.Z), float32(-f.Z), 0,
		float32(-s.Dot(eye)), float32(-u.Dot(eye)), float32(f.Dot(eye)), 1,
	}
}

// Perspective builds a right-handed perspective projection matrix with
// fovY in radians and OpenGL's [-1, 1] NDC depth range.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovY/2)
	var m Mat4
	m[0] = float32(f / aspect)
	m[5] = float32(f)
	m[10] = float32((far + near) / (near - far))
	m[11] = -1
	m[14] = float32((2 * far * near) / (near - far))
	return m
}
