package rasterlab

// Mat4 is a column-major 4x4 matrix, the order glUniformMatrix4fv expects
// with transpose disabled.
type Mat4 [16]float32

// Ortho creates an orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

// Ortho100 maps the 0..100 square onto normalized device coordinates.
var Ortho100 = Ortho(0, 100, 0, 100, -1, 1)

// Transform applies m to the point p (w = 1) and returns the result after
// the perspective divide.
func (m Mat4) Transform(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		x, y, z = x/w, y/w, z/w
	}
	return Vec3{x, y, z}
}
