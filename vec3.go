package slicer

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
)

// Vec3f is a 3D vertex or direction in mesh space, millimeters, float32
// precision. Only per-slice 2D extracts are scaled into coord; mesh
// vertices keep their native float precision throughout.
type Vec3f struct {
	X, Y, Z float32
}

// Sub returns v - o.
func (v Vec3f) Sub(o Vec3f) Vec3f {
	return Vec3f{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Add returns v + o.
func (v Vec3f) Add(o Vec3f) Vec3f {
	return Vec3f{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vec3f) Scale(s float32) Vec3f {
	return Vec3f{v.X * s, v.Y * s, v.Z * s}
}

// Lerp returns the linear interpolation between v and o at parameter t.
func (v Vec3f) Lerp(o Vec3f, t float32) Vec3f {
	return Vec3f{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

func (v Vec3f) d3() d3.Vec3 { return d3.NewVec3XYZ(v.X, v.Y, v.Z) }

func vec3fFromD3(v d3.Vec3) Vec3f { return Vec3f{v[0], v[1], v[2]} }

// triangleNormal computes the unit normal of the triangle (a, b, c):
// cross(b-a, c-a), normalized.
func triangleNormal(a, b, c Vec3f) Vec3f {
	norm := d3.NewVec3()
	d3.Vec3Cross(norm, b.d3().Sub(a.d3()), c.d3().Sub(a.d3()))
	norm.Normalize()
	return vec3fFromD3(norm)
}

// triangleArea2 returns twice the (unsigned) area of triangle (a, b, c). A
// triangle is considered degenerate when this value is within Epsilon32 of
// zero: its three vertices are collinear or coincident.
func triangleArea2(a, b, c Vec3f) float32 {
	n := d3.NewVec3()
	d3.Vec3Cross(n, b.d3().Sub(a.d3()), c.d3().Sub(a.d3()))
	return math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
}

// TriangleArea2 is the exported form of triangleArea2, for sub-packages
// (slice) that need to recheck a candidate triangle's degeneracy against
// Epsilon32 before spending a plane classification on it.
func TriangleArea2(a, b, c Vec3f) float32 {
	return triangleArea2(a, b, c)
}
