package argus

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// IsPoint reports whether the box has zero volume on every axis. Such boxes
// are culled with a plain point containment test.
func (b AABB) IsPoint() bool {
	return b.Min == b.Max
}

// Transformed returns the axis-aligned box bounding all 8 corners of b after
// transformation by m.
func (b AABB) Transformed(m mgl32.Mat4) AABB {
	corners := [8]mgl32.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}

	first := m.Mul4x1(corners[0].Vec4(1)).Vec3()
	out := AABB{Min: first, Max: first}
	for i := 1; i < 8; i++ {
		p := m.Mul4x1(corners[i].Vec4(1)).Vec3()
		out.Min = minElem(out.Min, p)
		out.Max = maxElem(out.Max, p)
	}
	return out
}

func minElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		min(a.X(), b.X()),
		min(a.Y(), b.Y()),
		min(a.Z(), b.Z()),
	}
}

func maxElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		max(a.X(), b.X()),
		max(a.Y(), b.Y()),
		max(a.Z(), b.Z()),
	}
}
