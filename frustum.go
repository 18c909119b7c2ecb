package argus

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is a half-space ax + by + cz + d = 0 with the normal pointing to the
// inside of the frustum.
type Plane struct {
	Normal mgl32.Vec3
	Offset float32
}

// Distance returns the signed distance from the point to the plane. Positive
// means inside (same side as the normal).
func (p Plane) Distance(pt mgl32.Vec3) float32 {
	return p.Normal.Dot(pt) + p.Offset
}

// Frustum plane indices.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum holds the six clip planes of a view frustum.
type Frustum struct {
	Planes [6]Plane
}

// FrustumFromMatrix extracts the six planes from a combined view-projection
// matrix using the Gribb/Hartmann method. Planes are normalized so Distance
// returns true world-unit distances.
func FrustumFromMatrix(vp mgl32.Mat4) Frustum {
	r0 := vp.Row(0)
	r1 := vp.Row(1)
	r2 := vp.Row(2)
	r3 := vp.Row(3)

	var f Frustum
	f.Planes[PlaneLeft] = normalizePlane(r3.Add(r0))
	f.Planes[PlaneRight] = normalizePlane(r3.Sub(r0))
	f.Planes[PlaneBottom] = normalizePlane(r3.Add(r1))
	f.Planes[PlaneTop] = normalizePlane(r3.Sub(r1))
	f.Planes[PlaneNear] = normalizePlane(r3.Add(r2))
	f.Planes[PlaneFar] = normalizePlane(r3.Sub(r2))
	return f
}

func normalizePlane(v mgl32.Vec4) Plane {
	n := v.Vec3()
	l := n.Len()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: n.Mul(1 / l), Offset: v.W() / l}
}

// ContainsPoint reports whether the point is inside or on the boundary of the
// frustum.
func (f *Frustum) ContainsPoint(pt mgl32.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].Distance(pt) < 0 {
			return false
		}
	}
	return true
}

// IntersectsAABB reports whether any part of the box is inside the frustum.
// A box touching a plane counts as visible. Uses the positive-vertex test:
// per plane, only the corner most aligned with the plane normal can decide
// full rejection.
func (f *Frustum) IntersectsAABB(box AABB) bool {
	for i := range f.Planes {
		p := f.Planes[i]
		v := mgl32.Vec3{
			pick(p.Normal.X() >= 0, box.Max.X(), box.Min.X()),
			pick(p.Normal.Y() >= 0, box.Max.Y(), box.Min.Y()),
			pick(p.Normal.Z() >= 0, box.Max.Z(), box.Min.Z()),
		}
		if p.Distance(v) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether a sphere intersects or lies inside the
// frustum.
func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for i := range f.Planes {
		if f.Planes[i].Distance(center) < -radius {
			return false
		}
	}
	return true
}

func pick(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
