package argus

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is an origin plus a direction. Direction is unit length, except when an
// unprojection failed: then it is exactly zero and the ray must not be used.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// Degenerate reports whether the ray carries the zero-direction failure
// sentinel.
func (r Ray) Degenerate() bool {
	return r.Direction == (mgl32.Vec3{})
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

const (
	unprojectEpsilon = 1e-7
	// Determinants of valid projections can be tiny (large ortho volumes),
	// so singularity gets a far stricter threshold.
	singularEpsilon = 1e-20
)

// Unproject maps a viewport pixel (origin bottom-left, extent per the last
// projection call) to a world-space ray originating at the camera position.
//
// Failure is signalled, never raised: a singular view-projection matrix, an
// unset viewport or a numerically collapsed direction all yield a ray with
// zero direction.
func (c *RenderCamera) Unproject(px, py int) Ray {
	origin := c.node.AbsolutePosition()
	if c.viewportW <= 0 || c.viewportH <= 0 {
		c.logger.Warnf("unproject before projection setup, returning zero ray")
		return Ray{Origin: origin}
	}

	vp := c.ViewProjection()
	if math.Abs(float64(vp.Det())) < singularEpsilon {
		c.logger.Warnf("unproject with singular view-projection, returning zero ray")
		return Ray{Origin: origin}
	}
	inv := vp.Inv()

	nx := 2*float32(px)/float32(c.viewportW) - 1
	ny := 2*float32(py)/float32(c.viewportH) - 1

	near := inv.Mul4x1(mgl32.Vec4{nx, ny, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{nx, ny, 1, 1})
	if float32(math.Abs(float64(near.W()))) < unprojectEpsilon ||
		float32(math.Abs(float64(far.W()))) < unprojectEpsilon {
		return Ray{Origin: origin}
	}

	nearPt := near.Vec3().Mul(1 / near.W())
	farPt := far.Vec3().Mul(1 / far.W())

	dir := farPt.Sub(nearPt)
	if dir.Len() < unprojectEpsilon {
		return Ray{Origin: origin}
	}
	return Ray{Origin: origin, Direction: dir.Normalize()}
}
