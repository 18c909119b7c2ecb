package argus

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PickResult describes the drawable hit by a pick ray.
type PickResult struct {
	Drawable Drawable
	// Distance from the ray origin to the entry point of the drawable's
	// world bounds.
	Distance float32
	Point    mgl32.Vec3
}

// Pick unprojects a viewport pixel into the scene and returns the closest
// group member whose world bounds the ray enters within maxDist. The grid
// broad-phase narrows candidates before the exact slab test. Returns false
// when the unprojection fails or nothing is hit.
func (c *RenderCamera) Pick(group *DrawableGroup, px, py int, maxDist float32) (PickResult, bool) {
	ray := c.Unproject(px, py)
	if ray.Degenerate() || maxDist <= 0 {
		return PickResult{}, false
	}

	end := ray.At(maxDist)
	segment := AABB{
		Min: minElem(ray.Origin, end),
		Max: maxElem(ray.Origin, end),
	}

	best := PickResult{Distance: maxDist}
	hit := false
	for _, d := range group.QueryAABB(segment) {
		world := d.LocalBounds().Transformed(d.Node().AbsoluteMat4())
		tMin, tMax := intersectRayAABB(ray, world)
		if tMin > tMax || tMin > best.Distance {
			continue
		}
		best = PickResult{Drawable: d, Distance: tMin, Point: ray.At(tMin)}
		hit = true
	}
	return best, hit
}

// intersectRayAABB is the slab test: it returns the parametric entry and
// exit distances of the ray through the box, clamped to t >= 0. A miss
// yields tMin > tMax.
func intersectRayAABB(ray Ray, box AABB) (float32, float32) {
	invDir := mgl32.Vec3{
		1.0 / (ray.Direction.X() + 1e-8),
		1.0 / (ray.Direction.Y() + 1e-8),
		1.0 / (ray.Direction.Z() + 1e-8),
	}
	t1 := box.Min.Sub(ray.Origin)
	t1 = mgl32.Vec3{t1.X() * invDir.X(), t1.Y() * invDir.Y(), t1.Z() * invDir.Z()}
	t2 := box.Max.Sub(ray.Origin)
	t2 = mgl32.Vec3{t2.X() * invDir.X(), t2.Y() * invDir.Y(), t2.Z() * invDir.Z()}

	tMinV := minElem(t1, t2)
	tMaxV := maxElem(t1, t2)

	tMin := float32(math.Max(0, float64(max(tMinV.X(), tMinV.Y(), tMinV.Z()))))
	tMax := min(tMaxV.X(), tMaxV.Y(), tMaxV.Z())
	return tMin, tMax
}
