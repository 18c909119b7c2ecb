package argus

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPick_ClosestHitWins(t *testing.T) {
	g, cam := testCamera(nil)
	group := NewDrawableGroup()
	nearBox := newStubDrawable(g, NodeObject, mgl32.Vec3{0, 0, -5}, 1)
	farBox := newStubDrawable(g, NodeObject, mgl32.Vec3{0, 0, -10}, 1)
	group.Add(farBox)
	group.Add(nearBox)

	res, ok := cam.Pick(group, 320, 240, 100)
	if !ok {
		t.Fatal("Pick through both boxes reported no hit")
	}
	if res.Drawable != Drawable(nearBox) {
		t.Error("Pick returned the far box instead of the near one")
	}
	// Ray enters the near box at z=-4
	if math.Abs(float64(res.Distance)-4) > 1e-3 {
		t.Errorf("Hit distance = %f, want 4", res.Distance)
	}
	if !vecNear(res.Point, mgl32.Vec3{0, 0, -4}, 1e-3) {
		t.Errorf("Hit point = %v, want (0,0,-4)", res.Point)
	}
}

func TestPick_RespectsMaxDistance(t *testing.T) {
	g, cam := testCamera(nil)
	group := NewDrawableGroup()
	group.Add(newStubDrawable(g, NodeObject, mgl32.Vec3{0, 0, -50}, 1))

	if _, ok := cam.Pick(group, 320, 240, 10); ok {
		t.Error("Pick hit a box beyond maxDist")
	}
	if _, ok := cam.Pick(group, 320, 240, 60); !ok {
		t.Error("Pick missed a box within maxDist")
	}
}

func TestPick_MissesOffAxis(t *testing.T) {
	g, cam := testCamera(nil)
	group := NewDrawableGroup()
	group.Add(newStubDrawable(g, NodeObject, mgl32.Vec3{0, 0, -5}, 1))

	// The bottom-left corner ray diverges far from a box on the axis
	if _, ok := cam.Pick(group, 0, 0, 100); ok {
		t.Error("Corner ray reported a hit on an on-axis box")
	}
}

func TestPick_DegenerateUnprojection(t *testing.T) {
	g := NewSceneGraph()
	cam := NewRenderCamera(g.Root().CreateChild(NodeCamera), nil)
	cam.SetProjectionMatrix(640, 480, mgl32.Mat4{})

	group := NewDrawableGroup()
	group.Add(newStubDrawable(g, NodeObject, mgl32.Vec3{0, 0, -5}, 1))

	if _, ok := cam.Pick(group, 320, 240, 100); ok {
		t.Error("Pick with a singular view-projection reported a hit")
	}
}

func TestIntersectRayAABB(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, -1}}

	tMin, tMax := intersectRayAABB(ray, AABB{Min: mgl32.Vec3{-1, -1, -6}, Max: mgl32.Vec3{1, 1, -4}})
	if tMin > tMax {
		t.Fatal("Ray through the box reported a miss")
	}
	if math.Abs(float64(tMin)-4) > 1e-3 || math.Abs(float64(tMax)-6) > 1e-3 {
		t.Errorf("Entry/exit = %f/%f, want 4/6", tMin, tMax)
	}

	// Box behind the origin
	tMin, tMax = intersectRayAABB(ray, AABB{Min: mgl32.Vec3{-1, -1, 4}, Max: mgl32.Vec3{1, 1, 6}})
	if tMin <= tMax {
		t.Error("Box behind the ray origin reported a hit")
	}

	// Box off to the side
	tMin, tMax = intersectRayAABB(ray, AABB{Min: mgl32.Vec3{5, 5, -6}, Max: mgl32.Vec3{7, 7, -4}})
	if tMin <= tMax {
		t.Error("Box off the ray path reported a hit")
	}
}
