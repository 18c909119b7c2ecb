package argus

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a position/rotation/scale triple relative to some parent
// space. The scene graph composes these component-wise instead of multiplying
// matrices so that scale signs (reflections) survive propagation.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Mat4 returns the T * R * S matrix of the transform.
func (t Transform) Mat4() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(rotate).Mul4(scale)
}

// Compose treats t as the parent space and child as local to it, returning
// the child's transform in t's parent space.
//
// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos)
// WorldRot = ParentRot * LocalRot
// WorldScale = ParentScale * LocalScale
func (t Transform) Compose(child Transform) Transform {
	scaledLocalPos := mgl32.Vec3{
		child.Position.X() * t.Scale.X(),
		child.Position.Y() * t.Scale.Y(),
		child.Position.Z() * t.Scale.Z(),
	}
	return Transform{
		Position: t.Position.Add(t.Rotation.Rotate(scaledLocalPos)),
		Rotation: t.Rotation.Mul(child.Rotation).Normalize(),
		Scale: mgl32.Vec3{
			t.Scale.X() * child.Scale.X(),
			t.Scale.Y() * child.Scale.Y(),
			t.Scale.Z() * child.Scale.Z(),
		},
	}
}
