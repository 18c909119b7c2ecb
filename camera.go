package argus

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Drawer is the external draw call. It receives the visible prefix of the
// frame's entries and whether output object ids should come from drawable
// ids rather than node semantic ids. The entries slice is borrowed for the
// duration of the call only.
type Drawer interface {
	Draw(entries []DrawableTransform, useDrawableIds bool)
}

// RenderCamera filters a drawable group down to the visible set each frame
// and hands the survivors to a Drawer. It is attached to a scene node, from
// which it inherits its view transform; the projection is set explicitly.
//
// A camera assumes exclusive access per frame: no internal locking, callers
// rendering the same camera from several goroutines must serialize.
type RenderCamera struct {
	node   *SceneNode
	drawer Drawer
	logger Logger

	projection mgl32.Mat4
	viewportW  int
	viewportH  int

	prevVisible int
}

// NewRenderCamera attaches a camera to the given scene node. The node is
// marked NodeCamera; its transform stays untouched. drawer may be nil for
// cameras used only for culling queries and unprojection.
func NewRenderCamera(node *SceneNode, drawer Drawer) *RenderCamera {
	if node == nil {
		panic("NewRenderCamera: node is nil")
	}
	node.Type = NodeCamera
	return &RenderCamera{
		node:       node,
		drawer:     drawer,
		logger:     nopLogger{},
		projection: mgl32.Ident4(),
	}
}

// NewRenderCameraAt attaches a camera to the node and points it at target
// from eye (both in the node's parent space), overriding the node's prior
// local transform.
func NewRenderCameraAt(node *SceneNode, drawer Drawer, eye, target, up mgl32.Vec3) *RenderCamera {
	c := NewRenderCamera(node, drawer)
	c.ResetViewingParameters(eye, target, up)
	return c
}

// SetLogger replaces the camera's logger. Passing nil restores the no-op
// one.
func (c *RenderCamera) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	c.logger = l
}

// Node returns the scene node the camera is attached to.
func (c *RenderCamera) Node() *SceneNode { return c.node }

// ResetViewingParameters re-aims the camera: eye, target and up are in the
// attachment node's parent space and override any prior relative transform.
func (c *RenderCamera) ResetViewingParameters(eye, target, up mgl32.Vec3) *RenderCamera {
	// QuatLookAtV yields the view (world-to-camera) rotation; the node wants
	// the camera's orientation, which is its inverse.
	c.node.Local = Transform{
		Position: eye,
		Rotation: mgl32.QuatLookAtV(eye, target, up).Inverse(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
	return c
}

// InSceneGraph reports whether the camera's node currently belongs to the
// graph. A camera whose node has been detached reports false.
func (c *RenderCamera) InSceneGraph(g *SceneGraph) bool {
	if g == nil {
		return false
	}
	return g.Contains(c.node)
}

// SetProjectionMatrix installs a precomputed projection together with the
// viewport it was built for. The two must agree on aspect handling, which is
// why there is no way to set them separately.
func (c *RenderCamera) SetProjectionMatrix(width, height int, proj mgl32.Mat4) *RenderCamera {
	c.projection = proj
	c.viewportW = width
	c.viewportH = height
	return c
}

// SetPerspectiveProjection configures a perspective projection from a
// horizontal field of view in degrees.
func (c *RenderCamera) SetPerspectiveProjection(width, height int, znear, zfar, hfovDeg float32) *RenderCamera {
	aspect := float32(width) / float32(height)
	hfov := mgl32.DegToRad(hfovDeg)
	vfov := 2 * float32(math.Atan(math.Tan(float64(hfov)/2)/float64(aspect)))
	return c.SetProjectionMatrix(width, height, mgl32.Perspective(vfov, aspect, znear, zfar))
}

// SetOrthoProjection configures an orthographic projection. scale multiplies
// the size of the resulting image: the visible extent is the viewport size
// divided by scale.
func (c *RenderCamera) SetOrthoProjection(width, height int, znear, zfar, scale float32) *RenderCamera {
	halfW := float32(width) / (2 * scale)
	halfH := float32(height) / (2 * scale)
	return c.SetProjectionMatrix(width, height, mgl32.Ortho(-halfW, halfW, -halfH, halfH, znear, zfar))
}

// Viewport returns the viewport size set by the last projection call.
func (c *RenderCamera) Viewport() (width, height int) {
	return c.viewportW, c.viewportH
}

func (c *RenderCamera) ProjectionMatrix() mgl32.Mat4 { return c.projection }

// ViewMatrix is the inverse of the attachment node's absolute transform.
func (c *RenderCamera) ViewMatrix() mgl32.Mat4 {
	return c.node.AbsoluteMat4().Inv()
}

// ViewProjection is the combined world-to-clip matrix.
func (c *RenderCamera) ViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.ViewMatrix())
}

// Forward is the camera's world-space viewing direction.
func (c *RenderCamera) Forward() mgl32.Vec3 {
	return c.node.AbsoluteTransform().Rotation.Rotate(mgl32.Vec3{0, 0, -1}).Normalize()
}

// Draw runs the per-frame visibility pipeline over the group and invokes the
// external draw call with the surviving prefix:
//
//  1. snapshot (drawable, absolute transform) entries in group order
//  2. frustum-cull if FrustumCulling is set
//  3. drop non-object nodes if ObjectsOnly is set (applied to the survivors
//     of step 2, not the other way around)
//  4. dispatch the valid prefix with the id-source flag
//
// It returns the number of entries drawn and caches it for
// PreviousVisibleCount. Flags apply to this call only.
func (c *RenderCamera) Draw(group *DrawableGroup, flags DrawFlags) int {
	entries := group.Entries()
	n := len(entries)

	if flags.Has(FrustumCulling) {
		n = c.Cull(entries)
		c.logger.Debugf("frustum culling kept %d of %d drawables", n, len(entries))
	}
	if flags.Has(ObjectsOnly) {
		kept := RemoveNonObjects(entries[:n])
		c.logger.Debugf("object filter kept %d of %d drawables", kept, n)
		n = kept
	}

	if c.drawer != nil {
		c.drawer.Draw(entries[:n], flags.Has(UseDrawableIdAsObjectId))
	}
	c.prevVisible = n
	return n
}

// PreviousVisibleCount is the number of drawables that survived filtering in
// the most recent Draw call.
func (c *RenderCamera) PreviousVisibleCount() int {
	return c.prevVisible
}
