package argus

// DrawFlags is a per-call bit set. Flags are never stored on the camera:
// each Draw call starts from a clean slate, so a caller wanting per-drawable
// object ids must pass UseDrawableIdAsObjectId every frame.
type DrawFlags uint32

const (
	// FrustumCulling drops drawables whose world bounds do not intersect
	// the camera frustum.
	FrustumCulling DrawFlags = 1 << iota
	// ObjectsOnly drops drawables whose owning node is not of NodeObject
	// type (layout, camera, light or sensor nodes in a drawable group).
	ObjectsOnly
	// UseDrawableIdAsObjectId asks the draw call to tag output pixels with
	// the drawable's group id instead of the node's semantic id.
	UseDrawableIdAsObjectId
)

func (f DrawFlags) Has(flag DrawFlags) bool {
	return f&flag != 0
}

// partitionEntries moves entries satisfying keep to the front, preserving
// the slice length, and returns the size of the kept prefix. Order of the
// suffix is unspecified.
func partitionEntries(entries []DrawableTransform, keep func(*DrawableTransform) bool) int {
	n := 0
	for i := range entries {
		if keep(&entries[i]) {
			entries[n], entries[i] = entries[i], entries[n]
			n++
		}
	}
	return n
}

// Cull reorders the entries so that those intersecting the camera frustum
// form the prefix, and returns the prefix length. Entries past the returned
// count are not visible this frame and must not be drawn. Draw calls this
// when FrustumCulling is set; it is exported for hosts running their own
// dispatch.
func (c *RenderCamera) Cull(entries []DrawableTransform) int {
	frustum := FrustumFromMatrix(c.ViewProjection())
	return partitionEntries(entries, func(e *DrawableTransform) bool {
		bounds := e.Drawable.LocalBounds()
		if bounds.IsPoint() {
			return frustum.ContainsPoint(e.Transform.Mul4x1(bounds.Min.Vec4(1)).Vec3())
		}
		return frustum.IntersectsAABB(bounds.Transformed(e.Transform))
	})
}

// RemoveNonObjects reorders the entries so that drawables owned by
// NodeObject nodes form the prefix, and returns the prefix length. Same
// valid-prefix contract as Cull.
func RemoveNonObjects(entries []DrawableTransform) int {
	return partitionEntries(entries, func(e *DrawableTransform) bool {
		return e.Drawable.Node().Type == NodeObject
	})
}
