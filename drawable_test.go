package argus

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// stubDrawable is the test implementation of Drawable shared by the suite.
type stubDrawable struct {
	node   *SceneNode
	bounds AABB
}

func (d *stubDrawable) Node() *SceneNode  { return d.node }
func (d *stubDrawable) LocalBounds() AABB { return d.bounds }

// newStubDrawable creates a node of the given type under the graph root at
// pos and attaches a drawable with a cube of the given half extent around
// the node origin. half == 0 yields a degenerate point box.
func newStubDrawable(g *SceneGraph, nt NodeType, pos mgl32.Vec3, half float32) *stubDrawable {
	node := g.Root().CreateChild(nt)
	node.Local.Position = pos
	return &stubDrawable{
		node: node,
		bounds: AABB{
			Min: mgl32.Vec3{-half, -half, -half},
			Max: mgl32.Vec3{half, half, half},
		},
	}
}

// vecNear compares by absolute distance. mgl32's ApproxEqual family is
// relative away from zero and demands epsilon-squared closeness against zero
// components, either of which trips on harmless float residue.
func vecNear(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}

// recordingDrawer captures what the dispatcher forwarded.
type recordingDrawer struct {
	entries        []DrawableTransform
	useDrawableIds bool
	calls          int
}

func (r *recordingDrawer) Draw(entries []DrawableTransform, useDrawableIds bool) {
	r.entries = append([]DrawableTransform(nil), entries...)
	r.useDrawableIds = useDrawableIds
	r.calls++
}

func TestDrawableGroup_IdsAndOrder(t *testing.T) {
	g := NewSceneGraph()
	group := NewDrawableGroup()

	d1 := newStubDrawable(g, NodeObject, mgl32.Vec3{0, 0, 0}, 1)
	d2 := newStubDrawable(g, NodeObject, mgl32.Vec3{5, 0, 0}, 1)
	d3 := newStubDrawable(g, NodeLight, mgl32.Vec3{0, 5, 0}, 1)

	id1 := group.Add(d1)
	id2 := group.Add(d2)
	id3 := group.Add(d3)

	if id1 != 0 || id2 != 1 || id3 != 2 {
		t.Errorf("Expected dense ids 0,1,2, got %d,%d,%d", id1, id2, id3)
	}

	// Re-adding is a no-op and keeps the id
	if again := group.Add(d2); again != id2 {
		t.Errorf("Re-add changed id: %d != %d", again, id2)
	}
	if group.Len() != 3 {
		t.Errorf("Expected 3 members, got %d", group.Len())
	}

	if !group.Remove(d2) {
		t.Error("Remove of a member returned false")
	}
	if group.Remove(d2) {
		t.Error("Removing twice returned true")
	}

	entries := group.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Drawable != Drawable(d1) || entries[1].Drawable != Drawable(d3) {
		t.Error("Entries do not preserve insertion order after Remove")
	}

	// Ids of survivors are unchanged
	if id, ok := group.DrawableId(d3); !ok || id != 2 {
		t.Errorf("Expected d3 to keep id 2, got %d (ok=%v)", id, ok)
	}
}

func TestDrawableGroup_EntriesUseAbsoluteTransforms(t *testing.T) {
	g := NewSceneGraph()
	group := NewDrawableGroup()

	parent := g.Root().CreateChild(NodeEmpty)
	parent.Local.Position = mgl32.Vec3{10, 0, 0}

	node := parent.CreateChild(NodeObject)
	node.Local.Position = mgl32.Vec3{0, 0, -3}
	d := &stubDrawable{node: node, bounds: AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}}
	group.Add(d)

	entries := group.Entries()
	got := entries[0].Transform.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{10, 0, -3}
	if !vecNear(got, want, 1e-4) {
		t.Errorf("Entry transform origin = %v, want %v", got, want)
	}
}
