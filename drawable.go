package argus

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Drawable is a renderable item: a local-space bounding box attached to the
// scene node that owns it. Rasterization of a drawable belongs to the host
// engine; this package only decides whether the drawable is visible.
type Drawable interface {
	// Node returns the owning scene node. The node's type drives the
	// category filter and its absolute transform positions the drawable.
	Node() *SceneNode
	// LocalBounds is the drawable's bounding box in the owning node's local
	// space. A zero-volume box is treated as a point.
	LocalBounds() AABB
}

// DrawableTransform pairs a drawable with its absolute world transform for
// the current frame. Entries are rebuilt every draw call and reordered in
// place by the filters; the slice length never changes.
type DrawableTransform struct {
	Drawable  Drawable
	Transform mgl32.Mat4
}

// DrawableGroup is an ordered, externally owned collection of drawables.
// Each member gets a dense uint32 id at insertion, which the draw call can
// use as the output object id when requested.
type DrawableGroup struct {
	drawables []Drawable
	ids       map[Drawable]uint32
	byId      map[uint32]Drawable
	nextId    uint32
	grid      *SpatialHashGrid
}

func NewDrawableGroup() *DrawableGroup {
	return &DrawableGroup{
		ids:  make(map[Drawable]uint32),
		byId: make(map[uint32]Drawable),
		grid: NewSpatialHashGrid(defaultGridCellSize),
	}
}

// Add registers a drawable and returns its id. Adding a drawable that is
// already a member returns the existing id.
func (g *DrawableGroup) Add(d Drawable) uint32 {
	if id, ok := g.ids[d]; ok {
		return id
	}
	id := g.nextId
	g.nextId++
	g.ids[d] = id
	g.byId[id] = d
	g.drawables = append(g.drawables, d)
	return id
}

// Remove takes a drawable out of the group, preserving the order of the
// remaining members. Ids of remaining drawables are unchanged.
func (g *DrawableGroup) Remove(d Drawable) bool {
	id, ok := g.ids[d]
	if !ok {
		return false
	}
	delete(g.ids, d)
	delete(g.byId, id)
	for i, cur := range g.drawables {
		if cur == d {
			g.drawables = append(g.drawables[:i], g.drawables[i+1:]...)
			break
		}
	}
	return true
}

func (g *DrawableGroup) Len() int { return len(g.drawables) }

// DrawableId returns the group-local id assigned to the drawable.
func (g *DrawableGroup) DrawableId(d Drawable) (uint32, bool) {
	id, ok := g.ids[d]
	return id, ok
}

// Entries snapshots the group into (drawable, absolute transform) pairs in
// the group's current order. The snapshot is freshly allocated; the filters
// mutate it without touching the group itself.
func (g *DrawableGroup) Entries() []DrawableTransform {
	entries := make([]DrawableTransform, len(g.drawables))
	for i, d := range g.drawables {
		entries[i] = DrawableTransform{
			Drawable:  d,
			Transform: d.Node().AbsoluteMat4(),
		}
	}
	return entries
}

// rebuildIndex refreshes the broad-phase grid from the members' current
// world-space bounds.
func (g *DrawableGroup) rebuildIndex() {
	g.grid.Clear()
	for _, d := range g.drawables {
		world := d.LocalBounds().Transformed(d.Node().AbsoluteMat4())
		g.grid.Insert(g.ids[d], world)
	}
}

// QueryAABB returns the members whose current world bounds may overlap the
// box. This is a broad-phase answer: candidates are grid-cell matches, not
// exact intersections.
func (g *DrawableGroup) QueryAABB(box AABB) []Drawable {
	g.rebuildIndex()
	ids := g.grid.QueryAABB(box)
	out := make([]Drawable, 0, len(ids))
	for _, id := range ids {
		if d, ok := g.byId[id]; ok {
			out = append(out, d)
		}
	}
	return out
}
