package argus

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// NodeType classifies scene nodes. Only NodeObject nodes are considered
// physically renderable by the category filter; the other types are
// structural (layout groups, cameras, lights, sensors).
type NodeType int

const (
	NodeEmpty NodeType = iota
	NodeObject
	NodeCamera
	NodeLight
	NodeSensor
)

func (t NodeType) String() string {
	switch t {
	case NodeEmpty:
		return "empty"
	case NodeObject:
		return "object"
	case NodeCamera:
		return "camera"
	case NodeLight:
		return "light"
	case NodeSensor:
		return "sensor"
	}
	return "unknown"
}

// SceneNode is a node in a transform hierarchy. Nodes are created through
// SceneGraph.Root().CreateChild and owned by their graph; the render camera
// attaches to a node but never destroys one.
type SceneNode struct {
	id       string
	graph    *SceneGraph
	parent   *SceneNode
	children []*SceneNode

	Type NodeType
	// SemanticId is the material/semantic object id an external draw call
	// falls back to when per-drawable ids are not requested for the frame.
	SemanticId uint32
	Local      Transform
}

func (n *SceneNode) Id() string         { return n.id }
func (n *SceneNode) Parent() *SceneNode { return n.parent }
func (n *SceneNode) Graph() *SceneGraph { return n.graph }

// Children returns the node's direct children. The returned slice is the
// node's own; callers must not mutate it.
func (n *SceneNode) Children() []*SceneNode { return n.children }

// CreateChild adds a child node of the given type with an identity local
// transform. Children of attached nodes are registered with the graph;
// children created under a detached subtree stay unindexed (FindNode and
// Contains do not see them) until the subtree is reattached elsewhere.
func (n *SceneNode) CreateChild(t NodeType) *SceneNode {
	child := &SceneNode{
		id:    uuid.NewString(),
		graph: n.graph,
		Type:  t,
		Local: IdentityTransform(),
	}
	child.parent = n
	n.children = append(n.children, child)
	if n.graph != nil {
		n.graph.register(child)
	}
	return child
}

// Detach removes the node and its whole subtree from the graph. The node
// keeps its local transform but no longer has a parent; ancestry checks
// against the graph report false afterwards. The detached subtree remains
// usable: transforms still compose and new children may still be created.
func (n *SceneNode) Detach() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
	n.unregisterSubtree()
}

func (n *SceneNode) unregisterSubtree() {
	if n.graph != nil {
		n.graph.unregister(n)
		n.graph = nil
	}
	for _, c := range n.children {
		c.unregisterSubtree()
	}
}

// AbsoluteTransform composes local transforms from the root down to n.
func (n *SceneNode) AbsoluteTransform() Transform {
	if n.parent == nil {
		return n.Local
	}
	return n.parent.AbsoluteTransform().Compose(n.Local)
}

// AbsoluteMat4 is the node's world matrix (T * R * S of the absolute
// transform).
func (n *SceneNode) AbsoluteMat4() mgl32.Mat4 {
	return n.AbsoluteTransform().Mat4()
}

// AbsolutePosition is the node's world-space position.
func (n *SceneNode) AbsolutePosition() mgl32.Vec3 {
	return n.AbsoluteTransform().Position
}

// isDescendantOf walks the ancestry chain; a node is a descendant of itself.
func (n *SceneNode) isDescendantOf(root *SceneNode) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == root {
			return true
		}
	}
	return false
}
