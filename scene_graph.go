package argus

import (
	"github.com/google/uuid"
)

// SceneGraph owns a tree of scene nodes rooted at an empty node. It keeps an
// id index so hosts can look nodes up without walking the tree.
type SceneGraph struct {
	root   *SceneNode
	index  map[string]*SceneNode
	logger Logger
}

func NewSceneGraph() *SceneGraph {
	g := &SceneGraph{
		index:  make(map[string]*SceneNode),
		logger: nopLogger{},
	}
	g.root = &SceneNode{
		id:    uuid.NewString(),
		graph: g,
		Type:  NodeEmpty,
		Local: IdentityTransform(),
	}
	g.register(g.root)
	return g
}

func (g *SceneGraph) Root() *SceneNode { return g.root }

// SetLogger replaces the graph's logger. Passing nil restores the no-op one.
func (g *SceneGraph) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	g.logger = l
}

// FindNode returns the node with the given id, or nil if it is not (or no
// longer) part of this graph.
func (g *SceneGraph) FindNode(id string) *SceneNode {
	return g.index[id]
}

// Contains reports whether the node currently belongs to this graph, walking
// its ancestry up to the graph root. A detached node reports false.
func (g *SceneGraph) Contains(n *SceneNode) bool {
	if n == nil {
		return false
	}
	return n.isDescendantOf(g.root)
}

func (g *SceneGraph) register(n *SceneNode) {
	g.index[n.id] = n
}

func (g *SceneGraph) unregister(n *SceneNode) {
	delete(g.index, n.id)
	g.logger.Debugf("detached node %s (%s)", n.id, n.Type)
}
