package pentoface

// nodeIDCounter is a plain counter; pentoface is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. Digit anchors, the separator,
// piece prototypes and every pooled piece instance are Nodes.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Computed during updateWorldTransform.
	worldTransform Affine
	worldAlpha     float64
	transformDirty bool

	// Visibility
	Alpha   float64
	Visible bool

	// Depth orders siblings at draw time; larger values draw on top.
	// Pieces animate it between 1 (entering), 0 (resting) and -1 (leaving).
	Depth float64

	// Sprite tint (NodeTypeSprite)
	Color Color

	// Metadata
	UserData any
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node: a unit quad covering (0,0)-(1,1) in local
// space, tinted with c. Size it with ScaleX/ScaleY.
func NewSprite(name string, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite}
	nodeDefaults(n)
	n.Color = c
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("pentoface: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("pentoface: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("pentoface: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FindNode returns the first node named name in this node's subtree
// (depth-first, this node included), or nil.
func (n *Node) FindNode(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.FindNode(name); found != nil {
			return found
		}
	}
	return nil
}

// Clone returns a deep copy of n and its subtree with fresh IDs. The copy has
// no parent; the caller attaches it where it belongs.
func (n *Node) Clone() *Node {
	c := *n
	c.ID = nextNodeID()
	c.Parent = nil
	c.transformDirty = true
	c.children = nil
	if len(n.children) > 0 {
		c.children = make([]*Node, 0, len(n.children))
		for _, child := range n.children {
			cc := child.Clone()
			cc.Parent = &c
			c.children = append(c.children, cc)
		}
	}
	return &c
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
