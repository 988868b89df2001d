package pentoface

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree and the draw
// command buffers. It is the scene provider a Face looks its named elements
// up in.
type Scene struct {
	root *Node

	// Width and Height are the design size of the face in scene units.
	// Hosts scale this box to fit their surface.
	Width, Height float64

	// ClearColor fills the surface before the face is drawn.
	ClearColor Color

	// Render state
	commands []DrawCommand
	sortBuf  []DrawCommand
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:     NewContainer("root"),
		commands: make([]DrawCommand, 0, defaultCommandCap),
		sortBuf:  make([]DrawCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// FindNode returns the node named name anywhere in the tree, or nil.
func (s *Scene) FindNode(name string) *Node {
	return s.root.FindNode(name)
}

// UpdateTransforms refreshes the world transform and alpha of every dirty
// node. Commands calls it implicitly.
func (s *Scene) UpdateTransforms() {
	updateWorldTransform(s.root, IdentityAffine, 1.0, false)
}
