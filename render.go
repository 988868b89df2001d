package pentoface

// DrawCommand is a single solid quad emitted during scene traversal. The quad
// is the unit square (0,0)-(1,1) mapped through Transform.
type DrawCommand struct {
	Transform Affine
	// Color is straight (not premultiplied); A already includes world alpha.
	Color Color
	// Depth is the accumulated Depth of the node and its ancestors.
	Depth     float64
	treeOrder int // assigned during traversal for stable sort
}

// Commands walks the tree, refreshes world transforms and returns the draw
// commands of every visible sprite, back to front. The returned slice is
// reused by the next call.
func (s *Scene) Commands() []DrawCommand {
	s.commands = s.commands[:0]
	treeOrder := 0
	s.traverse(s.root, IdentityAffine, 1.0, 0, false, &treeOrder)
	s.mergeSort()
	return s.commands
}

// traverse walks the node tree depth-first, updating transforms and emitting
// commands for visible sprites. Invisible subtrees are skipped but stay
// dirty-tracked through their own flags.
func (s *Scene) traverse(n *Node, parentTransform Affine, parentAlpha, parentDepth float64, parentRecomputed bool, treeOrder *int) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parentTransform.Mul(computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}
	depth := parentDepth + n.Depth

	if n.Type == NodeTypeSprite {
		a := n.Color.A * n.worldAlpha
		if a > 0 {
			*treeOrder++
			s.commands = append(s.commands, DrawCommand{
				Transform: n.worldTransform,
				Color:     Color{n.Color.R, n.Color.G, n.Color.B, a},
				Depth:     depth,
				treeOrder: *treeOrder,
			})
		}
	}

	for _, child := range n.children {
		s.traverse(child, n.worldTransform, n.worldAlpha, depth, recompute, treeOrder)
	}
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b DrawCommand) bool {
	if a.Depth != b.Depth {
		return a.Depth < b.Depth
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts s.commands in-place using s.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (s *Scene) mergeSort() {
	n := len(s.commands)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]DrawCommand, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.commands
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.commands, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []DrawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
