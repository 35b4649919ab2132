package widget

// Node is the result of laying out a widget. Bounds are relative to the
// parent node.
type Node struct {
	bounds   Rectangle
	children []Node
}

// NewNode creates a leaf node of the given size at the origin.
func NewNode(size Size) Node {
	return Node{bounds: Rectangle{Width: size.Width, Height: size.Height}}
}

// NewNodeWithChildren creates a node of the given size owning children.
func NewNodeWithChildren(size Size, children []Node) Node {
	n := NewNode(size)
	n.children = children
	return n
}

// Size returns the node extent.
func (n *Node) Size() Size {
	return n.bounds.Size()
}

// Bounds returns the node rectangle relative to its parent.
func (n *Node) Bounds() Rectangle {
	return n.bounds
}

// Children returns the child nodes.
func (n *Node) Children() []Node {
	return n.children
}

// MoveTo sets the node position relative to its parent.
func (n *Node) MoveTo(p Point) {
	n.bounds.X = p.X
	n.bounds.Y = p.Y
}

// Align positions the node inside space according to the alignments.
// AlignStretch grows the node to span the space on that axis.
func (n *Node) Align(horizontal, vertical Alignment, space Size) {
	switch horizontal {
	case AlignCenter:
		n.bounds.X += (space.Width - n.bounds.Width) / 2
	case AlignEnd:
		n.bounds.X += space.Width - n.bounds.Width
	case AlignStretch:
		n.bounds.Width = space.Width
	}

	switch vertical {
	case AlignCenter:
		n.bounds.Y += (space.Height - n.bounds.Height) / 2
	case AlignEnd:
		n.bounds.Y += space.Height - n.bounds.Height
	case AlignStretch:
		n.bounds.Height = space.Height
	}
}

// Layout is a node placed in absolute coordinates.
type Layout struct {
	position Point
	node     *Node
}

// NewLayout places the root node at its own position.
func NewLayout(n *Node) Layout {
	return Layout{position: n.bounds.Position(), node: n}
}

func withOffset(offset Vector, n *Node) Layout {
	return Layout{position: n.bounds.Position().Add(offset), node: n}
}

// Position returns the absolute top-left corner.
func (l Layout) Position() Point {
	return l.position
}

// Bounds returns the absolute rectangle.
func (l Layout) Bounds() Rectangle {
	return NewRectangle(l.position, l.node.Size())
}

// Translate returns the same layout displaced by v. Children follow.
func (l Layout) Translate(v Vector) Layout {
	l.position = l.position.Add(v)
	return l
}

// Children returns the absolute layouts of the child nodes, in order.
func (l Layout) Children() []Layout {
	if l.node == nil {
		return nil
	}
	offset := Vector{X: l.position.X, Y: l.position.Y}
	out := make([]Layout, len(l.node.children))
	for i := range l.node.children {
		out[i] = withOffset(offset, &l.node.children[i])
	}
	return out
}
