package mdast

// Node is one HTML element in the document tree.
// It is implemented by *Container and *Text only.
type Node interface {
	// Tag returns the element name. A *Text may have an empty tag.
	Tag() string

	// Parent returns the container that owns this node, or nil for the root.
	Parent() *Container

	node()
}

// Container is an element that owns an ordered list of children and has no text of its own.
type Container struct {
	tag      string
	parent   *Container
	children []Node
}

// Text is a leaf element carrying literal text.
// An empty tag means the text is emitted bare, without a wrapping element.
type Text struct {
	tag     string
	literal string
	parent  *Container
}

// NewContainer creates a detached container.
func NewContainer(tag string) *Container {
	return &Container{tag: tag}
}

// NewText creates a detached text leaf.
func NewText(tag, literal string) *Text {
	return &Text{tag: tag, literal: literal}
}

// Tag returns the element name.
func (c *Container) Tag() string { return c.tag }

// Parent returns the owning container, or nil for the root.
func (c *Container) Parent() *Container { return c.parent }

func (*Container) node() {}

// Children returns the direct children in document order.
// The returned slice must not be modified.
func (c *Container) Children() []Node {
	return c.children
}

// ChildCount returns the number of direct children.
func (c *Container) ChildCount() int {
	return len(c.children)
}

// HasChildren returns true if the container has at least one child.
func (c *Container) HasChildren() bool {
	return len(c.children) > 0
}

// LastChild returns the most recently appended child, or nil.
func (c *Container) LastChild() Node {
	if len(c.children) == 0 {
		return nil
	}
	return c.children[len(c.children)-1]
}

// Tag returns the element name, possibly empty.
func (t *Text) Tag() string { return t.tag }

// Parent returns the owning container.
func (t *Text) Parent() *Container { return t.parent }

// Literal returns the text content.
func (t *Text) Literal() string { return t.literal }

func (*Text) node() {}

// appendChild attaches child as the last child of parent.
// child must be detached.
func appendChild(parent *Container, child Node) {
	switch n := child.(type) {
	case *Container:
		n.parent = parent
	case *Text:
		n.parent = parent
	}
	parent.children = append(parent.children, child)
}

// popChild detaches and returns the last child of parent, or nil.
func popChild(parent *Container) Node {
	last := parent.LastChild()
	if last == nil {
		return nil
	}

	parent.children[len(parent.children)-1] = nil
	parent.children = parent.children[:len(parent.children)-1]

	switch n := last.(type) {
	case *Container:
		n.parent = nil
	case *Text:
		n.parent = nil
	}

	return last
}

// setTag renames a node in place.
func setTag(n Node, tag string) {
	switch n := n.(type) {
	case *Container:
		n.tag = tag
	case *Text:
		n.tag = tag
	}
}
