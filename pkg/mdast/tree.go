package mdast

// RootTag is the tag of every document's root container.
const RootTag = "html"

// Tree is a document under construction.
// It owns every node through the root's child lists and keeps a cursor on
// the container currently receiving block-level children.
// The cursor is always a *Container; text leaves are never selected.
type Tree struct {
	root   *Container
	cursor *Container
}

// NewTree creates a tree holding only the root container, with the cursor on the root.
func NewTree() *Tree {
	root := NewContainer(RootTag)
	return &Tree{
		root:   root,
		cursor: root,
	}
}

// Root returns the root container.
func (t *Tree) Root() *Container {
	return t.root
}

// Cursor returns the container currently receiving new children.
func (t *Tree) Cursor() *Container {
	return t.cursor
}

// CurrentTag returns the tag of the cursor container.
func (t *Tree) CurrentTag() string {
	return t.cursor.tag
}

// LastChild returns the most recently appended child of the cursor, or nil.
func (t *Tree) LastChild() Node {
	return t.cursor.LastChild()
}

// AppendContainer creates an empty container as the last child of the cursor
// and moves the cursor onto it.
func (t *Tree) AppendContainer(tag string) {
	child := NewContainer(tag)
	appendChild(t.cursor, child)
	t.cursor = child
}

// AppendText creates a text leaf as the last child of the cursor.
// The cursor does not move.
func (t *Tree) AppendText(tag, literal string) {
	appendChild(t.cursor, NewText(tag, literal))
}

// RetagLastChild renames the most recently appended child of the cursor.
// It returns false and changes nothing if the cursor has no children.
func (t *Tree) RetagLastChild(tag string) bool {
	last := t.cursor.LastChild()
	if last == nil {
		return false
	}
	setTag(last, tag)
	return true
}

// TakeLastChildText removes the most recently appended child of the cursor
// and returns its text. If the cursor has no children, or the last child is a
// container, the tree is left unchanged and ok is false.
func (t *Tree) TakeLastChildText() (text string, ok bool) {
	leaf, isText := t.cursor.LastChild().(*Text)
	if !isText {
		return "", false
	}
	popChild(t.cursor)
	return leaf.literal, true
}

// Ascend moves the cursor to its parent container. It is a no-op at the root.
func (t *Tree) Ascend() {
	if t.cursor.parent != nil {
		t.cursor = t.cursor.parent
	}
}

// Len returns the number of nodes in the tree, including the root.
func (t *Tree) Len() int {
	count := 0
	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(t.root, func(Node) error {
		count++
		return nil
	})
	return count
}
