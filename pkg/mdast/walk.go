package mdast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// The callback walkFunc is called for each node. If walkFunc returns a non-nil error,
// the walk stops immediately and returns that error.
func Walk(root Node, walkFunc WalkFunc) error {
	return WalkWithContext(root, walkFunc, nil)
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave is called after.
// Text leaves receive both calls back to back. Either callback may be nil.
func WalkWithContext(root Node, enter, leave WalkFunc) error {
	if root == nil {
		return nil
	}

	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}

	if container, ok := root.(*Container); ok {
		for _, child := range container.children {
			if err := WalkWithContext(child, enter, leave); err != nil {
				return err
			}
		}
	}

	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}

	return nil
}

// Depth returns the number of containers above n. The root has depth 0.
func Depth(n Node) int {
	depth := 0
	for parent := n.Parent(); parent != nil; parent = parent.Parent() {
		depth++
	}
	return depth
}

// FindAll returns all nodes matching the predicate, in document order.
func FindAll(root Node, predicate func(n Node) bool) []Node {
	var result []Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil if none found.
func FindFirst(root Node, predicate func(n Node) bool) Node {
	var found Node

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(node Node) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByTag returns all nodes with the given tag.
func FindByTag(root Node, tag string) []Node {
	return FindAll(root, func(n Node) bool {
		return n.Tag() == tag
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
