package mdast_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

func buildTestTree() *mdast.Tree {
	// Build a simple tree:
	// html
	//   h1
	//   table
	//     tr
	//       th
	//       th
	//   p
	tree := mdast.NewTree()
	tree.AppendText("h1", "Title")
	tree.AppendContainer("table")
	tree.AppendContainer("tr")
	tree.AppendText("th", "a")
	tree.AppendText("th", "b")
	tree.Ascend()
	tree.Ascend()
	tree.AppendText("p", "body")
	return tree
}

func TestWalk(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	var visited []string
	err := mdast.Walk(tree.Root(), func(n mdast.Node) error {
		visited = append(visited, n.Tag())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	expected := []string{"html", "h1", "table", "tr", "th", "th", "p"}
	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes, visited %d: %v", len(expected), len(visited), visited)
	}
	for i, tag := range expected {
		if visited[i] != tag {
			t.Errorf("node %d: expected %s, got %s", i, tag, visited[i])
		}
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()
	stop := errors.New("stop")

	count := 0
	err := mdast.Walk(tree.Root(), func(n mdast.Node) error {
		count++
		if n.Tag() == "table" {
			return stop
		}
		return nil
	})

	if !errors.Is(err, stop) {
		t.Errorf("expected stop error, got %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 visits before stopping, got %d", count)
	}
}

func TestWalkWithContext(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	var events []string
	err := mdast.WalkWithContext(tree.Cursor(),
		func(n mdast.Node) error {
			events = append(events, "+"+n.Tag())
			return nil
		},
		func(n mdast.Node) error {
			events = append(events, "-"+n.Tag())
			return nil
		},
	)
	if err != nil {
		t.Fatalf("WalkWithContext returned error: %v", err)
	}

	expected := []string{
		"+html", "+h1", "-h1",
		"+table", "+tr", "+th", "-th", "+th", "-th", "-tr", "-table",
		"+p", "-p", "-html",
	}
	if len(events) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, events)
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("event %d: expected %s, got %s", i, expected[i], events[i])
		}
	}
}

func TestWalk_Nil(t *testing.T) {
	t.Parallel()

	if err := mdast.Walk(nil, func(mdast.Node) error { return errors.New("called") }); err != nil {
		t.Errorf("expected nil for nil root, got %v", err)
	}
}

func TestDepth(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()
	cells := mdast.FindByTag(tree.Root(), "th")
	if len(cells) != 2 {
		t.Fatalf("expected 2 th nodes, got %d", len(cells))
	}

	if depth := mdast.Depth(cells[0]); depth != 3 {
		t.Errorf("expected th depth 3, got %d", depth)
	}
	if depth := mdast.Depth(tree.Root()); depth != 0 {
		t.Errorf("expected root depth 0, got %d", depth)
	}
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	found := mdast.FindFirst(tree.Root(), func(n mdast.Node) bool {
		_, isText := n.(*mdast.Text)
		return isText
	})
	if found == nil || found.Tag() != "h1" {
		t.Errorf("expected first text leaf h1, got %v", found)
	}

	missing := mdast.FindFirst(tree.Root(), func(n mdast.Node) bool {
		return n.Tag() == "ul"
	})
	if missing != nil {
		t.Errorf("expected nil, got %v", missing)
	}
}
