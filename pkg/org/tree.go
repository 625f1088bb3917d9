package org

import (
	"iter"
	"slices"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// RootID is the arena index of the synthetic root node.
const RootID = 0

var (
	// ErrEmptyOrganization is returned when a tree has no entries below the
	// synthetic root, typically because the input held only blank lines.
	ErrEmptyOrganization = errors.New(errors.ErrCodeEmptyOrganization, "organization has no entries")

	// ErrUnknownParent is returned by [Tree.Add] when the parent index does
	// not refer to an existing node.
	ErrUnknownParent = errors.New(errors.ErrCodeInvalidInput, "unknown parent node")

	// ErrEmptyName is returned by [Tree.Add] for a blank entry name.
	ErrEmptyName = errors.New(errors.ErrCodeInvalidInput, "entry name must not be empty")
)

// Node is one entry of the organization.
//
// The zero value is not meaningful; nodes are created through [Tree.Add].
type Node struct {
	Name     string // Trimmed text of the source line (empty for the root)
	Indent   int    // Measured indentation (-1 for the root)
	Line     int    // 1-based source line, 0 when not parsed from text
	Parent   int    // Index of the parent node, -1 for the root
	Children []int  // Child indices in order of appearance
}

// Tree is an organization hierarchy rooted at a synthetic node.
//
// The zero value is not usable - use [New] or [Parse].
type Tree struct {
	nodes []Node
}

// New creates a tree holding only the synthetic root.
func New() *Tree {
	return &Tree{nodes: []Node{{Indent: -1, Parent: -1}}}
}

// Add appends a node named name as the last child of parent and returns its
// index. indent and line are recorded as given.
func (t *Tree) Add(parent int, name string, indent, line int) (int, error) {
	if !t.valid(parent) {
		return -1, ErrUnknownParent
	}
	if name == "" {
		return -1, ErrEmptyName
	}
	id := len(t.nodes)
	t.nodes = append(t.nodes, Node{Name: name, Indent: indent, Line: line, Parent: parent})
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id, nil
}

func (t *Tree) valid(id int) bool { return id >= 0 && id < len(t.nodes) }

// Len returns the number of entries, excluding the synthetic root.
func (t *Tree) Len() int { return len(t.nodes) - 1 }

// Node returns a copy of the node at id.
func (t *Tree) Node(id int) (Node, bool) {
	if !t.valid(id) {
		return Node{}, false
	}
	n := t.nodes[id]
	n.Children = slices.Clone(n.Children)
	return n, true
}

// Name returns the name of the node at id, or "" for unknown ids.
func (t *Tree) Name(id int) string {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].Name
}

// Children returns the child indices of id in insertion order.
// The returned slice must not be modified.
func (t *Tree) Children(id int) []int {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].Children
}

// Parent returns the parent of id. It reports false for the root and for
// unknown ids.
func (t *Tree) Parent(id int) (int, bool) {
	if !t.valid(id) || id == RootID {
		return -1, false
	}
	return t.nodes[id].Parent, true
}

// IsTopLevel reports whether id hangs directly below the synthetic root.
func (t *Tree) IsTopLevel(id int) bool {
	p, ok := t.Parent(id)
	return ok && p == RootID
}

// TopLevel returns the entries owned by the synthetic root.
func (t *Tree) TopLevel() []int { return t.Children(RootID) }

// First returns the first top-level entry, which is where every renderer
// starts. It returns [ErrEmptyOrganization] when there is none.
func (t *Tree) First() (int, error) {
	top := t.TopLevel()
	if len(top) == 0 {
		return -1, ErrEmptyOrganization
	}
	return top[0], nil
}

// Depth returns the number of ancestors between id and the synthetic root:
// 0 for top-level entries, -1 for the root itself.
func (t *Tree) Depth(id int) int {
	d := -1
	for t.valid(id) && id != RootID {
		d++
		id = t.nodes[id].Parent
	}
	return d
}

// Walk yields every node of the subtree rooted at start in depth-first
// pre-order, children in insertion order. The second value is the depth
// relative to start. Iteration may be stopped early and restarted.
func (t *Tree) Walk(start int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if !t.valid(start) {
			return
		}
		type frame struct{ id, depth int }
		stack := []frame{{start, 0}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(f.id, f.depth) {
				return
			}
			kids := t.nodes[f.id].Children
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, frame{kids[i], f.depth + 1})
			}
		}
	}
}

// Edges yields (parent, child) pairs of the subtree rooted at start in the
// pre-order of the child. Edges into start itself are not included.
func (t *Tree) Edges(start int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for id := range t.Walk(start) {
			if id == start {
				continue
			}
			if !yield(t.nodes[id].Parent, id) {
				return
			}
		}
	}
}
