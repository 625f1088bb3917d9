package org

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *Tree {
	t.Helper()
	tree, err := Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return tree
}

func TestTree_Add(t *testing.T) {
	tree := New()
	ceo, err := tree.Add(RootID, "CEO", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	vp, err := tree.Add(ceo, "VP", 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	if p, ok := tree.Parent(vp); !ok || p != ceo {
		t.Errorf("Parent(vp) = %d, %v", p, ok)
	}
	if !tree.IsTopLevel(ceo) || tree.IsTopLevel(vp) {
		t.Error("IsTopLevel mismatch")
	}

	if _, err := tree.Add(42, "ghost", 0, 0); !stderrors.Is(err, ErrUnknownParent) {
		t.Errorf("Add(unknown parent) error = %v", err)
	}
	if _, err := tree.Add(ceo, "", 0, 0); !stderrors.Is(err, ErrEmptyName) {
		t.Errorf("Add(empty name) error = %v", err)
	}
}

func TestTree_RootQueries(t *testing.T) {
	tree := mustParse(t, scenarioA)

	if _, ok := tree.Parent(RootID); ok {
		t.Error("root should have no parent")
	}
	if tree.Depth(RootID) != -1 {
		t.Errorf("Depth(root) = %d, want -1", tree.Depth(RootID))
	}
	if tree.Name(RootID) != "" {
		t.Errorf("root name = %q, want empty", tree.Name(RootID))
	}
	if _, ok := tree.Node(99); ok {
		t.Error("Node(99) should not exist")
	}
}

func TestTree_Walk(t *testing.T) {
	tree := mustParse(t, scenarioA)
	first, err := tree.First()
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for id, depth := range tree.Walk(first) {
		got = append(got, strings.Repeat(".", depth)+tree.Name(id))
		if depth != tree.Depth(id) {
			t.Errorf("Walk depth %d != Depth(%q) %d", depth, tree.Name(id), tree.Depth(id))
		}
	}
	want := []string{"CEO", ".VP Sales", "..Sales Rep 1", ".VP Engineering", "..Engineer 1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_WalkEarlyStop(t *testing.T) {
	tree := mustParse(t, scenarioA)
	first, _ := tree.First()

	count := 0
	for range tree.Walk(first) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	// The sequence restarts from the beginning.
	for id := range tree.Walk(first) {
		if tree.Name(id) != "CEO" {
			t.Errorf("restart began at %q", tree.Name(id))
		}
		break
	}
}

func TestTree_Edges(t *testing.T) {
	tree := mustParse(t, scenarioA)
	first, _ := tree.First()

	var got [][2]string
	for p, c := range tree.Edges(first) {
		got = append(got, [2]string{tree.Name(p), tree.Name(c)})
	}
	want := [][2]string{
		{"CEO", "VP Sales"},
		{"VP Sales", "Sales Rep 1"},
		{"CEO", "VP Engineering"},
		{"VP Engineering", "Engineer 1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Edges mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_NodeReturnsCopy(t *testing.T) {
	tree := mustParse(t, scenarioA)
	first, _ := tree.First()

	n, _ := tree.Node(first)
	n.Children[0] = 99
	if tree.Children(first)[0] == 99 {
		t.Error("Node() should not expose internal child slice")
	}
}
