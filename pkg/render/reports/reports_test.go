package reports

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/org"
)

const scenarioA = `CEO
  VP Sales
    Sales Rep 1
  VP Engineering
    Engineer 1
`

func parse(t *testing.T, s string) *org.Tree {
	t.Helper()
	tree, err := org.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return tree
}

func TestRender(t *testing.T) {
	got, err := Render(parse(t, scenarioA))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := `VP Sales reports to CEO
Sales Rep 1 reports to VP Sales
VP Engineering reports to CEO
Engineer 1 reports to VP Engineering
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestLines_MatchTreeEdges(t *testing.T) {
	tree := parse(t, "A\n  B\n    C\n    D\n  E\n    C\n")
	first, _ := tree.First()

	var want []string
	for p, c := range tree.Edges(first) {
		want = append(want, Line(tree.Name(c), tree.Name(p)))
	}
	got := slices.Collect(Lines(tree, first))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if len(got) != tree.Len()-1 {
		t.Errorf("got %d lines, want %d", len(got), tree.Len()-1)
	}
}

func TestRender_SingleEntry(t *testing.T) {
	got, err := Render(parse(t, "Founder\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestRender_Empty(t *testing.T) {
	_, err := Render(parse(t, "   \n"))
	if !errors.Is(err, errors.ErrCodeEmptyOrganization) {
		t.Errorf("Render() error = %v, want EMPTY_ORGANIZATION", err)
	}
}
