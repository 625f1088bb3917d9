package listing

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
	want := `- CEO
  - VP Sales
    - Sales Rep 1
  - VP Engineering
    - Engineer 1
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_OnlyFirstTopLevelEntry(t *testing.T) {
	got, err := Render(parse(t, "A\n  B\nC\n  D\n"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "- A\n  - B\n" {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_Empty(t *testing.T) {
	_, err := Render(parse(t, "\n\n"))
	if !errors.Is(err, errors.ErrCodeEmptyOrganization) {
		t.Errorf("Render() error = %v, want EMPTY_ORGANIZATION", err)
	}
}

func TestLines_Restartable(t *testing.T) {
	tree := parse(t, scenarioA)
	first, _ := tree.First()

	seq := Lines(tree, first)
	a := slices.Collect(seq)
	b := slices.Collect(seq)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("second iteration differs (-first +second):\n%s", diff)
	}
	if len(a) != tree.Len() {
		t.Errorf("len = %d, want %d", len(a), tree.Len())
	}
}

// shape renders a subtree as "name(child,child)".
func shape(t *org.Tree, id int) string {
	var b strings.Builder
	b.WriteString(t.Name(id))
	if kids := t.Children(id); len(kids) > 0 {
		b.WriteString("(")
		for i, c := range kids {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(shape(t, c))
		}
		b.WriteString(")")
	}
	return b.String()
}

func TestRender_RoundTrip(t *testing.T) {
	inputs := []string{
		scenarioA,
		"A\n    B\n  C\n      D\n",
		"Board\n\tChair\n\t\tSecretary\n\tTreasurer\n",
	}

	for _, in := range inputs {
		tree := parse(t, in)
		out, err := Render(tree)
		if err != nil {
			t.Fatal(err)
		}

		// Drop the bullet and keep the two-space indentation.
		var b strings.Builder
		for _, line := range strings.Split(strings.TrimSuffix(string(out), "\n"), "\n") {
			i := strings.Index(line, "- ")
			b.WriteString(line[:i] + line[i+2:] + "\n")
		}

		back := parse(t, b.String())
		if got, want := shape(back, org.RootID), shape(tree, org.RootID); got != want {
			t.Errorf("round trip of %q: got %q, want %q", in, got, want)
		}
	}
}
