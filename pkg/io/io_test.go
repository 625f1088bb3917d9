package io

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/orgchart/pkg/org"
)

func parse(t *testing.T, s string) *org.Tree {
	t.Helper()
	tree, err := org.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return tree
}

func names(t *org.Tree) []string {
	var out []string
	first, err := t.First()
	if err != nil {
		return nil
	}
	for id, depth := range t.Walk(first) {
		out = append(out, strings.Repeat(" ", depth)+t.Name(id))
	}
	return out
}

func TestWriteJSON(t *testing.T) {
	tree := parse(t, "CEO\n  VP Sales\n    Sales Rep 1\n  VP Engineering\n")

	var buf bytes.Buffer
	if err := WriteJSON(tree, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	want := `{
  "name": "CEO",
  "children": [
    {
      "name": "VP Sales",
      "children": [
        {
          "name": "Sales Rep 1"
        }
      ]
    },
    {
      "name": "VP Engineering"
    }
  ]
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	tree := parse(t, "A\n  B\n    C\n  D\n    E\n    F\n      G\n")

	var buf bytes.Buffer
	if err := WriteJSON(tree, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	if diff := cmp.Diff(names(tree), names(back)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"name": `},
		{"empty name", `{"name": ""}`},
		{"nested empty name", `{"name": "A", "children": [{"name": ""}]}`},
		{"null child", `{"name": "A", "children": [null]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadJSON() should fail")
			}
		})
	}

	_, err := ReadJSON(strings.NewReader(`{"name": ""}`))
	if !stderrors.Is(err, org.ErrEmptyName) {
		t.Errorf("error = %v, want ErrEmptyName", err)
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(parse(t, ""), &buf); !stderrors.Is(err, org.ErrEmptyOrganization) {
		t.Errorf("WriteJSON() error = %v, want ErrEmptyOrganization", err)
	}
}
