// Package reports renders an organization as reporting relationships.
//
// The output is a flat edge list meant for import into diagramming tools
// such as Visio:
//
//	VP Sales reports to CEO
//	Sales Rep 1 reports to VP Sales
package reports

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/matzehuels/orgchart/pkg/org"
)

// Line formats one relationship.
func Line(name, manager string) string {
	return name + " reports to " + manager
}

// Lines yields one relationship per entry of the subtree rooted at start,
// in pre-order. Top-level entries report to nobody and are skipped.
func Lines(t *org.Tree, start int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for id := range t.Walk(start) {
			parent, ok := t.Parent(id)
			if !ok || parent == org.RootID {
				continue
			}
			if !yield(Line(t.Name(id), t.Name(parent))) {
				return
			}
		}
	}
}

// Write writes the relationships below the first top-level entry to w.
func Write(w io.Writer, t *org.Tree) error {
	first, err := t.First()
	if err != nil {
		return err
	}
	for line := range Lines(t, first) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the output of [Write] as bytes.
func Render(t *org.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
