// Package listing renders an organization as an indented bullet list.
//
// Each entry becomes one line, indented by two spaces per level:
//
//	- CEO
//	  - VP Sales
//	    - Sales Rep 1
package listing

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/matzehuels/orgchart/pkg/org"
)

// Lines yields the listing of the subtree rooted at start, depth-first in
// pre-order. The sequence is lazy and may be iterated more than once.
func Lines(t *org.Tree, start int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for id, depth := range t.Walk(start) {
			if !yield(strings.Repeat("  ", depth) + "- " + t.Name(id)) {
				return
			}
		}
	}
}

// Write writes the listing of the first top-level entry to w, one line per
// entry.
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
