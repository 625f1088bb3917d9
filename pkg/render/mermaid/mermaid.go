// Package mermaid renders an organization as a Mermaid flowchart.
//
// The output is a fenced Markdown code block that renders top to bottom:
//
//	```mermaid
//	flowchart TB
//		n0["CEO"]
//		n1["VP Sales"]
//		n0 --> n1
//	```
//
// Node identifiers are assigned in depth-first pre-order starting at n0, so
// identical trees always produce identical output.
package mermaid

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/matzehuels/orgchart/pkg/org"
)

const (
	fenceOpen  = "```mermaid"
	fenceClose = "```"
	direction  = "flowchart TB"
)

// labelEscaper keeps labels inside their double quotes.
var labelEscaper = strings.NewReplacer(`"`, "#quot;")

// ID returns the flowchart identifier of the n-th visited node.
func ID(n int) string { return fmt.Sprintf("n%d", n) }

// Statements yields the node declarations and edges of the subtree rooted at
// start, without the surrounding fence. Each node is declared before the edge
// from its parent.
func Statements(t *org.Tree, start int) iter.Seq[string] {
	return func(yield func(string) bool) {
		ids := make(map[int]string)
		next := 0
		for node := range t.Walk(start) {
			id := ID(next)
			next++
			ids[node] = id

			if !yield(fmt.Sprintf("%s[\"%s\"]", id, labelEscaper.Replace(t.Name(node)))) {
				return
			}
			if node == start {
				continue
			}
			parent, _ := t.Parent(node)
			if !yield(ids[parent] + " --> " + id) {
				return
			}
		}
	}
}

// Write writes the fenced flowchart of the first top-level entry to w.
func Write(w io.Writer, t *org.Tree) error {
	first, err := t.First()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(fenceOpen + "\n")
	buf.WriteString(direction + "\n")
	for stmt := range Statements(t, first) {
		buf.WriteString("\t" + stmt + "\n")
	}
	buf.WriteString(fenceClose + "\n")

	_, err = w.Write(buf.Bytes())
	return err
}

// Render returns the output of [Write] as bytes.
func Render(t *org.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
