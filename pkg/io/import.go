package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/orgchart/pkg/org"
)

// ReadJSON decodes a nested JSON document from r into a tree whose single
// top-level entry is the document root.
//
// Every object must have a non-empty "name". Indentation is not part of the
// format; imported nodes record their depth as indent and line 0.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*org.Tree, error) {
	var doc node
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	t := org.New()
	type frame struct {
		n      *node
		parent int
		depth  int
	}
	stack := []frame{{&doc, org.RootID, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id, err := t.Add(f.parent, f.n.Name, f.depth, 0)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", f.n.Name, err)
		}
		for i := len(f.n.Children) - 1; i >= 0; i-- {
			if f.n.Children[i] == nil {
				return nil, fmt.Errorf("node %q: null child", f.n.Name)
			}
			stack = append(stack, frame{f.n.Children[i], id, f.depth + 1})
		}
	}
	return t, nil
}
