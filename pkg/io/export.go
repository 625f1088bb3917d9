package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/orgchart/pkg/org"
)

type node struct {
	Name     string  `json:"name"`
	Children []*node `json:"children,omitempty"`
}

// toNode builds the nested document for the subtree rooted at id.
func toNode(t *org.Tree, start int) *node {
	docs := make(map[int]*node)
	var root *node
	for id := range t.Walk(start) {
		n := &node{Name: t.Name(id)}
		docs[id] = n
		if id == start {
			root = n
			continue
		}
		parent, _ := t.Parent(id)
		docs[parent].Children = append(docs[parent].Children, n)
	}
	return root
}

// WriteJSON encodes the first top-level entry of t and its reports as
// indented JSON and writes it to w.
func WriteJSON(t *org.Tree, w io.Writer) error {
	first, err := t.First()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toNode(t, first)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
