package org

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Entry is one non-blank input line.
type Entry struct {
	Indent int    // Measured leading whitespace
	Text   string // Line with surrounding whitespace removed
	Line   int    // 1-based line number
}

// Option configures [Parse], [ParseFile] and [ReadEntries].
type Option func(*options)

type options struct {
	tabWidth int
}

// WithTabWidth expands tabs in the leading whitespace to the next multiple
// of n columns. n <= 0 keeps the default raw character count.
func WithTabWidth(n int) Option {
	return func(o *options) { o.tabWidth = n }
}

// ReadEntries reads r line by line and returns its non-blank lines with
// their indentation. Lines that are empty or whitespace-only are skipped.
func ReadEntries(r io.Reader, opts ...Option) ([]Entry, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var entries []Entry
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		entries = append(entries, Entry{Indent: indentOf(raw, o.tabWidth), Text: text, Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read line %d", line+1)
	}
	return entries, nil
}

// indentOf measures the leading whitespace of s. With tabWidth <= 0 every
// whitespace rune counts as one.
func indentOf(s string, tabWidth int) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			break
		}
		if r == '\t' && tabWidth > 0 {
			n += tabWidth - n%tabWidth
			continue
		}
		n++
	}
	return n
}

// Build turns entries into a tree using the indent stack described in the
// package documentation.
func Build(entries []Entry) *Tree {
	type frame struct{ id, indent int }

	t := New()
	stack := []frame{{RootID, -1}}
	for _, e := range entries {
		// The root frame has indent -1 and is never popped.
		for stack[len(stack)-1].indent >= e.Indent {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].id
		id := len(t.nodes)
		t.nodes = append(t.nodes, Node{Name: e.Text, Indent: e.Indent, Line: e.Line, Parent: parent})
		t.nodes[parent].Children = append(t.nodes[parent].Children, id)
		stack = append(stack, frame{id, e.Indent})
	}
	return t
}

// Parse reads an organization from r.
func Parse(r io.Reader, opts ...Option) (*Tree, error) {
	entries, err := ReadEntries(r, opts...)
	if err != nil {
		return nil, err
	}
	return Build(entries), nil
}

// ReadFile returns the contents of the organization file at path.
//
// A missing file yields an error with code [errors.ErrCodeFileNotFound];
// callers use it to print a remediation hint instead of a failure.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return data, nil
}

// ParseFile reads and parses the organization file at path.
func ParseFile(path string, opts ...Option) (*Tree, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data), opts...)
}
