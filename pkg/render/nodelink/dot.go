package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/org"
	"github.com/matzehuels/orgchart/pkg/render"
)

// Options configures node-link diagram generation.
type Options struct {
	// Distinct gives every entry its own vertex. When false, entries that
	// share a name share a vertex.
	Distinct bool
}

// vertexIDs assigns DOT identifiers in the order vertices are first seen.
type vertexIDs struct {
	byKey map[any]string
	order []vertex
}

type vertex struct {
	id    string
	label string
}

func (v *vertexIDs) get(key any, label string) string {
	if id, ok := v.byKey[key]; ok {
		return id
	}
	id := fmt.Sprintf("node_%d", len(v.order))
	v.byKey[key] = id
	v.order = append(v.order, vertex{id: id, label: label})
	return id
}

// ToDOT converts the tree below its first top-level entry to Graphviz DOT.
//
// Identifiers are handed out in depth-first pre-order: an entry gets its
// identifier, and its edge from the manager is emitted, right before the
// walk descends into it. Every tree edge becomes one DOT edge, so merged
// vertices keep the edges of all entries they stand for.
func ToDOT(t *org.Tree, opts Options) (string, error) {
	first, err := t.First()
	if err != nil {
		return "", err
	}

	key := func(id int) any {
		if opts.Distinct {
			return id
		}
		return t.Name(id)
	}

	ids := vertexIDs{byKey: make(map[any]string)}
	type edge struct{ from, to string }
	var edges []edge

	ids.get(key(first), t.Name(first))
	for parent, child := range t.Edges(first) {
		from := ids.get(key(parent), t.Name(parent))
		to := ids.get(key(child), t.Name(child))
		edges = append(edges, edge{from, to})
	}

	var buf bytes.Buffer
	buf.WriteString("// Organization Chart\n")
	buf.WriteString("digraph {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=lightblue];\n")
	buf.WriteString("\n")

	for _, v := range ids.order {
		fmt.Fprintf(&buf, "  %s [label=%q];\n", v.id, v.label)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %s -> %s;\n", e.from, e.to)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing starts at the
// origin and scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF lays out the chart with Graphviz and converts the SVG with
// [render.ToPDF].
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG lays out the chart with Graphviz and rasterizes it with
// [render.ToPNG].
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
