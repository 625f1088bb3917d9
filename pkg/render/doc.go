// Package render provides the output formats of orgchart.
//
// # Overview
//
// Every renderer is a stateless pass over an [org.Tree]. Rendering always
// starts at the first top-level entry; the synthetic root is never shown.
// An empty tree yields [org.ErrEmptyOrganization] from every renderer.
//
// Subpackages:
//   - [listing]: indented "- name" listing
//   - [reports]: flat "X reports to Y" edge list for diagramming tools
//   - [mermaid]: fenced Mermaid flowchart
//   - [nodelink]: Graphviz diagram (DOT, SVG, PNG, PDF)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert an SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [org.Tree]: github.com/matzehuels/orgchart/pkg/org.Tree
// [org.ErrEmptyOrganization]: github.com/matzehuels/orgchart/pkg/org.ErrEmptyOrganization
// [listing]: github.com/matzehuels/orgchart/pkg/render/listing
// [reports]: github.com/matzehuels/orgchart/pkg/render/reports
// [mermaid]: github.com/matzehuels/orgchart/pkg/render/mermaid
// [nodelink]: github.com/matzehuels/orgchart/pkg/render/nodelink
package render
