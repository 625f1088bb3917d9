// Package nodelink renders organizations as Graphviz node-link diagrams.
//
// # Overview
//
// Entries appear as rounded boxes connected by arrows from manager to
// report, laid out top to bottom. Rendering happens in two steps:
//
//	dot, err := nodelink.ToDOT(tree, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Vertex Identity
//
// By default vertices are keyed by entry name: two entries called "Manager"
// collapse into a single box that receives the edges of both. This matches
// the diagrams produced by earlier versions of the tool, but it can merge
// unrelated branches that share a label. Set [Options.Distinct] to key
// vertices by tree position instead.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
