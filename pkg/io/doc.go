// Package io provides JSON import and export for organization trees.
//
// # Overview
//
// The JSON format nests every entry inside its manager, which is what
// charting libraries such as d3-hierarchy expect:
//
//	{
//	  "name": "CEO",
//	  "children": [
//	    {"name": "VP Sales", "children": [{"name": "Sales Rep 1"}]},
//	    {"name": "VP Engineering"}
//	  ]
//	}
//
// Like the other renderers, export starts at the first top-level entry.
// [ReadJSON] rebuilds a tree from such a document, so export and import
// round-trip the structure.
package io
