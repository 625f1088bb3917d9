// Package org parses indentation-delimited organization files into a tree.
//
// # Input Format
//
// Every non-blank line is one entry of the organization. The amount of
// leading whitespace decides where the entry hangs in the hierarchy:
//
//	CEO
//	  VP Sales
//	    Sales Rep 1
//	  VP Engineering
//	    Engineer 1
//
// Indentation is measured as a raw count of leading whitespace characters,
// so a tab and a space weigh the same. [WithTabWidth] switches to expanding
// tabs to the next tab stop instead, which is what most editors display.
//
// # Parsing
//
// [Parse] keeps a stack of (node, indent) pairs seeded with the synthetic
// root at indent -1. For each entry it pops every frame whose indent is
// greater than or equal to the entry's, attaches the entry to the frame left
// on top, and pushes the entry. Irregular dedents are not rejected: an entry
// simply attaches to the nearest shallower ancestor.
//
// # Tree Model
//
// [Tree] stores nodes in an arena. Index [RootID] is the synthetic root,
// which has no name and owns every top-level entry. Parent links are plain
// indices, so ownership runs strictly from parent to child. Names are not
// required to be unique; node identity is the index.
//
// A tree is built once and is read-only afterwards, which makes it safe to
// share between renderers and goroutines.
package org
