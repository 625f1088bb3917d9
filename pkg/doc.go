// Package pkg provides the libraries behind the orgchart command.
//
// # Overview
//
// orgchart reads a plain-text file where each non-blank line names one
// position and indentation marks who reports to whom, then renders that
// hierarchy in several formats. The pkg directory is organized as:
//
//  1. [org] - Tree model and the indentation parser
//  2. [render] - Listing, reporting lines, Mermaid and Graphviz renderers
//  3. [io] - Nested JSON export and import
//  4. [pipeline] - Orchestration (parse → render) with caching
//  5. [cache] - File, Redis and null artifact caches
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through orgchart:
//
//	org.txt
//	   ↓
//	[org] package (Parse: lines → indentation stack → Tree)
//	   ↓
//	[pipeline] package (Runner: format dispatch, artifact cache)
//	   ↓
//	[render] packages (tree, visio, mermaid, dot/svg/png/pdf) or [io] (json)
//
// # Quick Start
//
//	import (
//	    "os"
//	    "github.com/matzehuels/orgchart/pkg/org"
//	    "github.com/matzehuels/orgchart/pkg/render/mermaid"
//	)
//
//	t, err := org.ParseFile("org.txt")
//	if err != nil {
//	    return err
//	}
//	return mermaid.Write(os.Stdout, t)
//
// # Error Handling
//
// Errors carry a machine-readable code from [errors]. An input without any
// non-blank line parses to an empty tree; renderers then report
// [org.ErrEmptyOrganization].
//
// [org]: github.com/matzehuels/orgchart/pkg/org
// [render]: github.com/matzehuels/orgchart/pkg/render
// [io]: github.com/matzehuels/orgchart/pkg/io
// [pipeline]: github.com/matzehuels/orgchart/pkg/pipeline
// [cache]: github.com/matzehuels/orgchart/pkg/cache
// [errors]: github.com/matzehuels/orgchart/pkg/errors
// [observability]: github.com/matzehuels/orgchart/pkg/observability
// [buildinfo]: github.com/matzehuels/orgchart/pkg/buildinfo
// [org.ErrEmptyOrganization]: github.com/matzehuels/orgchart/pkg/org#ErrEmptyOrganization
package pkg
