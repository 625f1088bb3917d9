// Package pipeline provides the parse → render pipeline of orgchart.
//
// The CLI and the HTTP server both go through a [Runner] so that format
// dispatch, caching and observability behave the same for every entry point.
//
// # Stages
//
//  1. Parse: read the indented text into an [org.Tree] and hash the input
//  2. Render: produce one artifact in the requested format
//
// Image artifacts (svg, png, pdf) are cached by input hash and options.
// Text formats are cheap and always rendered.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	in, err := runner.ParseFile(ctx, "org.txt", opts)
//	if err != nil {
//	    return err
//	}
//	art, err := runner.Render(ctx, in, opts)
//
// [org.Tree]: github.com/matzehuels/orgchart/pkg/org.Tree
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// Format constants for output formats.
const (
	FormatTree    = "tree"    // indented listing
	FormatVisio   = "visio"   // reporting relationships
	FormatMermaid = "mermaid" // fenced Mermaid flowchart
	FormatSVG     = "svg"     // Graphviz SVG image
	FormatPNG     = "png"     // Graphviz image converted with rsvg-convert
	FormatPDF     = "pdf"     // Graphviz image converted with rsvg-convert
	FormatDOT     = "dot"     // Graphviz source
	FormatJSON    = "json"    // nested JSON export
)

// Formats lists the supported formats. The first four are the renderers
// run when no format is selected, in that order.
var Formats = []string{
	FormatTree, FormatVisio, FormatMermaid, FormatSVG,
	FormatPNG, FormatPDF, FormatDOT, FormatJSON,
}

// DefaultFormats is the fixed order used when no format is requested.
var DefaultFormats = Formats[:4]

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultCacheTTL bounds how long rendered images are kept.
	DefaultCacheTTL = 24 * time.Hour
)

var contentTypes = map[string]string{
	FormatTree:    "text/plain; charset=utf-8",
	FormatVisio:   "text/plain; charset=utf-8",
	FormatMermaid: "text/markdown; charset=utf-8",
	FormatSVG:     "image/svg+xml",
	FormatPNG:     "image/png",
	FormatPDF:     "application/pdf",
	FormatDOT:     "text/vnd.graphviz; charset=utf-8",
	FormatJSON:    "application/json",
}

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Format   string  `json:"format"`
	TabWidth int     `json:"tab_width,omitempty"` // 0 counts raw whitespace characters
	Distinct bool    `json:"distinct,omitempty"`  // key image vertices by position, not name
	Scale    float64 `json:"scale,omitempty"`     // PNG only

	// JSONInput parses the input as a nested JSON export instead of
	// indented text. Files with a .json extension are always read as JSON.
	JSONInput bool `json:"json_input,omitempty"`
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// IsImage reports whether format produces a binary or vector image that is
// written to a file by the CLI.
func IsImage(format string) bool {
	return format == FormatSVG || format == FormatPNG || format == FormatPDF
}

// ContentType returns the MIME type of an artifact in format.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Validate checks the options and fills in defaults.
func (o *Options) Validate() error {
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := errors.ValidateTabWidth(o.TabWidth); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must not be negative")
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	return nil
}
