package pipeline

import (
	"bytes"

	"github.com/matzehuels/orgchart/pkg/errors"
	orgio "github.com/matzehuels/orgchart/pkg/io"
	"github.com/matzehuels/orgchart/pkg/org"
	"github.com/matzehuels/orgchart/pkg/render/listing"
	"github.com/matzehuels/orgchart/pkg/render/mermaid"
	"github.com/matzehuels/orgchart/pkg/render/nodelink"
	"github.com/matzehuels/orgchart/pkg/render/reports"
)

// Render produces the artifact of t in opts.Format without caching.
// opts must have been validated.
func Render(t *org.Tree, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatTree:
		return listing.Render(t)
	case FormatVisio:
		return reports.Render(t)
	case FormatMermaid:
		return mermaid.Render(t)
	case FormatJSON:
		var buf bytes.Buffer
		if err := orgio.WriteJSON(t, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	dot, err := nodelink.ToDOT(t, nodelink.Options{Distinct: opts.Distinct})
	if err != nil {
		return nil, err
	}

	switch opts.Format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(dot)
	case FormatPNG:
		return nodelink.RenderPNG(dot, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(dot)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", opts.Format)
	}
}
