package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// rsvgConvertBin is the converter binary, replaceable in tests.
var rsvgConvertBin = "rsvg-convert"

const librsvgHint = "Install librsvg:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin"

// ToPDF converts a rendered org chart from SVG to a single-page PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return rasterize(svg, "pdf")
}

// ToPNG rasterizes a rendered org chart. The chart's own width and height
// are multiplied by scale, so wide organizations stay legible at 2.0.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %g", scale)
	}
	return rasterize(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rasterize pipes a chart through rsvg-convert.
func rasterize(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if !bytes.Contains(svg, []byte("<svg")) {
		return nil, errors.New(errors.ErrCodeRenderFailed, "%s chart: input is not an SVG document", format)
	}
	if _, err := exec.LookPath(rsvgConvertBin); err != nil {
		return nil, errors.New(errors.ErrCodeRenderFailed, "%s chart needs rsvg-convert. %s", format, librsvgHint)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command(rsvgConvertBin, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "%s chart: rsvg-convert: %s", format, strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
