package pipeline

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/errors"
	orgio "github.com/matzehuels/orgchart/pkg/io"
	"github.com/matzehuels/orgchart/pkg/observability"
	"github.com/matzehuels/orgchart/pkg/org"
)

// Input is a parsed organization together with the hash of its source.
type Input struct {
	Name string    // file path or request label, for logs
	Hash string    // SHA-256 of the raw input
	Tree *org.Tree // parsed hierarchy
}

// ParseFile reads and parses the organization file at path.
func (r *Runner) ParseFile(ctx context.Context, path string, opts Options) (*Input, error) {
	data, err := org.ReadFile(path)
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, path, 0, 0, err)
		return nil, err
	}
	return r.ParseBytes(ctx, path, data, opts)
}

// ParseBytes parses data as an organization named name.
func (r *Runner) ParseBytes(ctx context.Context, name string, data []byte, opts Options) (*Input, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, name)
	start := time.Now()

	t, err := parseTree(name, data, opts)
	if err != nil {
		hooks.OnParseComplete(ctx, name, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnParseComplete(ctx, name, t.Len(), time.Since(start), nil)

	r.Logger.Debug("parsed organization", "source", name, "entries", t.Len(), "duration", time.Since(start))
	if top := t.TopLevel(); len(top) > 1 {
		r.Logger.Warn("only the first top-level entry is rendered",
			"source", name, "first", t.Name(top[0]), "ignored", len(top)-1)
	}

	return &Input{Name: name, Hash: cache.Hash(data), Tree: t}, nil
}

// parseTree decodes data as nested JSON when requested or when name has a
// .json extension, and as indented text otherwise.
func parseTree(name string, data []byte, opts Options) (*org.Tree, error) {
	if opts.JSONInput || strings.EqualFold(filepath.Ext(name), ".json") {
		t, err := orgio.ReadJSON(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s is not a valid JSON organization", name)
		}
		return t, nil
	}

	var parseOpts []org.Option
	if opts.TabWidth > 0 {
		parseOpts = append(parseOpts, org.WithTabWidth(opts.TabWidth))
	}
	return org.Parse(bytes.NewReader(data), parseOpts...)
}
