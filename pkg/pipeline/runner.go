package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// Artifact is one rendered output.
type Artifact struct {
	Format string
	Data   []byte
	Cached bool // served from the cache
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, log output is discarded.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultCacheTTL,
	}
}

// Render produces the artifact of in for opts.Format. Image formats are
// looked up in and stored to the cache; cache failures are logged and
// otherwise ignored.
func (r *Runner) Render(ctx context.Context, in *Input, opts Options) (*Artifact, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var key string
	if IsImage(opts.Format) {
		key = r.Keyer.ArtifactKey(in.Hash, cache.ArtifactKeyOpts{
			Format:   opts.Format,
			Distinct: opts.Distinct,
			TabWidth: opts.TabWidth,
		})
		if data, ok := r.lookup(ctx, key); ok {
			r.Logger.Debug("artifact cache hit", "source", in.Name, "format", opts.Format)
			return &Artifact{Format: opts.Format, Data: data, Cached: true}, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()

	data, err := Render(in.Tree, opts)
	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("rendered", "source", in.Name, "format", opts.Format, "bytes", len(data), "duration", time.Since(start))

	if key != "" {
		r.store(ctx, key, data)
	}
	return &Artifact{Format: opts.Format, Data: data}, nil
}

func (r *Runner) lookup(ctx context.Context, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "artifact")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "artifact")
	return data, true
}

func (r *Runner) store(ctx context.Context, key string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))
}
