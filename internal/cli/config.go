package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/pipeline"
)

// localConfigFile is looked up in the working directory.
const localConfigFile = ".orgchart.toml"

// Config is the file-backed configuration. Command-line flags take
// precedence over every field.
type Config struct {
	Input    string      `toml:"input"`
	Output   string      `toml:"output"`
	Format   string      `toml:"format"`
	TabWidth int         `toml:"tab_width"`
	Distinct bool        `toml:"distinct"`
	Cache    CacheConfig `toml:"cache"`
	Serve    ServeConfig `toml:"serve"`
}

// CacheConfig controls the rendered-image cache.
type CacheConfig struct {
	Enabled  bool     `toml:"enabled"`
	Dir      string   `toml:"dir"`
	TTL      duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url"`
}

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// duration decodes TOML strings such as "24h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Input:  defaultInput,
		Output: defaultOutput,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     duration{pipeline.DefaultCacheTTL},
		},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// loadConfig layers the config file over the defaults. An explicit path
// must exist; otherwise the local and then the user config file are tried
// and a missing file is not an error.
func loadConfig(explicit string, logger *log.Logger) (Config, error) {
	cfg := defaultConfig()

	path := explicit
	if path == "" {
		path = findConfig()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "config file %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("unknown config keys", "file", path, "keys", strings.Join(keys, ", "))
	}
	logger.Debug("loaded config", "file", path)
	return cfg, nil
}

// findConfig returns the first existing config file, or "".
func findConfig() string {
	candidates := []string{localConfigFile}
	if dir, err := configDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.toml"))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// validate checks the fields shared by all commands.
func (c Config) validate() error {
	if c.Format != "" {
		if err := pipeline.ValidateFormat(c.Format); err != nil {
			return err
		}
	}
	if err := errors.ValidateTabWidth(c.TabWidth); err != nil {
		return err
	}
	return errors.ValidateOutputBase(c.Output)
}
