// Package config loads application settings from defaults, an optional
// TOML file, and YTGRAB_-prefixed environment variables, in that order.
// The recognized keys are a fixed, enumerated set; unknown options in
// the file are ignored rather than invented at runtime.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/ytgrab/ytgrab/internal/model"
)

// Recognized configuration keys.
const (
	DOWNLOAD_DIRECTORY          = "download.directory"
	DOWNLOAD_QUALITY            = "download.quality"
	DOWNLOAD_TEMPLATE           = "download.template"
	DOWNLOAD_MERGE_FORMAT       = "download.merge_format"
	DOWNLOAD_RESTRICT_FILENAMES = "download.restrict_filenames"
	HTTP_PROXY                  = "http.proxy"
	HTTP_SOCKET_TIMEOUT         = "http.socket_timeout"
	LOGGING_LEVEL               = "logging.level"
)

// DefaultTemplate is the output filename template handed to the
// extraction tool when none is configured.
const DefaultTemplate = "%(title)s.%(ext)s"

const configFileName = "config.toml"

// Config is a read-only view over the merged settings.
type Config struct {
	k *koanf.Koanf
}

// Load merges defaults, the first config file found, and environment
// overrides. explicitPath, when non-empty, must exist and parse; the
// well-known locations are optional.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		DOWNLOAD_DIRECTORY:          "",
		DOWNLOAD_QUALITY:            string(model.QualityBest),
		DOWNLOAD_TEMPLATE:           DefaultTemplate,
		DOWNLOAD_MERGE_FORMAT:       "",
		DOWNLOAD_RESTRICT_FILENAMES: false,
		HTTP_PROXY:                  "",
		HTTP_SOCKET_TIMEOUT:         time.Duration(0),
		LOGGING_LEVEL:               "info",
	}
	k.Load(confmap.Provider(defaults, "."), nil)

	if explicitPath != "" {
		if err := k.Load(file.Provider(explicitPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config %s: %w", explicitPath, err)
		}
	} else {
		for _, path := range searchPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
					return nil, fmt.Errorf("error loading config %s: %w", path, err)
				}
				break
			}
		}
	}

	k.Load(env.Provider("YTGRAB_", ".", envToKey), nil)

	cfg := &Config{k: k}
	if !cfg.Quality().Valid() {
		return nil, fmt.Errorf("unknown quality preset %q", cfg.k.String(DOWNLOAD_QUALITY))
	}
	return cfg, nil
}

// envToKey maps an environment variable name onto one of the recognized
// keys. Key names may themselves contain underscores (merge_format,
// socket_timeout), so only the first underscore separates the section
// from the key.
func envToKey(s string) string {
	return strings.Replace(
		strings.ToLower(strings.TrimPrefix(s, "YTGRAB_")),
		"_", ".", 1,
	)
}

// searchPaths lists the well-known config file locations, most specific
// first.
func searchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "ytgrab", configFileName))
	}
	paths = append(paths, filepath.Join(".", "ytgrab.toml"))
	return paths
}

// Directory returns the configured download directory; empty means the
// current working directory at invocation time.
func (c *Config) Directory() string {
	return c.k.String(DOWNLOAD_DIRECTORY)
}

// Quality returns the configured format preset.
func (c *Config) Quality() model.Quality {
	return model.Quality(c.k.String(DOWNLOAD_QUALITY))
}

// Template returns the output filename template.
func (c *Config) Template() string {
	if t := c.k.String(DOWNLOAD_TEMPLATE); t != "" {
		return t
	}
	return DefaultTemplate
}

// MergeFormat returns the container override for the merged file, or ""
// to let the external tool decide.
func (c *Config) MergeFormat() string {
	return c.k.String(DOWNLOAD_MERGE_FORMAT)
}

// RestrictFilenames reports whether output names are restricted to
// ASCII.
func (c *Config) RestrictFilenames() bool {
	return c.k.Bool(DOWNLOAD_RESTRICT_FILENAMES)
}

// Proxy returns the proxy URL forwarded to the extraction tool, or "".
func (c *Config) Proxy() string {
	return c.k.String(HTTP_PROXY)
}

// SocketTimeout returns the network timeout pass-through; 0 keeps the
// external tool's default.
func (c *Config) SocketTimeout() time.Duration {
	return c.k.Duration(HTTP_SOCKET_TIMEOUT)
}

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string {
	return c.k.String(LOGGING_LEVEL)
}
