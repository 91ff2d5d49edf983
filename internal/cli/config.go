package cli

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/nodedex/nodedex/pkg/httputil"
	"github.com/nodedex/nodedex/pkg/nodejs"
)

// config holds the optional user configuration for the CLI. The release
// index library itself reads no files and no environment; overrides are
// applied here and injected through its options.
type config struct {
	// Endpoint overrides the release index URL, e.g. for a mirror.
	Endpoint string `toml:"endpoint"`

	// TimeoutSeconds overrides the HTTP timeout for the index request.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

func defaultConfig() config {
	return config{Endpoint: nodejs.DefaultEndpoint}
}

// configPath returns the default config file location,
// ~/.config/nodedex/config.toml.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; defaults apply.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, fmt.Errorf("config file %s does not exist", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = nodejs.DefaultEndpoint
	}
	if cfg.TimeoutSeconds < 0 {
		return cfg, fmt.Errorf("config %s: timeout_seconds must not be negative", path)
	}
	return cfg, nil
}

// newIndex builds a release index from the loaded config.
func newIndex(cfg config) *nodejs.Index {
	opts := []nodejs.Option{nodejs.WithEndpoint(cfg.Endpoint)}
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, nodejs.WithHTTPClient(httputil.NewClientWith(
			&http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		)))
	}
	return nodejs.NewIndex(opts...)
}
