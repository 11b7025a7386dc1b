// Package config loads textstat configuration from TOML files.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the decode and output settings for textstat.
type Config struct {
	// Encoding is the source encoding name passed to the decoder.
	Encoding string `toml:"encoding"`

	// ChunkSize is the decode read granularity in bytes.
	ChunkSize int `toml:"chunk_size"`

	// JSON switches the report output to JSON.
	JSON bool `toml:"json"`

	// Watch re-decodes and re-reports whenever the input file changes.
	Watch bool `toml:"watch"`

	// Progress prints cumulative bytes read to stderr during decode.
	Progress bool `toml:"progress"`
}

// Default returns the configuration used when no file or flags override it.
func Default() Config {
	return Config{
		Encoding:  "UTF-8",
		ChunkSize: 64 * 1024,
	}
}

// Load reads a TOML config file over the defaults. A missing file is not
// an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if c.Encoding == "" {
		return fmt.Errorf("encoding must not be empty")
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("chunk_size must not be negative, got %d", c.ChunkSize)
	}
	return nil
}
