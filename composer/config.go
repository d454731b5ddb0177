package composer

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"

	"github.com/messagekit/composer/session"
)

// Config holds initialization parameters for a Composer.
// Handler and Observer are names resolved at construction time through
// their registries, so composers can be assembled from JSON configuration.
type Config struct {
	Session  session.Config `json:"session"`
	Handler  string         `json:"handler,omitempty"`
	Observer string         `json:"observer,omitempty"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults: an empty draft and
// slog-backed observability.
func DefaultConfig() Config {
	return Config{
		Session:  session.DefaultConfig(),
		Observer: "slog",
	}
}

// Merge applies non-zero values from source into c, delegating the session
// section to its own Merge.
func (c *Config) Merge(source *Config) {
	c.Session.Merge(&source.Session)

	if source.Handler != "" {
		c.Handler = source.Handler
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if len(source.Extra) > 0 {
		if c.Extra == nil {
			c.Extra = make(map[string]any, len(source.Extra))
		}
		maps.Copy(c.Extra, source.Extra)
	}
}

// LoadConfig reads a JSON config file and merges it over defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
