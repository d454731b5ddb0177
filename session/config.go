package session

import "maps"

// Config holds session initialization parameters.
type Config struct {
	// InitialContent seeds the draft content at session creation.
	InitialContent string `json:"initial_content,omitempty"`
	// InitialMetadata seeds the metadata mapping at session creation.
	InitialMetadata map[string]any `json:"initial_metadata,omitempty"`
}

// DefaultConfig returns the default session configuration: an empty draft.
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.InitialContent != "" {
		c.InitialContent = source.InitialContent
	}
	if len(source.InitialMetadata) > 0 {
		if c.InitialMetadata == nil {
			c.InitialMetadata = make(map[string]any, len(source.InitialMetadata))
		}
		maps.Copy(c.InitialMetadata, source.InitialMetadata)
	}
}
