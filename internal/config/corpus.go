package config

import (
	"fmt"
	"os"

	"github.com/mckinzey/atrium/pkg/formatting"
)

const (
	EnvCorpusPath            = "ATRIUM_CORPUS_PATH"
	EnvCorpusMaxDocumentSize = "ATRIUM_CORPUS_MAX_DOCUMENT_SIZE"
)

// CorpusConfig holds document corpus settings.
type CorpusConfig struct {
	Path            string `toml:"path"`
	MaxDocumentSize string `toml:"max_document_size"`
}

// MaxDocumentSizeBytes returns MaxDocumentSize parsed into bytes.
func (c *CorpusConfig) MaxDocumentSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxDocumentSize)
	if err != nil {
		return 20 * 1024 * 1024 // 20MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *CorpusConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *CorpusConfig) Merge(overlay *CorpusConfig) {
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.MaxDocumentSize != "" {
		c.MaxDocumentSize = overlay.MaxDocumentSize
	}
}

func (c *CorpusConfig) loadDefaults() {
	if c.Path == "" {
		c.Path = "documents"
	}
	if c.MaxDocumentSize == "" {
		c.MaxDocumentSize = "20MB"
	}
}

func (c *CorpusConfig) loadEnv() {
	if v := os.Getenv(EnvCorpusPath); v != "" {
		c.Path = v
	}
	if v := os.Getenv(EnvCorpusMaxDocumentSize); v != "" {
		c.MaxDocumentSize = v
	}
}

func (c *CorpusConfig) validate() error {
	if c.Path == "" {
		return fmt.Errorf("path required")
	}
	if _, err := formatting.ParseBytes(c.MaxDocumentSize); err != nil {
		return fmt.Errorf("invalid max_document_size: %w", err)
	}
	return nil
}
