package config

import (
	"fmt"
	"os"

	"github.com/mckinzey/atrium/pkg/middleware"
	"github.com/mckinzey/atrium/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "ATRIUM_CORS_ENABLED",
	Origins:          "ATRIUM_CORS_ORIGINS",
	AllowedMethods:   "ATRIUM_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "ATRIUM_CORS_ALLOWED_HEADERS",
	AllowCredentials: "ATRIUM_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "ATRIUM_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "ATRIUM_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "ATRIUM_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, CORS, and pagination settings.
type APIConfig struct {
	BasePath   string                `toml:"base_path"`
	CORS       middleware.CORSConfig `toml:"cors"`
	Pagination pagination.Config     `toml:"pagination"`
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("ATRIUM_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
}
