package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvAuthSessionTTL          = "ATRIUM_AUTH_SESSION_TTL"
	EnvAuthMaxConversationSize = "ATRIUM_AUTH_MAX_CONVERSATION_SIZE"
)

// AuthConfig holds session and conversation settings.
type AuthConfig struct {
	SessionTTL          string `toml:"session_ttl"`
	MaxConversationSize int    `toml:"max_conversation_size"`
}

// SessionTTLDuration returns SessionTTL as a time.Duration.
func (c *AuthConfig) SessionTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.SessionTTL != "" {
		c.SessionTTL = overlay.SessionTTL
	}
	if overlay.MaxConversationSize != 0 {
		c.MaxConversationSize = overlay.MaxConversationSize
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.SessionTTL == "" {
		c.SessionTTL = "24h"
	}
	if c.MaxConversationSize == 0 {
		c.MaxConversationSize = 20
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthSessionTTL); v != "" {
		c.SessionTTL = v
	}
	if v := os.Getenv(EnvAuthMaxConversationSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxConversationSize = n
		}
	}
}

func (c *AuthConfig) validate() error {
	if _, err := time.ParseDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("invalid session_ttl: %w", err)
	}
	if c.MaxConversationSize < 1 {
		return fmt.Errorf("max_conversation_size must be positive")
	}
	return nil
}
