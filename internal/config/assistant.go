package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvGeneratorBaseURL    = "ATRIUM_GENERATOR_BASE_URL"
	EnvGeneratorAPIKey     = "ATRIUM_ANTHROPIC_API_KEY"
	EnvGeneratorModel      = "ATRIUM_GENERATOR_MODEL"
	EnvGeneratorMaxTokens  = "ATRIUM_GENERATOR_MAX_TOKENS"
	EnvGeneratorAPIVersion = "ATRIUM_GENERATOR_API_VERSION"
	EnvGeneratorTimeout    = "ATRIUM_GENERATOR_TIMEOUT"

	EnvAssistantHistoryTurns = "ATRIUM_ASSISTANT_HISTORY_TURNS"
)

// AssistantConfig holds answer generation and relevance matching settings.
type AssistantConfig struct {
	Generator GeneratorConfig `toml:"generator"`
	Matcher   MatcherConfig   `toml:"matcher"`

	// HistoryTurns is the number of prior conversation turns included
	// in the generation prompt.
	HistoryTurns int `toml:"history_turns"`
}

// GeneratorConfig holds Anthropic API client parameters.
type GeneratorConfig struct {
	BaseURL    string `toml:"base_url"`
	APIKey     string `toml:"api_key"`
	Model      string `toml:"model"`
	MaxTokens  int    `toml:"max_tokens"`
	APIVersion string `toml:"api_version"`
	Timeout    string `toml:"timeout"`
}

// MatcherConfig holds relevance scoring and source attribution parameters.
type MatcherConfig struct {
	MinScore        int     `toml:"min_score"`
	DominanceRatio  float64 `toml:"dominance_ratio"`
	MaxSources      int     `toml:"max_sources"`
	KeyPhraseCount  int     `toml:"key_phrase_count"`
	MinPhraseLength int     `toml:"min_phrase_length"`
	MinWordLength   int     `toml:"min_word_length"`
	MatchThreshold  float64 `toml:"match_threshold"`
	PreviewLength   int     `toml:"preview_length"`
	HighlightLines  int     `toml:"highlight_lines"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *GeneratorConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AssistantConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *AssistantConfig) Merge(overlay *AssistantConfig) {
	if overlay.HistoryTurns != 0 {
		c.HistoryTurns = overlay.HistoryTurns
	}
	c.Generator.merge(&overlay.Generator)
	c.Matcher.merge(&overlay.Matcher)
}

func (c *AssistantConfig) loadDefaults() {
	if c.HistoryTurns == 0 {
		c.HistoryTurns = 4
	}
	c.Generator.loadDefaults()
	c.Matcher.loadDefaults()
}

func (c *AssistantConfig) loadEnv() {
	if v := os.Getenv(EnvAssistantHistoryTurns); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.HistoryTurns = n
		}
	}
	c.Generator.loadEnv()
}

func (c *AssistantConfig) validate() error {
	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := c.Matcher.validate(); err != nil {
		return fmt.Errorf("matcher: %w", err)
	}
	return nil
}

func (c *GeneratorConfig) merge(overlay *GeneratorConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.APIVersion != "" {
		c.APIVersion = overlay.APIVersion
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *GeneratorConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.anthropic.com"
	}
	if c.Model == "" {
		c.Model = "claude-sonnet-4-20250514"
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 1000
	}
	if c.APIVersion == "" {
		c.APIVersion = "2023-06-01"
	}
	if c.Timeout == "" {
		c.Timeout = "2m"
	}
}

func (c *GeneratorConfig) loadEnv() {
	if v := os.Getenv(EnvGeneratorBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvGeneratorAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvGeneratorModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvGeneratorMaxTokens); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = n
		}
	}
	if v := os.Getenv(EnvGeneratorAPIVersion); v != "" {
		c.APIVersion = v
	}
	if v := os.Getenv(EnvGeneratorTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *GeneratorConfig) validate() error {
	if c.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}

func (c *MatcherConfig) merge(overlay *MatcherConfig) {
	if overlay.MinScore != 0 {
		c.MinScore = overlay.MinScore
	}
	if overlay.DominanceRatio != 0 {
		c.DominanceRatio = overlay.DominanceRatio
	}
	if overlay.MaxSources != 0 {
		c.MaxSources = overlay.MaxSources
	}
	if overlay.KeyPhraseCount != 0 {
		c.KeyPhraseCount = overlay.KeyPhraseCount
	}
	if overlay.MinPhraseLength != 0 {
		c.MinPhraseLength = overlay.MinPhraseLength
	}
	if overlay.MinWordLength != 0 {
		c.MinWordLength = overlay.MinWordLength
	}
	if overlay.MatchThreshold != 0 {
		c.MatchThreshold = overlay.MatchThreshold
	}
	if overlay.PreviewLength != 0 {
		c.PreviewLength = overlay.PreviewLength
	}
	if overlay.HighlightLines != 0 {
		c.HighlightLines = overlay.HighlightLines
	}
}

func (c *MatcherConfig) loadDefaults() {
	if c.MinScore == 0 {
		c.MinScore = 5
	}
	if c.DominanceRatio == 0 {
		c.DominanceRatio = 2.0
	}
	if c.MaxSources == 0 {
		c.MaxSources = 2
	}
	if c.KeyPhraseCount == 0 {
		c.KeyPhraseCount = 3
	}
	if c.MinPhraseLength == 0 {
		c.MinPhraseLength = 20
	}
	if c.MinWordLength == 0 {
		c.MinWordLength = 4
	}
	if c.MatchThreshold == 0 {
		c.MatchThreshold = 0.6
	}
	if c.PreviewLength == 0 {
		c.PreviewLength = 200
	}
	if c.HighlightLines == 0 {
		c.HighlightLines = 2
	}
}

func (c *MatcherConfig) validate() error {
	if c.DominanceRatio < 1 {
		return fmt.Errorf("dominance_ratio must be at least 1")
	}
	if c.MaxSources < 1 {
		return fmt.Errorf("max_sources must be positive")
	}
	if c.MatchThreshold <= 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("match_threshold must be in (0, 1]")
	}
	return nil
}
