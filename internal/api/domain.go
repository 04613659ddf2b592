package api

import (
	"fmt"

	"github.com/mckinzey/atrium/internal/analytics"
	"github.com/mckinzey/atrium/internal/assistant"
	"github.com/mckinzey/atrium/internal/attribution"
	"github.com/mckinzey/atrium/internal/auth"
	"github.com/mckinzey/atrium/internal/generator"
	"github.com/mckinzey/atrium/internal/relevance"
	"github.com/mckinzey/atrium/internal/topics"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Auth      auth.System
	Assistant assistant.System
	Analytics *analytics.Ledger
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) (*Domain, error) {
	authSystem := auth.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
		runtime.Auth.SessionTTLDuration(),
	)

	gen, err := generator.New(generator.Config{
		BaseURL:    runtime.Assistant.Generator.BaseURL,
		APIKey:     runtime.Assistant.Generator.APIKey,
		Model:      runtime.Assistant.Generator.Model,
		MaxTokens:  runtime.Assistant.Generator.MaxTokens,
		APIVersion: runtime.Assistant.Generator.APIVersion,
		Timeout:    runtime.Assistant.Generator.TimeoutDuration(),
	})
	if err != nil {
		return nil, fmt.Errorf("generator init failed: %w", err)
	}

	matcherCfg := runtime.Assistant.Matcher
	ledger := analytics.NewLedger()

	assistantSystem := assistant.New(
		runtime.Corpus,
		relevance.NewMatcher(
			topics.DefaultPatternTable(),
			matcherCfg.MinScore,
			matcherCfg.DominanceRatio,
			matcherCfg.MaxSources,
		),
		relevance.NewAssembler(matcherCfg.PreviewLength, matcherCfg.HighlightLines),
		attribution.NewVerifier(
			matcherCfg.KeyPhraseCount,
			matcherCfg.MinPhraseLength,
			matcherCfg.MinWordLength,
			matcherCfg.MatchThreshold,
		),
		gen,
		ledger,
		assistant.NewConversationStore(runtime.Auth.MaxConversationSize),
		runtime.Assistant.HistoryTurns,
		runtime.Logger,
	)

	return &Domain{
		Auth:      authSystem,
		Assistant: assistantSystem,
		Analytics: ledger,
	}, nil
}
