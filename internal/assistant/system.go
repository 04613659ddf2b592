package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mckinzey/atrium/internal/analytics"
	"github.com/mckinzey/atrium/internal/attribution"
	"github.com/mckinzey/atrium/internal/corpus"
	"github.com/mckinzey/atrium/internal/relevance"
)

// AnswerRequest carries one query through the pipeline.
type AnswerRequest struct {
	Query      string
	UserID     string
	Department string
	History    []Turn
}

// System defines the public contract for the question answering pipeline.
type System interface {
	Handler() *Handler

	Answer(ctx context.Context, req AnswerRequest) (*Result, error)
	Conversations() *ConversationStore
}

type service struct {
	corpus        corpus.System
	matcher       *relevance.Matcher
	assembler     *relevance.Assembler
	verifier      *attribution.Verifier
	generator     Generator
	ledger        *analytics.Ledger
	conversations *ConversationStore
	historyTurns  int
	logger        *slog.Logger
	now           func() time.Time
}

// New assembles the pipeline from its stages.
func New(
	docs corpus.System,
	matcher *relevance.Matcher,
	assembler *relevance.Assembler,
	verifier *attribution.Verifier,
	generator Generator,
	ledger *analytics.Ledger,
	conversations *ConversationStore,
	historyTurns int,
	logger *slog.Logger,
) System {
	return &service{
		corpus:        docs,
		matcher:       matcher,
		assembler:     assembler,
		verifier:      verifier,
		generator:     generator,
		ledger:        ledger,
		conversations: conversations,
		historyTurns:  historyTurns,
		logger:        logger.With("system", "assistant"),
		now:           time.Now,
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) Conversations() *ConversationStore {
	return s.conversations
}

// Answer runs the full pipeline: relevance matching, context assembly,
// generation, source attribution, and ledger recording. The stages run
// sequentially on the request goroutine; the generator call is the only
// blocking external dependency.
func (s *service) Answer(ctx context.Context, req AnswerRequest) (*Result, error) {
	start := s.now()

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	excerpts := s.assembler.Assemble(s.matchCorpus(ctx, query), query)

	prompt := BuildPrompt(query, excerpts, req.History, s.historyTurns)
	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("generation failed", "error", err)
		s.record(req, s.since(start), nil, true)
		return nil, fmt.Errorf(
			"%w: I apologize, but I encountered an error processing your request. "+
				"Please try again or contact IT support at it-help@company.com. Error: %v",
			ErrGeneration, err,
		)
	}

	sources := s.verifier.Filter(answer, excerpts)
	elapsed := s.since(start)
	s.record(req, elapsed, sources, false)

	tips := []string{}
	if len(sources) > 0 {
		tips = append(tips, "📄 Click on document links to view the full source documents")
	}

	return &Result{
		Response:       answer,
		Sources:        sources,
		ProcessingTime: elapsed,
		Tips:           tips,
	}, nil
}

// matchCorpus extracts every corpus document and scores it against the
// query. Extraction failures exclude the document from this request only.
func (s *service) matchCorpus(ctx context.Context, query string) []relevance.Candidate {
	docs, err := s.corpus.List(ctx)
	if err != nil {
		s.logger.Error("corpus scan failed", "error", err)
		return nil
	}

	texts := make([]relevance.DocumentText, 0, len(docs))
	for _, doc := range docs {
		text, err := s.corpus.Extract(ctx, doc.Identifier)
		if err != nil {
			s.logger.Warn("document excluded from scoring", "document", doc.Identifier, "error", err)
			continue
		}
		texts = append(texts, relevance.DocumentText{
			Identifier: doc.Identifier,
			Text:       text,
		})
	}

	return s.matcher.Match(query, texts)
}

func (s *service) record(req AnswerRequest, elapsed float64, sources []relevance.Excerpt, failed bool) {
	used := make([]string, 0, len(sources))
	for _, src := range sources {
		used = append(used, src.Document)
	}

	s.ledger.Record(analytics.Event{
		UserID:        req.UserID,
		Department:    req.Department,
		Query:         req.Query,
		ResponseTime:  elapsed,
		DocumentsUsed: used,
		Error:         failed,
	})
}

func (s *service) since(start time.Time) float64 {
	return s.now().Sub(start).Seconds()
}
