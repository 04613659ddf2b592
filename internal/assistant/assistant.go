// Package assistant implements the question answering pipeline: relevance
// matching over the corpus, context assembly, answer generation, source
// attribution, and usage recording.
package assistant

import (
	"context"
	"errors"
	"net/http"

	"github.com/mckinzey/atrium/internal/relevance"
)

// Generator produces an answer from a fully assembled prompt. The call is
// synchronous; cancellation and timeouts come from the context.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Turn is one entry of caller-supplied conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Result is the public answer shape returned per query. Tips is non-empty
// only when sources were cited.
type Result struct {
	Response       string              `json:"response"`
	Sources        []relevance.Excerpt `json:"sources"`
	ProcessingTime float64             `json:"processing_time"`
	Tips           []string            `json:"optimization_tips"`
}

// Domain errors for assistant operations.
var (
	ErrEmptyQuery = errors.New("query cannot be empty")
	ErrGeneration = errors.New("answer generation failed")
)

// MapHTTPStatus maps assistant domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrEmptyQuery) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrGeneration) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
