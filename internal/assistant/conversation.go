package assistant

import (
	"fmt"
	"sync"
	"time"

	"github.com/mckinzey/atrium/internal/relevance"
)

// Entry is one stored conversation message for a user session.
type Entry struct {
	Type      string              `json:"type"`
	Content   string              `json:"content"`
	Timestamp time.Time           `json:"timestamp"`
	Sources   []relevance.Excerpt `json:"sources,omitempty"`
}

// ConversationStore keeps per-user conversation transcripts, keyed by user
// and department, each bounded to the most recent maxEntries messages.
type ConversationStore struct {
	mu         sync.Mutex
	sessions   map[string][]Entry
	maxEntries int
}

// NewConversationStore creates a store bounding each conversation to
// maxEntries messages.
func NewConversationStore(maxEntries int) *ConversationStore {
	return &ConversationStore{
		sessions:   make(map[string][]Entry),
		maxEntries: maxEntries,
	}
}

// Append records an exchange (question and answer) for the given user and
// department, trimming the transcript to the configured bound.
func (s *ConversationStore) Append(userID, department string, entries ...Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(userID, department)
	transcript := append(s.sessions[key], entries...)
	if len(transcript) > s.maxEntries {
		transcript = transcript[len(transcript)-s.maxEntries:]
	}
	s.sessions[key] = transcript
}

// History returns a copy of the stored transcript for the given user and
// department, oldest first.
func (s *ConversationStore) History(userID, department string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := s.sessions[sessionKey(userID, department)]
	out := make([]Entry, len(transcript))
	copy(out, transcript)
	return out
}

// Reset clears every stored conversation.
func (s *ConversationStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string][]Entry)
}

func sessionKey(userID, department string) string {
	return fmt.Sprintf("%s_%s", userID, department)
}
