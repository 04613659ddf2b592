package assistant_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/mckinzey/atrium/internal/assistant"
)

func TestConversationStoreAppend(t *testing.T) {
	store := assistant.NewConversationStore(20)
	now := time.Now()

	store.Append("john.doe", "Engineering",
		assistant.Entry{Type: "user", Content: "question", Timestamp: now},
		assistant.Entry{Type: "bot", Content: "answer", Timestamp: now},
	)

	got := store.History("john.doe", "Engineering")
	if len(got) != 2 {
		t.Fatalf("history length: got %d, want 2", len(got))
	}
	if got[0].Type != "user" || got[1].Type != "bot" {
		t.Errorf("entry types: got %s, %s", got[0].Type, got[1].Type)
	}
}

func TestConversationStoreIsolatesSessions(t *testing.T) {
	store := assistant.NewConversationStore(20)

	store.Append("john.doe", "Engineering", assistant.Entry{Type: "user", Content: "a"})
	store.Append("jane.smith", "Human Resources", assistant.Entry{Type: "user", Content: "b"})

	if got := store.History("john.doe", "Engineering"); len(got) != 1 || got[0].Content != "a" {
		t.Errorf("john.doe history: got %v", got)
	}
	if got := store.History("jane.smith", "Human Resources"); len(got) != 1 || got[0].Content != "b" {
		t.Errorf("jane.smith history: got %v", got)
	}
}

func TestConversationStoreBound(t *testing.T) {
	store := assistant.NewConversationStore(4)

	for i := 0; i < 6; i++ {
		store.Append("john.doe", "Engineering",
			assistant.Entry{Type: "user", Content: fmt.Sprintf("entry %d", i)})
	}

	got := store.History("john.doe", "Engineering")
	if len(got) != 4 {
		t.Fatalf("history length: got %d, want 4", len(got))
	}
	if got[0].Content != "entry 2" || got[3].Content != "entry 5" {
		t.Errorf("window: got %s .. %s", got[0].Content, got[3].Content)
	}
}

func TestConversationStoreReset(t *testing.T) {
	store := assistant.NewConversationStore(20)
	store.Append("john.doe", "Engineering", assistant.Entry{Type: "user", Content: "a"})
	store.Append("jane.smith", "Human Resources", assistant.Entry{Type: "user", Content: "b"})

	store.Reset()

	if got := store.History("john.doe", "Engineering"); len(got) != 0 {
		t.Errorf("expected empty history after reset, got %d entries", len(got))
	}
	if got := store.History("jane.smith", "Human Resources"); len(got) != 0 {
		t.Errorf("expected empty history after reset, got %d entries", len(got))
	}
}
