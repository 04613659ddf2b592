package assistant_test

import (
	"strings"
	"testing"

	"github.com/mckinzey/atrium/internal/assistant"
	"github.com/mckinzey/atrium/internal/relevance"
)

func TestBuildPromptStructure(t *testing.T) {
	excerpts := []relevance.Excerpt{
		{Document: "pto_policy", Text: "Vacation rules."},
		{Document: "employee_handbook", Text: "Work hours."},
	}
	history := []assistant.Turn{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello"},
	}

	prompt := assistant.BuildPrompt("What is the vacation policy?", excerpts, history, 4)

	if !strings.HasPrefix(prompt, "You are an internal company assistant") {
		t.Error("prompt missing preamble")
	}
	if !strings.Contains(prompt, "Complete company documents provided:\n") {
		t.Error("prompt missing document header")
	}
	if !strings.Contains(prompt, "\n\nDocument_1 - pto_policy:\nVacation rules.") {
		t.Error("prompt missing first document block")
	}
	if !strings.Contains(prompt, "\n\nDocument_2 - employee_handbook:\nWork hours.") {
		t.Error("prompt missing second document block")
	}
	if !strings.Contains(prompt, "\n\nPrevious conversation:\nEmployee: Hi\nAssistant: Hello\n") {
		t.Error("prompt missing conversation block")
	}
	if !strings.Contains(prompt, "\n\nCurrent employee question: What is the vacation policy?\n\n") {
		t.Error("prompt missing question block")
	}
	if !strings.HasSuffix(prompt, "Provide a helpful, detailed response using the complete document information available to you.") {
		t.Error("prompt missing closing instructions")
	}
}

func TestBuildPromptWithoutHistory(t *testing.T) {
	prompt := assistant.BuildPrompt("What is the dress code?", nil, nil, 4)

	if strings.Contains(prompt, "Previous conversation:") {
		t.Error("prompt should omit the conversation block without history")
	}
	if !strings.Contains(prompt, "Current employee question: What is the dress code?") {
		t.Error("prompt missing question")
	}
}

func TestBuildPromptTrimsHistory(t *testing.T) {
	history := []assistant.Turn{
		{Role: "user", Content: "first"},
		{Role: "assistant", Content: "second"},
		{Role: "user", Content: "third"},
		{Role: "assistant", Content: "fourth"},
		{Role: "user", Content: "fifth"},
		{Role: "assistant", Content: "sixth"},
	}

	prompt := assistant.BuildPrompt("next question", nil, history, 4)

	if strings.Contains(prompt, "Employee: first") || strings.Contains(prompt, "Assistant: second") {
		t.Error("prompt should drop turns beyond the history window")
	}
	if !strings.Contains(prompt, "Employee: third\nAssistant: fourth\nEmployee: fifth\nAssistant: sixth\n") {
		t.Error("prompt missing the trailing history window")
	}
}

func TestBuildPromptRoleLabels(t *testing.T) {
	history := []assistant.Turn{
		{Role: "user", Content: "question"},
		{Role: "bot", Content: "reply"},
	}

	prompt := assistant.BuildPrompt("q", nil, history, 4)

	if !strings.Contains(prompt, "Employee: question") {
		t.Error("user turns should be labeled Employee")
	}
	if !strings.Contains(prompt, "Assistant: reply") {
		t.Error("non-user turns should be labeled Assistant")
	}
}
