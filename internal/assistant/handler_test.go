package assistant_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mckinzey/atrium/internal/assistant"
	"github.com/mckinzey/atrium/internal/auth"
)

func chatRequest(body string, emp *auth.Employee) *http.Request {
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	if emp != nil {
		req = req.WithContext(auth.WithEmployee(req.Context(), emp))
	}
	return req
}

func TestChat(t *testing.T) {
	gen := &fakeGenerator{answer: "According to the PTO policy, you receive 15 vacation days."}
	sys, _ := newTestSystem(map[string]string{
		"pto_policy": "Employees receive 15 vacation days per year.",
	}, gen)

	emp := &auth.Employee{Username: "john.doe", Department: "Engineering"}
	rec := httptest.NewRecorder()
	sys.Handler().Chat(rec, chatRequest(`{"query":"How many vacation days do I get?"}`, emp))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var result struct {
		Response       string `json:"response"`
		Sources        []any  `json:"sources"`
		ProcessingTime float64 `json:"processing_time"`
		Tips           []string `json:"optimization_tips"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if result.Response != gen.answer {
		t.Errorf("response: got %q", result.Response)
	}
	if len(result.Sources) != 1 {
		t.Errorf("sources: got %d, want 1", len(result.Sources))
	}
	if len(result.Tips) != 1 {
		t.Errorf("tips: got %d, want 1", len(result.Tips))
	}

	history := sys.Conversations().History("john.doe", "Engineering")
	if len(history) != 2 {
		t.Fatalf("stored transcript: got %d entries, want 2", len(history))
	}
	if history[0].Type != "user" || history[1].Type != "bot" {
		t.Errorf("transcript types: got %s, %s", history[0].Type, history[1].Type)
	}
}

func TestChatForwardsHistory(t *testing.T) {
	gen := &fakeGenerator{answer: "Answer."}
	sys, _ := newTestSystem(map[string]string{}, gen)

	emp := &auth.Employee{Username: "john.doe", Department: "Engineering"}
	body := `{"query":"follow up","conversation_history":[{"role":"user","content":"earlier question"}]}`
	rec := httptest.NewRecorder()
	sys.Handler().Chat(rec, chatRequest(body, emp))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(gen.prompt, "Employee: earlier question") {
		t.Error("prompt missing forwarded history")
	}
}

func TestChatUnauthenticated(t *testing.T) {
	sys, _ := newTestSystem(nil, &fakeGenerator{answer: "unused"})

	rec := httptest.NewRecorder()
	sys.Handler().Chat(rec, chatRequest(`{"query":"anything"}`, nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestChatInvalidBody(t *testing.T) {
	sys, _ := newTestSystem(nil, &fakeGenerator{answer: "unused"})

	emp := &auth.Employee{Username: "john.doe", Department: "Engineering"}
	rec := httptest.NewRecorder()
	sys.Handler().Chat(rec, chatRequest(`{not json`, emp))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestChatEmptyQuery(t *testing.T) {
	sys, _ := newTestSystem(nil, &fakeGenerator{answer: "unused"})

	emp := &auth.Employee{Username: "john.doe", Department: "Engineering"}
	rec := httptest.NewRecorder()
	sys.Handler().Chat(rec, chatRequest(`{"query":"  "}`, emp))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestResetChat(t *testing.T) {
	sys, _ := newTestSystem(nil, &fakeGenerator{answer: "unused"})
	sys.Conversations().Append("john.doe", "Engineering",
		assistant.Entry{Type: "user", Content: "q"})

	rec := httptest.NewRecorder()
	sys.Handler().ResetChat(rec, httptest.NewRequest("POST", "/reset_chat", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !body.Success || body.Message != "Chat history reset" {
		t.Errorf("body: got %+v", body)
	}

	if got := sys.Conversations().History("john.doe", "Engineering"); len(got) != 0 {
		t.Errorf("expected cleared transcript, got %d entries", len(got))
	}
}
