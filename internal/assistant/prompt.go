package assistant

import (
	"fmt"
	"strings"

	"github.com/mckinzey/atrium/internal/relevance"
)

const promptPreamble = `You are an internal company assistant helping employees find information quickly and accurately. You have access to complete company documents and can answer detailed questions about any aspect of company policies, procedures, and benefits.

Complete company documents provided:`

const promptInstructions = `Instructions:
- You have access to the COMPLETE content of relevant company documents, not just excerpts
- Provide comprehensive, accurate answers based on the full document content
- Reference specific sections, policies, or procedures when applicable
- If you need to cite specific details, you can quote directly from the documents
- Maintain conversational context and reference previous discussion when relevant
- If information isn't available in the provided documents, clearly state that and suggest appropriate contacts

Provide a helpful, detailed response using the complete document information available to you.`

// BuildPrompt assembles the generation prompt: fixed preamble, labeled
// context blocks, a bounded conversation window, the current question, and
// fixed closing instructions. The layout is load-bearing: downstream
// attribution assumes the generator saw documents in this exact shape.
func BuildPrompt(query string, excerpts []relevance.Excerpt, history []Turn, historyTurns int) string {
	var b strings.Builder

	b.WriteString(promptPreamble)
	b.WriteString("\n")

	for i, excerpt := range excerpts {
		fmt.Fprintf(&b, "\n\nDocument_%d - %s:\n%s", i+1, excerpt.Document, excerpt.Text)
	}
	b.WriteString("\n")

	if len(history) > 0 {
		if len(history) > historyTurns {
			history = history[len(history)-historyTurns:]
		}
		b.WriteString("\n\nPrevious conversation:\n")
		for _, turn := range history {
			role := "Assistant"
			if turn.Role == "user" {
				role = "Employee"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, turn.Content)
		}
	}

	fmt.Fprintf(&b, "\n\nCurrent employee question: %s\n\n", query)
	b.WriteString(promptInstructions)

	return b.String()
}
