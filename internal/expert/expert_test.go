package expert

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/skillsprint/skillsprint/internal/llm"
)

func TestAsk_EmbedsSkillAndQuestion(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Castling moves two pieces at once.")})
	svc := NewService(provider)

	answer, err := svc.Ask(context.Background(), "chess", "What is castling?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if answer != "Castling moves two pieces at once." {
		t.Errorf("answer = %q", answer)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(provider.Calls))
	}
	prompt := provider.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "expert in chess") {
		t.Errorf("prompt missing skill framing: %q", prompt)
	}
	if !strings.Contains(prompt, "What is castling?") {
		t.Errorf("prompt missing question: %q", prompt)
	}
	if provider.Calls[0].Schema != nil {
		t.Error("expert answers must not request structured output")
	}
}

func TestAsk_GenericWithoutSkill(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("An answer.")})
	svc := NewService(provider)

	if _, err := svc.Ask(context.Background(), "  ", "Why?"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if !strings.Contains(provider.Calls[0].Messages[0].Content, "expert in this topic") {
		t.Error("prompt missing generic fallback framing")
	}
}

func TestAsk_EmptyQuestion(t *testing.T) {
	provider := llm.NewMockProvider()
	svc := NewService(provider)

	if _, err := svc.Ask(context.Background(), "chess", "   "); err == nil {
		t.Error("Ask() accepted an empty question")
	}
	if provider.CallCount() != 0 {
		t.Error("provider called for an empty question")
	}
}

func TestAsk_ProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(provider)

	if _, err := svc.Ask(context.Background(), "chess", "Why?"); err == nil {
		t.Error("Ask() swallowed a provider error")
	}
}
