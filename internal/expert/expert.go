package expert

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillsprint/skillsprint/internal/llm"
)

// Service answers free-form questions about a skill with a tutoring-style
// explanation. Responses are plain prose, not structured output.
type Service struct {
	provider llm.Provider
}

// NewService creates an expert Q&A service over the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Ask returns a detailed answer to a question, framed as coming from an
// expert in the given skill. An empty skill falls back to a generic expert
// framing.
func (s *Service) Ask(ctx context.Context, skill, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is required")
	}

	topic := strings.TrimSpace(skill)
	if topic == "" {
		topic = "this topic"
	}
	prompt := fmt.Sprintf("You are an expert in %s. Answer the following question in a highly detailed, step-by-step, and easy-to-understand way, as if you are tutoring a beginner. Use clear explanations, analogies, and practical examples. Question: %q", topic, question)

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "expert-qa"), llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: 2048,
	})
	if err != nil {
		return "", fmt.Errorf("asking expert: %w", err)
	}

	answer := strings.TrimSpace(string(resp.Content))
	if answer == "" {
		return "", fmt.Errorf("empty answer from provider")
	}
	return answer, nil
}
