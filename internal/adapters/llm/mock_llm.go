package llm

import (
	"context"
	"fmt"

	"github.com/ucm-acm/tutorbot/internal/domain"
)

// MockLLM is a canned completion client for local runs and tests.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) Complete(_ context.Context, _ string, messages []domain.ModelMessage) (string, error) {
	last := ""
	if len(messages) > 0 {
		last = messages[len(messages)-1].Text()
	}
	return fmt.Sprintf("Good question! You asked %q. Let's work through it step by step.", last), nil
}
