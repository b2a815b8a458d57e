package llm

import (
	"context"
	"fmt"
)

// MockLLM is a stand-in generator for local development and tests. It never
// fails and never leaves the process.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return fmt.Sprintf("You've got this! Small consistent steps add up. (mock coach reply to a %d-character prompt)", len(prompt)), nil
}
