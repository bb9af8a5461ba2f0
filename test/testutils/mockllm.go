package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLLM lar integrasjonstester styre LLM-svarene uten en ekte modell.
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Generate(ctx context.Context, prompt, system string) (string, error) {
	args := m.Called(ctx, prompt, system)
	return args.String(0), args.Error(1)
}
