package mock

import (
	"context"
	"sync"

	"github.com/sociolens/tweetlens/ai"
)

// MockSemanticService is a test double for ai.SemanticService.
// It allows custom behavior injection via function fields and is safe for
// concurrent use.
type MockSemanticService struct {
	// GenerateFunc is called by Generate if set.
	// If nil, Generate returns Reply.
	GenerateFunc func(ctx context.Context, instruction, payload string) (string, error)

	// Reply is the canned reply returned when GenerateFunc is nil.
	Reply string

	mu           sync.Mutex
	callCount    int
	instructions []string
	payloads     []string
}

var _ ai.SemanticService = (*MockSemanticService)(nil)

// NewMockSemanticService creates a mock service that replies with an empty
// matches object by default.
// Note: returns the concrete type to allow test assertions.
func NewMockSemanticService() *MockSemanticService {
	return &MockSemanticService{Reply: `{"matches": []}`}
}

// Generate records the call and returns the injected or canned reply.
func (m *MockSemanticService) Generate(ctx context.Context, instruction, payload string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.instructions = append(m.instructions, instruction)
	m.payloads = append(m.payloads, payload)
	fn := m.GenerateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, instruction, payload)
	}
	return m.Reply, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockSemanticService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastInstruction returns the instruction of the most recent call, or ""
// if Generate was never called.
func (m *MockSemanticService) LastInstruction() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.instructions) == 0 {
		return ""
	}
	return m.instructions[len(m.instructions)-1]
}

// LastPayload returns the payload of the most recent call, or "" if
// Generate was never called.
func (m *MockSemanticService) LastPayload() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.payloads) == 0 {
		return ""
	}
	return m.payloads[len(m.payloads)-1]
}

// Reset clears recorded calls and custom functions.
func (m *MockSemanticService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.instructions = nil
	m.payloads = nil
	m.GenerateFunc = nil
}
