package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one queued answer for the MockProvider. A non-nil Err
// takes precedence over Content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider serves queued responses in order and records every request,
// so consumer tests can assert on what was sent without a network. Safe for
// concurrent use.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse

	// Calls holds every request seen, in order.
	Calls []Request
}

// NewMockProvider queues the given responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// AddResponse queues one more response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	m.queue = append(m.queue, resp)
	m.mu.Unlock()
}

// Generate pops the next queued response. An empty queue reads as the
// provider being down.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      m.ModelID(),
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string { return "mock" }

// CallCount reports how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
