package search

import (
	"context"
	"slices"
	"sync"

	"github.com/boostpow/boostpub/internal/boost"
)

// MockResponse is one scripted leaderboard reply.
type MockResponse struct {
	List boost.RankedList
	Err  error
}

// MockProvider replays scripted leaderboards in order and records the
// Options of every search. Like the graph it honours Options.Limit, and
// each caller gets its own copy of the list.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	Calls  []Options
}

// NewMockProvider scripts the given replies.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

// Search pops the next reply. An exhausted script looks like a graph outage.
func (m *MockProvider) Search(_ context.Context, opts Options) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, opts)
	if len(m.script) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.script[0]
	m.script = m.script[1:]
	if next.Err != nil {
		return nil, next.Err
	}

	list := slices.Clone(next.List)
	if list == nil {
		list = boost.RankedList{}
	}
	if opts.Limit > 0 && len(list) > opts.Limit {
		list = list[:opts.Limit]
	}
	return &Result{List: list}, nil
}

func (m *MockProvider) Name() string { return "mock" }

// AddResponse appends a reply to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount is the number of searches made so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
