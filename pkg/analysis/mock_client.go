package analysis

import (
	"context"
	"sync"
)

// MockClient implements Client using a canned document, for tests and
// offline demos.
type MockClient struct {
	mu       sync.RWMutex
	document []byte
	err      error
}

// NewMockClient builds a mock that always returns the given document.
func NewMockClient(document []byte) *MockClient {
	return &MockClient{document: append([]byte(nil), document...)}
}

// Fail makes subsequent calls return err instead of the document.
func (c *MockClient) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// AnalyzeCSV returns a copy of the canned document, ignoring the CSV.
func (c *MockClient) AnalyzeCSV(ctx context.Context, csvText string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.err != nil {
		return nil, c.err
	}
	return append([]byte(nil), c.document...), nil
}
