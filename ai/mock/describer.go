package mock

import "context"

// MockDescriber is a test double for ai.Describer.
// It allows custom behavior injection via a function field.
type MockDescriber struct {
	// DescribeImageFunc is called by DescribeImage if set.
	// If nil, uses a deterministic placeholder description.
	DescribeImageFunc func(ctx context.Context, url, hint string) (string, error)

	callCount int
}

// NewMockDescriber creates a mock describer with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockDescriber() *MockDescriber {
	return &MockDescriber{}
}

// DescribeImage returns a deterministic placeholder description.
func (m *MockDescriber) DescribeImage(ctx context.Context, url, hint string) (string, error) {
	m.callCount++

	if m.DescribeImageFunc != nil {
		return m.DescribeImageFunc(ctx, url, hint)
	}

	return "an image at " + url, nil
}

// CallCount returns the number of times DescribeImage was called.
func (m *MockDescriber) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom function.
func (m *MockDescriber) Reset() {
	m.callCount = 0
	m.DescribeImageFunc = nil
}
