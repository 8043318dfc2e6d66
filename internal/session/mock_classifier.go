package session

import (
	"context"
	"sync"

	"github.com/RackSavant/celebrityRecs/internal/model"
)

// MockClassifier is a test implementation of the Classifier interface.
// It returns a fixed result or error and records every call.
type MockClassifier struct {
	// Result is returned when Err is nil.
	Result model.ClassificationResult
	// Err, when set, is returned instead of Result.
	Err error
	// Block, when non-nil, is waited on before returning. Tests use it to
	// hold an upload in flight.
	Block chan struct{}

	mu    sync.Mutex
	calls []MockCall
}

// MockCall records the inputs of one classification request.
type MockCall struct {
	Filename string
	Image    []byte
}

// NewMockClassifier creates a mock classifier with a plausible default result.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{
		Result: model.ClassificationResult{
			Name:        "Shift Dress",
			DetectedEra: model.Era1960s,
			Confidence:  87,
			ImageURL:    "http://localhost:8000/images/mock.jpg",
		},
	}
}

// Classify returns the configured result or error, blocking first if a
// Block channel is set.
func (m *MockClassifier) Classify(ctx context.Context, image []byte, filename string) (model.ClassificationResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Image: image, Filename: filename})
	m.mu.Unlock()

	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return model.ClassificationResult{}, ctx.Err()
		}
	}

	if m.Err != nil {
		return model.ClassificationResult{}, m.Err
	}
	return m.Result, nil
}

// CallCount returns how many classification requests were made.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a snapshot of the recorded calls.
func (m *MockClassifier) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}
