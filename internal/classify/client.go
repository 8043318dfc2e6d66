// Package classify provides the client for the external image
// classification backend. It is the application's only network boundary;
// everything it returns is validated before being handed to a session.
package classify

import (
	"context"
	"time"

	"github.com/RackSavant/celebrityRecs/internal/model"
)

// Client defines the interface for image classification providers.
type Client interface {
	Classify(ctx context.Context, image []byte, filename string) (model.ClassificationResult, error)
}

// Config holds configuration options for the classification client.
type Config struct {
	// BaseURL is the backend base address, e.g. "http://localhost:8000".
	BaseURL string
	// Timeout bounds one classification round trip. Timeouts surface as
	// network errors.
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8000",
		Timeout: 30 * time.Second,
	}
}
