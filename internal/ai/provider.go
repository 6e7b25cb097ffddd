package ai

import (
	"context"
	"encoding/json"
)

// Provider is the narrow interface the content services generate through.
// Implementations must return the model's raw JSON payload; callers own
// parsing and fallback behaviour.
type Provider interface {
	// GenerateJSON sends the prompt and returns the JSON object the model
	// produced.
	GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error)
}

// Config holds the settings for the HTTP-backed provider.
type Config struct {
	BaseURL        string
	APIKey         string
	Model          string
	TimeoutSeconds int
}
