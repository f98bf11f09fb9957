package ai

import (
	"context"
	"time"
)

// Extractor defines the contract for turning free-text travel requests into
// structured trip details. This interface allows swapping different AI
// providers (Gemini, OpenAI, etc.) in the future.
type Extractor interface {
	// ExtractTripDetails analyzes the user's natural language input and returns
	// a best-effort structured guess. Fields the model could not determine are
	// left nil. now is used to resolve relative dates ("next Friday") against
	// the current year.
	ExtractTripDetails(ctx context.Context, userMessage string, now time.Time) (*TripDetails, error)
}
