// README: Flight-data provider contract and provider-reported errors.
package flights

import (
	"context"
	"errors"
)

// Provider is a flight-data source. Repeated Search calls for the same query
// may return overlapping or disjoint subsets of the true result set; neither
// completeness nor stability is guaranteed.
type Provider interface {
	Name() string
	Search(ctx context.Context, q Query) (*Batch, error)
}

// ErrInvalidAirportCode is returned by Normalize when either airport code is
// not a well-formed 3-letter IATA code.
var ErrInvalidAirportCode = errors.New("invalid airport code")

// ProviderError is a failure reported by the provider's API, as opposed to a
// transport failure. Callers discriminate it with errors.As.
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Message
}
