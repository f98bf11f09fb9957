// README: Flight search domain model: itineraries, queries, aggregated results.
package flights

import (
	"strconv"
	"strings"
)

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// Itinerary is one priced offer returned by the provider.
type Itinerary struct {
	Airline         string  `json:"airline"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	DurationMinutes int     `json:"duration_minutes"`
	StopCount       int     `json:"stops"`
	Price           float64 `json:"price"`
}

// Key is the identity used for deduplication across provider rounds.
// Two itineraries with the same airline, times, and price are the same offer.
func (it Itinerary) Key() string {
	var b strings.Builder
	b.WriteString(it.Airline)
	b.WriteByte('|')
	b.WriteString(it.DepartureTime)
	b.WriteByte('|')
	b.WriteString(it.ArrivalTime)
	b.WriteByte('|')
	b.WriteString(formatPrice(it.Price))
	return b.String()
}

// PriceLevel is the coarse qualitative indicator supplied by the provider.
type PriceLevel string

const (
	PriceLevelLow     PriceLevel = "low"
	PriceLevelTypical PriceLevel = "typical"
	PriceLevelHigh    PriceLevel = "high"
	PriceLevelUnknown PriceLevel = "unknown"
)

// Batch is one provider response: an unordered list of itineraries that may
// overlap with other batches for the same query, plus optional price insights.
type Batch struct {
	Itineraries []Itinerary
	LowestPrice *float64
	PriceLevel  PriceLevel
}

type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// SearchInput is the raw, pre-normalization search request as accumulated by
// the conversation tracker or posted directly by an API client.
type SearchInput struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	DepartDate  string `json:"depart_date"`
	ReturnDate  string `json:"return_date,omitempty"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
}

// Query is a normalized, validated search ready to hand to a provider.
type Query struct {
	Departure   string   `json:"departure"`
	Destination string   `json:"destination"`
	DepartDate  string   `json:"depart_date"`
	ReturnDate  string   `json:"return_date,omitempty"`
	Adults      int      `json:"adults"`
	Children    int      `json:"children"`
	TripType    TripType `json:"trip_type"`
}

// AggregatedResult is the deduplicated union of all rounds for one query,
// sorted ascending by price. The full set is retained; presentation layers
// take Top(n).
type AggregatedResult struct {
	Itineraries []Itinerary `json:"itineraries"`
	LowestPrice *float64    `json:"lowest_price,omitempty"`
	PriceLevel  PriceLevel  `json:"price_level,omitempty"`
}

// Top returns the n lowest-priced itineraries (the slice is already sorted).
func (r *AggregatedResult) Top(n int) []Itinerary {
	if len(r.Itineraries) <= n {
		return r.Itineraries
	}
	return r.Itineraries[:n]
}

// NormalizeAirportCode uppercases and validates a 3-letter IATA code.
// Anything malformed, empty, or a literal "null"/"unknown" placeholder
// normalizes to "", never to a guessed value.
func NormalizeAirportCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	switch code {
	case "", "NULL", "UNKNOWN":
		return ""
	}
	if len(code) != 3 {
		return ""
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return ""
		}
	}
	return code
}
