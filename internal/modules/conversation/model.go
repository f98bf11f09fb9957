// README: Conversation-scoped search criteria and the slot-filling merge.
package conversation

import (
	"strings"

	"flyless/internal/ai"
	"flyless/internal/modules/flights"
)

// State of a single conversation's slot-filling machine.
type State string

const (
	StateEmpty      State = "empty"
	StateCollecting State = "collecting"
	StateSearching  State = "searching"
)

// SearchCriteria is the accumulated, possibly-incomplete flight request for
// one conversation. The zero string means "absent" for every field.
type SearchCriteria struct {
	Departure   string
	Destination string
	DepartDate  string
	ReturnDate  string
	Adults      int
	Children    int
}

func NewSearchCriteria() SearchCriteria {
	return SearchCriteria{Adults: 1}
}

// Merge overwrites each field for which the extraction produced a present,
// non-sentinel value; everything else keeps its existing value. This is what
// lets a user disclose the request across turns ("Toronto to NY", then later
// "March 10th").
func (c *SearchCriteria) Merge(d *ai.TripDetails) {
	if d == nil {
		return
	}
	if d.Departure != nil {
		if code := flights.NormalizeAirportCode(*d.Departure); code != "" {
			c.Departure = code
		}
	}
	if d.Destination != nil {
		if code := flights.NormalizeAirportCode(*d.Destination); code != "" {
			c.Destination = code
		}
	}
	if d.DepartDate != nil {
		if v := cleanField(*d.DepartDate); v != "" {
			c.DepartDate = v
		}
	}
	if d.ReturnDate != nil {
		if v := cleanField(*d.ReturnDate); v != "" {
			c.ReturnDate = v
		}
	}
	if d.Adults != nil && *d.Adults >= 1 {
		c.Adults = *d.Adults
	}
	if d.Children != nil && *d.Children >= 0 {
		c.Children = *d.Children
	}
}

// Reset clears every field back to absent.
func (c *SearchCriteria) Reset() {
	*c = NewSearchCriteria()
}

func (c SearchCriteria) IsEmpty() bool {
	return c.Departure == "" && c.Destination == "" && c.DepartDate == "" && c.ReturnDate == ""
}

// SearchInput converts the criteria into the aggregator's input shape.
func (c SearchCriteria) SearchInput() flights.SearchInput {
	return flights.SearchInput{
		Departure:   c.Departure,
		Destination: c.Destination,
		DepartDate:  c.DepartDate,
		ReturnDate:  c.ReturnDate,
		Adults:      c.Adults,
		Children:    c.Children,
	}
}

// cleanField filters the literal placeholders extraction models emit for
// "unknown" so they never overwrite a real value.
func cleanField(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "", "null", "unknown", "none":
		return ""
	}
	return v
}
