package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flyless/internal/ai"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestMerge_FieldLocal(t *testing.T) {
	c := NewSearchCriteria()
	c.Departure = "YYZ"

	c.Merge(&ai.TripDetails{Destination: strPtr("jfk")})

	assert.Equal(t, "YYZ", c.Departure, "existing field must survive an unrelated merge")
	assert.Equal(t, "JFK", c.Destination, "new field is set and case-normalized")
}

func TestMerge_Idempotent(t *testing.T) {
	c := NewSearchCriteria()
	d := &ai.TripDetails{
		Departure:  strPtr("YYZ"),
		DepartDate: strPtr("2025-03-10"),
	}

	c.Merge(d)
	first := c
	c.Merge(d)

	assert.Equal(t, first, c)
}

func TestMerge_SentinelsLeaveValuesUntouched(t *testing.T) {
	tests := []struct {
		name    string
		details *ai.TripDetails
	}{
		{"nil details", nil},
		{"literal null code", &ai.TripDetails{Departure: strPtr("null")}},
		{"literal unknown code", &ai.TripDetails{Departure: strPtr("unknown")}},
		{"malformed code", &ai.TripDetails{Departure: strPtr("TORONTO")}},
		{"non-alphabetic code", &ai.TripDetails{Departure: strPtr("YY2")}},
		{"null date", &ai.TripDetails{DepartDate: strPtr("null")}},
		{"empty date", &ai.TripDetails{DepartDate: strPtr("  ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSearchCriteria()
			c.Departure = "YYZ"
			c.DepartDate = "2025-03-10"

			c.Merge(tt.details)

			assert.Equal(t, "YYZ", c.Departure)
			assert.Equal(t, "2025-03-10", c.DepartDate)
		})
	}
}

func TestMerge_PassengerCounts(t *testing.T) {
	c := NewSearchCriteria()
	assert.Equal(t, 1, c.Adults, "adults defaults to 1")
	assert.Equal(t, 0, c.Children)

	c.Merge(&ai.TripDetails{Adults: intPtr(2), Children: intPtr(1)})
	assert.Equal(t, 2, c.Adults)
	assert.Equal(t, 1, c.Children)

	// Nonsense counts never overwrite.
	c.Merge(&ai.TripDetails{Adults: intPtr(0), Children: intPtr(-3)})
	assert.Equal(t, 2, c.Adults)
	assert.Equal(t, 1, c.Children)
}

func TestReset(t *testing.T) {
	c := NewSearchCriteria()
	c.Merge(&ai.TripDetails{
		Departure:   strPtr("YYZ"),
		Destination: strPtr("JFK"),
		DepartDate:  strPtr("2025-03-10"),
		ReturnDate:  strPtr("2025-03-15"),
		Adults:      intPtr(2),
	})
	assert.False(t, c.IsEmpty())

	c.Reset()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, NewSearchCriteria(), c)
}
