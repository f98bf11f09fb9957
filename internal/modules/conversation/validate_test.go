package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validation reference time: 2025-01-01 12:00 UTC
var validateNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestValidate_MissingFieldsInFixedOrder(t *testing.T) {
	tests := []struct {
		name        string
		criteria    SearchCriteria
		wantMissing []string
	}{
		{
			name:     "everything missing",
			criteria: NewSearchCriteria(),
			wantMissing: []string{
				"departure airport (e.g., YYZ for Toronto)",
				"destination airport (e.g., JFK for New York)",
				"departure date (e.g., March 10, 2025)",
			},
		},
		{
			name:     "only destination missing",
			criteria: SearchCriteria{Departure: "YYZ", DepartDate: "2025-03-10", Adults: 1},
			wantMissing: []string{
				"destination airport (e.g., JFK for New York)",
			},
		},
		{
			name:     "departure and date missing",
			criteria: SearchCriteria{Destination: "JFK", Adults: 1},
			wantMissing: []string{
				"departure airport (e.g., YYZ for Toronto)",
				"departure date (e.g., March 10, 2025)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := Validate(tt.criteria, validateNow)
			require.NotNil(t, verr)
			assert.Equal(t, ReasonMissingField, verr.Reason)
			assert.Equal(t, tt.wantMissing, verr.Missing)
			for _, desc := range tt.wantMissing {
				assert.Contains(t, verr.Message, desc)
			}
		})
	}
}

func TestValidate_DateChecks(t *testing.T) {
	tests := []struct {
		name       string
		departDate string
		returnDate string
		wantReason Reason
	}{
		{"unparsable depart date", "March 10", "", ReasonDateFormat},
		{"depart date in past", "2024-12-31", "", ReasonDepartInPast},
		{"depart date today is not strictly future", "2025-01-01", "", ReasonDepartInPast},
		{"unparsable return date", "2025-03-10", "soon", ReasonDateFormat},
		{"return before depart", "2025-03-10", "2025-03-05", ReasonReturnBeforeDepart},
		{"return equals depart", "2025-03-10", "2025-03-10", ReasonReturnBeforeDepart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SearchCriteria{
				Departure:   "YYZ",
				Destination: "JFK",
				DepartDate:  tt.departDate,
				ReturnDate:  tt.returnDate,
				Adults:      1,
			}
			verr := Validate(c, validateNow)
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantReason, verr.Reason)
		})
	}
}

func TestValidate_ReturnBeforeDepartNamesReturnDate(t *testing.T) {
	c := SearchCriteria{
		Departure:   "YYZ",
		Destination: "JFK",
		DepartDate:  "2025-03-10",
		ReturnDate:  "2025-03-05",
		Adults:      1,
	}
	verr := Validate(c, validateNow)
	require.NotNil(t, verr)
	assert.Equal(t, ReasonReturnBeforeDepart, verr.Reason)
	assert.Contains(t, verr.Message, "return_date")
}

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		name     string
		criteria SearchCriteria
	}{
		{"one-way", SearchCriteria{Departure: "YYZ", Destination: "JFK", DepartDate: "2025-03-10", Adults: 1}},
		{"round-trip", SearchCriteria{Departure: "YYZ", Destination: "JFK", DepartDate: "2025-03-10", ReturnDate: "2025-03-15", Adults: 2, Children: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Validate(tt.criteria, validateNow))
		})
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	c := SearchCriteria{Departure: "YYZ"}
	before := c
	_ = Validate(c, validateNow)
	assert.Equal(t, before, c)
}
