// README: Criteria validation: required fields in fixed order, then date checks.
package conversation

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Reason tags a validation failure so callers can discriminate kinds without
// string inspection.
type Reason string

const (
	ReasonMissingField       Reason = "missing_field"
	ReasonDateFormat         Reason = "date_format"
	ReasonDepartInPast       Reason = "depart_in_past"
	ReasonReturnBeforeDepart Reason = "return_before_depart"
)

// ValidationError describes why criteria are not searchable yet. Message is
// the user-facing prompt for the next turn.
type ValidationError struct {
	Reason  Reason
	Missing []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// requiredFields in the order they are reported when missing.
var requiredFields = []struct {
	value func(SearchCriteria) string
	desc  string
}{
	{func(c SearchCriteria) string { return c.Departure }, "departure airport (e.g., YYZ for Toronto)"},
	{func(c SearchCriteria) string { return c.Destination }, "destination airport (e.g., JFK for New York)"},
	{func(c SearchCriteria) string { return c.DepartDate }, "departure date (e.g., March 10, 2025)"},
}

// Validate reports whether the criteria are complete and consistent at the
// given time. It never mutates the criteria and is safe to call on every
// turn. A nil return means the criteria are ready to search.
func Validate(c SearchCriteria, now time.Time) *ValidationError {
	var missing []string
	for _, f := range requiredFields {
		if f.value(c) == "" {
			missing = append(missing, f.desc)
		}
	}
	if len(missing) > 0 {
		var b strings.Builder
		b.WriteString("I need more information:")
		for _, item := range missing {
			b.WriteString("\n• ")
			b.WriteString(item)
		}
		return &ValidationError{Reason: ReasonMissingField, Missing: missing, Message: b.String()}
	}

	depart, err := time.Parse(dateLayout, c.DepartDate)
	if err != nil {
		return &ValidationError{Reason: ReasonDateFormat, Message: "Invalid date format. Please use a clear date format."}
	}
	if !depart.After(now) {
		return &ValidationError{Reason: ReasonDepartInPast, Message: "The departure date must be in the future."}
	}

	if c.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, c.ReturnDate)
		if err != nil {
			return &ValidationError{Reason: ReasonDateFormat, Message: "Invalid date format. Please use a clear date format."}
		}
		if !ret.After(depart) {
			return &ValidationError{Reason: ReasonReturnBeforeDepart, Message: "The return date (return_date) must be after the departure date."}
		}
	}

	return nil
}
