package ai

import (
	"fmt"
	"time"
)

// buildExtractionPrompt constructs the instructions for the AI.
// The model must answer with a single JSON object matching TripDetails;
// unknown fields are null, dates are resolved against the current date.
func buildExtractionPrompt(userMessage string, now time.Time) string {
	return fmt.Sprintf(`You are a flight booking assistant. Extract flight details from this query and return ONLY valid JSON, nothing else.

Current date: %s

Query: "%s"

Return ONLY this JSON format (no markdown, no explanation):
{"departure": "airport_code or null", "destination": "airport_code or null", "depart_date": "YYYY-MM-DD or null", "return_date": "YYYY-MM-DD or null", "adults": 1, "children": 0}

Rules:
- departure and destination are 3-letter IATA airport codes. Map city names to their main airport ("Toronto" -> "YYZ", "New York" -> "JFK").
- Resolve relative or partial dates against the current date; a date without a year means the next occurrence of that date.
- Use null for any field not mentioned in the query. Do not guess airports from nothing.
- adults defaults to 1 and children to 0 only when the query explicitly mentions travellers; otherwise null.

Example: {"departure": "YYZ", "destination": "JFK", "depart_date": "2025-03-10", "return_date": "2025-03-15", "adults": 1, "children": 0}`,
		now.Format("2006-01-02"), userMessage)
}
