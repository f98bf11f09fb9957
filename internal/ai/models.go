package ai

// TripDetails captures the structured output from the AI model.
// Every field is a pointer so that "the model said nothing about this"
// is distinguishable from a zero value; the conversation tracker merges
// only the fields that are present.
type TripDetails struct {
	// Departure and Destination are IATA airport codes as guessed by the
	// model ("YYZ"). The model may emit "null" or "unknown" for fields it
	// could not resolve; the tracker treats those as absent.
	Departure   *string `json:"departure"`
	Destination *string `json:"destination"`

	// DepartDate and ReturnDate are YYYY-MM-DD strings.
	DepartDate *string `json:"depart_date"`
	ReturnDate *string `json:"return_date"`

	Adults   *int `json:"adults"`
	Children *int `json:"children"`
}
