// README: User-facing message formatting (prompts, results, errors).
package conversation

import (
	"errors"
	"fmt"
	"strings"

	"flyless/internal/modules/flights"
)

// maxPresented caps the formatted list; the full deduplicated set stays on
// the AggregatedResult.
const maxPresented = 5

func GreetingMessage() string {
	return "Hi! Tell me where you want to fly, and I'll help you find the cheapest tickets!"
}

func CancelledMessage() string {
	return "Okay, I've cleared your search. Tell me where you want to fly next."
}

func SearchInProgressMessage() string {
	return "I'm still looking for your flights — I'll post the results here as soon as they're in."
}

func ExtractionFailedMessage() string {
	var b strings.Builder
	b.WriteString("I couldn't understand your request. Could you rephrase it?\n\nI need:")
	for _, f := range requiredFields {
		b.WriteString("\n• ")
		b.WriteString(f.desc)
	}
	return b.String()
}

func SearchingMessage(in flights.SearchInput) string {
	return fmt.Sprintf("Searching flights %s → %s on %s%s... this can take a little while, I'll post the results here.",
		strings.ToUpper(in.Departure), strings.ToUpper(in.Destination), in.DepartDate, returnSuffix(in))
}

// ResultMessage renders the trip summary, the ranked top itineraries, and the
// price-level indicator.
func ResultMessage(in flights.SearchInput, result *flights.AggregatedResult) string {
	header := fmt.Sprintf("Flights %s → %s on %s%s",
		strings.ToUpper(in.Departure), strings.ToUpper(in.Destination), in.DepartDate, returnSuffix(in))

	if len(result.Itineraries) == 0 {
		return header + ": no flights found. Try different dates or airports."
	}

	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, " — %d option(s) found:\n", len(result.Itineraries))

	for i, it := range result.Top(maxPresented) {
		fmt.Fprintf(&b, "\n%d. %s — %s, %s → %s, %s, %s",
			i+1,
			formatMoney(it.Price),
			it.Airline,
			it.DepartureTime,
			it.ArrivalTime,
			formatDuration(it.DurationMinutes),
			formatStops(it.StopCount),
		)
	}

	if result.LowestPrice != nil {
		fmt.Fprintf(&b, "\n\nLowest price seen: %s.", formatMoney(*result.LowestPrice))
	}
	switch result.PriceLevel {
	case flights.PriceLevelLow:
		b.WriteString("\nPrices are currently low for this route.")
	case flights.PriceLevelTypical:
		b.WriteString("\nPrices are typical for this route.")
	case flights.PriceLevelHigh:
		b.WriteString("\nPrices are currently high for this route.")
	}

	return b.String()
}

// searchErrorMessage maps the aggregator's error kinds onto user-facing text.
func searchErrorMessage(err error) string {
	var perr *flights.ProviderError
	switch {
	case errors.Is(err, flights.ErrInvalidAirportCode):
		return "I couldn't make sense of the airport codes. Please rephrase your request."
	case errors.As(err, &perr):
		return "The flight service reported a problem: " + perr.Message
	default:
		return "Something went wrong while searching for flights. Please try again."
	}
}

func returnSuffix(in flights.SearchInput) string {
	if in.ReturnDate == "" {
		return " (one-way)"
	}
	return ", returning " + in.ReturnDate
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%g", v)
}

func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func formatStops(n int) string {
	switch n {
	case 0:
		return "nonstop"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", n)
	}
}
