// README: SerpAPI Google Flights provider (HTTP client + response parsing).
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// SerpAPIProvider queries the Google Flights engine through serpapi.com.
// A scraping-backed engine: each response is a partial, order-sensitive slice
// of the true result set, which is why the aggregator re-queries it.
type SerpAPIProvider struct {
	baseURL  string
	apiKey   string
	country  string
	currency string
	client   *http.Client
}

func NewSerpAPIProvider(baseURL, apiKey, country, currency string) *SerpAPIProvider {
	return &SerpAPIProvider{
		baseURL:  baseURL,
		apiKey:   apiKey,
		country:  country,
		currency: currency,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *SerpAPIProvider) Name() string {
	return "google_flights"
}

func (p *SerpAPIProvider) Search(ctx context.Context, q Query) (*Batch, error) {
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", q.Departure)
	params.Set("arrival_id", q.Destination)
	params.Set("outbound_date", q.DepartDate)
	params.Set("gl", p.country)
	params.Set("currency", p.currency)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("children", strconv.Itoa(q.Children))
	params.Set("api_key", p.apiKey)
	params.Set("deep_search", "true")
	params.Set("show_hidden", "true")

	// SerpAPI type: 1 = round trip, 2 = one way.
	if q.TripType == TripRoundTrip {
		params.Set("type", "1")
		params.Set("return_date", q.ReturnDate)
	} else {
		params.Set("type", "2")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi: build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi: unexpected status %d", resp.StatusCode)
	}

	var sr serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("serpapi: decode response: %w", err)
	}

	if sr.SearchMetadata.Status == "Error" {
		return nil, &ProviderError{Provider: p.Name(), Message: sr.SearchMetadata.Error}
	}

	return parseSerpResponse(&sr), nil
}

type serpResponse struct {
	SearchMetadata struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	} `json:"search_metadata"`
	PriceInsights *struct {
		LowestPrice *float64 `json:"lowest_price"`
		PriceLevel  string   `json:"price_level"`
	} `json:"price_insights"`
	BestFlights  []serpFlightGroup `json:"best_flights"`
	OtherFlights []serpFlightGroup `json:"other_flights"`
}

type serpFlightGroup struct {
	Flights       []serpLeg  `json:"flights"`
	Layovers      []struct{} `json:"layovers"`
	TotalDuration int        `json:"total_duration"`
	Price         *float64   `json:"price"`
}

type serpLeg struct {
	DepartureAirport serpAirportTime `json:"departure_airport"`
	ArrivalAirport   serpAirportTime `json:"arrival_airport"`
	Airline          string          `json:"airline"`
}

type serpAirportTime struct {
	Time string `json:"time"`
}

func parseSerpResponse(sr *serpResponse) *Batch {
	batch := &Batch{PriceLevel: PriceLevelUnknown}

	if sr.PriceInsights != nil {
		batch.LowestPrice = sr.PriceInsights.LowestPrice
		if lvl := PriceLevel(sr.PriceInsights.PriceLevel); lvl != "" {
			batch.PriceLevel = lvl
		}
	}

	for _, group := range sr.BestFlights {
		if it, ok := parseFlightGroup(group); ok {
			batch.Itineraries = append(batch.Itineraries, it)
		}
	}
	for _, group := range sr.OtherFlights {
		if it, ok := parseFlightGroup(group); ok {
			batch.Itineraries = append(batch.Itineraries, it)
		}
	}

	return batch
}

// parseFlightGroup flattens a possibly multi-leg flight group into one
// itinerary: departure from the first leg, arrival from the last, stop count
// from the layovers. Groups without a price are dropped, never shown with a
// placeholder.
func parseFlightGroup(group serpFlightGroup) (Itinerary, bool) {
	if len(group.Flights) == 0 || group.Price == nil {
		return Itinerary{}, false
	}

	first := group.Flights[0]
	last := group.Flights[len(group.Flights)-1]

	airline := first.Airline
	if airline == "" {
		airline = "Unknown"
	}

	return Itinerary{
		Airline:         airline,
		DepartureTime:   first.DepartureAirport.Time,
		ArrivalTime:     last.ArrivalAirport.Time,
		DurationMinutes: group.TotalDuration,
		StopCount:       len(group.Layovers),
		Price:           *group.Price,
	}, true
}
