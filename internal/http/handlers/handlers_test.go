package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flyless/internal/ai"
	apihttp "flyless/internal/http"
	"flyless/internal/modules/conversation"
	"flyless/internal/modules/flights"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubExtractor returns a fixed partial extraction for every message.
type stubExtractor struct {
	details *ai.TripDetails
}

func (e *stubExtractor) ExtractTripDetails(_ context.Context, _ string, _ time.Time) (*ai.TripDetails, error) {
	return e.details, nil
}

// stubProvider serves a single canned batch.
type stubProvider struct {
	batch *flights.Batch
	err   error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Search(_ context.Context, _ flights.Query) (*flights.Batch, error) {
	return p.batch, p.err
}

func strPtr(s string) *string { return &s }

func newTestRouter(extractor ai.Extractor, provider flights.Provider) http.Handler {
	flightsSvc := flights.NewService(provider, nil, nil, flights.Config{Mode: flights.ModeStandard})
	convSvc := conversation.NewService(conversation.NewManager(), extractor, flightsSvc, 1)
	return apihttp.NewRouter(convSvc, flightsSvc)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostMessage_InvalidConversationID(t *testing.T) {
	router := newTestRouter(&stubExtractor{}, &stubProvider{batch: &flights.Batch{}})

	w := doJSON(t, router, http.MethodPost, "/api/conversations/bad%20id!/messages", `{"message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid conversation id")
}

func TestPostMessage_MissingMessage(t *testing.T) {
	router := newTestRouter(&stubExtractor{}, &stubProvider{batch: &flights.Batch{}})

	w := doJSON(t, router, http.MethodPost, "/api/conversations/abc123/messages", `{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing message")
}

func TestPostMessage_PartialCriteriaPromptsForMore(t *testing.T) {
	extractor := &stubExtractor{details: &ai.TripDetails{Departure: strPtr("YYZ")}}
	router := newTestRouter(extractor, &stubProvider{batch: &flights.Batch{}})

	w := doJSON(t, router, http.MethodPost, "/api/conversations/abc123/messages", `{"message":"I want to fly from Toronto"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "I need more information")
	assert.Contains(t, w.Body.String(), "destination airport")
}

func TestPostMessage_StartCommand(t *testing.T) {
	router := newTestRouter(&stubExtractor{}, &stubProvider{batch: &flights.Batch{}})

	w := doJSON(t, router, http.MethodPost, "/api/conversations/abc123/messages", `{"message":"/start"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "where you want to fly")
}

func TestListMessages_EmptyFeed(t *testing.T) {
	router := newTestRouter(&stubExtractor{}, &stubProvider{batch: &flights.Batch{}})

	w := doJSON(t, router, http.MethodGet, "/api/conversations/abc123/messages", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"messages":[]}`, w.Body.String())
}

func TestFlightsSearch_ValidationError(t *testing.T) {
	router := newTestRouter(&stubExtractor{}, &stubProvider{batch: &flights.Batch{}})

	w := doJSON(t, router, http.MethodPost, "/api/flights/search", `{"departure":"YYZ"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"reason":"missing_field"`)
	assert.Contains(t, w.Body.String(), "destination airport")
}

func TestFlightsSearch_Success(t *testing.T) {
	provider := &stubProvider{batch: &flights.Batch{
		Itineraries: []flights.Itinerary{
			{Airline: "Air Canada", DepartureTime: "08:15", ArrivalTime: "10:05", DurationMinutes: 110, Price: 240},
		},
		PriceLevel: flights.PriceLevelTypical,
	}}
	router := newTestRouter(&stubExtractor{}, provider)

	w := doJSON(t, router, http.MethodPost, "/api/flights/search",
		`{"departure":"yyz","destination":"jfk","depart_date":"2030-03-10","adults":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Air Canada")
	assert.Contains(t, w.Body.String(), `"price":240`)
}

func TestFlightsSearch_ProviderFailure(t *testing.T) {
	provider := &stubProvider{err: &flights.ProviderError{Provider: "stub", Message: "quota exceeded"}}
	router := newTestRouter(&stubExtractor{}, provider)

	w := doJSON(t, router, http.MethodPost, "/api/flights/search",
		`{"departure":"YYZ","destination":"JFK","depart_date":"2030-03-10","adults":1}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "quota exceeded")
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&stubExtractor{}, &stubProvider{batch: &flights.Batch{}})

	w := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
