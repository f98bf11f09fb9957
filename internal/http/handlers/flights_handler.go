// README: Direct flight search endpoint for pre-structured requests.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flyless/internal/modules/conversation"
	"flyless/internal/modules/flights"
)

type FlightsHandler struct {
	flights *flights.Service
}

func NewFlightsHandler(flightsService *flights.Service) *FlightsHandler {
	return &FlightsHandler{flights: flightsService}
}

type searchErrorResponse struct {
	Error  string              `json:"error"`
	Reason conversation.Reason `json:"reason,omitempty"`
}

// Search handles POST /api/flights/search: structured input, no extraction.
// The same validation the conversation tracker applies runs here too.
func (h *FlightsHandler) Search(c *gin.Context) {
	var in flights.SearchInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	criteria := conversation.SearchCriteria{
		Departure:   in.Departure,
		Destination: in.Destination,
		DepartDate:  in.DepartDate,
		ReturnDate:  in.ReturnDate,
		Adults:      in.Adults,
		Children:    in.Children,
	}
	if verr := conversation.Validate(criteria, time.Now()); verr != nil {
		writeJSON(c, http.StatusBadRequest, searchErrorResponse{Error: verr.Message, Reason: verr.Reason})
		return
	}

	result, err := h.flights.SearchFlights(c.Request.Context(), in)
	if err != nil {
		writeSearchError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, result)
}

func writeSearchError(c *gin.Context, err error) {
	var perr *flights.ProviderError
	switch {
	case errors.Is(err, flights.ErrInvalidAirportCode):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &perr):
		writeError(c, http.StatusBadGateway, perr.Error())
	default:
		writeError(c, http.StatusInternalServerError, "search failed")
	}
}
