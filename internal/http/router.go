// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flyless/internal/http/handlers"
	"flyless/internal/http/middleware"
	"flyless/internal/modules/conversation"
	"flyless/internal/modules/flights"
)

func NewRouter(convService *conversation.Service, flightsService *flights.Service) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	chatHandler := handlers.NewChatHandler(convService)
	r.POST("/api/conversations/:id/messages", chatHandler.PostMessage)
	r.GET("/api/conversations/:id/messages", chatHandler.ListMessages)

	flightsHandler := handlers.NewFlightsHandler(flightsService)
	r.POST("/api/flights/search", flightsHandler.Search)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
