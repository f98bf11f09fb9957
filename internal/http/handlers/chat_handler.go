// README: Conversation endpoints: post a user turn, poll async replies.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"flyless/internal/modules/conversation"
	"flyless/internal/types"
)

type ChatHandler struct {
	conv *conversation.Service
}

func NewChatHandler(convService *conversation.Service) *ChatHandler {
	return &ChatHandler{conv: convService}
}

type chatReq struct {
	Message string `json:"message"`
}

// PostMessage handles POST /api/conversations/:id/messages. The reply is the
// immediate response to the turn; search results arrive later on the
// conversation's message feed.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	id := c.Param("id")
	if !isValidConversationID(id) {
		writeError(c, http.StatusBadRequest, "invalid conversation id")
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	reply, err := h.conv.HandleMessage(c.Request.Context(), types.ID(id), req.Message)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"reply": reply})
}

// ListMessages handles GET /api/conversations/:id/messages. It drains the
// replies delivered since the last poll.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	id := c.Param("id")
	if !isValidConversationID(id) {
		writeError(c, http.StatusBadRequest, "invalid conversation id")
		return
	}

	msgs := h.conv.Messages(types.ID(id))
	if msgs == nil {
		msgs = []string{}
	}
	writeJSON(c, http.StatusOK, map[string]any{"messages": msgs})
}
