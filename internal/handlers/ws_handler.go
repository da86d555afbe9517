package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prolync/internal/middleware"
	"prolync/internal/realtime"
)

type WSHandler struct {
	hub *realtime.PresenceHub
}

func NewWSHandler(hub *realtime.PresenceHub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Connect upgrades to a websocket. Browsers cannot set headers on a ws
// handshake, so the token travels as a query parameter.
func (h *WSHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
		return
	}
	claims, err := middleware.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
		return
	}
	if err := h.hub.Serve(c.Writer, c.Request, claims.UserID); err != nil {
		// upgrade failures already wrote a response
		return
	}
}
