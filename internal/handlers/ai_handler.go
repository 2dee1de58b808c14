package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-retail-pos/internal/ai"
)

type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

// Ask forwards a back-office question to the store assistant.
func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	if h.cfg.GeminiAPIKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Assistant is not configured on this server"})
		return
	}

	response, err := ai.RunAgent(h.store, req.Message, h.cfg.GeminiAPIKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": response})
}
