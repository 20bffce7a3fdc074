package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterFeedbackRoutes registers the feedback endpoint.
func RegisterFeedbackRoutes(r *gin.Engine, s *Server) {
	r.POST("/api/feedback", s.handleFeedback)
}

// FeedbackRequest represents a submitted feedback row.
type FeedbackRequest struct {
	Rating   string `json:"rating" binding:"required"`
	Comments string `json:"comments"`
}

// handleFeedback appends a feedback row to the configured spreadsheet.
func (s *Server) handleFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.feedback == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "feedback sheet is not configured"})
		return
	}

	if err := s.feedback.Append(c.Request.Context(), req.Rating, req.Comments); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to submit feedback: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "submitted"})
}
