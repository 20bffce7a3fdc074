package api

import (
	"net/http"

	"medassist/query"
	"medassist/types"

	"github.com/gin-gonic/gin"
)

// SessionHeader carries the caller's session identifier. A missing header
// starts a fresh session; the assigned ID is echoed in every response.
const SessionHeader = "X-Session-ID"

// RegisterAskRoutes registers the question answering endpoint.
func RegisterAskRoutes(r *gin.Engine, s *Server) {
	r.POST("/api/ask", s.handleAsk)
}

// AskRequest represents a submitted medical question with optional
// demographic context.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
	Age      string `json:"age"`
	Gender   string `json:"gender"`
}

// AskResponse represents the combined pipeline output for one question.
type AskResponse struct {
	SessionID  string         `json:"session_id"`
	Severity   types.Severity `json:"severity"`
	Advisories []string       `json:"advisories"`
	Answer     types.Answer   `json:"answer"`
}

// handleAsk runs the full pipeline for one question: augment, retrieve,
// synthesize, and independently match advisories and classify severity.
// The result is appended to the caller's session history.
func (s *Server) handleAsk(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, log := s.sessions.Session(c.GetHeader(SessionHeader))

	augmented := query.Augment(req.Question, req.Age, req.Gender)
	retrieval := s.retriever.Retrieve(c.Request.Context(), augmented)
	answer := s.synthesizer.Answer(c.Request.Context(), augmented, retrieval.Snippets)

	// Advisories and severity come from the raw question, not the augmented
	// query, and do not depend on retrieval succeeding.
	severity := s.classifier.Classify(req.Question)
	advisories := s.matcher.Match(req.Question)

	log.Append(req.Question, answer, severity)

	c.Header(SessionHeader, sessionID)
	c.JSON(http.StatusOK, AskResponse{
		SessionID:  sessionID,
		Severity:   severity,
		Advisories: advisories,
		Answer:     answer,
	})
}
