package api

import (
	"bytes"
	"net/http"

	"medassist/types"

	"github.com/gin-gonic/gin"
)

// RegisterHistoryRoutes registers the session history endpoints.
func RegisterHistoryRoutes(r *gin.Engine, s *Server) {
	g := r.Group("/api/history")
	g.GET("", s.handleGetHistory)
	g.GET("/export", s.handleExportHistory)
}

// HistoryResponse represents the session history, newest first.
type HistoryResponse struct {
	SessionID string               `json:"session_id"`
	Entries   []types.HistoryEntry `json:"entries"`
}

// handleGetHistory returns the caller's session history in
// reverse-chronological order.
func (s *Server) handleGetHistory(c *gin.Context) {
	sessionID, log := s.sessions.Session(c.GetHeader(SessionHeader))

	c.Header(SessionHeader, sessionID)
	c.JSON(http.StatusOK, HistoryResponse{
		SessionID: sessionID,
		Entries:   log.Entries(),
	})
}

// handleExportHistory downloads the session history as delimited text, one
// row per question.
func (s *Server) handleExportHistory(c *gin.Context) {
	sessionID, log := s.sessions.Session(c.GetHeader(SessionHeader))

	var buf bytes.Buffer
	if err := log.ExportCSV(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export history: " + err.Error()})
		return
	}

	c.Header(SessionHeader, sessionID)
	c.Header("Content-Disposition", `attachment; filename="history.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
