package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medassist/feedback"
	"medassist/history"
	"medassist/search"
	"medassist/triage"
	"medassist/types"

	"github.com/gin-gonic/gin"
)

type stubRetriever struct {
	snippets  []types.SourceSnippet
	lastQuery string
}

func (s *stubRetriever) Retrieve(ctx context.Context, query string) search.Retrieval {
	s.lastQuery = query
	return search.Retrieval{Snippets: s.snippets}
}

type stubSynthesizer struct {
	answer types.Answer
}

func (s *stubSynthesizer) Answer(ctx context.Context, question string, snippets []types.SourceSnippet) types.Answer {
	return s.answer
}

type stubAppender struct {
	rating   string
	comments string
	err      error
	calls    int
}

func (s *stubAppender) Append(ctx context.Context, rating, comments string) error {
	s.calls++
	s.rating = rating
	s.comments = comments
	return s.err
}

func newTestServer(retriever *stubRetriever, appender *stubAppender) (*Server, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	answer := types.Answer{
		Text:    "Stay hydrated.\n\n**Disclaimer:** Always consult your healthcare provider.",
		Sources: []types.SourceRef{{Title: "Hydration", URL: "https://www.nhs.uk/hydration"}},
	}

	// Keep a nil *stubAppender from becoming a non-nil RowAppender.
	var rows feedback.RowAppender
	if appender != nil {
		rows = appender
	}

	s := NewServer(
		retriever,
		&stubSynthesizer{answer: answer},
		triage.NewMatcher(triage.DefaultAdvisories()),
		triage.NewClassifier(triage.DefaultSeverityGroups()),
		history.NewStore(),
		rows,
	)
	return s, NewRouter(s)
}

func postJSON(r *gin.Engine, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAskRequiresQuestion(t *testing.T) {
	_, r := newTestServer(&stubRetriever{}, nil)

	w := postJSON(r, "/api/ask", map[string]string{"age": "34"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestAskRunsPipelineAndRecordsHistory(t *testing.T) {
	retriever := &stubRetriever{snippets: []types.SourceSnippet{
		{Title: "Hydration", URL: "https://www.nhs.uk/hydration", Excerpt: "Drink water."},
	}}
	_, r := newTestServer(retriever, nil)

	w := postJSON(r, "/api/ask", map[string]string{
		"question": "I have chest pain and dizziness",
		"age":      "34",
		"gender":   "Male",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body: %s", w.Code, w.Body.String())
	}

	var resp AskResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if resp.SessionID == "" {
		t.Fatal("expected a session ID")
	}
	if resp.Severity != types.SeverityImmediate {
		t.Fatalf("severity = %q; want Immediate", resp.Severity)
	}
	if len(resp.Advisories) == 0 {
		t.Fatal("expected chest pain advisory")
	}
	if retriever.lastQuery != "For a 34-year-old male, I have chest pain and dizziness" {
		t.Fatalf("retriever got query %q; demographics not applied", retriever.lastQuery)
	}

	// The answered question must appear in the same session's history.
	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	req.Header.Set(SessionHeader, resp.SessionID)
	hw := httptest.NewRecorder()
	r.ServeHTTP(hw, req)

	var hist HistoryResponse
	if err := json.Unmarshal(hw.Body.Bytes(), &hist); err != nil {
		t.Fatalf("invalid history JSON: %v", err)
	}
	if len(hist.Entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(hist.Entries))
	}
	if hist.Entries[0].Question != "I have chest pain and dizziness" {
		t.Fatalf("history question = %q", hist.Entries[0].Question)
	}
}

func TestHistoryExportIsCSV(t *testing.T) {
	retriever := &stubRetriever{snippets: []types.SourceSnippet{
		{Title: "Hydration", URL: "https://www.nhs.uk/hydration", Excerpt: "Drink water."},
	}}
	_, r := newTestServer(retriever, nil)

	w := postJSON(r, "/api/ask", map[string]string{"question": "How much water per day?"}, nil)
	sessionID := w.Header().Get(SessionHeader)
	if sessionID == "" {
		t.Fatal("ask response missing session header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/history/export", nil)
	req.Header.Set(SessionHeader, sessionID)
	ew := httptest.NewRecorder()
	r.ServeHTTP(ew, req)

	if ew.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", ew.Code)
	}
	if ct := ew.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("Content-Type = %q; want text/csv", ct)
	}

	lines := strings.Split(strings.TrimSpace(ew.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 data row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "https://www.nhs.uk/hydration") {
		t.Fatalf("data row missing source URL: %q", lines[1])
	}
}

func TestFeedbackAppendsRow(t *testing.T) {
	appender := &stubAppender{}
	_, r := newTestServer(&stubRetriever{}, appender)

	w := postJSON(r, "/api/feedback", map[string]string{
		"rating":   "5",
		"comments": "very helpful",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body: %s", w.Code, w.Body.String())
	}
	if appender.calls != 1 || appender.rating != "5" || appender.comments != "very helpful" {
		t.Fatalf("appender got calls=%d rating=%q comments=%q", appender.calls, appender.rating, appender.comments)
	}
}

func TestFeedbackRequiresRating(t *testing.T) {
	appender := &stubAppender{}
	_, r := newTestServer(&stubRetriever{}, appender)

	w := postJSON(r, "/api/feedback", map[string]string{"comments": "no rating"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	if appender.calls != 0 {
		t.Fatalf("appender called %d times on invalid request", appender.calls)
	}
}

func TestFeedbackBackendFailure(t *testing.T) {
	appender := &stubAppender{err: errors.New("quota exceeded")}
	_, r := newTestServer(&stubRetriever{}, appender)

	w := postJSON(r, "/api/feedback", map[string]string{"rating": "1"}, nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d; want 502", w.Code)
	}
}

func TestFeedbackUnconfigured(t *testing.T) {
	_, r := newTestServer(&stubRetriever{}, nil)

	w := postJSON(r, "/api/feedback", map[string]string{"rating": "1"}, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d; want 503", w.Code)
	}
}
