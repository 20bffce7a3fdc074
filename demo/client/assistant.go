package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"medassist/types"
)

// AskResult is the pipeline output for one question.
type AskResult struct {
	SessionID  string         `json:"session_id"`
	Severity   types.Severity `json:"severity"`
	Advisories []string       `json:"advisories"`
	Answer     types.Answer   `json:"answer"`
}

// HistoryResult is the session history, newest first.
type HistoryResult struct {
	SessionID string               `json:"session_id"`
	Entries   []types.HistoryEntry `json:"entries"`
}

// Ask submits a question with optional demographics via the API
func (c *Client) Ask(ctx context.Context, question, age, gender string) (*AskResult, error) {
	payload := map[string]string{
		"question": question,
		"age":      age,
		"gender":   gender,
	}

	var result AskResult
	if err := c.doJSONRequest(ctx, http.MethodPost, "/api/ask", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// History fetches the current session's question history via the API
func (c *Client) History(ctx context.Context) (*HistoryResult, error) {
	var result HistoryResult
	if err := c.doJSONRequest(ctx, http.MethodGet, "/api/history", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExportHistory downloads the session history as CSV text via the API
func (c *Client) ExportHistory(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/history/export", nil)
	if err != nil {
		return "", err
	}
	if c.sessionID != "" {
		req.Header.Set("X-Session-ID", c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, string(data))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SendFeedback submits a rating with optional comments via the API
func (c *Client) SendFeedback(ctx context.Context, rating, comments string) error {
	payload := map[string]string{
		"rating":   rating,
		"comments": comments,
	}
	return c.doJSONRequest(ctx, http.MethodPost, "/api/feedback", payload, nil)
}
