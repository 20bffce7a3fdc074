package assistant

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"medassist/config"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// CompletionProvider abstracts a prompt->text generator.
// Implementations submit a single user-role prompt to a fixed model with the
// backend's default sampling parameters.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// NewDefaultCompletionProvider returns a completion provider if configured
// via env. Prefers Cohere when COHERE_API_KEY is set, then OpenAI via
// OPENAI_API_KEY. Returns nil when neither is configured.
func NewDefaultCompletionProvider(preferredModel string) CompletionProvider {
	if cohereKey := os.Getenv("COHERE_API_KEY"); cohereKey != "" {
		model := preferredModel
		if model == "" || !strings.HasPrefix(model, "command") {
			model = config.DefaultCohereModel
		}
		// Force HTTP/1.1 to avoid HTTP/2 protocol errors against the Cohere API
		httpClient := &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
				ForceAttemptHTTP2: false,
			},
		}
		client := cohereclient.NewClient(
			cohereclient.WithToken(cohereKey),
			cohereclient.WithHTTPClient(httpClient),
		)
		return &CohereCompletion{client: client, model: model}
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		model := preferredModel
		if model == "" || strings.HasPrefix(model, "command") {
			model = config.DefaultOpenAIModel
		}
		return &OpenAICompletion{apiKey: apiKey, model: model}
	}
	return nil
}

// CohereCompletion implements CompletionProvider using the Cohere Chat API
// SDK: github.com/cohere-ai/cohere-go/v2
type CohereCompletion struct {
	client *cohereclient.Client
	model  string
}

func (c *CohereCompletion) ModelName() string { return c.model }

func (c *CohereCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &c.model,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return "", errors.New("cohere chat returned empty response")
	}
	return resp.Text, nil
}

// OpenAICompletion implements CompletionProvider using the OpenAI Chat
// Completions API
// Endpoint: POST https://api.openai.com/v1/chat/completions
// Request: {"model": "...", "messages": [{"role": "user", "content": "..."}]}
// Response: {"choices": [{"message": {"content": "..."}}]}
type OpenAICompletion struct {
	apiKey   string
	model    string
	endpoint string
}

func (o *OpenAICompletion) ModelName() string { return o.model }

func (o *OpenAICompletion) Complete(ctx context.Context, prompt string) (string, error) {
	endpoint := o.endpoint
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1/chat/completions"
	}

	payload := map[string]interface{}{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", o.apiKey))
	if org := os.Getenv("OPENAI_ORG_ID"); org != "" {
		req.Header.Set("OpenAI-Organization", org)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return "", fmt.Errorf("openai chat error: status %d: %v", resp.StatusCode, body)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("openai chat returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
