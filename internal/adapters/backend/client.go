package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"forja/internal/domain"
	"forja/internal/logging"
	"forja/internal/ports"
)

// Client talks to the generation backend over HTTP/JSON
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// BaseURL returns the backend base URL the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate sends a prompt to the translate-and-forward endpoint. A
// non-empty sessionID is included so the backend applies the prompt as
// an adjustment to the existing session instead of starting fresh.
//
// Transport failures wrap domain.ErrBackendUnreachable; non-2xx
// responses become a domain.BackendError carrying the body's message.
func (c *Client) Generate(ctx context.Context, sessionID, prompt string) (*ports.GenerateResult, error) {
	payload := map[string]string{"prompt": prompt}
	if sessionID != "" {
		payload["session_id"] = sessionID
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode generation request: %w", err)
	}

	url := c.baseURL + "/translate-and-forward/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Warn("Generation request failed to reach backend", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read generation response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Logger.Warn("Generation request rejected", "url", url, "status", resp.StatusCode)
		return nil, &domain.BackendError{
			Message:    errorMessage(raw),
			StatusCode: resp.StatusCode,
		}
	}

	var result ports.GenerateResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}

	logging.Logger.Debug("Generation request accepted",
		"session_id", result.SessionID,
		"message_len", len(result.Message))
	return &result, nil
}

// Preview fetches the diff preview for the given identifier. Error
// classification matches Generate.
func (c *Client) Preview(ctx context.Context, id string) (*domain.Preview, error) {
	url := fmt.Sprintf("%s/preview/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build preview request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Warn("Preview request failed to reach backend", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read preview response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Logger.Warn("Preview request rejected", "url", url, "status", resp.StatusCode)
		return nil, &domain.BackendError{
			Message:    errorMessage(raw),
			StatusCode: resp.StatusCode,
		}
	}

	var preview domain.Preview
	if err := json.Unmarshal(raw, &preview); err != nil {
		return nil, fmt.Errorf("failed to decode preview response: %w", err)
	}
	preview.Raw = raw

	logging.Logger.Debug("Fetched preview", "id", id, "files", len(preview.Files))
	return &preview, nil
}

// errorMessage extracts the optional JSON message field from an error
// body, falling back to the raw response text.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(raw))
}
