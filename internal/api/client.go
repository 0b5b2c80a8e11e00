package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to a remote record catalog over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. An empty apiKey sends no
// Authorization header.
func NewClient(baseURL, apiKey string, timeout ...time.Duration) *Client {
	t := defaultTimeout
	if len(timeout) > 0 && timeout[0] > 0 {
		t = timeout[0]
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: t},
	}
}

// WithTimeout clones the client with a different HTTP timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	return NewClient(c.baseURL, c.apiKey, timeout)
}

// BaseURL returns the catalog root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is a non-2xx response from the catalog.
type APIError struct {
	Status  int
	Code    string
	Message string
	Body    string
}

func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return e.Code + ": " + e.Message
	case e.Code != "":
		return e.Code
	case e.Message != "":
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// get performs a GET and returns the raw body of a successful response.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}

// newAPIError reads the message out of {"error":{"code","message"}},
// {"error":"..."} or {"detail":...}, falling back to the raw body.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Body: strings.TrimSpace(string(body))}

	var envelope apiResponse[json.RawMessage]
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		apiErr.Code = strings.TrimSpace(envelope.Error.Code)
		apiErr.Message = strings.TrimSpace(envelope.Error.Message)
		if apiErr.Code != "" || apiErr.Message != "" {
			return apiErr
		}
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}
	for _, key := range []string{"error", "detail"} {
		if code, msg := errorFields(payload[key]); code != "" || msg != "" {
			apiErr.Code, apiErr.Message = code, msg
			return apiErr
		}
	}
	return apiErr
}

func errorFields(v any) (code, message string) {
	switch typed := v.(type) {
	case string:
		return "", strings.TrimSpace(typed)
	case map[string]any:
		if code, msg := errorFields(typed["error"]); code != "" || msg != "" {
			return code, msg
		}
		code, _ = typed["code"].(string)
		message, _ = typed["message"].(string)
		return strings.TrimSpace(code), strings.TrimSpace(message)
	}
	return "", ""
}

// buildQuery appends non-empty params to path in sorted key order.
func buildQuery(path string, params QueryParams) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return path
	}
	sort.Strings(keys)
	q := url.Values{}
	for _, k := range keys {
		q.Set(k, params[k])
	}
	return path + "?" + q.Encode()
}
