// Package postgrest is the HTTP client for the hosted PostgREST backend.
// Every row the application reads or writes lives behind this client; the
// backend's row-level security keys rows on a fixed username, which the
// client merges into every mutating request body.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL  string
	token    string
	username string
	http     *http.Client
}

// APIError is a non-2xx response from the backend. Callers treat it as
// non-retryable; the raw body is surfaced to the user verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.StatusCode, e.Body)
}

func New(baseURL, token, username string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		username: username,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Do performs one request against the backend. endpoint is a resource path
// with optional filter query, e.g. "/question?interview_id=eq.4". For POST
// and PATCH the configured username is merged into the body and the full
// representation of the affected rows is requested back. DELETE carries a
// body of only the username, which the backend requires for its row-level
// security checks. When out is non-nil and the response is JSON, the body is
// decoded into it; empty responses succeed with out untouched.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader

	switch method {
	case http.MethodPost, http.MethodPatch:
		merged, err := c.withUsername(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(merged)
	case http.MethodDelete:
		payload, err := json.Marshal(map[string]string{"username": c.username})
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	default:
		if body != nil {
			encoded, err := json.Marshal(body)
			if err != nil {
				return err
			}
			reader = bytes.NewReader(encoded)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if method == http.MethodPost || method == http.MethodPatch {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// withUsername injects the configured username into a JSON object body.
func (c *Client) withUsername(body any) ([]byte, error) {
	fields := map[string]any{}
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(encoded, &fields); err != nil {
			return nil, err
		}
	}
	fields["username"] = c.username
	return json.Marshal(fields)
}
