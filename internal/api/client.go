// Package api implements the typed HTTP client for the washing-machine
// booking API. It owns request construction, bearer credentials and the
// split between transport errors and server-reported failures; callers
// decide what to do with either.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Client is a thin wrapper over http.Client bound to one API base URL.
// Requests run concurrently with auth flows that swap the bearer, so the
// credential sits behind a mutex.
//
// The client carries no request timeout: a hung request suspends only the
// command that issued it, and the interface stays on its previous state.
type Client struct {
	baseURL string
	client  *http.Client

	mu     sync.RWMutex
	bearer string
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// SetBearer sets the credential sent in the Authorization header on
// authenticated requests. Pass the server-issued token when one exists,
// otherwise the identity id rendered as a string.
func (c *Client) SetBearer(credential string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearer = credential
}

// ClearBearer drops the stored credential.
func (c *Client) ClearBearer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearer = ""
}

func (c *Client) bearerCredential() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bearer
}

// Error is a failure reported by the server with a structured message.
// Transport failures are never of this type.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// errorBody models the {"message": "..."} shape every failure response uses.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one request against the API. A non-nil body is sent as JSON;
// a non-nil out receives the decoded success response. When authed is true
// the stored bearer credential is attached.
func (c *Client) do(ctx context.Context, method, path string, authed bool, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if bearer := c.bearerCredential(); bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		// A non-JSON error body still yields a usable Error value.
		_ = json.Unmarshal(respBody, &eb)
		return &Error{StatusCode: resp.StatusCode, Message: eb.Message}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal api response: %w", err)
		}
	}
	return nil
}
