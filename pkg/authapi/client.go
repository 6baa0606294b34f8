package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultLoginPath    = "/auth/login"
	DefaultRegisterPath = "/auth/register"
	DefaultTimeout      = 10 * time.Second
)

var (
	// ErrRejected is returned when the collaborator answers with a 4xx status.
	// The collaborator's message, if any, is carried by *RejectedError.
	ErrRejected = errors.New("auth request rejected")
	// ErrUnavailable is returned for transport failures and 5xx statuses.
	ErrUnavailable = errors.New("auth service unavailable")
)

// RejectedError carries the collaborator's message for a refused call.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("auth request rejected with status %d", e.StatusCode)
}

func (e *RejectedError) Is(target error) bool { return target == ErrRejected }

// Client posts credentials to the remote auth API. Responses are treated as
// opaque: the token is returned as-is and never validated.
type Client struct {
	baseURL      string
	loginPath    string
	registerPath string
	httpClient   *http.Client
}

// NewClient creates a new auth API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:      baseURL,
		loginPath:    DefaultLoginPath,
		registerPath: DefaultRegisterPath,
		httpClient:   &http.Client{Timeout: DefaultTimeout},
	}
}

// WithPaths overrides the login and registration paths. Empty values keep the defaults.
func (c *Client) WithPaths(login, register string) *Client {
	if login != "" {
		c.loginPath = login
	}
	if register != "" {
		c.registerPath = register
	}
	return c
}

// WithTimeout overrides the per-request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.httpClient.Timeout = d
	}
	return c
}

// Login posts {email, password}.
func (c *Client) Login(ctx context.Context, req LoginRequest) (Response, error) {
	return c.post(ctx, c.loginPath, req)
}

// Register posts {name, email, password}.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (Response, error) {
	return c.post(ctx, c.registerPath, req)
}

func (c *Client) post(ctx context.Context, path string, payload any) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal auth request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to build auth request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	var out Response
	decodeErr := json.Unmarshal(raw, &out)

	switch {
	case resp.StatusCode >= 500:
		return Response{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return Response{}, &RejectedError{StatusCode: resp.StatusCode, Message: out.Message}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return Response{}, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	case decodeErr != nil:
		return Response{}, fmt.Errorf("%w: invalid json: %v", ErrUnavailable, decodeErr)
	}
	return out, nil
}
