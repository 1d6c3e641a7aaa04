package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ports"
)

// RemoteError is a failure reported by a polka server
type RemoteError struct {
	Message string
	Status  int
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error: %s", http.StatusText(e.Status))
	}
	return e.Message
}

// Unwrap lets callers match errors.Is(err, domain.ErrSessionNotFound)
func (e *RemoteError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Client talks to a polka server over HTTP
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

var _ ports.SessionClient = (*Client)(nil)

// NewClient creates a client for baseURL. timeout bounds each request; 0 means none.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
	}
}

func sessionPath(id string, parts ...string) string {
	p := "/api/sessions/" + url.PathEscape(id)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

// do sends one request. in is encoded as JSON when non-nil; out is decoded when non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	logging.Logger.Debug("Remote call", "method", method, "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var er errResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return &RemoteError{Message: er.Error, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) ListSessions(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := c.do(ctx, http.MethodGet, "/api/sessions", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) CreateSession(ctx context.Context, req domain.CreateSessionRequest) (*domain.Session, error) {
	var session domain.Session
	if err := c.do(ctx, http.MethodPost, "/api/sessions", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) UpdateSessionStatus(ctx context.Context, req domain.UpdateSessionStatusRequest) error {
	body := map[string]domain.SessionStatus{"status": req.Status}
	return c.do(ctx, http.MethodPut, sessionPath(req.ID, "status"), body, nil)
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, sessionPath(id), nil, nil)
}

func (c *Client) AppendTranscriptLine(ctx context.Context, id string, line domain.TranscriptLine) error {
	return c.do(ctx, http.MethodPost, sessionPath(id, "transcript"), line, nil)
}

func (c *Client) ReadTranscript(ctx context.Context, id string) ([]domain.TranscriptLine, error) {
	lines := []domain.TranscriptLine{}
	if err := c.do(ctx, http.MethodGet, sessionPath(id, "transcript"), nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *Client) WriteNotes(ctx context.Context, id, markdown string) error {
	return c.do(ctx, http.MethodPut, sessionPath(id, "notes"), notesBody{Markdown: markdown}, nil)
}

func (c *Client) ReadNotes(ctx context.Context, id string) (string, error) {
	var body notesBody
	if err := c.do(ctx, http.MethodGet, sessionPath(id, "notes"), nil, &body); err != nil {
		return "", err
	}
	return body.Markdown, nil
}
