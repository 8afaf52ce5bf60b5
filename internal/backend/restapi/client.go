// Package restapi implements service.Store against the task HTTP API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"tasksync/internal/config"
	"tasksync/internal/service"
)

// TasksPath is the collection path under the base URL.
const TasksPath = "/api/tasks"

// maxBodyBytes caps how much of a list response is read.
const maxBodyBytes = 8 << 20

// Client implements service.Store over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
	timeout time.Duration
}

// New creates a client from config. When a token is configured every
// request carries it as a bearer token.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := http.DefaultClient
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "Bearer",
		})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	return &Client{
		http:    httpClient,
		baseURL: cfg.BaseURL,
		timeout: cfg.RequestTimeout.Duration,
	}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchAll returns the current list in server order.
func (c *Client) FetchAll(ctx context.Context) ([]service.Task, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.do(ctx, http.MethodGet, c.baseURL+TasksPath, nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, wrapError(fmt.Errorf("read response: %w", err))
	}
	tasks, err := decodeTaskList(body)
	if err != nil {
		return nil, wrapError(err)
	}
	return tasks, nil
}

// Create submits a new task. The response body is ignored.
func (c *Client) Create(ctx context.Context, title string) error {
	return c.send(ctx, http.MethodPost, c.baseURL+TasksPath, map[string]string{"title": title})
}

// SetCompleted changes the completed flag of one task.
func (c *Client) SetCompleted(ctx context.Context, id service.TaskID, completed bool) error {
	return c.send(ctx, http.MethodPut, c.taskURL(id), map[string]bool{"completed": completed})
}

// Remove deletes one task.
func (c *Client) Remove(ctx context.Context, id service.TaskID) error {
	return c.send(ctx, http.MethodDelete, c.taskURL(id), nil)
}

func (c *Client) taskURL(id service.TaskID) string {
	return c.baseURL + TasksPath + "/" + url.PathEscape(id.String())
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// send issues a request whose response body is not needed.
func (c *Client) send(ctx context.Context, method, target string, payload any) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.do(ctx, method, target, payload)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, res.Body)
	return res.Body.Close()
}

// do performs one round-trip and returns the response only for 2xx statuses.
func (c *Client) do(ctx context.Context, method, target string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, wrapError(err)
	}
	if err := googleapi.CheckResponse(res); err != nil {
		res.Body.Close()
		return nil, wrapError(err)
	}
	return res, nil
}

// wrapError marks err as a network failure and shortens the common cases.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out", service.ErrNetwork)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", service.ErrNetwork, &StatusError{Code: apiErr.Code, cause: apiErr})
	}

	return fmt.Errorf("%w: %w", service.ErrNetwork, err)
}

// StatusError reports a non-success HTTP status from the store.
type StatusError struct {
	Code  int
	cause *googleapi.Error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Unwrap exposes the underlying googleapi error and its body.
func (e *StatusError) Unwrap() error { return e.cause }
