// Package client is a small Go SDK for the hub-engine HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a Go SDK for the hub-engine API
type Client struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithAdminToken sets the bearer token for admin endpoints
func WithAdminToken(token string) Option {
	return func(c *Client) {
		c.adminToken = token
	}
}

// NewClient creates a new hub-engine client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Session is a session record as returned by the API
type Session struct {
	ID               string          `json:"id"`
	View             string          `json:"view"`
	SelectedCourseID string          `json:"selected_course_id,omitempty"`
	ActiveCourseID   string          `json:"active_course_id,omitempty"`
	Unlocked         bool            `json:"unlocked"`
	Chat             []ChatMessage   `json:"chat,omitempty"`
	ChatBusy         bool            `json:"chat_busy,omitempty"`
	Mint             json.RawMessage `json:"mint,omitempty"`
	Votes            json.RawMessage `json:"votes,omitempty"`
	Swap             json.RawMessage `json:"swap,omitempty"`
	Certificate      json.RawMessage `json:"certificate,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	ExpiresAt        time.Time       `json:"expires_at"`
}

// ChatMessage is one transcript turn
type ChatMessage struct {
	Sender  string    `json:"sender"`
	Text    string    `json:"text"`
	Actions []Action  `json:"actions,omitempty"`
	SentAt  time.Time `json:"sent_at"`
}

// Action is a clickable navigation control attached to an AI message
type Action struct {
	Label string `json:"label"`
	View  string `json:"view"`
}

// EnrollResult reports the outcome of an enroll call
type EnrollResult struct {
	Session *Session `json:"session"`
	Enroll  struct {
		View         string `json:"view"`
		PurchaseLink string `json:"purchase_link,omitempty"`
	} `json:"enroll"`
}

// ChatResult carries the AI reply and the full transcript
type ChatResult struct {
	Reply ChatMessage   `json:"reply"`
	Chat  []ChatMessage `json:"chat"`
}

// Lead is a captured lead record
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CapturedAt time.Time `json:"captured_at"`
}

// envelope is the API response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateSession starts a new session
func (c *Client) CreateSession(ctx context.Context) (*Session, error) {
	var s Session
	if err := c.call(ctx, "POST", "/api/v1/sessions", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSession retrieves a session by ID
func (c *Client) GetSession(ctx context.Context, id string) (*Session, error) {
	var s Session
	if err := c.call(ctx, "GET", fmt.Sprintf("/api/v1/sessions/%s", id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Navigate moves the session to a named view
func (c *Client) Navigate(ctx context.Context, id, view string) (*Session, error) {
	var s Session
	body := map[string]string{"view": view}
	if err := c.call(ctx, "POST", fmt.Sprintf("/api/v1/sessions/%s/navigate", id), body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SelectCourse selects a course and enters its detail view
func (c *Client) SelectCourse(ctx context.Context, id, courseID string) (*Session, error) {
	var s Session
	body := map[string]string{"course_id": courseID}
	if err := c.call(ctx, "POST", fmt.Sprintf("/api/v1/sessions/%s/course", id), body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Enroll acts on the selected course
func (c *Client) Enroll(ctx context.Context, id string) (*EnrollResult, error) {
	var result EnrollResult
	if err := c.call(ctx, "POST", fmt.Sprintf("/api/v1/sessions/%s/enroll", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExitCourse leaves the learning experience
func (c *Client) ExitCourse(ctx context.Context, id string) (*Session, error) {
	var s Session
	if err := c.call(ctx, "POST", fmt.Sprintf("/api/v1/sessions/%s/exit-course", id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Unlock submits the gate form and opens the locked resources
func (c *Client) Unlock(ctx context.Context, id, name, email, phone string) (*Session, error) {
	var s Session
	body := map[string]string{"name": name, "email": email, "phone": phone}
	if err := c.call(ctx, "POST", fmt.Sprintf("/api/v1/sessions/%s/unlock", id), body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Chat sends one message and returns the AI reply
func (c *Client) Chat(ctx context.Context, id, message string) (*ChatResult, error) {
	var result ChatResult
	body := map[string]string{"message": message}
	if err := c.call(ctx, "POST", fmt.Sprintf("/api/v1/sessions/%s/chat", id), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListLeads retrieves captured leads, newest first. Requires the admin
// token.
func (c *Client) ListLeads(ctx context.Context) ([]Lead, error) {
	var result struct {
		Leads []Lead `json:"leads"`
		Total int    `json:"total"`
	}
	if err := c.call(ctx, "GET", "/api/v1/admin/leads", nil, &result); err != nil {
		return nil, err
	}
	return result.Leads, nil
}

// ExportLeads downloads the CSV lead export. Requires the admin token.
func (c *Client) ExportLeads(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/admin/leads/export", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error: status %d", resp.StatusCode)
	}
	return string(data), nil
}

// call performs one request and decodes the envelope into out. A nil out
// discards the data payload.
func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !env.Success {
		if env.Error != nil {
			return fmt.Errorf("API error: %s - %s", env.Error.Code, env.Error.Message)
		}
		return fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to unmarshal data: %w", err)
		}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.adminToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.adminToken)
	}
}
