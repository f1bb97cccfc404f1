// Package client is the Go SDK for the dealership admin API. It implements
// the query/state contract the admin screens share: a query-state controller
// whose setters reset paging, a debounced search input, a listing session
// with stale-result discard, and a record-editor state machine.
package client

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
	"sync"
	"time"
)

// ErrUnauthorized is returned once a 401 has cleared the session; every
// call after that fails fast until Login succeeds again.
var ErrUnauthorized = errors.New("client: sesi berakhir, login ulang diperlukan")

// APIError carries a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsRetryable reports whether the caller may simply re-issue the request.
func (e *APIError) IsRetryable() bool {
	return e.Status >= 500
}

// Record is one collection row as the API serializes it.
type Record map[string]any

// DocumentID returns the stable external identifier of the record.
func (r Record) DocumentID() string {
	if v, ok := r["documentId"].(string); ok {
		return v
	}
	return ""
}

// Pagination mirrors the list response meta block.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// ListResult is one page of records plus the server's authoritative counts.
type ListResult struct {
	Records []Record
	Meta    Pagination
}

// User is the authenticated account payload from login.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Client talks to the dealership API. A zero token means no session; any
// 401 clears the session and triggers OnUnauthorized exactly once per
// authenticated period.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// OnUnauthorized runs after a 401 clears the session (e.g. redirect
	// to the login screen). Optional.
	OnUnauthorized func()

	mu    sync.Mutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// Token returns the current session token ("" when logged out).
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// SetToken installs an existing session token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) clearSession() {
	c.mu.Lock()
	hadSession := c.token != ""
	c.token = ""
	c.mu.Unlock()
	if hadSession && c.OnUnauthorized != nil {
		c.OnUnauthorized()
	}
}

// Login establishes the session. This is the single canonical auth call.
func (c *Client) Login(ctx context.Context, identifier, password string) (User, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	var resp struct {
		JWT  string `json:"jwt"`
		User User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &resp, false); err != nil {
		return User{}, err
	}
	c.SetToken(resp.JWT)
	return resp.User, nil
}

// List fetches one page of a collection.
func (c *Client) List(ctx context.Context, resource string, params url.Values) (ListResult, error) {
	var resp struct {
		Data []Record `json:"data"`
		Meta struct {
			Pagination Pagination `json:"pagination"`
		} `json:"meta"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/"+resource, params, nil, &resp, true); err != nil {
		return ListResult{}, err
	}
	return ListResult{Records: resp.Data, Meta: resp.Meta.Pagination}, nil
}

// Get fetches a single record by documentId.
func (c *Client) Get(ctx context.Context, resource, documentID string) (Record, error) {
	var resp struct {
		Data Record `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/"+resource+"/"+documentID, nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Create posts {"data": fields} and returns the stored record, including
// its server-issued documentId.
func (c *Client) Create(ctx context.Context, resource string, fields map[string]any) (Record, error) {
	var resp struct {
		Data Record `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/"+resource, nil, map[string]any{"data": fields}, &resp, true); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Update patches the record with key-presence semantics.
func (c *Client) Update(ctx context.Context, resource, documentID string, fields map[string]any) (Record, error) {
	var resp struct {
		Data Record `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/"+resource+"/"+documentID, nil, map[string]any{"data": fields}, &resp, true); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Delete removes a record permanently; there is no undo.
func (c *Client) Delete(ctx context.Context, resource, documentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/"+resource+"/"+documentID, nil, nil, nil, true)
}

// LatestLocations fetches the newest ping per sales profile, the 30-second
// polling target of the monitoring screen.
func (c *Client) LatestLocations(ctx context.Context) ([]Record, error) {
	var resp struct {
		Data []Record `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/sales-locations/latest", nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// do issues one request with at most one automatic retry on transport
// failure. HTTP error statuses are never retried here; recovery beyond the
// single transport retry is the caller's choice.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any, authed bool) error {
	token := c.Token()
	if authed && token == "" {
		return ErrUnauthorized
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	endpoint := c.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	resp, err := c.attempt(ctx, method, endpoint, token, payload)
	if err != nil {
		// one transport-level retry, then give up
		resp, err = c.attempt(ctx, method, endpoint, token, payload)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.clearSession()
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) attempt(ctx context.Context, method, endpoint, token string, payload []byte) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.HTTPClient.Do(req)
}

func readErrorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
