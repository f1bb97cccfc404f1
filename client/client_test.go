package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func writeListPage(w http.ResponseWriter, records []Record, meta Pagination) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": records,
		"meta": map[string]any{"pagination": meta},
	})
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var body struct {
			Identifier string `json:"identifier"`
			Password   string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad login body: %v", err)
		}
		if body.Identifier != "admin" || body.Password != "rahasia" {
			t.Fatalf("credentials not forwarded: %+v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jwt":  "tok-123",
			"user": User{ID: 1, Name: "Admin", Role: "admin"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Login(context.Background(), "admin", "rahasia")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Name != "Admin" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if c.Token() != "tok-123" {
		t.Fatalf("token not stored, got %q", c.Token())
	}
}

func TestUnauthorizedClearsSessionAndBlocksCalls(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token tidak valid"})
	}))
	defer srv.Close()

	var hookCalls atomic.Int32
	c := New(srv.URL)
	c.OnUnauthorized = func() { hookCalls.Add(1) }
	c.SetToken("expired")

	if _, err := c.List(context.Background(), "colors", nil); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if c.Token() != "" {
		t.Fatalf("session not cleared after 401")
	}
	if hookCalls.Load() != 1 {
		t.Fatalf("OnUnauthorized should run once, ran %d times", hookCalls.Load())
	}

	// further calls fail fast without touching the server
	before := hits.Load()
	if _, err := c.List(context.Background(), "colors", nil); err != ErrUnauthorized {
		t.Fatalf("expected fail-fast ErrUnauthorized, got %v", err)
	}
	if hits.Load() != before {
		t.Fatalf("blocked call still reached the server")
	}
}

func TestCreateWrapsDataEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("bearer token missing, got %q", got)
		}
		var body struct {
			Data map[string]any `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body.Data["name"] != "Hitam" {
			t.Fatalf("payload not wrapped in data envelope: %+v", body)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": Record{"id": 1, "documentId": "doc-1", "name": "Hitam"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok")
	rec, err := c.Create(context.Background(), "colors", map[string]any{"name": "Hitam"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.DocumentID() != "doc-1" {
		t.Fatalf("documentId not returned: %+v", rec)
	}
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "field name wajib diisi"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok")
	_, err := c.Create(context.Background(), "colors", map[string]any{})
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T %v", err, err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "field name wajib diisi" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
	if apiErr.IsRetryable() {
		t.Fatalf("400 must not be retryable")
	}
}
