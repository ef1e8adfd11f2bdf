package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	session := NewSession()
	return newClient(srv.Client(), srv.URL, session), srv
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestClient_Login_storesTokenAndLoadsUser(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var payload loginPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode login payload: %v", err)
		}
		if payload.Email != "alice@example.com" || payload.Password != "secret" {
			t.Errorf("login payload = %+v", payload)
		}
		writeTestJSON(t, w, http.StatusOK, tokenEnvelope{AccessToken: "tok123", TokenType: "bearer", UserID: "u1"})
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok123")
		}
		writeTestJSON(t, w, http.StatusOK, map[string]any{"id": "u1", "username": "alice", "eco_points": 100})
	})

	c, srv := newTestClient(mux)
	defer srv.Close()

	user, err := c.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.Username != "alice" {
		t.Errorf("user = %+v", user)
	}
	if !c.Session().Authenticated() {
		t.Error("session not authenticated after login")
	}
	if got := c.Session().CurrentUser(); got == nil || got.ID != "u1" {
		t.Errorf("CurrentUser = %+v, want u1", got)
	}
}

func TestClient_unauthorizedInvalidatesSessionAndFailsFast(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("GET /transactions", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeTestJSON(t, w, http.StatusUnauthorized, errorEnvelope{Detail: "Invalid token"})
	})

	c, srv := newTestClient(mux)
	defer srv.Close()
	c.Session().SetToken("expired")

	if _, err := c.Transactions(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if c.Session().Authenticated() {
		t.Error("session still authenticated after a 401")
	}

	// The next authenticated call must not reach the server at all.
	if _, err := c.Transactions(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
}

func TestClient_authenticatedCallWithoutTokenNeverDials(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	if _, err := c.Purchase(context.Background(), "item1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
}

func TestClient_Purchase_mapsNotAvailableDetail(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /items/sold1/purchase", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, http.StatusBadRequest, errorEnvelope{Detail: "Item not available"})
	})
	mux.HandleFunc("POST /items/mine/purchase", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, http.StatusBadRequest, errorEnvelope{Detail: "Cannot purchase your own item"})
	})
	mux.HandleFunc("POST /items/ok/purchase", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, http.StatusOK, purchaseEnvelope{Message: "Purchase successful", EcoPointsEarned: 11})
	})

	c, srv := newTestClient(mux)
	defer srv.Close()
	c.Session().SetToken("tok")

	if _, err := c.Purchase(context.Background(), "sold1"); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("error = %v, want ErrItemUnavailable", err)
	}

	// Other 400s keep their server detail instead of being folded in.
	_, err := c.Purchase(context.Background(), "mine")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Detail != "Cannot purchase your own item" {
		t.Errorf("APIError = %+v", apiErr)
	}

	points, err := c.Purchase(context.Background(), "ok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points != 11 {
		t.Errorf("points = %d, want 11", points)
	}
}

func TestClient_Items_sendsFilterParams(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("category"); got != "Books" {
			t.Errorf("category = %q, want Books", got)
		}
		if got := q.Get("search"); got != "golang" {
			t.Errorf("search = %q, want golang", got)
		}
		writeTestJSON(t, w, http.StatusOK, []map[string]any{{"id": "i1", "is_available": true}})
	})

	c, srv := newTestClient(mux)
	defer srv.Close()

	items, err := c.Items(context.Background(), "Books", "golang")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "i1" {
		t.Errorf("items = %v", items)
	}
}

func TestClient_Items_omitsEmptyParams(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		writeTestJSON(t, w, http.StatusOK, []map[string]any{})
	})

	c, srv := newTestClient(mux)
	defer srv.Close()

	if _, err := c.Items(context.Background(), "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_malformedBodyIsAPIError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items/i1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json"))
	})

	c, srv := newTestClient(mux)
	defer srv.Close()

	_, err := c.Item(context.Background(), "i1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Detail != "malformed response body" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
}

func TestClient_Register_storesTokenAndLoadsUser(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var payload registerPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode register payload: %v", err)
		}
		if payload.Username != "bob" || payload.FullName != "Bob Jones" {
			t.Errorf("register payload = %+v", payload)
		}
		writeTestJSON(t, w, http.StatusOK, tokenEnvelope{AccessToken: "newtok", TokenType: "bearer", UserID: "u2"})
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, http.StatusOK, map[string]any{"id": "u2", "username": "bob", "eco_points": 100})
	})

	c, srv := newTestClient(mux)
	defer srv.Close()

	user, err := c.Register(context.Background(), "bob@example.com", "bob", "Bob Jones", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.EcoPoints != 100 {
		t.Errorf("EcoPoints = %d, want 100", user.EcoPoints)
	}
}
