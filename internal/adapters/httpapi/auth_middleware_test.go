package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestAdminRouter(t *testing.T, token string) http.Handler {
	t.Helper()

	s, _ := newTestAPI(t)
	return NewRouterWithOptions(s, RouterOptions{AdminMiddleware: NewAdminMiddleware(token)})
}

func TestAdminMiddleware_MissingHeader_401(t *testing.T) {
	t.Parallel()

	h := newTestAdminRouter(t, "s3cret")
	req := httptest.NewRequest(http.MethodGet, "/attendees", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
	var fr failureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &fr); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if fr.Code != "UNAUTHORIZED" || fr.Success {
		t.Fatalf("body: %+v", fr)
	}
	if rid, err := fr.RequestID.Get(); err != nil || rid == "" {
		t.Fatalf("expected requestId to be a non-empty string")
	}
}

func TestAdminMiddleware_MalformedOrWrongToken_401(t *testing.T) {
	t.Parallel()

	h := newTestAdminRouter(t, "s3cret")
	for _, authz := range []string{"Basic abc", "Bearer ", "Bearer nope"} {
		req := httptest.NewRequest(http.MethodPost, "/api/reload-database", nil)
		req.Header.Set("Authorization", authz)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q status: got %d want %d", authz, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestAdminMiddleware_ValidToken_AllowsRequest(t *testing.T) {
	t.Parallel()

	h := newTestAdminRouter(t, "s3cret")
	req := httptest.NewRequest(http.MethodGet, "/attendees", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestAdminMiddleware_EmptyTokenLeavesEndpointsOpen(t *testing.T) {
	t.Parallel()

	h := newTestAdminRouter(t, "")
	req := httptest.NewRequest(http.MethodGet, "/attendees", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusOK)
	}
}

func TestAdminMiddleware_RegisterStaysOpen(t *testing.T) {
	t.Parallel()

	h := newTestAdminRouter(t, "s3cret")
	rec := doJSON(t, h, http.MethodPost, "/register", map[string]any{"identifier": "50012345"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
}
