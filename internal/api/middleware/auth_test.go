package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lingges29/mypark/internal/api/middleware"
)

func TestAuth_PropagatesUserID(t *testing.T) {
	var gotUserID int64
	var gotOK bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = middleware.GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	req.Header.Set(middleware.HeaderUserID, "42")
	rec := httptest.NewRecorder()

	middleware.Auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, int64(42), gotUserID)
}

func TestAuth_RejectsMissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	rec := httptest.NewRecorder()

	middleware.Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RejectsNonNumericHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	req.Header.Set(middleware.HeaderUserID, "not-a-number")
	rec := httptest.NewRecorder()

	middleware.Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserID_AbsentFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := middleware.GetUserID(req.Context())

	assert.False(t, ok)
}
