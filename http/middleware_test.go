package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	depothttp "github.com/filedepot/filedepot/http"
)

func TestRequestID_AssignsWhenMissing(t *testing.T) {
	var seen string
	handler := depothttp.RequestID(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		seen = depothttp.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-Id"))
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	handler := depothttp.RequestID(nethttp.HandlerFunc(func(nethttp.ResponseWriter, *nethttp.Request) {}))

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	handler := depothttp.RequestLogger(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusTeapot)
	}))

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusTeapot, rec.Code)
}
