package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	handler := RateLimit(0.01, 1, time.Minute)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	req.RemoteAddr = "192.0.2.1:5000"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding 429 body: %v", err)
	}
	if body["error"] != "too many requests" {
		t.Errorf("error message = %q, want %q", body["error"], "too many requests")
	}
}

func TestRateLimit_SeparateBucketsPerIP(t *testing.T) {
	handler := RateLimit(0.01, 1, time.Minute)(okHandler())

	first := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	first.RemoteAddr = "192.0.2.1:5000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first IP status = %d, want %d", rec.Code, http.StatusOK)
	}

	second := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	second.RemoteAddr = "192.0.2.2:5000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Fatalf("second IP status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestEvictIdle(t *testing.T) {
	rl := &ipRateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(1),
		burst:    1,
		idleTTL:  time.Minute,
	}

	rl.getLimiter("192.0.2.1")
	rl.getLimiter("192.0.2.2")
	rl.visitors["192.0.2.1"].lastSeen = time.Now().Add(-2 * time.Minute)

	rl.evictIdle(time.Now())

	if _, exists := rl.visitors["192.0.2.1"]; exists {
		t.Error("idle visitor was not evicted")
	}
	if _, exists := rl.visitors["192.0.2.2"]; !exists {
		t.Error("active visitor was evicted")
	}
}
