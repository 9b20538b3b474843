package client

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"retryafter-gateway/header/retryafter"
)

func TestRetryWait_DelaySeconds(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "30")

	wait, ok := RetryWait(h, time.Now(), time.Minute)
	if !ok {
		t.Fatalf("expected usable hint")
	}
	if wait != 30*time.Second {
		t.Fatalf("expected 30s, got %s", wait)
	}
}

func TestRetryWait_HTTPDate(t *testing.T) {
	now := time.Date(1994, time.November, 6, 8, 49, 7, 0, time.UTC)
	h := http.Header{}
	h.Set("Retry-After", "Sun, 06 Nov 1994 08:49:37 GMT")

	wait, ok := RetryWait(h, now, time.Minute)
	if !ok {
		t.Fatalf("expected usable hint")
	}
	if wait != 30*time.Second {
		t.Fatalf("expected 30s, got %s", wait)
	}
}

func TestRetryWait_PastDateMeansRetryNow(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	h := http.Header{}
	h.Set("Retry-After", "Sun, 06 Nov 1994 08:49:37 GMT")

	wait, ok := RetryWait(h, now, time.Minute)
	if !ok {
		t.Fatalf("expected usable hint")
	}
	if wait != 0 {
		t.Fatalf("expected 0, got %s", wait)
	}
}

func TestRetryWait_MissingOrGarbageHeader(t *testing.T) {
	if _, ok := RetryWait(http.Header{}, time.Now(), time.Minute); ok {
		t.Fatalf("missing header must not produce a hint")
	}

	h := http.Header{}
	h.Set("Retry-After", "whenever you feel like it")
	if _, ok := RetryWait(h, time.Now(), time.Minute); ok {
		t.Fatalf("garbage header must not produce a hint")
	}
}

func TestRetryWait_HostileWaitIsCapped(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "86400")

	if _, ok := RetryWait(h, time.Now(), time.Minute); ok {
		t.Fatalf("wait above max must be discarded")
	}
}

func TestClient_RetriesAfter429(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// data no passado: o cliente pode repetir imediatamente
			ra := retryafter.NewDate(time.Now().Add(-time.Hour))
			retryafter.Set(w.Header(), ra)
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, WithRetryCount(2))
	c.Resty().SetRetryWaitTime(5 * time.Millisecond)

	resp, err := c.R().Get("/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("expected 200 after retry, got %d", resp.StatusCode())
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
}

func TestClient_DoesNotRetryOtherErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, WithRetryCount(2))
	c.Resty().SetRetryWaitTime(5 * time.Millisecond)

	resp, err := c.R().Get("/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode())
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected single call, got %d", got)
	}
}
