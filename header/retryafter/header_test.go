package retryafter

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestHeaderName_Regression(t *testing.T) {
	if Name != "Retry-After" {
		t.Fatalf("unexpected header name %q", Name)
	}
}

func TestSetThenGet_Delay(t *testing.T) {
	h := http.Header{}
	ra, _ := NewDelay(300 * time.Second)
	Set(h, ra)

	if got := h.Get("Retry-After"); got != "300" {
		t.Fatalf("expected wire form %q, got %q", "300", got)
	}

	back, err := Get(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != ra {
		t.Fatalf("expected %v, got %v", ra, back)
	}
}

func TestSetThenGet_Date(t *testing.T) {
	h := http.Header{}
	want := time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)
	Set(h, NewDate(want))

	back, err := Get(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := back.Date()
	if !ok {
		t.Fatalf("expected Date form")
	}
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestGet_MissingHeaderIsInsufficientData(t *testing.T) {
	h := http.Header{}
	if _, err := Get(h); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestGet_LookupIsCaseInsensitive(t *testing.T) {
	// canonicalização fica por conta do http.Header
	h := http.Header{}
	h.Set("retry-after", "42")

	ra, err := Get(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d, _ := ra.Delay(); d != 42*time.Second {
		t.Fatalf("expected 42s, got %s", d)
	}
}
