package retryafter

import (
	"errors"
	"testing"
	"time"
)

var refInstant = time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)

func TestParseHTTPDate_RFC1123(t *testing.T) {
	got, err := ParseHTTPDate("Sun, 06 Nov 1994 08:49:37 GMT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(refInstant) {
		t.Fatalf("expected %s, got %s", refInstant, got)
	}
}

func TestParseHTTPDate_RFC850(t *testing.T) {
	got, err := ParseHTTPDate("Sunday, 06-Nov-94 08:49:37 GMT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(refInstant) {
		t.Fatalf("expected %s, got %s", refInstant, got)
	}
}

func TestParseHTTPDate_Asctime(t *testing.T) {
	// dia com espaço (não zero) à esquerda
	got, err := ParseHTTPDate("Sun Nov  6 08:49:37 1994")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(refInstant) {
		t.Fatalf("expected %s, got %s", refInstant, got)
	}
}

func TestParseHTTPDate_LayoutOrderIsRFC1123First(t *testing.T) {
	// os três layouts são estruturalmente distintos, então a ordem não
	// muda o resultado; aqui só se fixa que a tabela está na ordem que o
	// RFC manda, com o formato de emissor na frente.
	if httpDateLayouts[0].name != "rfc1123" {
		t.Fatalf("expected rfc1123 first, got %q", httpDateLayouts[0].name)
	}
	if httpDateLayouts[1].name != "rfc850" {
		t.Fatalf("expected rfc850 second, got %q", httpDateLayouts[1].name)
	}
	if httpDateLayouts[2].name != "asctime" {
		t.Fatalf("expected asctime last, got %q", httpDateLayouts[2].name)
	}
	if httpDateLayouts[0].layout != rfc1123Layout {
		t.Fatalf("first layout must be the encoder layout")
	}
}

func TestParseHTTPDate_TwoDigitYearPivot(t *testing.T) {
	// pivô do time.Parse: 69–99 → 19xx, 00–68 → 20xx
	got, err := ParseHTTPDate("Sunday, 06-Nov-94 08:49:37 GMT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 1994 {
		t.Fatalf("expected year 1994, got %d", got.Year())
	}

	got, err = ParseHTTPDate("Wednesday, 01-Jan-69 00:00:00 GMT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 1969 {
		t.Fatalf("expected year 1969, got %d", got.Year())
	}

	got, err = ParseHTTPDate("Sunday, 01-Jan-68 00:00:00 GMT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2068 {
		t.Fatalf("expected year 2068, got %d", got.Year())
	}
}

func TestParseHTTPDate_StrictWholeStringMatch(t *testing.T) {
	for _, in := range []string{
		"Sun, 06 Nov 1994 08:49:37 GMT extra",
		" Sun, 06 Nov 1994 08:49:37 GMT",
		"Sun, 06 Nov 1994 08:49:37",
		"Sun, 06 Nov 1994 08:49 GMT",
	} {
		if _, err := ParseHTTPDate(in); err == nil {
			t.Fatalf("input %q: expected failure on partial match", in)
		}
	}
}

func TestParseHTTPDate_GMTOnly(t *testing.T) {
	// o RFC só admite GMT; outras zonas (e offsets numéricos) são rejeitados
	for _, in := range []string{
		"Sun, 06 Nov 1994 08:49:37 UTC",
		"Sun, 06 Nov 1994 08:49:37 PST",
		"Sun, 06 Nov 1994 08:49:37 +0000",
		"Sunday, 06-Nov-94 08:49:37 UTC",
	} {
		if _, err := ParseHTTPDate(in); err == nil {
			t.Fatalf("input %q: expected failure on non-GMT zone", in)
		}
	}
}

func TestParseHTTPDate_NoMatchIsFormatNotRecognized(t *testing.T) {
	_, err := ParseHTTPDate("06/11/1994 08:49:37")
	if !errors.Is(err, ErrFormatNotRecognized) {
		t.Fatalf("expected ErrFormatNotRecognized, got %v", err)
	}
}
