package itinerary

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"trailing comma", `{"city":"Paris",}`},
		{"single quotes", `{'city':'Paris'}`},
		{"unterminated", `{"city":"Paris"`},
		{"two values", `{} {}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			payload, err := Parse(tt.draft)
			if !errors.Is(err, ErrInvalidJSON) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidJSON", tt.draft, err)
			}
			if payload != nil {
				t.Fatalf("expected nil payload, got %q", payload)
			}
		})
	}
}

func TestParseCompactsAndKeepsOrder(t *testing.T) {
	t.Parallel()

	draft := "{\n  \"zeta\": 1,\n  \"alpha\": [ \"a\", \"b\" ],\n  \"city\": \"Rome\"\n}\n"
	payload, err := Parse(draft)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := `{"zeta":1,"alpha":["a","b"],"city":"Rome"}`
	if string(payload) != want {
		t.Fatalf("payload = %s, want %s", payload, want)
	}
}

func TestParseAcceptsAnyJSONValue(t *testing.T) {
	t.Parallel()

	for _, draft := range []string{`[]`, `"city"`, `42`, `null`, `{"city":{"nested":true}}`} {
		if _, err := Parse(draft); err != nil {
			t.Fatalf("Parse(%q) failed: %v", draft, err)
		}
	}
}

func TestSampleIsValidItinerary(t *testing.T) {
	t.Parallel()

	if _, err := Parse(Sample); err != nil {
		t.Fatalf("sample does not parse: %v", err)
	}
	it, err := Decode(Sample)
	if err != nil {
		t.Fatalf("sample does not decode: %v", err)
	}
	if it.City != "Paris" || it.DurationDays != 5 {
		t.Fatalf("unexpected sample header: %+v", it)
	}
	if len(it.Itinerary) != 2 {
		t.Fatalf("expected 2 day plans, got %d", len(it.Itinerary))
	}
	if got := it.Itinerary[1].Activities[5]; !strings.Contains(got, "Sacré-Cœur") {
		t.Fatalf("unexpected last activity: %q", got)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft string
		want  string
	}{
		{"sample", Sample, "Paris · 5 days · 2 day plans"},
		{"singular", `{"city":"Oslo","duration_days":1,"itinerary":[{"day":1}]}`, "Oslo · 1 day · 1 day plan"},
		{"city only", `{"city":"  Lima "}`, "Lima"},
		{"wrong shape", `{"city": 7}`, ""},
		{"invalid", `{`, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Summary(tt.draft); got != tt.want {
				t.Fatalf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
