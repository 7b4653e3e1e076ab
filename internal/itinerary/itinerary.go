package itinerary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidJSON reports a draft that is not syntactically valid JSON.
var ErrInvalidJSON = errors.New("itinerary: draft is not valid JSON")

// InvalidJSONMessage is the user-facing text for ErrInvalidJSON.
const InvalidJSONMessage = "Invalid JSON. Please fix and try again."

// Payload is a parsed draft re-serialized as compact JSON, ready to send.
type Payload []byte

// Itinerary is the shape the render service expects. Drafts are never
// validated against it; it only feeds display summaries.
type Itinerary struct {
	City         string    `json:"city"`
	DurationDays int       `json:"duration_days"`
	Itinerary    []DayPlan `json:"itinerary"`
}

// DayPlan is a single day of an itinerary.
type DayPlan struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// Parse checks that draft is valid JSON and returns it re-serialized.
// Any JSON value is accepted; key order is preserved.
func Parse(draft string) (Payload, error) {
	raw := []byte(draft)
	if !json.Valid(raw) {
		return nil, ErrInvalidJSON
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return Payload(buf.Bytes()), nil
}

// Decode attempts to read draft as an Itinerary. It fails for drafts that
// are valid JSON but a different shape.
func Decode(draft string) (Itinerary, error) {
	var it Itinerary
	if err := json.Unmarshal([]byte(draft), &it); err != nil {
		return Itinerary{}, err
	}
	return it, nil
}

// Summary renders a one-line description such as "Paris · 5 days · 2 day plans".
// It returns "" when the draft does not look like an itinerary.
func Summary(draft string) string {
	it, err := Decode(draft)
	if err != nil {
		return ""
	}
	var parts []string
	if city := strings.TrimSpace(it.City); city != "" {
		parts = append(parts, city)
	}
	if it.DurationDays > 0 {
		parts = append(parts, plural(it.DurationDays, "day", "days"))
	}
	if len(it.Itinerary) > 0 {
		parts = append(parts, plural(len(it.Itinerary), "day plan", "day plans"))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
