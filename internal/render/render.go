package render

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/csheth/itinreel/internal/itinerary"
)

const (
	// DefaultBaseURL is used when neither a flag nor the environment names a service.
	DefaultBaseURL = "http://localhost:4000"
	generatePath   = "/api/generate-video"
)

// Config describes how to build a render client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client submits itineraries to the video render service.
type Client interface {
	Generate(ctx context.Context, payload itinerary.Payload) (Result, error)
	BaseURL() string
}

// Result describes a successful generation.
type Result struct {
	// VideoURL is the base URL joined with the path returned by the service.
	VideoURL string
	// Path is the raw videoUrl field from the response.
	Path string
}

// NewFromEnv resolves the base URL from cfg, API_BASE, VITE_API_BASE, then the default.
func NewFromEnv(cfg Config) Client {
	return &httpClient{
		baseURL: ResolveBaseURL(cfg.BaseURL),
		client:  pickHTTPClient(cfg.HTTPClient),
	}
}

// ResolveBaseURL applies the flag > env > default order and trims trailing slashes.
func ResolveBaseURL(explicit string) string {
	base := strings.TrimSpace(explicit)
	if base == "" {
		for _, key := range []string{"API_BASE", "VITE_API_BASE"} {
			if env := strings.TrimSpace(os.Getenv(key)); env != "" {
				base = env
				break
			}
		}
	}
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	// Renders can take minutes; no client timeout is applied.
	return &http.Client{}
}
