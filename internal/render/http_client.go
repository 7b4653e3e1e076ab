package render

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/csheth/itinreel/internal/itinerary"
)

type httpClient struct {
	baseURL string
	client  *http.Client
}

func (c *httpClient) BaseURL() string {
	return c.baseURL
}

func (c *httpClient) Generate(ctx context.Context, payload itinerary.Payload) (Result, error) {
	started := time.Now()
	endpoint := c.baseURL + generatePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{}, c.fail(&Error{Kind: KindTransport, Err: err})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, c.fail(&Error{Kind: KindTransport, Err: err})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, c.fail(&Error{Kind: KindTransport, Status: resp.StatusCode, Err: err})
	}
	parsed, err := decodeResponse(body)
	if err != nil {
		return Result{}, c.fail(&Error{Kind: KindTransport, Status: resp.StatusCode, Err: err})
	}

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !success || !truthy(parsed.OK) {
		return Result{}, c.fail(&Error{Kind: KindApplication, Status: resp.StatusCode, Message: parsed.message()})
	}
	path, ok := parsed.videoPath()
	if !ok {
		return Result{}, c.fail(&Error{Kind: KindApplication, Status: resp.StatusCode, Message: parsed.message()})
	}

	log.Printf("[render] %s %d in %s -> %s", endpoint, resp.StatusCode, time.Since(started), path)
	return Result{VideoURL: c.baseURL + path, Path: path}, nil
}

func (c *httpClient) fail(err *Error) *Error {
	log.Printf("[render] %s%s %s", c.baseURL, generatePath, err.Detail())
	return err
}

type generateResponse struct {
	OK       json.RawMessage
	VideoURL json.RawMessage
	Message  json.RawMessage
}

// decodeResponse accepts any JSON value. Fields are only read from objects;
// other values behave as if every field were absent.
func decodeResponse(body []byte) (generateResponse, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return generateResponse{}, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return generateResponse{}, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return generateResponse{}, err
	}
	return generateResponse{
		OK:       fields["ok"],
		VideoURL: fields["videoUrl"],
		Message:  fields["message"],
	}, nil
}

func (r generateResponse) message() string {
	if !truthy(r.Message) {
		return ""
	}
	var text string
	if err := json.Unmarshal(r.Message, &text); err == nil {
		return text
	}
	return strings.TrimSpace(string(r.Message))
}

func (r generateResponse) videoPath() (string, bool) {
	if len(r.VideoURL) == 0 {
		return "", false
	}
	var path string
	if err := json.Unmarshal(r.VideoURL, &path); err != nil {
		return "", false
	}
	return path, true
}

// truthy mirrors JavaScript truthiness for a JSON value; an absent value is false.
func truthy(raw json.RawMessage) bool {
	value := strings.TrimSpace(string(raw))
	switch value {
	case "", "false", "null", `""`:
		return false
	}
	switch value[0] {
	case '{', '[', 't':
		return true
	case '"':
		var text string
		if err := json.Unmarshal([]byte(value), &text); err == nil {
			return text != ""
		}
		return true
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n != 0
	}
	return true
}
