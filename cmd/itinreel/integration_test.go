package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/csheth/itinreel/internal/tuitest"
)

func TestGenerateAndDownloadEndToEnd(t *testing.T) {
	t.Parallel()

	var posts atomic.Int32
	var received atomic.Value
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()
	videoURL := server.URL + "/videos/paris.mp4"
	mux.HandleFunc("/api/generate-video", func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		body, _ := io.ReadAll(r.Body)
		received.Store(string(body))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "videoUrl": "/videos/paris.mp4"})
	})
	mux.HandleFunc("/videos/paris.mp4", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("mp4-bytes"))
	})

	cmdDir := moduleDir(t)
	outDir := t.TempDir()
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "-no-alt-screen", "-api-base", server.URL + "/", "-out", outDir},
		Dir:     cmdDir,
		Env:     []string{"API_BASE=", "VITE_API_BASE="},
		Width:   110,
		Height:  60,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			{Input: tuitest.KeyCtrlG},
			{Delay: 1500 * time.Millisecond},
			{Input: tuitest.KeyCtrlD},
			{Delay: 1500 * time.Millisecond},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        15 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	if got := posts.Load(); got != 1 {
		t.Fatalf("expected one generate request, got %d", got)
	}
	body, _ := received.Load().(string)
	if !strings.Contains(body, `"city":"Paris"`) {
		t.Fatalf("expected compact sample payload, got %q", body)
	}

	plain := rec.Plain()
	for _, want := range []string{"Generate Video", "Generated Video", videoURL} {
		if !strings.Contains(plain, want) {
			t.Fatalf("output missing %q\n%s", want, plain)
		}
	}

	saved, err := os.ReadFile(filepath.Join(outDir, "itinerary_video.mp4"))
	if err != nil {
		t.Fatalf("downloaded video missing: %v", err)
	}
	if string(saved) != "mp4-bytes" {
		t.Fatalf("unexpected video contents: %q", saved)
	}
}

func TestInvalidDraftNeverReachesService(t *testing.T) {
	t.Parallel()

	var posts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
	}))
	defer server.Close()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "-no-alt-screen", "-api-base", server.URL, "-out", t.TempDir()},
		Dir:     cmdDir,
		Width:   110,
		Height:  60,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			{Input: []byte("oops")},
			{Delay: 300 * time.Millisecond},
			{Input: tuitest.KeyCtrlG},
			{Delay: time.Second},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	if got := posts.Load(); got != 0 {
		t.Fatalf("invalid draft should not be sent, got %d requests", got)
	}
	if plain := rec.Plain(); !strings.Contains(plain, "Invalid JSON. Please fix and try again.") {
		t.Fatalf("expected invalid JSON message\n%s", plain)
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	tmp := t.TempDir()
	name := "itinreel-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(tmp, name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
