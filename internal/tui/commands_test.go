package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/itinreel/internal/render"
)

func TestUserMessage(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), &render.Error{Kind: render.KindApplication, Message: "bad city"})
	if got := userMessage(wrapped); got != "bad city" {
		t.Fatalf("wrapped render error should surface its message, got %q", got)
	}
	if got := userMessage(context.DeadlineExceeded); got != "Something went wrong." {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestJobSnapshotSummary(t *testing.T) {
	bus := newJobBus()
	first := bus.nextID(jobKindGenerate)
	second := bus.nextID(jobKindDownload)
	if first != "generate-1" || second != "download-2" {
		t.Fatalf("unexpected ids: %s %s", first, second)
	}

	running := jobSnapshot{ID: first, Status: jobStatusRunning}
	if running.Summary() != "generate-1 started" {
		t.Fatalf("unexpected running summary: %q", running.Summary())
	}
	failed := jobSnapshot{ID: first, Status: jobStatusFailed, Duration: 1500 * time.Millisecond, Err: "quota exceeded"}
	if got := failed.Summary(); !strings.Contains(got, "failed after 1.5s: quota exceeded") {
		t.Fatalf("unexpected failed summary: %q", got)
	}
	done := jobSnapshot{ID: second, Status: jobStatusSucceeded, Duration: 250 * time.Millisecond}
	if got := done.Summary(); got != "download-2 finished in 250ms" {
		t.Fatalf("unexpected success summary: %q", got)
	}
}

func TestJobBusStartReturnsCommand(t *testing.T) {
	bus := newJobBus()
	cmd := bus.Start(jobKindGenerate, func(context.Context) (tea.Msg, error) {
		return nil, nil
	})
	if cmd == nil {
		t.Fatal("start should return a command")
	}
}
