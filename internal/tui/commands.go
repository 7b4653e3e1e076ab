package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/itinreel/internal/download"
	"github.com/csheth/itinreel/internal/itinerary"
	"github.com/csheth/itinreel/internal/render"
)

const genericFailureMessage = "Something went wrong."

type generateResultMsg struct {
	result render.Result
	err    error
}

type downloadResultMsg struct {
	path string
	err  error
}

type previewResultMsg struct {
	action string
	err    error
}

func generateVideoJob(client render.Client, payload itinerary.Payload) jobRunner {
	body := append(itinerary.Payload(nil), payload...)
	return func(ctx context.Context) (tea.Msg, error) {
		result, err := client.Generate(ctx, body)
		return generateResultMsg{result: result, err: err}, err
	}
}

func downloadVideoJob(saver Downloader, videoURL string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		path, err := saver.Save(ctx, videoURL, download.SuggestedFilename)
		return downloadResultMsg{path: path, err: err}, err
	}
}

func openPreviewCmd(previewer Previewer, videoURL string) tea.Cmd {
	return func() tea.Msg {
		return previewResultMsg{action: "open", err: previewer.Open(videoURL)}
	}
}

func copyURLCmd(previewer Previewer, videoURL string) tea.Cmd {
	return func() tea.Msg {
		return previewResultMsg{action: "copy", err: previewer.Copy(videoURL)}
	}
}

// userMessage maps a generate failure onto the text shown in the error panel.
func userMessage(err error) string {
	var renderErr *render.Error
	if errors.As(err, &renderErr) {
		return renderErr.Error()
	}
	return genericFailureMessage
}
