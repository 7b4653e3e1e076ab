package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/itinreel/internal/download"
	"github.com/csheth/itinreel/internal/itinerary"
	"github.com/csheth/itinreel/internal/preview"
	"github.com/csheth/itinreel/internal/render"
)

// Downloader stores a generated video locally.
type Downloader interface {
	Save(ctx context.Context, videoURL, filename string) (string, error)
}

// Previewer hands a video URL to the desktop.
type Previewer interface {
	Open(url string) error
	Copy(url string) error
}

// Config wires runtime collaborators into the view. Nil fields fall back to
// defaults built from the environment.
type Config struct {
	Renderer   render.Client
	Downloader Downloader
	Previewer  Previewer
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Renderer == nil {
		config.Renderer = render.NewFromEnv(render.Config{})
	}
	if config.Downloader == nil {
		config.Downloader = download.NewSaver("", nil)
	}
	if config.Previewer == nil {
		config.Previewer = preview.NewLauncher()
	}

	layout := newPageLayout()

	editor := textarea.New()
	editor.Placeholder = "Paste itinerary JSON…"
	editor.ShowLineNumbers = true
	editor.Prompt = ""
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetWidth(layout.textWidth())
	editor.SetHeight(layout.editorHeight)
	editor.SetValue(itinerary.Sample)
	editor.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	logView := viewport.New(layout.textWidth(), layout.logHeight)

	m := &model{
		config:        config,
		layout:        layout,
		editor:        editor,
		spinner:       spin,
		logView:       logView,
		help:          help.New(),
		keys:          newKeyMap(),
		jobs:          newJobBus(),
		draft:         itinerary.Sample,
		focus:         focusEditor,
		statusMessage: "Edit the sample or paste your own itinerary, then press ctrl+g.",
	}
	m.syncKeys()
	m.refreshLog()
	return m
}

type model struct {
	config  Config
	layout  pageLayout
	editor  textarea.Model
	spinner spinner.Model
	logView viewport.Model
	help    help.Model
	keys    keyMap
	jobs    *jobBus

	draft         string
	busy          bool
	errorMessage  string
	videoURL      string
	downloading   bool
	statusMessage string
	focus         focusTarget
	logEntries    []logEntry
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.busy || m.downloading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.editor.SetWidth(m.layout.textWidth())
		m.editor.SetHeight(m.layout.editorHeight)
		m.logView.Width = m.layout.textWidth()
		m.logView.Height = m.layout.logHeight
		m.help.Width = msg.Width
		m.refreshLog()
		return m, nil
	case jobSignalMsg:
		m.appendLog(logInfo, msg.Snapshot.Summary())
		return m, nil
	case jobResultEnvelope:
		kind := logSuccess
		if msg.Snapshot.Status == jobStatusFailed {
			kind = logFailure
		}
		m.appendLog(kind, msg.Snapshot.Summary())
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case generateResultMsg:
		m.handleGenerateResult(msg)
		return m, nil
	case downloadResultMsg:
		m.handleDownloadResult(msg)
		return m, nil
	case previewResultMsg:
		m.handlePreviewResult(msg)
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Generate):
		return m, m.generate()
	case key.Matches(msg, m.keys.Reset):
		return m, m.resetSample()
	case key.Matches(msg, m.keys.Download):
		return m, m.download()
	case key.Matches(msg, m.keys.Open):
		return m, m.openPreview()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyURL()
	case m.keys.reserved(msg):
		return m, nil
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Leave):
		if m.focus == focusEditor {
			return m, m.setFocus(focusGenerate)
		}
		return m, m.setFocus(focusEditor)
	}

	if m.focus != focusEditor {
		if key.Matches(msg, m.keys.Activate) {
			return m, m.activateFocused()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.draft = m.editor.Value()
	return m, cmd
}

// generate validates the draft locally and, when it parses, starts exactly
// one render request. It is a no-op while a request is in flight.
func (m *model) generate() tea.Cmd {
	if m.busy {
		return nil
	}
	m.errorMessage = ""
	m.videoURL = ""

	payload, err := itinerary.Parse(m.draft)
	if err != nil {
		m.errorMessage = itinerary.InvalidJSONMessage
		m.statusMessage = "Fix the JSON and press ctrl+g again."
		m.appendLog(logFailure, "draft rejected: invalid JSON")
		m.syncKeys()
		return nil
	}

	m.busy = true
	m.statusMessage = fmt.Sprintf("Rendering video via %s…", m.config.Renderer.BaseURL())
	m.syncKeys()
	return tea.Batch(
		m.spinner.Tick,
		m.jobs.Start(jobKindGenerate, generateVideoJob(m.config.Renderer, payload)),
	)
}

func (m *model) handleGenerateResult(msg generateResultMsg) {
	m.busy = false
	if msg.err != nil {
		m.videoURL = ""
		m.errorMessage = userMessage(msg.err)
		m.statusMessage = "Generation failed. Edit the draft and try again."
	} else {
		m.errorMessage = ""
		m.videoURL = msg.result.VideoURL
		m.statusMessage = "Video ready. ctrl+d downloads it, ctrl+o opens it."
		m.appendLog(logSuccess, "video ready at "+m.videoURL)
	}
	m.syncKeys()
}

// resetSample restores the built-in draft. Error and video state are kept.
func (m *model) resetSample() tea.Cmd {
	if m.busy {
		return nil
	}
	m.draft = itinerary.Sample
	m.editor.SetValue(itinerary.Sample)
	m.statusMessage = "Sample itinerary restored."
	m.appendLog(logInfo, "draft reset to sample")
	return nil
}

// download saves the current video. Without a video it does nothing.
func (m *model) download() tea.Cmd {
	if m.videoURL == "" {
		return nil
	}
	if m.downloading {
		m.statusMessage = "Download already running."
		return nil
	}
	m.downloading = true
	m.statusMessage = fmt.Sprintf("Saving %s…", download.SuggestedFilename)
	m.syncKeys()
	return tea.Batch(
		m.spinner.Tick,
		m.jobs.Start(jobKindDownload, downloadVideoJob(m.config.Downloader, m.videoURL)),
	)
}

func (m *model) handleDownloadResult(msg downloadResultMsg) {
	m.downloading = false
	if msg.err != nil {
		m.statusMessage = fmt.Sprintf("Download failed: %v", msg.err)
	} else {
		m.statusMessage = fmt.Sprintf("Saved %s", msg.path)
		m.appendLog(logSuccess, "saved "+msg.path)
	}
	m.syncKeys()
}

func (m *model) openPreview() tea.Cmd {
	if m.videoURL == "" {
		return nil
	}
	return openPreviewCmd(m.config.Previewer, m.videoURL)
}

func (m *model) copyURL() tea.Cmd {
	if m.videoURL == "" {
		return nil
	}
	return copyURLCmd(m.config.Previewer, m.videoURL)
}

func (m *model) handlePreviewResult(msg previewResultMsg) {
	switch {
	case msg.err != nil:
		m.statusMessage = fmt.Sprintf("Preview %s failed: %v", msg.action, msg.err)
		m.appendLog(logFailure, m.statusMessage)
	case msg.action == "copy":
		m.statusMessage = "Video URL copied to clipboard."
	default:
		m.statusMessage = "Opened video in the system player."
	}
}

func (m *model) focusOrder() []focusTarget {
	order := []focusTarget{focusEditor, focusGenerate, focusReset}
	if m.videoURL != "" {
		order = append(order, focusDownload)
	}
	return order
}

func (m *model) moveFocus(delta int) tea.Cmd {
	order := m.focusOrder()
	current := 0
	for i, target := range order {
		if target == m.focus {
			current = i
			break
		}
	}
	next := (current + delta + len(order)) % len(order)
	return m.setFocus(order[next])
}

func (m *model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	if target == focusEditor {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

func (m *model) activateFocused() tea.Cmd {
	switch m.focus {
	case focusGenerate:
		return m.generate()
	case focusReset:
		return m.resetSample()
	case focusDownload:
		return m.download()
	default:
		return nil
	}
}

// syncKeys keeps shortcut availability in step with the view state; the help
// footer hides disabled bindings.
func (m *model) syncKeys() {
	m.keys.Generate.SetEnabled(!m.busy)
	m.keys.Reset.SetEnabled(!m.busy)
	hasVideo := m.videoURL != ""
	m.keys.Download.SetEnabled(hasVideo && !m.downloading)
	m.keys.Open.SetEnabled(hasVideo)
	m.keys.Copy.SetEnabled(hasVideo)
	if !hasVideo && m.focus == focusDownload {
		m.focus = focusGenerate
	}
}

func (m *model) appendLog(kind logKind, text string) {
	m.logEntries = append(m.logEntries, logEntry{At: time.Now(), Kind: kind, Text: text})
	m.refreshLog()
}

func (m *model) refreshLog() {
	if len(m.logEntries) == 0 {
		m.logView.SetContent(helperStyle.Render("Session activity will appear here."))
		return
	}
	wrap := m.layout.textWidth() - 11
	if wrap < 20 {
		wrap = 20
	}
	lines := make([]string, 0, len(m.logEntries))
	for _, entry := range m.logEntries {
		text := wordwrap.String(entry.Text, wrap)
		switch entry.Kind {
		case logSuccess:
			text = logSuccessStyle.Render(text)
		case logFailure:
			text = logFailureStyle.Render(text)
		}
		stamp := logTimeStyle.Render(entry.At.Format("15:04:05"))
		lines = append(lines, stamp+"  "+indentContinuation(text, strings.Repeat(" ", 10)))
	}
	m.logView.SetContent(strings.Join(lines, "\n"))
	m.logView.GotoBottom()
}

func indentContinuation(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
