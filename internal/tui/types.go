package tui

import "time"

type focusTarget int

const (
	focusEditor focusTarget = iota
	focusGenerate
	focusReset
	focusDownload
)

const (
	heroTitle   = "Itinerary → Video Preview"
	heroTagline = "Paste or edit the itinerary JSON below and press Generate. The video will appear below."
)

const (
	labelGenerate   = "Generate Video"
	labelGenerating = "Generating…"
	labelReset      = "Reset Sample"
	labelDownload   = "Download Video"
)

const (
	minEditorWidth    = 40
	horizontalPadding = 4
	minEditorHeight   = 6
	maxEditorHeight   = 24
	layoutChrome      = 18
)

type logKind int

const (
	logInfo logKind = iota
	logSuccess
	logFailure
)

type logEntry struct {
	At   time.Time
	Kind logKind
	Text string
}
