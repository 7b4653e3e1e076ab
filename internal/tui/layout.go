package tui

type pageLayout struct {
	windowWidth  int
	windowHeight int
	editorWidth  int
	editorHeight int
	logHeight    int
}

func newPageLayout() pageLayout {
	return pageLayout{
		editorWidth:  80,
		editorHeight: 14,
		logHeight:    4,
	}
}

// Update fits the editor and the session log to a terminal of width x height.
// The editor absorbs whatever the fixed chrome leaves, within bounds.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	inner := width - horizontalPadding
	if inner < minEditorWidth {
		inner = minEditorWidth
	}
	l.editorWidth = inner
	l.logHeight = 3
	if height >= 40 {
		l.logHeight = 6
	}
	editor := height - layoutChrome - l.logHeight
	if editor < minEditorHeight {
		editor = minEditorHeight
	}
	if editor > maxEditorHeight {
		editor = maxEditorHeight
	}
	l.editorHeight = editor
}

// textWidth is the usable width inside a bordered, padded panel.
func (l pageLayout) textWidth() int {
	return l.editorWidth - 4
}
