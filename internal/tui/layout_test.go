package tui

import "testing"

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name         string
		width        int
		height       int
		editorWidth  int
		editorHeight int
		logHeight    int
	}{
		{name: "narrow", width: 80, height: 24, editorWidth: 76, editorHeight: 6, logHeight: 3},
		{name: "tiny", width: 20, height: 10, editorWidth: 40, editorHeight: 6, logHeight: 3},
		{name: "medium", width: 120, height: 40, editorWidth: 116, editorHeight: 16, logHeight: 6},
		{name: "wide", width: 200, height: 60, editorWidth: 196, editorHeight: 24, logHeight: 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.editorWidth != tc.editorWidth {
				t.Fatalf("editor width mismatch: got %d want %d", layout.editorWidth, tc.editorWidth)
			}
			if layout.editorHeight != tc.editorHeight {
				t.Fatalf("editor height mismatch: got %d want %d", layout.editorHeight, tc.editorHeight)
			}
			if layout.logHeight != tc.logHeight {
				t.Fatalf("log height mismatch: got %d want %d", layout.logHeight, tc.logHeight)
			}
		})
	}
}
