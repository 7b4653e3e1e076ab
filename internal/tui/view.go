package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/itinreel/internal/download"
	"github.com/csheth/itinreel/internal/itinerary"
)

func (m *model) View() string {
	return joinNonEmpty([]string{
		m.heroView(),
		m.editorPanel(),
		m.buttonRow(),
		m.errorPanel(),
		m.videoPanel(),
		m.statusLine(),
		m.logPanel(),
		m.help.View(m.keys),
	})
}

func (m *model) heroView() string {
	lines := []string{
		titleStyle.Render(heroTitle),
		taglineStyle.Render(wordwrap.String(heroTagline, m.layout.editorWidth)),
	}
	if summary := itinerary.Summary(m.draft); summary != "" {
		lines = append(lines, summaryBadgeStyle.Render(summary))
	}
	return strings.Join(lines, "\n")
}

func (m *model) editorPanel() string {
	style := editorBlurredStyle
	if m.focus == focusEditor {
		style = editorFocusedStyle
	}
	return style.Render(m.editor.View())
}

func (m *model) buttonRow() string {
	label := labelGenerate
	if m.busy {
		label = labelGenerating
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		buttonGapStyle.Render(m.renderButton(label, focusGenerate, m.busy)),
		m.renderButton(labelReset, focusReset, m.busy),
	)
}

func (m *model) renderButton(label string, target focusTarget, disabled bool) string {
	switch {
	case disabled:
		return buttonDisabledStyle.Render(label)
	case m.focus == target:
		return buttonFocusedStyle.Render(label)
	default:
		return buttonStyle.Render(label)
	}
}

func (m *model) errorPanel() string {
	if m.errorMessage == "" {
		return ""
	}
	body := wordwrap.String(m.errorMessage, m.layout.textWidth()-len("Error: "))
	return errorBoxStyle.Render(errorLabelStyle.Render("Error:") + " " + body)
}

func (m *model) videoPanel() string {
	if m.videoURL == "" {
		return ""
	}
	content := strings.Join([]string{
		"▶ " + videoURLStyle.Render(wordwrap.String(m.videoURL, m.layout.textWidth()-6)),
		helperStyle.Render(fmt.Sprintf("Saves as %s. ctrl+o plays it in the system player, ctrl+y copies the URL.", download.SuggestedFilename)),
	}, "\n")
	return joinNonEmpty([]string{
		sectionHeaderStyle.Render("Generated Video"),
		videoBoxStyle.Render(content),
		m.renderButton(labelDownload, focusDownload, m.downloading),
	})
}

func (m *model) statusLine() string {
	if m.statusMessage == "" {
		return ""
	}
	message := m.statusMessage
	if m.busy || m.downloading {
		message = fmt.Sprintf("%s %s", m.spinner.View(), message)
	}
	return helperStyle.Render(wordwrap.String(message, m.layout.editorWidth))
}

func (m *model) logPanel() string {
	return sectionHeaderStyle.Render("Session Log") + "\n" + m.logView.View()
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
