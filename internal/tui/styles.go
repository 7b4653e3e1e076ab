package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor    = lipgloss.Color("#ff8c00")
	emberColor     = lipgloss.Color("#2b1400")
	textColor      = lipgloss.Color("#fff4d0")
	secondaryColor = lipgloss.Color("#ffb347")
	mutedColor     = lipgloss.Color("#56526e")

	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	taglineStyle       = lipgloss.NewStyle().Foreground(secondaryColor).Italic(true)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	summaryBadgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)

	editorFocusedStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Padding(0, 1)
	editorBlurredStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(0, 1)

	buttonStyle         = lipgloss.NewStyle().Foreground(textColor).Background(emberColor).Padding(0, 2)
	buttonFocusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 2)
	buttonDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("236")).Padding(0, 2)
	buttonGapStyle      = lipgloss.NewStyle().PaddingRight(2)

	errorBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#ee0000")).Foreground(lipgloss.Color("#ff8f8f")).Padding(0, 1)
	errorLabelStyle = lipgloss.NewStyle().Bold(true)
	videoBoxStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Padding(1, 2)
	videoURLStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c")).Underline(true)

	logSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c"))
	logFailureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	logTimeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
