package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reelmood/reelmood/internal/core/notify"
	"github.com/reelmood/reelmood/internal/core/review"
	"github.com/reelmood/reelmood/internal/core/styles"
)

const barWidth = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == stateShowingHelp {
		return m.helpView()
	}

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("reelmood"))
	b.WriteString(styles.TextMutedStyle.Render("  movie review sentiment"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.countLine())
	b.WriteString("\n")

	if m.state == stateBusy {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(styles.TextMutedStyle.Render(" Analyzing review..."))
		b.WriteString("\n")
	}

	if m.resultVisible && m.result != nil {
		b.WriteString("\n")
		b.WriteString(renderResultPanel(*m.result))
		b.WriteString("\n")
	}

	if toast, ok := m.toasts.Active(); ok {
		b.WriteString("\n")
		b.WriteString(renderToast(toast))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())

	return b.String()
}

// countLine renders the live character count in its severity band color.
func (m Model) countLine() string {
	count := m.charCount()
	text := fmt.Sprintf("%d characters", count)

	switch review.CountBand(count) {
	case review.BandCritical:
		return styles.CountCriticalStyle.Render(text)
	case review.BandWarning:
		return styles.CountWarningStyle.Render(text)
	default:
		return styles.CountNormalStyle.Render(text)
	}
}

// renderResultPanel renders the sentiment display bundle: icon, label,
// and the canned confidence bar.
func renderResultPanel(d review.Display) string {
	label := sentimentStyle(d.Label).Render(fmt.Sprintf("%s %s", d.Icon, d.Label))

	bar := RenderBar(d.Confidence, barWidth)
	confidence := fmt.Sprintf("%s %s %d%%",
		styles.LabelStyle.Render("Confidence"), bar, d.Confidence)

	hint := styles.HelpStyle.Render("was this right? ctrl+y yes · ctrl+n no")

	return styles.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, label, confidence, hint))
}

// RenderBar renders a horizontal percentage bar of the given cell width.
func RenderBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return styles.BarFilledStyle.Render(strings.Repeat("█", filled)) +
		styles.BarEmptyStyle.Render(strings.Repeat("░", width-filled))
}

func sentimentStyle(label review.Label) lipgloss.Style {
	switch label {
	case review.Positive:
		return styles.SentimentPositiveStyle
	case review.Negative:
		return styles.SentimentNegativeStyle
	default:
		return styles.SentimentNeutralStyle
	}
}

func renderToast(n notify.Notification) string {
	switch n.Level {
	case notify.LevelError:
		return styles.ToastErrorStyle.Render(n.Message)
	case notify.LevelWarning:
		return styles.ToastWarningStyle.Render(n.Message)
	default:
		return styles.ToastInfoStyle.Render(n.Message)
	}
}

func (m Model) footer() string {
	entries := []string{
		m.keys.Analyze.Help().Key + " " + m.keys.Analyze.Help().Desc,
		m.keys.Sample.Help().Key + " " + m.keys.Sample.Help().Desc,
		m.keys.Clear.Help().Key + " " + m.keys.Clear.Help().Desc,
		m.keys.Help.Help().Key + " " + m.keys.Help.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return styles.HelpStyle.Render(strings.Join(entries, " · "))
}
