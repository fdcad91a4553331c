package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelmood/reelmood/internal/core/notify"
	"github.com/reelmood/reelmood/internal/core/review"
)

// Key constants for event handling.
const keyCtrlC = "ctrl+c"

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(min(msg.Width-6, 76))
		return m, nil

	case spinner.TickMsg:
		if m.state != stateBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analyzeResultMsg:
		return m.handleAnalyzeResult(msg)

	case resultRevealMsg:
		m.resultVisible = true
		return m, nil

	case toastExpiredMsg:
		m.toasts.Expire(msg.gen)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (cursor blink, etc.) flows to the textarea.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay swallows every key except ctrl+c.
	if m.state == stateShowingHelp {
		if msg.String() == keyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		m.state = stateIdle
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		if m.state == stateIdle {
			m.state = stateShowingHelp
		}
		return m, nil

	case key.Matches(msg, m.keys.Analyze):
		return m.startAnalyze()

	case key.Matches(msg, m.keys.Sample):
		return m.loadSample()

	case key.Matches(msg, m.keys.Clear):
		return m.clearInput()

	case key.Matches(msg, m.keys.FeedbackCorrect):
		return m.recordFeedback(review.FeedbackCorrect)

	case key.Matches(msg, m.keys.FeedbackIncorrect):
		return m.recordFeedback(review.FeedbackIncorrect)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startAnalyze begins the analyze flow. The Busy check is the advisory
// concurrency guard: one outstanding request at most, no queueing.
func (m Model) startAnalyze() (tea.Model, tea.Cmd) {
	if m.state == stateBusy {
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, m.showToast(notify.LevelWarning, toastEmptyInput)
	}

	m.state = stateBusy
	m.logger.Debug().Int("chars", utf8.RuneCountInString(text)).Msg("analysis started")
	return m, tea.Batch(m.spinner.Tick, m.analyzeCmd(text))
}

// handleAnalyzeResult is the single exit from the Busy state, taken on
// success and failure alike.
func (m Model) handleAnalyzeResult(msg analyzeResultMsg) (tea.Model, tea.Cmd) {
	m.state = stateIdle

	if msg.err != nil {
		m.logger.Error().Err(msg.err).Msg("analysis failed")
		return m, m.showToast(notify.LevelError, toastAnalyzeError)
	}

	d := review.DisplayFor(msg.pred.Sentiment)
	m.result = &d
	m.resultVisible = false
	m.logger.Info().
		Str("sentiment", string(d.Label)).
		Float64("model_confidence", msg.pred.Confidence).
		Msg("analysis complete")

	return m, revealCmd()
}

func (m Model) loadSample() (tea.Model, tea.Cmd) {
	m.input.SetValue(review.Sample())
	return m, m.showToast(notify.LevelInfo, toastSampleLoaded)
}

func (m Model) clearInput() (tea.Model, tea.Cmd) {
	m.input.Reset()
	m.result = nil
	m.resultVisible = false
	return m, m.showToast(notify.LevelInfo, toastCleared)
}

func (m Model) recordFeedback(fb review.Feedback) (tea.Model, tea.Cmd) {
	if !m.resultVisible || m.result == nil {
		return m, nil
	}
	ack := m.feedback.Record(fb, m.result.Label)
	return m, m.showToast(notify.LevelInfo, ack)
}

func (m Model) showToast(level notify.Level, text string) tea.Cmd {
	gen := m.toasts.Show(notify.New(level, text))
	return toastExpiryCmd(gen)
}

func (m Model) charCount() int {
	return utf8.RuneCountInString(m.input.Value())
}
