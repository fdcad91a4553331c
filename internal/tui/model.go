// Package tui implements the interactive review analyzer: a single-screen
// Bubble Tea app that owns the input, the analyze flow against the remote
// backend, and the transient result/toast display.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/reelmood/reelmood/internal/core/config"
	"github.com/reelmood/reelmood/internal/core/predict"
	"github.com/reelmood/reelmood/internal/core/review"
	"github.com/reelmood/reelmood/internal/core/styles"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateIdle UIState = iota
	stateBusy
	stateShowingHelp
)

// Timing constants. The demo delay exists only to make the loading state
// perceptible; it is not a retry or backoff mechanism.
const (
	demoDelay   = 1500 * time.Millisecond
	revealDelay = 100 * time.Millisecond
)

// Toast messages.
const (
	toastEmptyInput   = "Please enter a review before analyzing"
	toastAnalyzeError = "An error occurred during analysis"
	toastSampleLoaded = "Sample review loaded"
	toastCleared      = "Cleared"
)

// Predictor is the slice of the backend client the TUI needs.
type Predictor interface {
	Predict(ctx context.Context, text string) (predict.Prediction, error)
}

// Options configures the TUI.
type Options struct {
	Config   *config.Config
	Client   Predictor
	Feedback *review.FeedbackRecorder
	Logger   zerolog.Logger
}

// Model is the main Bubble Tea model for the review analyzer.
type Model struct {
	cfg      *config.Config
	client   Predictor
	feedback *review.FeedbackRecorder
	logger   zerolog.Logger

	input   textarea.Model
	spinner spinner.Model
	toasts  *ToastController
	keys    KeyMap

	state         UIState
	result        *review.Display
	resultVisible bool

	width    int
	height   int
	quitting bool
}

// New creates the TUI model.
func New(opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Type or paste a movie review..."
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.SetWidth(60)
	// Enter submits; newline moves to alt+enter.
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	return Model{
		cfg:      opts.Config,
		client:   opts.Client,
		feedback: opts.Feedback,
		logger:   opts.Logger.With().Str("component", "tui").Logger(),
		input:    ta,
		spinner:  sp,
		toasts:   NewToastController(),
		keys:     DefaultKeyMap(),
		state:    stateIdle,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// State returns the current UI state.
func (m Model) State() UIState { return m.state }

// Messages produced by the async flows.
type (
	// analyzeResultMsg carries the outcome of one analyze invocation and
	// is the single exit point from the Busy state.
	analyzeResultMsg struct {
		pred predict.Prediction
		err  error
	}

	// resultRevealMsg fires after the settle delay to show the panel.
	resultRevealMsg struct{}

	// toastExpiredMsg dismisses the toast of a given generation.
	toastExpiredMsg struct{ gen int }
)

// analyzeCmd performs the analyze flow off the event loop: the fixed demo
// delay, then exactly one request to the backend.
func (m Model) analyzeCmd(text string) tea.Cmd {
	client := m.client
	timeout := m.cfg.RequestTimeout()

	return func() tea.Msg {
		time.Sleep(demoDelay)

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		pred, err := client.Predict(ctx, text)
		return analyzeResultMsg{pred: pred, err: err}
	}
}

func revealCmd() tea.Cmd {
	return tea.Tick(revealDelay, func(time.Time) tea.Msg {
		return resultRevealMsg{}
	})
}

func toastExpiryCmd(gen int) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{gen: gen}
	})
}
