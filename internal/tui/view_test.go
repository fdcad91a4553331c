package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/reelmood/reelmood/internal/core/predict"
	"github.com/reelmood/reelmood/internal/core/review"
)

func TestRenderBar_FillProportions(t *testing.T) {
	tests := []struct {
		percent    int
		width      int
		wantFilled int
	}{
		{80, 30, 24},
		{20, 30, 6},
		{50, 30, 15},
		{0, 10, 0},
		{100, 10, 10},
		{150, 10, 10}, // clamped
	}

	for _, tt := range tests {
		bar := ansi.Strip(RenderBar(tt.percent, tt.width))
		filled := strings.Count(bar, "█")
		empty := strings.Count(bar, "░")

		if filled != tt.wantFilled {
			t.Errorf("RenderBar(%d, %d): filled = %d, want %d", tt.percent, tt.width, filled, tt.wantFilled)
		}
		if filled+empty != tt.width {
			t.Errorf("RenderBar(%d, %d): total cells = %d, want %d", tt.percent, tt.width, filled+empty, tt.width)
		}
	}
}

func TestRenderResultPanel_ShowsLabelAndConfidence(t *testing.T) {
	tests := []struct {
		raw      string
		label    string
		icon     string
		confText string
	}{
		{"Positive", "Positive", "✔", "80%"},
		{"Negative", "Negative", "✘", "20%"},
		{"Neutral", "Neutral", "●", "50%"},
		{"whatever", "Neutral", "●", "50%"},
	}

	for _, tt := range tests {
		panel := ansi.Strip(renderResultPanel(review.DisplayFor(tt.raw)))
		if !strings.Contains(panel, tt.label) {
			t.Errorf("panel for %q missing label %q", tt.raw, tt.label)
		}
		if !strings.Contains(panel, tt.icon) {
			t.Errorf("panel for %q missing icon %q", tt.raw, tt.icon)
		}
		if !strings.Contains(panel, tt.confText) {
			t.Errorf("panel for %q missing confidence text %q", tt.raw, tt.confText)
		}
	}
}

func TestView_CharCountFollowsInput(t *testing.T) {
	m := newTestModel(t, &fakePredictor{})
	m.input.SetValue("Great film!")

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "11 characters") {
		t.Errorf("view missing character count, got:\n%s", out)
	}
}

func TestView_ResultHiddenUntilReveal(t *testing.T) {
	m := newTestModel(t, &fakePredictor{})
	m.input.SetValue("Great film!")
	m, _ = update(t, m, keyMsg(tea.KeyEnter))
	m, _ = update(t, m, analyzeResultMsg{pred: predict.Prediction{Sentiment: "Positive"}})

	out := ansi.Strip(m.View())
	if strings.Contains(out, "Confidence") {
		t.Error("result panel should not render before the reveal message")
	}

	m, _ = update(t, m, resultRevealMsg{})
	out = ansi.Strip(m.View())
	if !strings.Contains(out, "Confidence") || !strings.Contains(out, "80%") {
		t.Errorf("revealed panel missing confidence display, got:\n%s", out)
	}
}

func TestView_BusyShowsLoadingIndicator(t *testing.T) {
	m := newTestModel(t, &fakePredictor{})
	m.input.SetValue("Great film!")
	m, _ = update(t, m, keyMsg(tea.KeyEnter))

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Analyzing review") {
		t.Errorf("busy view missing loading indicator, got:\n%s", out)
	}
}
