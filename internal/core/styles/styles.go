// Package styles provides shared lipgloss styles and theme palettes for
// the CLI and TUI.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports, recomputed by SetTheme.
var (
	// CLI styles.
	HeaderStyle  lipgloss.Style
	LabelStyle   lipgloss.Style
	ValueStyle   lipgloss.Style
	ErrMsgStyle  lipgloss.Style
	DividerStyle lipgloss.Style

	// TUI shared styles.
	TitleStyle     lipgloss.Style
	TextMutedStyle lipgloss.Style
	HelpStyle      lipgloss.Style
	InputStyle     lipgloss.Style
	PanelStyle     lipgloss.Style

	// Character counter bands.
	CountNormalStyle   lipgloss.Style
	CountWarningStyle  lipgloss.Style
	CountCriticalStyle lipgloss.Style

	// Sentiment result styles.
	SentimentPositiveStyle lipgloss.Style
	SentimentNegativeStyle lipgloss.Style
	SentimentNeutralStyle  lipgloss.Style
	BarFilledStyle         lipgloss.Style
	BarEmptyStyle          lipgloss.Style

	// Toast styles by level.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style

	SpinnerStyle lipgloss.Style
)

func init() {
	SetTheme(themes[DefaultTheme])
}

// SetTheme applies a palette and recomputes all exported styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	LabelStyle = lipgloss.NewStyle().Foreground(p.Muted)
	ValueStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	ErrMsgStyle = lipgloss.NewStyle().Foreground(p.Error)
	DividerStyle = lipgloss.NewStyle().Foreground(p.Surface)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	HelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)

	CountNormalStyle = lipgloss.NewStyle().Foreground(p.Muted)
	CountWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	CountCriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Error)

	SentimentPositiveStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Success)
	SentimentNegativeStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Error)
	SentimentNeutralStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Warning)
	BarFilledStyle = lipgloss.NewStyle().Foreground(p.Primary)
	BarEmptyStyle = lipgloss.NewStyle().Foreground(p.Surface)

	ToastInfoStyle = toastBase(p.Secondary)
	ToastWarningStyle = toastBase(p.Warning)
	ToastErrorStyle = toastBase(p.Error)

	SpinnerStyle = lipgloss.NewStyle().Foreground(p.Secondary)
}

func toastBase(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
