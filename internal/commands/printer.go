package commands

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/reelmood/reelmood/internal/core/review"
	"github.com/reelmood/reelmood/internal/core/styles"
)

// sentimentStyle maps a label to its display style for CLI output.
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
