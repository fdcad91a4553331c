package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/reelmood/reelmood/internal/core/styles"
)

const helpMarkdown = `# reelmood

Type a movie review and press **enter** to send it to the sentiment
backend. The predicted label is shown with a demo confidence value that
depends only on the label, not on the model's score.

## Keys

| Key | Action |
| --- | --- |
| enter | analyze the review |
| alt+enter | insert a newline |
| ctrl+s | load a random sample review |
| ctrl+x | clear the input and result |
| ctrl+y | mark the prediction correct |
| ctrl+n | mark the prediction wrong |
| f1 | toggle this help |
| esc / ctrl+c | quit |

Feedback is recorded in the log only; nothing is sent to the backend.

Press any key to close this help.
`

// helpView renders the markdown help wrapped for the current width.
func (m Model) helpView() string {
	wrapWidth := max(m.width-4, 20)
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return helpMarkdown
	}

	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out + styles.HelpStyle.Render("press any key to return")
}
