package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/reelmood/reelmood/internal/core/review"
	"github.com/reelmood/reelmood/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	model := tui.New(tui.Options{
		Config:   cmd.flags.Config,
		Client:   cmd.flags.Client,
		Feedback: review.NewFeedbackRecorder(log.Logger),
		Logger:   log.Logger,
	})

	log.Info().Str("endpoint", cmd.flags.Client.Endpoint()).Msg("starting TUI")

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
