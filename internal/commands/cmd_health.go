package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/reelmood/reelmood/internal/core/styles"
)

type HealthCmd struct {
	flags *Flags
}

// NewHealthCmd creates a new health command
func NewHealthCmd(flags *Flags) *HealthCmd {
	return &HealthCmd{flags: flags}
}

// Register adds the health command to the application
func (cmd *HealthCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "health",
		Usage:     "Check the sentiment backend's health endpoint",
		UsageText: "reelmood health",
		Action:    cmd.run,
	})

	return app
}

func (cmd *HealthCmd) run(ctx context.Context, _ *cli.Command) error {
	h, err := cmd.flags.Client.CheckHealth(ctx)
	if err != nil {
		return fmt.Errorf("backend health check: %w", err)
	}

	statusStyle := styles.SentimentPositiveStyle
	if h.Status != "healthy" {
		statusStyle = styles.ErrMsgStyle
	}

	fmt.Printf("%s %s\n", styles.LabelStyle.Render("endpoint"), cmd.flags.Client.Endpoint())
	fmt.Printf("%s %s\n", styles.LabelStyle.Render("status"), statusStyle.Render(h.Status))
	if h.Timestamp != "" {
		fmt.Printf("%s %s\n", styles.LabelStyle.Render("reported"), h.Timestamp)
	}

	keys := make([]string, 0, len(h.Versions))
	for k := range h.Versions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s %s\n", styles.LabelStyle.Render(k), h.Versions[k])
	}

	return nil
}
