package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/reelmood/reelmood/internal/core/review"
	"github.com/reelmood/reelmood/internal/core/styles"
	"github.com/reelmood/reelmood/internal/tui"
)

type AnalyzeCmd struct {
	flags *Flags

	verbose bool
}

// NewAnalyzeCmd creates a new analyze command
func NewAnalyzeCmd(flags *Flags) *AnalyzeCmd {
	return &AnalyzeCmd{flags: flags}
}

// Register adds the analyze command to the application
func (cmd *AnalyzeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "analyze",
		Usage:     "Classify a single review from the command line",
		UsageText: "reelmood analyze [options] [text]",
		Description: `Sends the review text to the backend and prints the sentiment.

Text can be passed as an argument, piped on stdin, or entered in an
interactive prompt when neither is given.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "include the raw model confidence and probabilities",
				Destination: &cmd.verbose,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AnalyzeCmd) run(ctx context.Context, c *cli.Command) error {
	text, err := cmd.reviewText(c)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no review text provided")
	}

	pred, err := cmd.flags.Client.Predict(ctx, strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("analyze review: %w", err)
	}

	d := review.DisplayFor(pred.Sentiment)

	fmt.Printf("%s %s\n", d.Icon, sentimentStyle(d.Label).Render(string(d.Label)))
	fmt.Printf("%s %s %d%%\n", styles.LabelStyle.Render("confidence"), tui.RenderBar(d.Confidence, 30), d.Confidence)

	if cmd.verbose {
		fmt.Printf("%s %.3f\n", styles.LabelStyle.Render("model confidence"), pred.Confidence)

		keys := make([]string, 0, len(pred.Probabilities))
		for k := range pred.Probabilities {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s %.3f\n", styles.LabelStyle.Render("p("+k+")"), pred.Probabilities[k])
		}
		if pred.ModelVersion != "" {
			fmt.Printf("%s %s\n", styles.LabelStyle.Render("model version"), pred.ModelVersion)
		}
	}

	return nil
}

// reviewText resolves the input in precedence order: argument, piped
// stdin, interactive prompt.
func (cmd *AnalyzeCmd) reviewText(c *cli.Command) (string, error) {
	if c.Args().Len() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	var text string
	form := huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title("Movie review").
			Description("What did you think of the film?").
			Value(&text),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("review prompt: %w", err)
	}
	return text, nil
}
