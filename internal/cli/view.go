package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/errors"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/render/term"
)

// viewOpts holds the command-line flags for the view command.
type viewOpts struct {
	url  string // analyze this article and view its knowledge graph
	seed int64  // layout seed, 0 keeps the configured one
}

// newViewCmd creates the view command for the interactive terminal viewer.
func newViewCmd() *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view [payload.json]",
		Short: "Explore a knowledge graph interactively in the terminal",
		Long: `View opens a live force-directed graph in the terminal. The simulation
runs frame by frame while you pan (hjkl or arrows), zoom (+/-), refit (f),
and hover entities with the mouse. Press q to quit.

The graph comes from a payload file, or from analyzing an article with --url.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.url == "" {
				return errors.New(errors.ErrCodeInvalidInput, "provide a payload file or --url")
			}
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return runView(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "analyze this article URL and view its knowledge graph")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "layout seed")

	return cmd
}

// runView loads the graph and hands the terminal to bubbletea.
func runView(ctx context.Context, input string, opts *viewOpts) error {
	cfg := configFromContext(ctx)

	g, err := loadViewGraph(ctx, input, opts)
	if err != nil {
		return err
	}

	lcfg := cfg.Layout.Apply(layout.DefaultConfig())
	if opts.seed != 0 {
		lcfg.Seed = opts.seed
	}

	program := tea.NewProgram(term.New(g, lcfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = program.Run()
	return err
}

// loadViewGraph reads a payload file or fetches a verdict's graph.
func loadViewGraph(ctx context.Context, input string, opts *viewOpts) (graph.Graph, error) {
	if opts.url != "" {
		verdict, err := obtainVerdict(ctx, opts.url, &detectOpts{})
		if err != nil {
			return graph.Graph{}, err
		}
		return verdict.Graph(), nil
	}

	payload, err := graph.ReadPayloadFile(input)
	if err != nil {
		return graph.Graph{}, err
	}
	return graph.Normalize(payload), nil
}
