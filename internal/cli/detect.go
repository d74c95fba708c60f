package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/cache"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/detect"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/errors"
)

// detectOpts holds the command-line flags for the detect command.
type detectOpts struct {
	jsonOut  bool   // dump the raw verdict as JSON
	graphOut string // also render the knowledge graph to this file
	fromFile string // read a saved verdict instead of calling the service
	noCache  bool   // bypass the verdict cache
}

// newDetectCmd creates the detect command for analyzing article URLs.
func newDetectCmd() *cobra.Command {
	var opts detectOpts

	cmd := &cobra.Command{
		Use:   "detect [url]",
		Short: "Analyze an article URL and print the credibility verdict",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.fromFile == "" {
				return errors.New(errors.ErrCodeInvalidInput, "provide an article URL or --from file")
			}
			var url string
			if len(args) > 0 {
				url = args[0]
			}
			return runDetect(cmd.Context(), url, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the raw verdict as JSON")
	cmd.Flags().StringVar(&opts.graphOut, "graph", "", "render the knowledge graph to a file (format by extension)")
	cmd.Flags().StringVar(&opts.fromFile, "from", "", "read a saved verdict JSON instead of calling the service")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the verdict cache")

	return cmd
}

// runDetect obtains a verdict (service or saved file) and presents it.
func runDetect(ctx context.Context, url string, opts *detectOpts) error {
	logger := loggerFromContext(ctx)

	verdict, err := obtainVerdict(ctx, url, opts)
	if err != nil {
		return err
	}

	if opts.jsonOut {
		data, err := verdict.MarshalIndent()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		printVerdict(verdict)
	}

	if opts.graphOut != "" {
		g := verdict.Graph()
		if g.IsEmpty() {
			printWarning("No entities extracted; skipping graph render")
			return nil
		}
		format := strings.TrimPrefix(filepath.Ext(opts.graphOut), ".")
		if err := renderGraphFile(ctx, g, opts.graphOut, format); err != nil {
			return err
		}
		logger.Debugf("Rendered knowledge graph: %s", opts.graphOut)
		printFile(opts.graphOut)
	}
	return nil
}

// obtainVerdict reads a saved verdict or calls the analysis service.
func obtainVerdict(ctx context.Context, url string, opts *detectOpts) (*detect.Verdict, error) {
	if opts.fromFile != "" {
		data, err := os.ReadFile(opts.fromFile)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", opts.fromFile)
		}
		v, err := detect.ParseVerdict(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPayload, err, "parse %s", opts.fromFile)
		}
		return v, nil
	}

	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	store := cache.NewNullCache()
	if !opts.noCache {
		var err error
		store, err = cache.Open(ctx, cfg.Cache.CacheOptions())
		if err != nil {
			logger.Warnf("Cache unavailable, continuing without: %v", err)
			store = cache.NewNullCache()
		}
	}
	defer store.Close()

	client := detect.NewClient(cfg.Service.BaseURL,
		detect.WithTimeout(cfg.Service.Timeout()),
		detect.WithCache(store, cfg.Cache.TTL()),
	)

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, "Analyzing article...")
	spin.Start()
	verdict, err := client.Detect(ctx, url)
	spin.Stop()
	if err != nil {
		return nil, err
	}
	prog.done("Analyzed article")
	return verdict, nil
}

// printVerdict renders a verdict for the terminal.
func printVerdict(v *detect.Verdict) {
	printNewline()
	if v.Title != "" {
		fmt.Println(StyleTitle.Render(v.Title))
	}
	if v.URL != "" {
		fmt.Println(StyleLink.Render(v.URL))
	}
	printNewline()

	printScore(v.CredibilityScore)
	if v.BiasNote != "" {
		printKeyValue("bias", v.BiasNote)
	}
	printKeyValue("stance", fmt.Sprintf("support %.0f%% · deny %.0f%% · neutral %.0f%%",
		v.Stance.Support*100, v.Stance.Deny*100, v.Stance.Neutral*100))
	printNewline()

	if v.Summary != "" {
		fmt.Println(StyleValue.Render(v.Summary))
		printNewline()
	}

	printQuotes("Evidence", v.Evidence, styleEvidence)
	printQuotes("Contradictions", v.Contradictions, styleContradiction)

	g := v.Graph()
	if !g.IsEmpty() {
		printNewline()
		printStats(g.NodeCount(), g.EdgeCount(), g.Dropped)
	}
}
