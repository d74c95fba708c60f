package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// configKey is the context key for the loaded configuration.
const configKey ctxKey = 1

// withConfig returns a new context carrying the loaded configuration.
func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the configuration from ctx, falling back
// to defaults when command setup did not run (e.g. in tests).
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Defaults()
}

// Execute runs the misinfo CLI with a background context.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the misinfo CLI and returns an error if any command
// fails. This is the main entry point for the CLI application; main passes
// a signal-aware context so Ctrl-C cancels in-flight requests.
//
// The function sets up the root command with all subcommands (detect, graph,
// view, serve, cache), loads the TOML configuration, configures logging based
// on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and configuration are attached to the context and accessible to
// all commands via loggerFromContext and configFromContext.
func ExecuteContext(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "misinfo",
		Short:        "Misinfo-Detector analyzes articles and visualizes their knowledge graphs",
		Long:         `Misinfo-Detector is a CLI for the misinformation analysis service: it fetches credibility verdicts for article URLs and renders the extracted knowledge graphs as force-directed visualizations, in the terminal or as image files.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("misinfo %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/misinfo/config.toml)")

	root.AddCommand(newDetectCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
