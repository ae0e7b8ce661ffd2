// Package cli implements the vectorizer command line tool.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/vectorizer-go"
	"github.com/ironsheep/vectorizer-go/internal/config"
	"github.com/ironsheep/vectorizer-go/internal/logger"
)

// BuildInfo is set by ldflags in main.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Execute runs the root command and exits non-zero on failure.
func Execute(info BuildInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(info).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// globalFlags override values from the environment.
type globalFlags struct {
	logLevel string
	baseURL  string
	timeout  time.Duration
}

func newRootCmd(info BuildInfo) *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:          "vectorizer",
		Short:        "Convert raster images to vector graphics with Vectorizer.AI",
		SilenceUsage: true,
		Long: `vectorizer calls the Vectorizer.AI API.

Credentials are read from VECTORIZER_API_ID and VECTORIZER_API_SECRET, or
from a .env file in the working directory.`,
	}

	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error|disabled (default from VECTORIZER_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&g.baseURL, "base-url", "", "API base URL (default "+vectorizer.DefaultBaseURL+")")
	cmd.PersistentFlags().DurationVar(&g.timeout, "timeout", 0, "Per-call timeout, e.g. 90s")

	cmd.AddCommand(
		vectorizeCmd(&g),
		downloadCmd(&g),
		deleteCmd(&g),
		accountCmd(&g),
		paletteCmd(),
		infoCmd(),
		mcpCmd(&g),
		versionCmd(info),
	)
	return cmd
}

// setup loads the configuration and builds the logger and API client.
func (g *globalFlags) setup() (*vectorizer.Client, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	level := cfg.Log.Level
	if g.logLevel != "" {
		level = g.logLevel
	}
	log := logger.New(level)

	opts := []vectorizer.Option{
		vectorizer.WithCredentials(cfg.API.ID, cfg.API.Secret),
		vectorizer.WithLogger(log),
	}
	if url := firstNonEmpty(g.baseURL, cfg.API.BaseURL); url != "" {
		opts = append(opts, vectorizer.WithBaseURL(url))
	}
	if timeout := firstPositive(g.timeout, cfg.API.Timeout); timeout > 0 {
		opts = append(opts, vectorizer.WithTimeout(timeout))
	}
	if cfg.API.UserAgent != "" {
		opts = append(opts, vectorizer.WithUserAgent(cfg.API.UserAgent))
	}

	client, err := vectorizer.New(opts...)
	if err != nil {
		return nil, log, err
	}
	return client, log, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
