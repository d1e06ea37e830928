package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/hoops-analytics/internal/app"
	"github.com/preston-bernstein/hoops-analytics/internal/config"
	"github.com/preston-bernstein/hoops-analytics/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// cli carries state shared by the subcommands of one invocation.
type cli struct {
	opts rootOptions
	app  *app.App
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	cmd := &cobra.Command{
		Use:           "hoops",
		Short:         "Track youth basketball schedules, detect changes and rate teams.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&c.opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&c.opts.logLevel, "log-level", os.Getenv("LOG_LEVEL"), "log level (debug, info, warn, error)")
	flags.StringVar(&c.opts.logFormat, "log-format", os.Getenv("LOG_FORMAT"), "log format (text, json)")

	cmd.AddCommand(
		newScrapeCmd(c),
		newAnalyzeCmd(c),
		newCompareCmd(c),
		newRatingsCmd(c),
		newSearchCmd(c),
		newVersionCmd(),
	)
	return cmd
}

// withApp loads configuration and builds the app before fn runs, and flushes telemetry
// afterwards even when fn fails.
func (c *cli) withApp(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err := c.setup(cmd); err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, c.teardown())
		}()
		return fn(cmd, args)
	}
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.opts.configPath)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(logging.Config{
		Level:   c.opts.logLevel,
		Format:  c.opts.logFormat,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
		Output:  cmd.ErrOrStderr(),
	})
	a, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	c.app = a
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	return nil
}

func (c *cli) teardown() error {
	if c.app == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := c.app.Close(ctx)
	c.app = nil
	return err
}
