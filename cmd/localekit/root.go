package main

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/localekit/internal/config"
	"github.com/dmitrymomot/localekit/pkg/logger"
)

// errReported means the command already printed its failure.
var errReported = errors.New("localekit: failure already reported")

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	configPath string
	logLevel   string
	logFormat  string
	dir        string
	baseline   string

	shutdownHooks []func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "localekit",
		Short:         "Generate locale modules and keep translations in sync",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text, json")
	pf.StringVar(&a.dir, "dir", "", "directory holding the locale JSON files")
	pf.StringVar(&a.baseline, "baseline", "", "baseline language code")

	root.AddCommand(newGenerateCmd(a), newSyncCmd(a))
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("dir") {
		cfg.Dir = a.dir
	}
	if flags.Changed("baseline") {
		cfg.Baseline = a.baseline
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logger.ParseLevel(cfg.Log.Level)
	format, _ := logger.ParseFormat(cfg.Log.Format)

	a.cfg = cfg
	a.logger = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithExtractors(logger.FromContext("file"), logger.FromContext("language")),
		logger.WithSentry(cfg.Sentry),
	)
	return nil
}

// onShutdown registers a hook run by shutdown in reverse order.
func (a *app) onShutdown(hook func(context.Context) error) {
	a.shutdownHooks = append(a.shutdownHooks, hook)
}

func (a *app) shutdown(ctx context.Context) error {
	var errs []error
	for i := len(a.shutdownHooks) - 1; i >= 0; i-- {
		if err := a.shutdownHooks[i](context.WithoutCancel(ctx)); err != nil {
			a.logger.Error("shutdown hook failed", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}
	a.shutdownHooks = nil
	return errors.Join(errs...)
}

// path resolves p against the locale directory unless it is absolute.
func (a *app) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.cfg.Dir, p)
}
