package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/localekit/pkg/keysync"
)

func newSyncCmd(a *app) *cobra.Command {
	var (
		baselineFile string
		backend      string
		mismatch     string
		concurrency  int
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Translate keys missing from locale files and rewrite them in normalized order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("backend") {
				a.cfg.Translate.Backend = backend
			}
			if flags.Changed("mismatch") {
				a.cfg.Sync.Mismatch = mismatch
			}
			if flags.Changed("concurrency") {
				a.cfg.Translate.Concurrency = concurrency
			}
			if baselineFile == "" {
				baselineFile = a.cfg.Baseline + ".json"
			}
			return a.sync(cmd, baselineFile, dryRun)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&baselineFile, "baseline-file", "", "baseline file name inside --dir (default <baseline>.json)")
	flags.StringVar(&backend, "backend", "", "translation backend: rest, cloud, noop")
	flags.StringVar(&mismatch, "mismatch", "", "kind mismatch policy: skip, error")
	flags.IntVar(&concurrency, "concurrency", keysync.DefaultConcurrency, "maximum in-flight translation calls per file")
	flags.BoolVar(&dryRun, "dry-run", false, "merge in memory without writing files")

	return cmd
}

func (a *app) sync(cmd *cobra.Command, baselineFile string, dryRun bool) error {
	ctx := cmd.Context()

	if err := a.cfg.Translate.Validate(); err != nil {
		return err
	}
	policy, err := a.cfg.Sync.MismatchPolicy()
	if err != nil {
		return err
	}

	defer func() { _ = a.shutdown(ctx) }()
	translator, err := a.translator(ctx)
	if err != nil {
		return err
	}

	merger := keysync.NewMerger(translator,
		keysync.WithConcurrency(a.cfg.Translate.Concurrency),
		keysync.WithMismatchPolicy(policy),
		keysync.WithLogger(a.logger),
	)
	syncer := keysync.NewSyncer(merger,
		keysync.WithBaselineFile(baselineFile),
		keysync.WithDryRun(dryRun),
		keysync.WithSyncLogger(a.logger),
	)

	summary, err := syncer.Run(ctx, a.cfg.Dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range summary.Files {
		r := f.Report
		state := "written"
		if !f.Written {
			state = "not written"
		}
		fmt.Fprintf(out, "%s (%s): %d translated, %d copied, %d fallbacks, %d mismatches, %s\n",
			f.Path, r.Language, len(r.Translated), len(r.Copied), len(r.Fallbacks), len(r.Mismatches), state)
		for _, fb := range r.Fallbacks {
			fmt.Fprintf(out, "  fallback %s\n", fb)
		}
	}
	for _, s := range summary.Skipped {
		fmt.Fprintf(out, "%s: skipped: %v\n", s.Path, s.Err)
	}

	a.logger.InfoContext(ctx, "sync finished",
		slog.Int("files", len(summary.Files)),
		slog.Int("skipped", len(summary.Skipped)),
	)
	return nil
}
