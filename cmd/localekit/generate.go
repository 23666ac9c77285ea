package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/modulegen"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		esmDir string
		cjsDir string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Validate locale files and emit ESM and CommonJS modules with type declarations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("esm-dir") {
				a.cfg.ESMDir = esmDir
			}
			if cmd.Flags().Changed("cjs-dir") {
				a.cfg.CJSDir = cjsDir
			}
			return a.generate(cmd, dryRun)
		},
	}

	cmd.Flags().StringVar(&esmDir, "esm-dir", "", "output directory for ES modules, relative to --dir")
	cmd.Flags().StringVar(&cjsDir, "cjs-dir", "", "output directory for CommonJS modules, relative to --dir")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the files that would be written")

	return cmd
}

func (a *app) generate(cmd *cobra.Command, dryRun bool) error {
	ctx := cmd.Context()

	set, err := locale.Load(os.DirFS(a.cfg.Dir),
		locale.WithBaseline(a.cfg.Baseline),
		locale.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	if issues := locale.Check(set); len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintln(cmd.ErrOrStderr(), issue)
		}
		a.logger.ErrorContext(ctx, "locale files are incomplete", slog.Int("issues", len(issues)))
		return errReported
	}

	gen := modulegen.New(
		modulegen.WithOutputDirs(a.path(a.cfg.ESMDir), a.path(a.cfg.CJSDir)),
		modulegen.WithLogger(a.logger),
	)

	if dryRun {
		files, err := gen.Plan(set)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f.Path)
		}
		return nil
	}

	files, err := gen.Generate(ctx, set)
	if err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "generated locale modules",
		slog.Int("languages", set.Len()),
		slog.Int("files", len(files)),
	)
	return nil
}
