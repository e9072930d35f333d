package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dosanma1/sysgen/internal/config"
	"github.com/dosanma1/sysgen/internal/generator"
	"github.com/dosanma1/sysgen/internal/lint"
	"github.com/dosanma1/sysgen/internal/serializer"
	"github.com/dosanma1/sysgen/internal/ui"
	"github.com/dosanma1/sysgen/internal/watch"
	"github.com/dosanma1/sysgen/pkg/xos"
)

type generateOptions struct {
	configs  []string
	vars     []string
	schema   string
	output   string
	lint     bool
	progress bool
	watch    bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:     "generate BUILDER",
		Aliases: []string{"g"},
		Short:   "Generate a build script with a builder",
		Long: `Merge the configuration, run the named builder and write the build
script and helper files. The output directory defaults to the builder name.

Examples:
  sysgen generate -c base.yaml -c site.json manifest
  sysgen generate -c base.yaml -v user.name=fred -v user.uid=1000 manifest
  sysgen generate --schema schema.json --lint -o out manifest`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch {
				return watchGenerate(cmd.Context(), a, args[0], opts)
			}
			return runGenerate(a, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.configs, "config", "c", nil, "Configuration file in JSON, YAML or TOML (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.vars, "var", "v", nil, "Definition key.path=value to add to the configuration (repeatable)")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "JSON schema the merged configuration must satisfy")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default: the builder name)")
	cmd.Flags().BoolVar(&opts.lint, "lint", false, "Check that every RUN command parses as POSIX shell")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "Show progress while writing helper files")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate whenever a configuration or schema file changes")

	return cmd
}

func runGenerate(a *app, name string, opts generateOptions) error {
	logger := a.logger.With("builder", name)

	b, err := a.registry.Get(name)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configs, opts.vars)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("configuration merged", "files", len(opts.configs), "vars", len(opts.vars))

	if opts.schema != "" {
		schema, err := xos.ReadFile(opts.schema)
		if err != nil {
			return fmt.Errorf("failed to load schema: %w", err)
		}
		if err := config.ValidateSchema(cfg, schema); err != nil {
			return err
		}
		logger.Debug("configuration matches schema", "schema", opts.schema)
	}

	outDir := opts.output
	if outDir == "" {
		outDir = filepath.Base(name)
	}
	gen := generator.New(outDir)
	if err := b.Build(gen, cfg); err != nil {
		return fmt.Errorf("builder %s failed: %w", name, err)
	}
	img := gen.Seal()
	logger.Info("build recorded", "directives", len(img.Directives()), "helpers", len(img.Helpers()))

	if opts.lint {
		if issues := lint.Check(img); len(issues) > 0 {
			for _, issue := range issues {
				logger.Error("invalid shell command", "directive", issue.Index, "command", issue.Command, "error", issue.Err)
			}
			return fmt.Errorf("lint failed with %d issue(s)", len(issues))
		}
	}

	var writeOpts []serializer.Option
	if opts.progress {
		writeOpts = append(writeOpts, serializer.WithProgress(ui.HelperProgress(a.errOut, logger)))
	}
	if err := serializer.Write(outDir, img, writeOpts...); err != nil {
		return err
	}

	ui.Success(a.out, "Wrote %s", filepath.Join(outDir, serializer.ScriptName))
	if n := len(img.Helpers()); n > 0 {
		ui.Hint(a.out, "%s %d helper file(s) in %s", ui.IconPackage, n, filepath.Join(outDir, "helpers"))
	}
	return nil
}

// watchGenerate runs a full generation, then another one after every change
// to the configuration or schema files, until ctx is cancelled. Failed runs
// are logged and do not stop the loop.
func watchGenerate(ctx context.Context, a *app, name string, opts generateOptions) error {
	files := append([]string(nil), opts.configs...)
	if opts.schema != "" {
		files = append(files, opts.schema)
	}
	if len(files) == 0 {
		return fmt.Errorf("--watch needs at least one --config or --schema file")
	}

	w, err := watch.New(files, watch.DefaultDebounce)
	if err != nil {
		return err
	}
	defer w.Close()
	go w.Run(ctx)

	logger := a.logger.With("builder", name)
	if err := runGenerate(a, name, opts); err != nil {
		ui.Warning(a.errOut, "Generation failed: %v", err)
	}
	ui.Hint(a.out, "Watching %d file(s); press Ctrl+C to stop", len(files))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-w.Events():
			logger.Info("input changed", "path", ev.Path, "change", ev.Type)
			if err := runGenerate(a, name, opts); err != nil {
				ui.Warning(a.errOut, "Generation failed: %v", err)
			}
		case err := <-w.Errors():
			ui.Warning(a.errOut, "Watch error: %v", err)
		}
	}
}
