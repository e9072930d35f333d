package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dosanma1/sysgen/internal/builder"
	"github.com/dosanma1/sysgen/internal/ui"
)

// app carries what every command needs.
type app struct {
	registry *builder.Registry
	logger   *log.Logger
	out      io.Writer
	errOut   io.Writer
}

// NewRootCmd builds the sysgen command tree. Builders are resolved from
// registry.
func NewRootCmd(registry *builder.Registry, out, errOut io.Writer) *cobra.Command {
	a := &app{
		registry: registry,
		logger:   ui.NewLogger(errOut),
		out:      out,
		errOut:   errOut,
	}

	var logLevel string
	root := &cobra.Command{
		Use:   "sysgen",
		Short: "Generate container and OS image build scripts",
		Long: `sysgen runs a builder against a merged configuration and writes the
resulting build script (Dockerfile) and its helper files to a directory.

Configuration is merged from JSON, YAML and TOML files in the order given,
followed by key.path=value overrides.`,
		Version:       "0.2.0",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := ui.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			a.logger.SetLevel(level)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&logLevel, "log-level", ui.DefaultLogLevel, "Log verbosity (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(a),
		newConfigCmd(a),
		newBuildersCmd(a),
	)
	return root
}

// Execute runs the command line against the default builder registry.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd(builder.DefaultRegistry, os.Stdout, os.Stderr).ExecuteContext(ctx)
}
