// Package sysgen provides the public API for writing image builders.
// This package re-exports types from the internal packages so that builders
// can live outside this module and be compiled into their own sysgen binary:
//
//	func main() {
//		sysgen.Register("pibase", func() sysgen.Builder { return &PiBase{} })
//		if err := sysgen.Execute(); err != nil {
//			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//			os.Exit(1)
//		}
//	}
package sysgen

import (
	"github.com/dosanma1/sysgen/internal/builder"
	"github.com/dosanma1/sysgen/internal/cmd"
	"github.com/dosanma1/sysgen/internal/config"
	"github.com/dosanma1/sysgen/internal/directive"
	"github.com/dosanma1/sysgen/internal/generator"
	"github.com/dosanma1/sysgen/pkg/xos"
)

// Builder issues generator operations driven by the merged configuration.
type Builder = builder.Builder

// Factory creates a builder.
type Factory = builder.Factory

// Generator records the operations of one build session.
type Generator = generator.Generator

// Image is the finished state of a session.
type Image = generator.Image

// Command is a shell command given as text or as tokens.
type Command = generator.Command

// Config is a merged configuration tree.
type Config = config.Mapping

var (
	// Shell returns a command used verbatim.
	Shell = generator.Shell
	// Args returns a command whose tokens are each shell-quoted.
	Args = generator.Args
	// WithStdin redirects a command's standard input.
	WithStdin = generator.WithStdin
	// NewGenerator creates an empty session writing to a directory.
	NewGenerator = generator.New
	// LoadConfig merges configuration files and key=value overrides.
	LoadConfig = config.Load
)

// Errors returned by the generator and the configuration loader.
var (
	ErrTypeConflict      = config.ErrTypeConflict
	ErrUnsupportedFormat = config.ErrUnsupportedFormat
	ErrInvalidOverride   = config.ErrInvalidOverride
	ErrSchema            = config.ErrSchema
	ErrDuplicateHelper   = directive.ErrDuplicateHelper
	ErrInvalidHelper     = directive.ErrInvalidHelper
	ErrHostIO            = xos.ErrHostIO
)

// Register registers a builder in the default registry.
func Register(name string, factory Factory) error {
	return builder.Register(name, factory)
}

// Get returns a new instance of a registered builder.
func Get(name string) (Builder, error) {
	return builder.Get(name)
}

// List returns the names of all registered builders, sorted.
func List() []string {
	return builder.List()
}

// Execute runs the sysgen command line with every registered builder.
func Execute() error {
	return cmd.Execute()
}
