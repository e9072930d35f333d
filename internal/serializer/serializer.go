// Package serializer writes a finished image description to disk: the
// build script at the root of the output directory and one file per helper
// blob under helpers/.
package serializer

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dosanma1/sysgen/internal/directive"
	"github.com/dosanma1/sysgen/pkg/xos"
)

// ScriptName is the file name of the build script.
const ScriptName = "Dockerfile"

// Artifact is the finished state consumed by Write.
type Artifact interface {
	Directives() []directive.Directive
	Helpers() []directive.Helper
}

// ProgressFunc is called after each helper file is written.
type ProgressFunc func(done, total int, name string)

// Option configures Write.
type Option func(*options)

type options struct {
	progress ProgressFunc
}

// WithProgress reports every helper written.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// LineEnding is the host line terminator.
func LineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Render returns the build script text for a list of directives.
func Render(directives []directive.Directive) []byte {
	eol := LineEnding()
	var sb strings.Builder
	for _, d := range directives {
		for _, line := range d.Lines() {
			sb.WriteString(line)
			sb.WriteString(eol)
		}
	}
	return []byte(sb.String())
}

// Write creates dir if needed, writes the build script and then every helper
// with its permission mode applied.
func Write(dir string, art Artifact, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := xos.CreateDir(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	script := filepath.Join(dir, ScriptName)
	if err := xos.WriteFile(script, Render(art.Directives()), 0o644); err != nil {
		return fmt.Errorf("failed to write build script: %w", err)
	}

	helpers := art.Helpers()
	if len(helpers) == 0 {
		return nil
	}
	helperDir := filepath.Join(dir, directive.HelperDir)
	if err := xos.CreateDir(helperDir, 0o755); err != nil {
		return fmt.Errorf("failed to create helper directory: %w", err)
	}
	for i, h := range helpers {
		if err := writeHelper(helperDir, h); err != nil {
			return err
		}
		if o.progress != nil {
			o.progress(i+1, len(helpers), h.Name)
		}
	}
	return nil
}

func writeHelper(helperDir string, h directive.Helper) error {
	path := filepath.Join(helperDir, filepath.FromSlash(h.Name))
	if err := xos.CreateDir(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to write helper %s: %w", h.Name, err)
	}
	perm := os.FileMode(h.Perm())
	if err := xos.WriteFile(path, h.Content, perm); err != nil {
		return fmt.Errorf("failed to write helper %s: %w", h.Name, err)
	}
	if err := xos.Chmod(path, perm); err != nil {
		return fmt.Errorf("failed to write helper %s: %w", h.Name, err)
	}
	return nil
}
