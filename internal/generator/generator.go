// Package generator provides the builder-facing image generator.
//
// A Generator accumulates directives and helper blobs in memory. Nothing is
// written to disk until Finish, except that CopyFile reads its host source
// immediately.
package generator

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/dosanma1/sysgen/internal/directive"
	"github.com/dosanma1/sysgen/internal/serializer"
	"github.com/dosanma1/sysgen/pkg/xos"
)

// DefaultMode is the permission mode of helpers when none is given.
const DefaultMode = "644"

var defaultInstallCommand = []string{"apt-get", "install", "-y", "--no-install-recommends"}

// Generator records the operations of one build session.
type Generator struct {
	dir     string
	log     directive.Log
	install []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithInstallCommand replaces the package-manager invocation used by
// Install. The default is apt-get non-interactive without recommends.
func WithInstallCommand(args ...string) Option {
	return func(g *Generator) {
		g.install = append([]string(nil), args...)
	}
}

// New creates an empty session whose output goes to dir.
func New(dir string, opts ...Option) *Generator {
	g := &Generator{
		dir:     dir,
		install: defaultInstallCommand,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Dir returns the output directory.
func (g *Generator) Dir() string { return g.dir }

// FromNamed starts from a named image. It should be the first directive.
func (g *Generator) FromNamed(image string) {
	g.log.Append(directive.FromImage{Image: image})
}

// FromTarball starts from an empty image and unpacks a previously built
// archive into dest ("/" when empty).
func (g *Generator) FromTarball(tarball, dest string) {
	if dest == "" {
		dest = "/"
	}
	g.log.Append(directive.FromArchive{Path: tarball, Dest: dest})
}

// Env sets an environment variable.
func (g *Generator) Env(name, value string) {
	g.log.Append(directive.SetEnv{Var: name, Value: value})
}

// Install installs packages. An empty package list still runs the package
// manager.
func (g *Generator) Install(packages ...string) {
	args := make([]string, 0, len(g.install)+len(packages))
	args = append(args, g.install...)
	args = append(args, packages...)
	g.Run(Args(args...))
}

// Run runs a command.
func (g *Generator) Run(cmd Command, opts ...RunOption) {
	var ro runOptions
	for _, opt := range opts {
		opt(&ro)
	}
	text := cmd.shell()
	if ro.stdin != "" {
		text += " < " + directive.Quote(ro.stdin)
	}
	g.log.Append(directive.RunCommand{Command: text})
}

// RunMulti runs several commands in a single layer.
func (g *Generator) RunMulti(cmds ...Command) {
	texts := make([]string, len(cmds))
	for i, c := range cmds {
		texts[i] = c.shell()
	}
	g.log.Append(directive.RunSequence{Commands: texts})
}

// Mkdir creates a directory and its parents. mode is passed to mkdir -m
// when not empty.
func (g *Generator) Mkdir(dir, mode string) {
	if mode != "" {
		g.Run(Args("mkdir", "-p", "-m", mode, dir))
		return
	}
	g.Run(Args("mkdir", "-p", dir))
}

// Symlink creates (or replaces) a symbolic link dest pointing at src.
func (g *Generator) Symlink(src, dest string) {
	g.Run(Args("ln", "-sf", src, dest))
}

// WriteLines replaces dest with the given lines. No lines is a no-op.
func (g *Generator) WriteLines(dest string, lines ...string) {
	g.write(dest, lines, false)
}

// AppendLines appends the given lines to dest. No lines is a no-op.
func (g *Generator) AppendLines(dest string, lines ...string) {
	g.write(dest, lines, true)
}

func (g *Generator) write(dest string, lines []string, appendTo bool) {
	if len(lines) == 0 {
		return
	}
	echoes := make([]string, len(lines))
	for i, line := range lines {
		echoes[i] = "echo " + directive.Quote(line)
	}
	cmd := strings.Join(echoes, "; ")
	if len(lines) > 1 {
		cmd = "( " + cmd + " )"
	}
	redirect := ">"
	if appendTo {
		redirect = ">>"
	}
	g.Run(Shell(cmd + " " + redirect + " " + directive.Quote(dest)))
}

// CopyFile reads src from the host now and copies it to dest in the image
// through a helper named after the base name of src. mode defaults to 644.
func (g *Generator) CopyFile(src, dest, mode string) error {
	if mode == "" {
		mode = DefaultMode
	}
	content, err := xos.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	ref, err := g.log.AddHelper(filepath.Base(src), content, mode)
	if err != nil {
		return err
	}
	g.log.Append(directive.Copy{Src: ref, Dest: dest})
	return nil
}

// CopyAsHelper copies src into /helpers/<name> in the image and returns
// that path, for use as an argument to later commands. name defaults to the
// base name of src.
func (g *Generator) CopyAsHelper(src, name string) (string, error) {
	if name == "" {
		name = filepath.Base(src)
	}
	dest := path.Join("/", directive.HelperDir, name)
	if err := g.CopyFile(src, dest, DefaultMode); err != nil {
		return "", err
	}
	return dest, nil
}

// WriteHelper registers content as a helper and returns its build-context
// path. mode defaults to 644.
func (g *Generator) WriteHelper(name string, content []byte, mode string) (string, error) {
	if mode == "" {
		mode = DefaultMode
	}
	return g.log.AddHelper(name, content, mode)
}

// Comment adds a comment line to the script.
func (g *Generator) Comment(text string) {
	g.log.Append(directive.Comment{Text: text})
}

// Blank adds an empty line to the script.
func (g *Generator) Blank() {
	g.log.Append(directive.Blank{})
}

// Seal returns an immutable snapshot of everything recorded so far.
func (g *Generator) Seal() *Image {
	return &Image{
		directives: g.log.Directives(),
		helpers:    g.log.Helpers(),
	}
}

// Finish seals the session and writes the build script and helpers to the
// output directory.
//
// Finish may be called more than once; each call rewrites the complete
// output from the current state, overwriting the script and every helper.
func (g *Generator) Finish(opts ...serializer.Option) (*Image, error) {
	img := g.Seal()
	if err := serializer.Write(g.dir, img, opts...); err != nil {
		return nil, err
	}
	return img, nil
}
