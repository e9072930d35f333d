package generator

import "github.com/dosanma1/sysgen/internal/directive"

// Command is a shell command given either as literal text or as argument
// tokens.
type Command interface {
	shell() string
}

type shellCommand string

func (c shellCommand) shell() string { return string(c) }

type argsCommand []string

func (c argsCommand) shell() string { return directive.QuoteArgs(c) }

// Shell returns a command used verbatim.
func Shell(text string) Command { return shellCommand(text) }

// Args returns a command whose tokens are each shell-quoted and joined
// with spaces.
func Args(tokens ...string) Command {
	return argsCommand(append([]string(nil), tokens...))
}

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	stdin string
}

// WithStdin redirects the command's standard input from path.
func WithStdin(path string) RunOption {
	return func(o *runOptions) {
		o.stdin = path
	}
}
