// Package lint checks that the shell commands of a generated build script
// parse as POSIX shell.
package lint

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/dosanma1/sysgen/internal/directive"
)

// Issue is a shell command that failed to parse.
type Issue struct {
	// Index is the position of the directive in the script.
	Index   int
	Command string
	Err     error
}

func (i Issue) String() string {
	return fmt.Sprintf("directive %d: %q: %v", i.Index, i.Command, i.Err)
}

// Source is anything that exposes an ordered list of directives.
type Source interface {
	Directives() []directive.Directive
}

// Check parses every RUN command of src and returns one Issue per command
// that is not valid POSIX shell.
func Check(src Source) []Issue {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))

	var issues []Issue
	for i, d := range src.Directives() {
		var cmds []string
		switch d := d.(type) {
		case directive.RunCommand:
			cmds = []string{d.Command}
		case directive.RunSequence:
			cmds = d.Commands
		default:
			continue
		}
		for _, cmd := range cmds {
			if _, err := parser.Parse(strings.NewReader(cmd), ""); err != nil {
				issues = append(issues, Issue{Index: i, Command: cmd, Err: err})
			}
		}
	}
	return issues
}
