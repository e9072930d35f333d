package generator

import (
	"github.com/dosanma1/sysgen/internal/directive"
)

// Image is the finished, read-only state of a session.
type Image struct {
	directives []directive.Directive
	helpers    []directive.Helper
}

// Directives returns the directives in emission order.
func (img *Image) Directives() []directive.Directive {
	return append([]directive.Directive(nil), img.directives...)
}

// Helpers returns the helper blobs sorted by name.
func (img *Image) Helpers() []directive.Helper {
	return append([]directive.Helper(nil), img.helpers...)
}

// Script returns the rendered lines of the build script.
func (img *Image) Script() []string {
	var lines []string
	for _, d := range img.directives {
		lines = append(lines, d.Lines()...)
	}
	return lines
}
