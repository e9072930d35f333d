// Package directive records build-script directives and the helper blobs
// they reference.
package directive

import (
	"strings"
)

// Directive is one recorded build operation. Lines returns its rendering
// in the build script; most directives render as a single line.
type Directive interface {
	Lines() []string
}

// FromImage starts the image from a named registry image.
type FromImage struct {
	Image string
}

// FromArchive starts from an empty base and unpacks an archive into Dest.
type FromArchive struct {
	Path string
	Dest string
}

// SetEnv sets an environment variable for later directives.
type SetEnv struct {
	Var   string
	Value string
}

// RunCommand runs one shell command.
type RunCommand struct {
	Command string
}

// RunSequence runs several shell commands as a single layer.
type RunSequence struct {
	Commands []string
}

// Copy copies a file from the build context into the image.
type Copy struct {
	Src  string
	Dest string
}

// Comment has no build effect.
type Comment struct {
	Text string
}

// Blank separates sections of the script with two empty lines.
type Blank struct{}

func (d FromImage) Lines() []string { return []string{"FROM " + d.Image} }

func (d FromArchive) Lines() []string {
	return []string{"FROM scratch", "ADD " + d.Path + " " + d.Dest}
}

func (d SetEnv) Lines() []string { return []string{"ENV " + d.Var + " " + d.Value} }

func (d RunCommand) Lines() []string { return []string{"RUN " + d.Command} }

// Lines joins the commands with a line continuation and "&&".
func (d RunSequence) Lines() []string {
	body := "RUN " + strings.Join(d.Commands, " \\\n && ")
	return strings.Split(body, "\n")
}

func (d Copy) Lines() []string { return []string{"COPY " + d.Src + " " + d.Dest} }

func (d Comment) Lines() []string { return []string{"# " + d.Text} }

func (Blank) Lines() []string { return []string{"", ""} }
