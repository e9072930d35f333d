package directive

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strconv"
)

// HelperDir is the directory, relative to the build context, that holds
// helper blobs.
const HelperDir = "helpers"

var (
	// ErrDuplicateHelper is returned when a helper name is registered twice.
	ErrDuplicateHelper = errors.New("helper already exists")
	// ErrInvalidHelper is returned for an unusable helper name or mode.
	ErrInvalidHelper = errors.New("invalid helper")
)

// Helper is a named byte payload written next to the build script.
type Helper struct {
	Name    string
	Content []byte
	Mode    string
}

// Perm returns the helper mode as permission bits.
func (h Helper) Perm() uint32 {
	perm, _ := strconv.ParseUint(h.Mode, 8, 32)
	return uint32(perm)
}

// Ref returns the build-context path of a helper, e.g. "helpers/init.sh".
func Ref(name string) string {
	return path.Join(HelperDir, filepath.ToSlash(name))
}

// Log is an append-only record of directives plus a helper registry.
// The zero value is ready to use.
type Log struct {
	directives []Directive
	helpers    map[string]Helper
}

// Append records a directive.
func (l *Log) Append(d Directive) {
	l.directives = append(l.directives, d)
}

// Len returns the number of recorded directives.
func (l *Log) Len() int { return len(l.directives) }

// AddHelper registers a helper blob and returns its reference path. The
// name must be a local relative path and mode an octal permission.
func (l *Log) AddHelper(name string, content []byte, mode string) (string, error) {
	if name == "" || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: name %q must be a relative path inside %s", ErrInvalidHelper, name, HelperDir)
	}
	perm, err := strconv.ParseUint(mode, 8, 32)
	if err != nil || perm > 0o777 {
		return "", fmt.Errorf("%w: %q is not an octal permission mode", ErrInvalidHelper, mode)
	}
	if _, exists := l.helpers[name]; exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateHelper, name)
	}

	if l.helpers == nil {
		l.helpers = make(map[string]Helper)
	}
	l.helpers[name] = Helper{
		Name:    name,
		Content: append([]byte(nil), content...),
		Mode:    mode,
	}
	return Ref(name), nil
}

// HasHelper reports whether a helper with the given name is registered.
func (l *Log) HasHelper(name string) bool {
	_, ok := l.helpers[name]
	return ok
}

// Directives returns a copy of the recorded directives in append order.
func (l *Log) Directives() []Directive {
	return append([]Directive(nil), l.directives...)
}

// Helpers returns a copy of the registered helpers sorted by name.
func (l *Log) Helpers() []Helper {
	out := make([]Helper, 0, len(l.helpers))
	for _, h := range l.helpers {
		h.Content = append([]byte(nil), h.Content...)
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
