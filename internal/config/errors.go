package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTypeConflict is returned when fragments disagree on the shape of a key.
	ErrTypeConflict = errors.New("configuration type conflict")
	// ErrUnsupportedFormat is returned for a source whose extension has no decoder.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
	// ErrInvalidOverride is returned for a malformed key.path=value token.
	ErrInvalidOverride = errors.New("invalid configuration override")
	// ErrSchema is returned when a merged tree fails schema validation.
	ErrSchema = errors.New("configuration does not match schema")
)

// TypeConflictError reports the key at which two fragments disagree.
type TypeConflictError struct {
	Path   []string
	Target Kind
	Source Kind
}

func (e *TypeConflictError) Error() string {
	return fmt.Sprintf("cannot merge %s into %s at %s", e.Source, e.Target, e.KeyPath())
}

// KeyPath returns the dotted path of the offending key.
func (e *TypeConflictError) KeyPath() string {
	return strings.Join(e.Path, ".")
}

func (e *TypeConflictError) Unwrap() error { return ErrTypeConflict }

// SchemaError lists every schema violation found in a tree.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%d schema violation(s): %s", len(e.Violations), strings.Join(e.Violations, "; "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }
