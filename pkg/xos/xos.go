// Package xos provides host filesystem operations for generated output.
// Writes go through an atomic rename so an interrupted run never leaves a
// truncated script behind. Every failure is tagged with ErrHostIO.
package xos

import (
	"errors"
	"fmt"
	"os"
)

// ErrHostIO marks any failure to read or write the host filesystem.
var ErrHostIO = errors.New("host I/O failure")

func hostErr(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrHostIO, op, path, err)
}

// ReadFile reads the named host file.
func ReadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, hostErr("read", filename, err)
	}
	return data, nil
}

// WriteFile writes data to the named file atomically using rename.
// If the file does not exist, WriteFile creates it with permissions perm;
// otherwise the previous content is replaced.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	if err := writeAtomic(filename, data, perm); err != nil {
		return hostErr("write", filename, err)
	}
	return nil
}

// CreateDir creates a directory and all necessary parents.
func CreateDir(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return hostErr("mkdir", path, err)
	}
	return nil
}

// Chmod sets the permission bits of the named file, ignoring the umask
// applied at creation time.
func Chmod(filename string, perm os.FileMode) error {
	if err := os.Chmod(filename, perm); err != nil {
		return hostErr("chmod", filename, err)
	}
	return nil
}
