//go:build windows

package xos

import (
	"os"
	"path/filepath"
)

// writeAtomic uses a temp file + rename within the target directory, since
// renameio does not support Windows.
func writeAtomic(filename string, data []byte, perm os.FileMode) error {
	tempFile, err := os.CreateTemp(filepath.Dir(filename), ".tmp-*")
	if err != nil {
		return err
	}
	tempName := tempFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return err
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return err
	}
	if err := tempFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tempName, perm); err != nil {
		return err
	}

	// Windows refuses to rename over an existing file.
	if _, err := os.Stat(filename); err == nil {
		if err := os.Remove(filename); err != nil {
			return err
		}
	}
	if err := os.Rename(tempName, filename); err != nil {
		return err
	}

	success = true
	return nil
}
