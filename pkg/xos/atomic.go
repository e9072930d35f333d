//go:build !windows

package xos

import (
	"os"

	"github.com/google/renameio/v2"
)

func writeAtomic(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}
