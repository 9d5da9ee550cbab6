// Package fileutil writes command output files.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for formatted output files
// intended to be read by other tools and users.
const ReadableByAll os.FileMode = 0o644

// RejectSymlink returns an error when path exists and is a symlink.
// A path that does not exist yet is fine.
func RejectSymlink(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("fileutil: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("fileutil: refusing to write to symlink: %s", path)
	}
	return nil
}

// WriteOutput writes data to path with ReadableByAll permissions,
// refusing symlinks and any path that resolves to one of inputs.
func WriteOutput(path string, data []byte, inputs ...string) error {
	cleaned := filepath.Clean(path)
	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return fmt.Errorf("fileutil: invalid output path: %w", err)
	}
	for _, in := range inputs {
		absIn, err := filepath.Abs(in)
		if err != nil {
			return fmt.Errorf("fileutil: invalid input path %s: %w", in, err)
		}
		if abs == absIn {
			return fmt.Errorf("fileutil: output file %s would overwrite input file %s", path, in)
		}
	}
	if err := RejectSymlink(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, data, ReadableByAll); err != nil {
		return fmt.Errorf("fileutil: writing output: %w", err)
	}
	return nil
}
