package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadRegular reads a whole regular file.
func ReadRegular(filename string) ([]byte, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", filename, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %q", ErrNotRegular, filename)
	}

	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	return data, nil
}

// WriteAtomic writes data to outPath through a temporary file in the same directory.
// Permissions and, optionally, the modification time are carried over from src.
// It returns the size of the written file.
func WriteAtomic(src, outPath string, data []byte, preserveTimestamps bool) (size int64, err error) {
	tc, err := NewTempContext(src, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if _, err = tc.TmpFile.Write(data); err != nil {
		return 0, fmt.Errorf("writing temporary file: %w", err)
	}

	if err = os.Chmod(tc.TmpName, tc.Perm()); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err = tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err = os.Rename(tc.TmpName, outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	size, err = FinalizeOutput(outPath, preserveTimestamps, tc.SrcInfo.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}
