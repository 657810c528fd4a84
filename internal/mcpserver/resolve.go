// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolvePath resolves a file or directory to an absolute, symlink-free path.
// It returns an error if the path does not exist.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}

	if _, err := os.Stat(absPath); err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}
	return absPath, nil
}
