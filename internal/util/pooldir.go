// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ParsePoolDir parses an identity-pool directory spec and returns the
// absolute directory and the pool name. The pool name is the directory's
// base name. It returns an error if the fs entry does not exist, is empty or
// is not a directory.
func ParsePoolDir(poolDir string) (string, string, error) {

	if poolDir == "" {
		return "", "", os.ErrInvalid
	}

	// Make a relative directory absolute against the CWD.
	dir := poolDir
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", err
		}
		dir = filepath.Join(cwd, dir)
	}

	// Trailing separators would make the base name empty.
	dir = filepath.Clean(dir)

	if r, err := os.Stat(dir); err != nil {
		return "", "", err
	} else if !r.IsDir() {
		return "", "", os.ErrInvalid
	}

	name := filepath.Base(dir)
	if name == "." || strings.HasPrefix(name, string(filepath.Separator)) {
		return "", "", os.ErrInvalid
	}

	return dir, name, nil
}
