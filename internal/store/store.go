// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Well-known file names inside an identity-pool directory.
const (
	ConfigFile = "config.json"
	PoolFile   = "pool_info.json"
	RoleFile   = "role_info.json"
	PolicyFile = "assume_role_policy.json"
	StateFile  = "provision_state.json"
)

// Dir is a handle on one identity-pool configuration directory. All
// descriptor reads and writes go through it; nothing consults ambient
// process state.
type Dir struct {
	path string
}

// NewDir returns a handle on the given directory. The directory must already
// exist; descriptor files inside it may not.
func NewDir(path string) Dir {
	return Dir{path: path}
}

// Path returns the absolute path of the named file inside the directory.
func (d Dir) Path(name string) string {
	return filepath.Join(d.path, name)
}

// Load reads the named descriptor file. ok is false when the file is missing
// or empty; an empty file is a truncated write, never a cached descriptor.
func (d Dir) Load(name string) (doc []byte, ok bool, err error) {
	doc, err = os.ReadFile(d.Path(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(doc) == 0 {
		return nil, false, nil
	}
	return doc, true, nil
}

// Exists reports whether the named file is present and non-empty.
func (d Dir) Exists(name string) bool {
	fi, err := os.Stat(d.Path(name))
	return err == nil && fi.Size() > 0
}

// Write persists the named descriptor atomically: the document is written to
// a temp file in the same directory and renamed into place, so a crashed run
// can never leave a partial descriptor behind.
func (d Dir) Write(name string, doc []byte) error {
	tmp, err := os.CreateTemp(d.path, name+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", name, err)
	}

	if err := os.Rename(tmpName, d.Path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s into place: %w", name, err)
	}
	return nil
}
