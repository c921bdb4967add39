// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoolDir(t *testing.T) {
	base := t.TempDir()
	poolDir := filepath.Join(base, "identity_pools", "learnjs")
	require.NoError(t, os.MkdirAll(poolDir, 0o755))

	filePath := filepath.Join(base, "not-a-dir")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

	tests := []struct {
		name     string
		in       string
		wantDir  string
		wantName string
		wantErr  bool
	}{
		{
			name:     "absolute directory",
			in:       poolDir,
			wantDir:  poolDir,
			wantName: "learnjs",
		},
		{
			name:     "trailing separator",
			in:       poolDir + string(filepath.Separator),
			wantDir:  poolDir,
			wantName: "learnjs",
		},
		{
			name:    "empty spec",
			in:      "",
			wantErr: true,
		},
		{
			name:    "missing directory",
			in:      filepath.Join(base, "nope"),
			wantErr: true,
		},
		{
			name:    "plain file",
			in:      filePath,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, name, err := ParsePoolDir(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestParsePoolDirRelative(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "learnjs"), 0o755))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(base))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	dir, name, err := ParsePoolDir("learnjs")
	require.NoError(t, err)
	assert.Equal(t, "learnjs", name)
	assert.True(t, filepath.IsAbs(dir))
}
