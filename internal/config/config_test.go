// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigFile points SSPA_CFG_FILE at a temp YAML document and reloads the
// global config.
func withConfigFile(t *testing.T, doc string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sspa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	t.Setenv("SSPA_CFG_FILE", path)

	t.Cleanup(func() { Config = Type{} })
	_, err := Load()
	require.NoError(t, err)
}

func TestGetString(t *testing.T) {
	withConfigFile(t, `
region: us-east-1
create_bucket:
  index_document: home.html
`)

	tests := []struct {
		name      string
		namespace string
		key       string
		def       []string
		expected  string
		wantErr   bool
	}{
		{
			name:     "top-level key",
			key:      "region",
			expected: "us-east-1",
		},
		{
			name:     "dotted key",
			key:      "create_bucket.index_document",
			expected: "home.html",
		},
		{
			name:      "namespaced lookup preferred",
			namespace: "create_bucket",
			key:       "index_document",
			expected:  "home.html",
		},
		{
			name:     "missing key with default",
			key:      "create_bucket.error_document",
			def:      []string{"error.html"},
			expected: "error.html",
		},
		{
			name:    "missing key without default",
			key:     "nope",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Config.Namespace = tt.namespace

			got, err := GetString(tt.key, tt.def...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	withConfigFile(t, `
server:
  port: 8080
`)

	got, err := GetInt("server.port")
	require.NoError(t, err)
	assert.Equal(t, 8080, got)

	got, err = GetInt("server.timeout", 30)
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}

func TestPathOverride(t *testing.T) {
	t.Setenv("SSPA_CFG_FILE", "/tmp/custom.yaml")

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}
