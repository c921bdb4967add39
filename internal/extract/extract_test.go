// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package extract

import (
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// extractTestCase represents a single test case for TestField.
type extractTestCase struct {
	Name     string `yaml:"name"`
	Doc      string `yaml:"doc"`
	Path     string `yaml:"path"`
	Expected string `yaml:"expected"`
	WantErr  string `yaml:"wantErr"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestField(t *testing.T) {
	var tests []extractTestCase
	err := loadTestData("extract_cases.yaml", &tests)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got, err := Field([]byte(tt.Doc), tt.Path)

			switch tt.WantErr {
			case "absent":
				require.ErrorIs(t, err, ErrAbsent)
			case "malformed":
				require.ErrorIs(t, err, ErrMalformed)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.Expected, got)
			}
		})
	}
}

func TestFieldErrorsAreDistinct(t *testing.T) {
	_, absentErr := Field([]byte(`{}`), "Role.Arn")
	_, malformedErr := Field([]byte(`{`), "Role.Arn")

	require.ErrorIs(t, absentErr, ErrAbsent)
	require.NotErrorIs(t, absentErr, ErrMalformed)
	require.ErrorIs(t, malformedErr, ErrMalformed)
	require.NotErrorIs(t, malformedErr, ErrAbsent)
}

func TestFieldFromFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "role_info.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Role": {"Arn": "arn:aws:iam::1:role/r"}}`), 0o644))

	got, err := FieldFromFile(path, "Role.Arn")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::1:role/r", got)

	_, err = FieldFromFile(filepath.Join(dir, "nope.json"), "Role.Arn")
	require.Error(t, err)
}
