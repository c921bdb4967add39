// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

var (
	// ErrMalformed indicates the document is not valid JSON.
	ErrMalformed = errors.New("malformed json document")

	// ErrAbsent indicates the document is valid JSON but the requested
	// field path does not exist in it.
	ErrAbsent = errors.New("field not present in document")
)

// Field returns the string value at the dotted field path (e.g. "Role.Arn")
// in the given JSON document, with no surrounding quoting. It distinguishes
// a malformed document from a missing field so callers can tell a truncated
// descriptor apart from a descriptor of the wrong shape.
func Field(doc []byte, path string) (string, error) {
	if len(doc) == 0 || !gjson.ValidBytes(doc) {
		return "", fmt.Errorf("extracting %q: %w", path, ErrMalformed)
	}

	res := gjson.GetBytes(doc, path)
	if !res.Exists() {
		return "", fmt.Errorf("extracting %q: %w", path, ErrAbsent)
	}

	return res.String(), nil
}

// FieldFromFile reads the JSON document at docPath and extracts the string
// value at the dotted field path.
func FieldFromFile(docPath string, path string) (string, error) {
	doc, err := os.ReadFile(docPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", docPath, err)
	}
	return Field(doc, path)
}
