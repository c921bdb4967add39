// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package pool

import (
	"fmt"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrustPolicy(t *testing.T) {
	poolID := "us-east-1:11111111-2222-3333-4444-555555555555"

	doc, err := NewTrustPolicy(poolID).Marshal()
	require.NoError(t, err)

	expected := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [{
			"Effect": "Allow",
			"Principal": {"Federated": "cognito-identity.amazonaws.com"},
			"Action": "sts:AssumeRoleWithWebIdentity",
			"Condition": {
				"StringEquals": {"cognito-identity.amazonaws.com:aud": "%s"},
				"ForAnyValue:StringLike": {"cognito-identity.amazonaws.com:amr": "authenticated"}
			}
		}]
	}`, poolID)
	assert.JSONEq(t, expected, string(doc))

	// The pool id appears exactly once, at the aud condition value.
	assert.Equal(t, 1, strings.Count(string(doc), poolID))
}

// Pool ids with characters needing escaping must still produce a valid
// document with the id as the exact aud string value.
func TestNewTrustPolicyEscaping(t *testing.T) {
	tests := []struct {
		name   string
		poolID string
	}{
		{
			name:   "embedded quotes",
			poolID: `us-east-1:"quoted"`,
		},
		{
			name:   "backslash",
			poolID: `us-east-1:a\b`,
		},
		{
			name:   "newline",
			poolID: "us-east-1:a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewTrustPolicy(tt.poolID).Marshal()
			require.NoError(t, err)

			var parsed TrustPolicy
			require.NoError(t, json.Unmarshal(doc, &parsed))
			require.Len(t, parsed.Statement, 1)
			assert.Equal(t, tt.poolID, parsed.Statement[0].Condition.StringEquals["cognito-identity.amazonaws.com:aud"])
		})
	}
}

func TestRoleName(t *testing.T) {
	tests := []struct {
		poolName string
		expected string
	}{
		{poolName: "learnjs", expected: "learnjs_cognito_authenticated"},
		{poolName: "x", expected: "x_cognito_authenticated"},
	}

	for _, tt := range tests {
		t.Run(tt.poolName, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoleName(tt.poolName))
		})
	}
}
