// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	json "github.com/goccy/go-json"
)

// TrustPolicy is the assume-role (trust) policy document attached to the
// authenticated role. Building it from typed structs and marshaling keeps
// pool ids with any content (quotes included) correctly escaped.
type TrustPolicy struct {
	Version   string           `json:"Version"`
	Statement []TrustStatement `json:"Statement"`
}

// TrustStatement is a single statement within a TrustPolicy.
type TrustStatement struct {
	Effect    string         `json:"Effect"`
	Principal TrustPrincipal `json:"Principal"`
	Action    string         `json:"Action"`
	Condition TrustCondition `json:"Condition"`
}

// TrustPrincipal names the federated identity provider allowed to assume the
// role.
type TrustPrincipal struct {
	Federated string `json:"Federated"`
}

// TrustCondition restricts assumption to authenticated members of one
// identity pool.
type TrustCondition struct {
	StringEquals          map[string]string `json:"StringEquals"`
	ForAnyValueStringLike map[string]string `json:"ForAnyValue:StringLike"`
}

// NewTrustPolicy returns the standard federated assume-role policy for the
// given identity pool id, restricted to the "authenticated" amr value.
func NewTrustPolicy(poolID string) TrustPolicy {
	return TrustPolicy{
		Version: "2012-10-17",
		Statement: []TrustStatement{
			{
				Effect:    "Allow",
				Principal: TrustPrincipal{Federated: "cognito-identity.amazonaws.com"},
				Action:    "sts:AssumeRoleWithWebIdentity",
				Condition: TrustCondition{
					StringEquals: map[string]string{
						"cognito-identity.amazonaws.com:aud": poolID,
					},
					ForAnyValueStringLike: map[string]string{
						"cognito-identity.amazonaws.com:amr": "authenticated",
					},
				},
			},
		},
	}
}

// Marshal renders the policy as an indented JSON document.
func (p TrustPolicy) Marshal() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
