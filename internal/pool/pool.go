// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	json "github.com/goccy/go-json"

	awsapi "github.com/sspa/sspa/internal/aws"
	"github.com/sspa/sspa/internal/extract"
	"github.com/sspa/sspa/internal/log"
	"github.com/sspa/sspa/internal/store"
)

// RoleSuffix is appended to the pool name to derive the authenticated role
// name.
const RoleSuffix = "_cognito_authenticated"

// ErrNoConfig indicates the pool directory has no config.json to create the
// identity pool from. Nothing is provisioned or written in that case.
var ErrNoConfig = errors.New("missing config.json")

// RoleName derives the authenticated role name for a pool name.
func RoleName(poolName string) string {
	return poolName + RoleSuffix
}

// Provisioner runs the identity-pool provisioning sequence against one pool
// directory. It is a pure function of (clients, descriptor files): every
// skip decision comes from the directory, every side effect is an AWS call
// or a descriptor write.
type Provisioner struct {
	Cognito awsapi.CognitoIdentityAPI
	IAM     awsapi.IAMAPI
	Dir     store.Dir

	// PoolName is the identity pool name, by convention the base name of
	// the pool directory.
	PoolName string
}

// Run executes the sequence:
//
//  1. config.json must exist (fatal otherwise, no partial work).
//  2. Create the identity pool unless pool_info.json is cached.
//  3. Rewrite the trust policy document, then create the authenticated role
//     unless role_info.json is cached.
//  4. Bind the role to the pool's authenticated slot. Never gated: the
//     underlying call is a set/replace and safe to repeat.
//
// The two-tier cache lets an operator re-run after a partial failure without
// re-creating the pool or duplicating the role.
func (p *Provisioner) Run(ctx context.Context) error {
	cfgDoc, ok, err := p.Dir.Load(store.ConfigFile)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", p.Dir.Path(store.ConfigFile), ErrNoConfig)
	}

	state, err := p.Dir.LoadState()
	if err != nil {
		return err
	}

	poolDoc, err := p.ensurePool(ctx, cfgDoc, &state)
	if err != nil {
		return err
	}

	poolID, err := extract.Field(poolDoc, "IdentityPoolId")
	if err != nil {
		return fmt.Errorf("pool descriptor %s: %w", store.PoolFile, err)
	}
	poolName, err := extract.Field(poolDoc, "IdentityPoolName")
	if err != nil {
		return fmt.Errorf("pool descriptor %s: %w", store.PoolFile, err)
	}

	roleDoc, err := p.ensureRole(ctx, poolID, poolName, &state)
	if err != nil {
		return err
	}

	roleArn, err := extract.Field(roleDoc, "Role.Arn")
	if err != nil {
		return fmt.Errorf("role descriptor %s: %w", store.RoleFile, err)
	}

	return p.bindRole(ctx, poolID, roleArn, &state)
}

// ensurePool creates the identity pool unless a cached descriptor exists,
// and returns the descriptor either way.
func (p *Provisioner) ensurePool(ctx context.Context, cfgDoc []byte, state *store.State) ([]byte, error) {
	if doc, ok, err := p.Dir.Load(store.PoolFile); err != nil {
		return nil, err
	} else if ok {
		log.Infof("identity pool descriptor cached, skipping creation: pool=%s", p.PoolName)
		state.Pool = store.Created
		return doc, nil
	}

	// config.json carries the AWS wire-shape request body; the pool name
	// always comes from the directory, not the config.
	var input cognitoidentity.CreateIdentityPoolInput
	if err := json.Unmarshal(cfgDoc, &input); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", store.ConfigFile, err)
	}
	input.IdentityPoolName = awsv2.String(p.PoolName)

	out, err := p.Cognito.CreateIdentityPool(ctx, &input)
	if err != nil {
		return nil, fmt.Errorf("creating identity pool %s: %w", p.PoolName, err)
	}

	doc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling pool descriptor: %w", err)
	}
	if err := p.Dir.Write(store.PoolFile, doc); err != nil {
		return nil, err
	}

	state.Pool = store.Created
	if err := p.Dir.SaveState(*state); err != nil {
		return nil, err
	}

	log.Infof("identity pool created: pool=%s, id=%s", p.PoolName, awsv2.ToString(out.IdentityPoolId))
	return doc, nil
}

// ensureRole rewrites the trust policy document unconditionally, then
// creates the authenticated role unless a cached descriptor exists. The
// descriptor is returned either way.
func (p *Provisioner) ensureRole(ctx context.Context, poolID, poolName string, state *store.State) ([]byte, error) {
	policyDoc, err := NewTrustPolicy(poolID).Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshaling trust policy: %w", err)
	}
	if err := p.Dir.Write(store.PolicyFile, policyDoc); err != nil {
		return nil, err
	}

	if doc, ok, err := p.Dir.Load(store.RoleFile); err != nil {
		return nil, err
	} else if ok {
		log.Infof("role descriptor cached, skipping creation: role=%s", RoleName(poolName))
		state.Role = store.Created
		return doc, nil
	}

	roleName := RoleName(poolName)
	out, err := p.IAM.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 awsv2.String(roleName),
		AssumeRolePolicyDocument: awsv2.String(string(policyDoc)),
	})
	if err != nil {
		return nil, fmt.Errorf("creating role %s: %w", roleName, err)
	}

	doc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling role descriptor: %w", err)
	}
	if err := p.Dir.Write(store.RoleFile, doc); err != nil {
		return nil, err
	}

	state.Role = store.Created
	if err := p.Dir.SaveState(*state); err != nil {
		return nil, err
	}

	log.Infof("role created: role=%s", roleName)
	return doc, nil
}

// bindRole sets the pool's authenticated role. Re-applied on every run.
func (p *Provisioner) bindRole(ctx context.Context, poolID, roleArn string, state *store.State) error {
	_, err := p.Cognito.SetIdentityPoolRoles(ctx, &cognitoidentity.SetIdentityPoolRolesInput{
		IdentityPoolId: awsv2.String(poolID),
		Roles:          map[string]string{"authenticated": roleArn},
	})
	if err != nil {
		return fmt.Errorf("binding role to pool %s: %w", poolID, err)
	}

	state.Binding = store.Bound
	if err := p.Dir.SaveState(*state); err != nil {
		return err
	}

	log.Infof("authenticated role bound: pool=%s, role_arn=%s", poolID, roleArn)
	return nil
}
