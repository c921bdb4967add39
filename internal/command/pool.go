// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	awsapi "github.com/sspa/sspa/internal/aws"
	"github.com/sspa/sspa/internal/config"
	"github.com/sspa/sspa/internal/meta"
	"github.com/sspa/sspa/internal/pool"
	"github.com/sspa/sspa/internal/store"
	"github.com/sspa/sspa/internal/util"
)

// createPoolCommandAction is the action handler for "create_pool". It runs
// the identity-pool provisioning sequence against the given pool directory.
func createPoolCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	arg, err := RequiredArg(cmd, "dir", "sspa create_pool <dir>")
	if err != nil {
		return err
	}

	dir, poolName, err := util.ParsePoolDir(arg)
	if err != nil {
		return fmt.Errorf("parsing pool dir (%s): %w", arg, err)
	}

	config.Config.Namespace = "create_pool"

	awsCfg, err := loadAWSConfig(ctx, cmd)
	if err != nil {
		return err
	}

	prov := &pool.Provisioner{
		Cognito:  awsapi.NewCognitoIdentity(awsCfg),
		IAM:      awsapi.NewIAM(awsCfg),
		Dir:      store.NewDir(dir),
		PoolName: poolName,
	}

	return prov.Run(ctx)
}

// poolStatusCommandAction is the action handler for "pool_status". It reads
// only the local descriptor files; no AWS calls are made.
func poolStatusCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	arg, err := RequiredArg(cmd, "dir", "sspa pool_status <dir>")
	if err != nil {
		return err
	}

	dir, poolName, err := util.ParsePoolDir(arg)
	if err != nil {
		return fmt.Errorf("parsing pool dir (%s): %w", arg, err)
	}

	rep, err := pool.Status(store.NewDir(dir))
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "pool:    %s (%s)\n", poolName, rep.State.Pool)
	fmt.Fprintf(os.Stdout, "role:    %s (%s)\n", pool.RoleName(poolName), rep.State.Role)
	fmt.Fprintf(os.Stdout, "binding: %s\n", rep.State.Binding)
	if rep.Drift != "" {
		fmt.Fprintf(os.Stdout, "config drift against cached pool descriptor:\n%s", rep.Drift)
	}
	return nil
}

// createPoolCommandBuilder constructs the cli.Command for "create_pool",
// wiring metadata, flags, and the action handler.
func createPoolCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "create_pool",
		Usage:     "create a Cognito identity pool and its authenticated role",
		UsageText: "sspa create_pool <dir> [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewRegionFlag("create_pool"),
			NewProfileFlag("create_pool"),
		},
		Action: createPoolCommandAction,
	}
}

// poolStatusCommandBuilder constructs the cli.Command for "pool_status",
// wiring metadata and the action handler.
func poolStatusCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "pool_status",
		Usage:     "report provisioning state and config drift for a pool directory",
		UsageText: "sspa pool_status <dir>",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: poolStatusCommandAction,
	}
}
