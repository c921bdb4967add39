// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/sspa/sspa/internal/config"
	"github.com/sspa/sspa/internal/meta"
)

// actions are the dispatchable action names. Anything else gets help text.
var actions = []string{
	"server",
	"create_bucket",
	"deploy_bucket",
	"create_pool",
	"pool_status",
}

// KnownAction reports whether name is an action this app dispatches.
func KnownAction(name string) bool {
	if name == "help" || name == "h" {
		return true
	}
	for _, a := range actions {
		if a == name {
			return true
		}
	}
	return false
}

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the sspa
	// action and also represents the namespace key to be used when retrieving
	// config values. arg[1] could be -h/--help, so ignore it if it appears to
	// be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns) //nolint
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "sspa",
		Usage: "provision and deploy a static single-page application on AWS",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "sspa version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		serverCommandBuilder(m),
		createBucketCommandBuilder(m),
		deployBucketCommandBuilder(m),
		createPoolCommandBuilder(m),
		poolStatusCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
