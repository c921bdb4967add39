// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/sspa/sspa/internal/config"
	"github.com/sspa/sspa/internal/meta"
	"github.com/sspa/sspa/internal/server"
)

// serverCommandAction is the action handler for "server". It serves the
// local app directory over HTTP until interrupted.
func serverCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "server"

	return server.Serve(ctx, cmd.String("addr"), cmd.String("dir"))
}

// serverCommandBuilder constructs the cli.Command for "server", wiring
// metadata, flags, and the action handler.
func serverCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "server",
		Usage:     "serve the local app directory for development",
		UsageText: "sspa server [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewAddrFlag("server"),
			NewDirFlag("server"),
		},
		Action: serverCommandAction,
	}
}

// NewAddrFlag constructs the listen address flag.
func NewAddrFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "addr",
		Usage: "listen address",
		Value: "localhost:8080",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("SSPA_ADDR"),
		),
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, flag)
}
