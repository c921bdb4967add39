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
	"github.com/sspa/sspa/internal/bucket"
	"github.com/sspa/sspa/internal/config"
	"github.com/sspa/sspa/internal/meta"
)

// newBucketService assembles the bucket service from the command's flags and
// loaded AWS config.
func newBucketService(ctx context.Context, cmd *cli.Command) (*bucket.Service, error) {
	awsCfg, err := loadAWSConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return &bucket.Service{
		S3:            awsapi.NewS3(awsCfg),
		Region:        awsCfg.Region,
		IndexDocument: cmd.String("index_document"),
		ErrorDocument: cmd.String("error_document"),
	}, nil
}

// createBucketCommandAction is the action handler for "create_bucket". It
// creates the bucket, configures static website hosting, and prints the
// website endpoint.
func createBucketCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	name, err := RequiredArg(cmd, "name", "sspa create_bucket <name>")
	if err != nil {
		return err
	}

	config.Config.Namespace = "create_bucket"

	svc, err := newBucketService(ctx, cmd)
	if err != nil {
		return err
	}

	endpoint, err := svc.Create(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, endpoint)
	return nil
}

// deployBucketCommandAction is the action handler for "deploy_bucket". It
// syncs the local app directory to the bucket, public-read, additive only.
func deployBucketCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	name, err := RequiredArg(cmd, "name", "sspa deploy_bucket <name>")
	if err != nil {
		return err
	}

	config.Config.Namespace = "deploy_bucket"

	svc, err := newBucketService(ctx, cmd)
	if err != nil {
		return err
	}

	return svc.Deploy(ctx, name, cmd.String("dir"))
}

// createBucketCommandBuilder constructs the cli.Command for "create_bucket",
// wiring metadata, flags, and the action handler.
func createBucketCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "create_bucket",
		Usage:     "create an S3 bucket configured as a public static website",
		UsageText: "sspa create_bucket <name> [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewIndexDocumentFlag("create_bucket"),
			NewErrorDocumentFlag("create_bucket"),
			NewRegionFlag("create_bucket"),
			NewProfileFlag("create_bucket"),
		},
		Action: createBucketCommandAction,
	}
}

// deployBucketCommandBuilder constructs the cli.Command for "deploy_bucket",
// wiring metadata, flags, and the action handler.
func deployBucketCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "deploy_bucket",
		Usage:     "sync the local app directory to the bucket",
		UsageText: "sspa deploy_bucket <name> [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewDirFlag("deploy_bucket"),
			NewRegionFlag("deploy_bucket"),
			NewProfileFlag("deploy_bucket"),
		},
		Action: deployBucketCommandAction,
	}
}

// NewIndexDocumentFlag constructs the website index document flag.
func NewIndexDocumentFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "index_document",
		Usage: "website index document name",
		Value: "index.html",
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, flag)
}

// NewErrorDocumentFlag constructs the website error document flag.
func NewErrorDocumentFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "error_document",
		Usage: "website error document name",
		Value: "error.html",
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, flag)
}

// NewDirFlag constructs the local app directory flag.
func NewDirFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "local directory holding the app",
		Value:   "public",
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, flag)
}
