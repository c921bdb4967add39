// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	awsapi "github.com/sspa/sspa/internal/aws"
	"github.com/sspa/sspa/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// RequiredArg returns the first positional argument or an error naming the
// missing argument with a usage hint.
func RequiredArg(cmd *cli.Command, name, usage string) (string, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return "", fmt.Errorf("missing required argument <%s>\nusage: %s", name, usage)
	}
	return arg, nil
}

// loadAWSConfig loads AWS config honoring the command's region and profile
// flags.
func loadAWSConfig(ctx context.Context, cmd *cli.Command) (awsv2.Config, error) {
	var opts []awsapi.Option
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, awsapi.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, awsapi.WithRegion(r))
	}
	return awsapi.LoadAWSConfig(ctx, opts...)
}
