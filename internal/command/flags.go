// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/sspa/sspa/internal/config"
)

// NewRegionFlag constructs the "region" flag for a command, namespaced to the
// command in the config file. An unset region falls through to the AWS shared
// config chain (AWS_REGION, profile, IMDS).
func NewRegionFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region. Overrides the shared config chain",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("SSPA_REGION"),
		),
	}

	return NameSpacedValueChainFlagFromConfigFile(ns, flag)
}

// NewProfileFlag constructs the "profile" flag for a command, namespaced to
// the command in the config file.
func NewProfileFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS shared config profile. Overrides AWS_PROFILE",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("SSPA_PROFILE"),
		),
	}

	return NameSpacedValueChainFlagFromConfigFile(ns, flag)
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, flag *cli.StringFlag) *cli.StringFlag {
	path, err := config.Path()
	if err != nil {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
