// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sspa/sspa/internal/command"
	"github.com/sspa/sspa/internal/log"
	"github.com/sspa/sspa/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleUnknownAction rewrites the argument list to --help when no action is
// given or the action is not one we dispatch. Help on a bad action is a clean
// exit, not an error.
func handleUnknownAction(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	if strings.HasPrefix(args[1], "-") {
		return args
	}
	if !command.KnownAction(args[1]) {
		return append(args[:1], "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 1
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleUnknownAction(args)

	return initAndRunApp(args)
}
