// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/sspa/sspa/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI
// arguments, loaded configuration, context, and the starting working
// directory. Commands receive everything they need through Meta and flags
// instead of reading ambient process state.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}
