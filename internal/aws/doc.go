// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws contains AWS config loading and narrow per-service client
// interfaces used by the provisioning and deployment code.
package aws
