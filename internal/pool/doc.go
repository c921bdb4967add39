// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package pool provisions a Cognito identity pool and its authenticated IAM
// role from a local configuration directory, caching each creation response
// as the idempotency marker for re-runs.
package pool
