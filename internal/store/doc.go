// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package store manages the descriptor files cached inside an identity-pool
// configuration directory. Descriptors are written atomically
// (write-temp-then-rename) and an empty file is always read as "not yet
// created" rather than trusted as a cached response.
package store
