// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package extract pulls single string fields out of cached AWS JSON
// responses by dotted path. Absence and malformation are distinct error
// conditions.
package extract
