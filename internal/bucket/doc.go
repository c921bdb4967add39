// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package bucket creates and configures S3 static-website buckets and
// performs the one-way additive deploy of a local directory.
package bucket
