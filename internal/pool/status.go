// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/sspa/sspa/internal/store"
)

// Report describes the observable provisioning state of a pool directory.
// The sequencer trusts cached descriptors blindly; Drift is how an operator
// finds out the cache was produced with a different config.
type Report struct {
	State store.State
	// Drift is a human-readable diff between config.json and the cached
	// pool descriptor, empty when they agree (or when either is absent).
	Drift string
}

// Status inspects the descriptor files in the directory and reports the
// per-resource state plus any config drift. It performs no AWS calls.
func Status(dir store.Dir) (Report, error) {
	state, err := dir.LoadState()
	if err != nil {
		return Report{}, err
	}

	// Descriptor presence is authoritative for creation state; the state
	// record only adds the binding, which leaves no descriptor behind.
	if dir.Exists(store.PoolFile) && state.Pool == store.NotStarted {
		state.Pool = store.Created
	}
	if dir.Exists(store.RoleFile) && state.Role == store.NotStarted {
		state.Role = store.Created
	}

	drift, err := configDrift(dir)
	if err != nil {
		return Report{}, err
	}

	return Report{State: state, Drift: drift}, nil
}

// configDrift diffs config.json against the cached pool descriptor,
// restricted to the keys the config actually sets. Returns "" when there is
// nothing to compare or nothing differs.
func configDrift(dir store.Dir) (string, error) {
	cfgDoc, ok, err := dir.Load(store.ConfigFile)
	if err != nil || !ok {
		return "", err
	}
	poolDoc, ok, err := dir.Load(store.PoolFile)
	if err != nil || !ok {
		return "", err
	}

	var cfg, desc map[string]interface{}
	if err := json.Unmarshal(cfgDoc, &cfg); err != nil {
		return "", fmt.Errorf("parsing %s: %w", store.ConfigFile, err)
	}
	if err := json.Unmarshal(poolDoc, &desc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", store.PoolFile, err)
	}

	// The descriptor carries server-assigned fields the config never had;
	// only keys present in the config can drift.
	observed := make(map[string]interface{}, len(cfg))
	for k := range cfg {
		if v, present := desc[k]; present {
			observed[k] = v
		}
	}

	diff := gojsondiff.New().CompareObjects(cfg, observed)
	if !diff.Modified() {
		return "", nil
	}

	out, err := formatter.NewAsciiFormatter(cfg, formatter.AsciiFormatterConfig{}).Format(diff)
	if err != nil {
		return "", fmt.Errorf("formatting drift: %w", err)
	}
	return out, nil
}
