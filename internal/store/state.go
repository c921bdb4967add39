// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Status is the provisioning state of one remote resource.
type Status string

const (
	NotStarted Status = "not_started"
	Created    Status = "created"
	Bound      Status = "bound"
)

// State records where the provisioning sequence got to for a pool directory.
// It is persisted after every step so an operator can see at a glance what a
// re-run would skip. The descriptor files remain the source of truth for the
// skip decisions themselves.
type State struct {
	Pool    Status `json:"pool"`
	Role    Status `json:"role"`
	Binding Status `json:"binding"`
}

// NewState returns a State with every resource not started.
func NewState() State {
	return State{Pool: NotStarted, Role: NotStarted, Binding: NotStarted}
}

// LoadState reads the persisted state record, returning a zero state when the
// record is missing or empty.
func (d Dir) LoadState() (State, error) {
	doc, ok, err := d.Load(StateFile)
	if err != nil {
		return NewState(), err
	}
	if !ok {
		return NewState(), nil
	}

	var s State
	if err := json.Unmarshal(doc, &s); err != nil {
		return NewState(), fmt.Errorf("parsing %s: %w", StateFile, err)
	}
	return s, nil
}

// SaveState persists the state record atomically.
func (d Dir) SaveState(s State) error {
	doc, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	return d.Write(StateFile, doc)
}
