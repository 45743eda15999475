// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package scheduler

import "errors"

// Configuration and launch errors (spec §7 "Configuration error" / "Internal
// assertion"). These are fatal: the caller is expected to surface them and
// stop, never retry.
var (
	// ErrUnknownFamily is returned by Launch and any family-scoped operation
	// given a family id that was never returned by RegisterFamily.
	ErrUnknownFamily = errors.New("scheduler: unknown family")

	// ErrLaunchActive is returned by Launch when another launch is already
	// running on the same Scheduler (invariant 4: at most one launch at a
	// time), and by Shutdown when called while a launch is active.
	ErrLaunchActive = errors.New("scheduler: a launch is already active")

	// ErrShutdown is returned by Launch, AddDependency, RemoveDependency and
	// ResizeFamily once Shutdown has been called.
	ErrShutdown = errors.New("scheduler: scheduler has been shut down")

	// ErrMissingObserver is returned by Launch when a family has an outgoing
	// dependency link with a nil observation function (§4.4 precondition).
	ErrMissingObserver = errors.New("scheduler: dependency link missing observation function")
)
