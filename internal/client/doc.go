// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

// Package client implements the headless agent runtime.
//
// It wires the location sampler, local storages, client services, and the
// voice capture session into a single process lifecycle that runs until a
// termination signal arrives.
package client
