// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the session, starts the background workers and hands the
// terminal to the UI until the user quits, then shuts everything down in
// reverse order.
package client
