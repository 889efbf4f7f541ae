// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the fcomp packages.
//
// # Key Functions
//
//   - TruncateWidth: cut a line to a number of terminal columns
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	// Keep report lines inside an 80 column terminal
//	line = util.TruncateWidth(line, 78)
//
//	// Write the config file without leaving a half-written copy behind
//	err := util.AtomicWriteFile(path, data, 0600)
package util
