// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package source loads the two inputs of a comparison as line slices.
//
// Lines are split on '\n' and do not include the terminator. A final line
// without a newline is kept. Inputs longer than Options.MaxLines are refused
// with a *TooLargeError instead of being silently cut.
//
// # Usage
//
//	a, err := source.ReadFile("old.txt", source.Options{MaxLines: 2000})
//	if err != nil {
//	    return err
//	}
package source
