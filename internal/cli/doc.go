// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the fcomp command line.
//
// # Key Types
//
//   - ArgParser: flag and positional argument parsing
//   - Options: the fully resolved settings for one comparison
//   - ValidationError, ConfigError: errors mapped to exit codes
//
// # Usage
//
//	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
//
// Run loads the configuration, applies flags on top, reads both inputs,
// compares them and prints either "The files are identical." or the list of
// changes. It returns the process exit code.
package cli
