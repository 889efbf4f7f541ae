// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and validation for fcomp.
//
// Settings come from a TOML file, environment variables and built-in
// defaults. Command-line flags are applied on top by the cli package.
//
// # Key Types
//
//   - Config: all settings
//   - DiffConfig: search bounds and line matching
//   - InputConfig: input size limit and normalization
//   - UIConfig: colour and line width of the report
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (FCOMP_*)
//   - ~/.fcomp/config.toml, or the file named by --config / FCOMP_CONFIG
//   - Built-in defaults
//
// Keys missing from the file keep their default. max_distance = -1 means
// "no limit" and 0 accepts only identical files; for the other numeric
// bounds 0 means "no limit".
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	opts := diff.Options{MaxDistance: cfg.Diff.MaxDistance}
package config
