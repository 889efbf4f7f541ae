// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection and colour control for fcomp.
//
// Colour is decided per output stream:
// - --color always / never wins
// - NO_COLOR disables colours (https://no-color.org/)
// - FORCE_COLOR enables them
// - otherwise colours are used only when the stream is a terminal

package cli

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jeranaias/fcomp/internal/config"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

// ColorsEnabled reports whether output written to w should be coloured under
// the given mode (auto, always or never).
func ColorsEnabled(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	// NO_COLOR takes precedence (any non-empty value disables colors)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return IsTerminal(w)
}

// ColorProfile returns the termenv profile to render w with.
// Returns Ascii (no colors) when colours are disabled.
func ColorProfile(mode string, w io.Writer) termenv.Profile {
	if !ColorsEnabled(mode, w) {
		return termenv.Ascii
	}
	profile := termenv.NewOutput(w, termenv.WithTTY(true)).EnvColorProfile()
	if profile == termenv.Ascii {
		// Forced on, but TERM says nothing useful: basic ANSI is safe.
		return termenv.ANSI
	}
	return profile
}
