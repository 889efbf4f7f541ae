// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Report styling for fcomp.

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/fcomp/internal/diff"
)

// Styles holds the lipgloss styles for one output stream.
type Styles struct {
	enabled bool

	// Inserted is used for "inserted after line N:" headers
	// Color: Green (#42)
	Inserted lipgloss.Style

	// Deleted is used for "Deleted line(s) ...:" headers
	// Color: Red (#196)
	Deleted lipgloss.Style

	// Changed is used for "Changed line(s) ...:" and "To:" headers
	// Color: Yellow/Orange (#214)
	Changed lipgloss.Style

	// Identical is used for "The files are identical."
	// Color: Green (#42)
	Identical lipgloss.Style

	// Differ is used for "The files differ in at least n lines."
	// Color: Red (#196)
	Differ lipgloss.Style
}

// NewStyles returns styles rendering to w with the given colour profile.
func NewStyles(w io.Writer, profile termenv.Profile) *Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	return &Styles{
		enabled: profile != termenv.Ascii,

		Inserted: r.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true),
		Deleted: r.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true),
		Changed: r.NewStyle().
			Foreground(lipgloss.Color("214")). // Yellow/Orange
			Bold(true),
		Identical: r.NewStyle().
			Foreground(lipgloss.Color("42")), // Green
		Differ: r.NewStyle().
			Foreground(lipgloss.Color("196")), // Red
	}
}

// Enabled reports whether the styles emit colour.
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Render applies style when colours are enabled.
func (s *Styles) Render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// Header decorates a change header line; it is nil when colours are off so
// the report is written untouched.
func (s *Styles) Header() func(diff.ChangeKind, string) string {
	if !s.enabled {
		return nil
	}
	return func(kind diff.ChangeKind, line string) string {
		switch kind {
		case diff.Inserted:
			return s.Inserted.Render(line)
		case diff.Deleted:
			return s.Deleted.Render(line)
		case diff.Changed:
			return s.Changed.Render(line)
		default:
			return line
		}
	}
}
