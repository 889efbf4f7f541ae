// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ARG PARSER TESTS
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name: "two files",
			args: []string{"a.txt", "b.txt"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, 2, p.PositionalCount())
				assert.Equal(t, "a.txt", p.Positional(0))
				assert.Equal(t, "b.txt", p.Positional(1))
				assert.Equal(t, "", p.Positional(2))
				assert.Equal(t, "", p.Positional(-1))
			},
		},
		{
			name: "value flag with space",
			args: []string{"--width", "72", "a", "b"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "72", p.Flag("width"))
				assert.Equal(t, 2, p.PositionalCount())
			},
		},
		{
			name: "value flag with equals",
			args: []string{"--color=never", "a", "b"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "never", p.Flag("color"))
			},
		},
		{
			name: "boolean does not swallow the next argument",
			args: []string{"-i", "a", "b"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.True(t, p.BoolFlag("ignore-case"))
				assert.Equal(t, 2, p.PositionalCount())
			},
		},
		{
			name: "explicit boolean",
			args: []string{"--normalize=false", "a", "b"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.False(t, p.BoolFlag("normalize"))
				assert.True(t, p.HasFlag("normalize"))
			},
		},
		{
			name: "grouped short booleans",
			args: []string{"-iwv", "a", "b"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.True(t, p.BoolFlag("ignore-case"))
				assert.True(t, p.BoolFlag("ignore-space"))
				assert.True(t, p.BoolFlag("verbose"))
			},
		},
		{
			name: "numeric bound",
			args: []string{"-25", "a", "b"},
			validate: func(t *testing.T, p *ArgParser) {
				n, ok := p.Bound()
				assert.True(t, ok)
				assert.Equal(t, 25, n)
			},
		},
		{
			name: "no bound",
			args: []string{"a", "b"},
			validate: func(t *testing.T, p *ArgParser) {
				_, ok := p.Bound()
				assert.False(t, ok)
				assert.False(t, p.HasFlag("width"))
			},
		},
		{
			name: "stdin and terminator",
			args: []string{"-", "--", "-i"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, []string{"-", "-i"}, []string{p.Positional(0), p.Positional(1)})
				assert.False(t, p.BoolFlag("ignore-case"))
			},
		},
		{
			name: "value may start with a dash",
			args: []string{"--max-lines", "-1"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "-1", p.Flag("max-lines"))
				_, ok := p.Bound()
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewArgParser(tt.args, flagSpecs)
			require.NoError(t, err)
			assert.Equal(t, tt.args, p.Raw())
			tt.validate(t, p)
		})
	}
}

func TestArgParser_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"unknown long", []string{"--frobnicate", "a", "b"}, "option"},
		{"unknown short", []string{"-z", "a", "b"}, "option"},
		{"group with value flag", []string{"-ix", "a", "b"}, "option"},
		{"missing value", []string{"a", "b", "--width"}, "--width"},
		{"bad boolean", []string{"--ignore-case=maybe"}, "--ignore-case"},
		{"signed bound", []string{"-+3", "a", "b"}, "option"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArgParser(tt.args, flagSpecs)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestArgParser_FlagInt(t *testing.T) {
	p, err := NewArgParser([]string{"--width", "80", "--max-lines", "many"}, flagSpecs)
	require.NoError(t, err)

	n, err := p.FlagInt("width")
	require.NoError(t, err)
	assert.Equal(t, 80, n)

	_, err = p.FlagInt("max-lines")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "many", ve.Value)

	_, err = p.FlagInt("max-edits")
	assert.Error(t, err)
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"true", "YES", "y", "1", "on"} {
		b, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, b, s)
	}
	for _, s := range []string{"false", "No", "n", "0", " off "} {
		b, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, b, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
