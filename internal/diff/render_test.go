// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func render(t *testing.T, a, b []string, opts RenderOptions) (string, int) {
	t.Helper()
	changes, _, err := Compare(a, b, Options{MaxDistance: Unbounded})
	require.NoError(t, err)
	var buf bytes.Buffer
	n, err := WriteChanges(&buf, changes, opts)
	require.NoError(t, err)
	return buf.String(), n
}

func TestWriteChanges_Formats(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected string
	}{
		{
			name:     "changed",
			a:        []string{"a", "b", "c"},
			b:        []string{"a", "x", "c"},
			expected: "Changed line 2:\n b\nTo:\n x\n",
		},
		{
			name:     "deleted",
			a:        []string{"a", "b", "c"},
			b:        []string{"a", "c"},
			expected: "Deleted line 2:\n b\n",
		},
		{
			name:     "inserted",
			a:        []string{"a", "c"},
			b:        []string{"a", "b", "c"},
			expected: "inserted after line 1:\n b\n",
		},
		{
			name:     "deleted block",
			a:        []string{"a", "b", "c", "d"},
			b:        []string{"a", "d"},
			expected: "Deleted lines 2-3:\n b\n c\n",
		},
		{
			name: "several blocks",
			a:    []string{"a", "b"},
			b:    []string{"b", "c"},
			expected: "Deleted line 1:\n a\n" +
				"inserted after line 2:\n c\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := render(t, tt.a, tt.b, RenderOptions{})
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestWriteChanges_CountsRecords(t *testing.T) {
	_, n := render(t, []string{"a", "b"}, []string{"b", "c"}, RenderOptions{})
	require.Equal(t, 2, n)
}

func TestWriteChanges_Width(t *testing.T) {
	a := []string{"keep", strings.Repeat("x", 40)}
	b := []string{"keep"}

	got, _ := render(t, a, b, RenderOptions{Width: 10})
	require.Equal(t, "Deleted line 2:\n xxxxxxx...\n", got)
}

func TestWriteChanges_HeaderDecorator(t *testing.T) {
	var kinds []ChangeKind
	opts := RenderOptions{
		Header: func(kind ChangeKind, line string) string {
			kinds = append(kinds, kind)
			return "<" + line + ">"
		},
	}

	got, _ := render(t, []string{"a", "b", "c"}, []string{"a", "x", "c"}, opts)
	require.Equal(t, "<Changed line 2:>\n b\n<To:>\n x\n", got)
	require.Equal(t, []ChangeKind{Changed, Changed}, kinds)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteChanges_WriteError(t *testing.T) {
	changes := slices.Values([]Change{{Kind: Deleted, From: 1, To: 1, Old: []string{"a"}}})
	_, err := WriteChanges(failingWriter{}, changes, RenderOptions{})
	require.EqualError(t, err, "disk full")
}

func TestWriteChanges_StopsAfterWriteError(t *testing.T) {
	const total = 10000
	pulled := 0
	changes := func(yield func(Change) bool) {
		for i := 1; i <= total; i++ {
			pulled++
			if !yield(Change{Kind: Inserted, From: i, To: i, New: []string{"x"}}) {
				return
			}
		}
	}

	n, err := WriteChanges(failingWriter{}, changes, RenderOptions{})
	require.EqualError(t, err, "disk full")
	require.Less(t, pulled, total, "records after the failure are not pulled")
	require.Equal(t, pulled-1, n, "the failing record is not counted")
}
