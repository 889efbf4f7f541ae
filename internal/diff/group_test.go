// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, a, b []string) []Change {
	t.Helper()
	changes, script, err := Compare(a, b, Options{MaxDistance: Unbounded})
	require.NoError(t, err)
	require.NotNil(t, script)
	return slices.Collect(changes)
}

func TestChanges_Grouping(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected []Change
	}{
		{
			name:     "changed single line",
			a:        []string{"a", "b", "c"},
			b:        []string{"a", "x", "c"},
			expected: []Change{{Kind: Changed, From: 2, To: 2, Old: []string{"b"}, New: []string{"x"}}},
		},
		{
			name:     "pure deletion",
			a:        []string{"a", "b", "c"},
			b:        []string{"a", "c"},
			expected: []Change{{Kind: Deleted, From: 2, To: 2, Old: []string{"b"}}},
		},
		{
			name:     "pure insertion",
			a:        []string{"a", "c"},
			b:        []string{"a", "b", "c"},
			expected: []Change{{Kind: Inserted, From: 1, To: 1, New: []string{"b"}}},
		},
		{
			name:     "multi-line deletion",
			a:        []string{"a", "b", "c", "d"},
			b:        []string{"a", "d"},
			expected: []Change{{Kind: Deleted, From: 2, To: 3, Old: []string{"b", "c"}}},
		},
		{
			name: "multi-line change",
			a:    []string{"a", "b", "c", "d"},
			b:    []string{"a", "x", "y", "d"},
			expected: []Change{
				{Kind: Changed, From: 2, To: 3, Old: []string{"b", "c"}, New: []string{"x", "y"}},
			},
		},
		{
			name: "insert before first line",
			a:    []string{"b", "c"},
			b:    []string{"a", "b", "c"},
			expected: []Change{
				{Kind: Inserted, From: 0, To: 0, New: []string{"a"}},
			},
		},
		{
			name: "deletion then insertion elsewhere",
			a:    []string{"a", "b"},
			b:    []string{"b", "c"},
			expected: []Change{
				{Kind: Deleted, From: 1, To: 1, Old: []string{"a"}},
				{Kind: Inserted, From: 2, To: 2, New: []string{"c"}},
			},
		},
		{
			name: "everything replaced",
			a:    []string{"a", "b"},
			b:    []string{"x", "y", "z"},
			expected: []Change{
				{Kind: Changed, From: 1, To: 2, Old: []string{"a", "b"}, New: []string{"x", "y", "z"}},
			},
		},
		{
			name: "source empty",
			a:    nil,
			b:    []string{"x", "y"},
			expected: []Change{
				{Kind: Inserted, From: 0, To: 0, New: []string{"x", "y"}},
			},
		},
		{
			name: "target empty",
			a:    []string{"x", "y"},
			b:    nil,
			expected: []Change{
				{Kind: Deleted, From: 1, To: 2, Old: []string{"x", "y"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, collect(t, tt.a, tt.b))
		})
	}
}

func TestChanges_NonContiguousDeletesSplit(t *testing.T) {
	edits := []Edit{
		{Op: OpDelete, SourceLine: 2, TargetLine: 1},
		{Op: OpDelete, SourceLine: 4, TargetLine: 2},
		{Op: OpInsert, SourceLine: 4, TargetLine: 3},
		{Op: OpInsert, SourceLine: 5, TargetLine: 5},
	}
	a := []string{"a", "b", "c", "d", "e"}
	b := []string{"a", "c", "D", "e", "f"}

	got := slices.Collect(Changes(edits, a, b))
	require.Equal(t, []Change{
		{Kind: Deleted, From: 2, To: 2, Old: []string{"b"}},
		{Kind: Changed, From: 4, To: 4, Old: []string{"d"}, New: []string{"D"}},
		{Kind: Inserted, From: 5, To: 5, New: []string{"f"}},
	}, got)
}

func TestChanges_InsertAtOtherAnchorIsNotAChange(t *testing.T) {
	// Insert anchored before the deleted line: the delete block stays Deleted.
	edits := []Edit{
		{Op: OpDelete, SourceLine: 3, TargetLine: 2},
		{Op: OpInsert, SourceLine: 2, TargetLine: 3},
	}
	a := []string{"a", "b", "c"}
	b := []string{"a", "b", "x"}

	got := slices.Collect(Changes(edits, a, b))
	require.Equal(t, []Change{
		{Kind: Deleted, From: 3, To: 3, Old: []string{"c"}},
		{Kind: Inserted, From: 2, To: 2, New: []string{"x"}},
	}, got)
}

func TestChanges_StopsEarly(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e"}
	b := []string{"x", "b", "y", "d", "z"}

	changes, _, err := Compare(a, b, Options{MaxDistance: Unbounded})
	require.NoError(t, err)

	seen := 0
	for range changes {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}

func TestChanges_CoverScriptInOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 42))

	for i := 0; i < 300; i++ {
		a := randomLines(r, 10, "abc")
		b := randomLines(r, 10, "abc")
		script, err := Search(a, b, Options{MaxDistance: Unbounded})
		require.NoError(t, err)

		deleted, inserted := 0, 0
		prev := -1
		for c := range Changes(script.Edits(), a, b) {
			require.GreaterOrEqual(t, c.From, prev, "records ascend in A")
			require.LessOrEqual(t, c.From, c.To)
			prev = c.To
			deleted += len(c.Old)
			inserted += len(c.New)

			switch c.Kind {
			case Inserted:
				require.Empty(t, c.Old)
				require.NotEmpty(t, c.New)
				require.Equal(t, c.From, c.To)
			case Deleted:
				require.Empty(t, c.New)
				require.Len(t, c.Old, c.To-c.From+1)
			case Changed:
				require.NotEmpty(t, c.New)
				require.Len(t, c.Old, c.To-c.From+1)
			}
		}

		st := script.Stats()
		require.Equal(t, st.Deleted, deleted)
		require.Equal(t, st.Inserted, inserted)
	}
}

func TestChange_Header(t *testing.T) {
	tests := []struct {
		change   Change
		expected string
	}{
		{Change{Kind: Inserted, From: 0, To: 0}, "inserted after line 0:"},
		{Change{Kind: Inserted, From: 7, To: 7}, "inserted after line 7:"},
		{Change{Kind: Deleted, From: 2, To: 2}, "Deleted line 2:"},
		{Change{Kind: Deleted, From: 2, To: 3}, "Deleted lines 2-3:"},
		{Change{Kind: Changed, From: 4, To: 4}, "Changed line 4:"},
		{Change{Kind: Changed, From: 4, To: 9}, "Changed lines 4-9:"},
		{Change{}, ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.change.Header())
	}
}

func TestKindStrings(t *testing.T) {
	require.Equal(t, "inserted", Inserted.String())
	require.Equal(t, "deleted", Deleted.String())
	require.Equal(t, "changed", Changed.String())
	require.Equal(t, "unknown", ChangeKind(0).String())
	require.Equal(t, "insert", OpInsert.String())
	require.Equal(t, "delete", OpDelete.String())
	require.Equal(t, "unknown", Op(0).String())
}
