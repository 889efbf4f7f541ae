// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"fmt"
	"iter"
)

// =============================================================================
// CHANGE RECORDS
// =============================================================================

// ChangeKind classifies a block of the report.
type ChangeKind uint8

const (
	// Inserted lines of B with no matching deletion.
	Inserted ChangeKind = iota + 1
	// Deleted lines of A with no replacement.
	Deleted
	// Changed lines of A replaced by lines of B at the same place.
	Changed
)

// String returns the string representation of a change kind.
func (k ChangeKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Deleted:
		return "deleted"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// Change is one block of the report.
//
// For Deleted and Changed, From and To are the first and last affected lines
// of A. For Inserted, From == To is the line of A after which New goes.
type Change struct {
	Kind ChangeKind
	From int
	To   int
	Old  []string // lines of A; nil for Inserted
	New  []string // lines of B; nil for Deleted
}

// Header returns the title line of the block, without a trailing newline.
func (c Change) Header() string {
	switch c.Kind {
	case Inserted:
		return fmt.Sprintf("inserted after line %d:", c.From)
	case Deleted:
		return "Deleted " + c.span() + ":"
	case Changed:
		return "Changed " + c.span() + ":"
	default:
		return ""
	}
}

func (c Change) span() string {
	if c.From == c.To {
		return fmt.Sprintf("line %d", c.From)
	}
	return fmt.Sprintf("lines %d-%d", c.From, c.To)
}

// =============================================================================
// GROUPING
// =============================================================================

// Changes groups an oldest-first edit script into report blocks.
//
// Deletes of consecutive lines of A form one block. If the next step is an
// insert anchored at the block's last deleted line, the block and that run of
// inserts become a single Changed record; otherwise the block is Deleted.
// Inserts not claimed by a deletion block become Inserted records, one per
// anchor.
//
// The sequence is computed lazily and can be ranged over once; a and b must
// stay unchanged while it is consumed.
func Changes(edits []Edit, a, b []string) iter.Seq[Change] {
	return func(yield func(Change) bool) {
		i := 0
		for i < len(edits) {
			var c Change
			if edits[i].Op == OpInsert {
				c, i = insertRun(edits, i, b, Inserted)
			} else {
				c, i = deleteRun(edits, i, a, b)
			}
			if !yield(c) {
				return
			}
		}
	}
}

// deleteRun consumes a block of consecutive deletes starting at edits[i] and,
// if it is immediately replaced, the inserts that replace it.
func deleteRun(edits []Edit, i int, a, b []string) (Change, int) {
	start := i
	i++
	for i < len(edits) && edits[i].Op == OpDelete && edits[i].SourceLine == edits[i-1].SourceLine+1 {
		i++
	}
	first, last := edits[start].SourceLine, edits[i-1].SourceLine

	old := make([]string, 0, i-start)
	for _, e := range edits[start:i] {
		old = append(old, a[e.SourceLine-1])
	}

	if i < len(edits) && edits[i].Op == OpInsert && edits[i].SourceLine == last {
		ins, next := insertRun(edits, i, b, Changed)
		ins.From, ins.To, ins.Old = first, last, old
		return ins, next
	}
	return Change{Kind: Deleted, From: first, To: last, Old: old}, i
}

// insertRun consumes the inserts sharing the anchor of edits[i].
func insertRun(edits []Edit, i int, b []string, kind ChangeKind) (Change, int) {
	anchor := edits[i].SourceLine
	start := i
	for i < len(edits) && edits[i].Op == OpInsert && edits[i].SourceLine == anchor {
		i++
	}
	lines := make([]string, 0, i-start)
	for _, e := range edits[start:i] {
		lines = append(lines, b[e.TargetLine-1])
	}
	return Change{Kind: kind, From: anchor, To: anchor, New: lines}, i
}

// Compare runs Search, materializes the script and groups it.
//
// It returns ErrIdentical when no edits are needed, and the search error
// when the distance or node budget is exceeded. The returned Script is
// non-nil whenever the search succeeded.
func Compare(a, b []string, opts Options) (iter.Seq[Change], *Script, error) {
	script, err := Search(a, b, opts)
	if err != nil {
		return nil, nil, err
	}
	if script.Identical() {
		return nil, script, ErrIdentical
	}
	return Changes(script.Edits(), a, b), script, nil
}
