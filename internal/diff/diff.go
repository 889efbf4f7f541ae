// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import "fmt"

// =============================================================================
// EDIT OPERATIONS
// =============================================================================

// Op is a single step in an edit script.
type Op uint8

const (
	// OpInsert inserts a line of the target after a line of the source.
	OpInsert Op = iota + 1
	// OpDelete deletes a line of the source.
	OpDelete
)

// String returns the string representation of an edit operation.
func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Edit is one step of an edit script. Line numbers are 1-based.
//
// For OpDelete, SourceLine is the deleted line of A and TargetLine is the
// number of lines of B already consumed. For OpInsert, SourceLine is the line
// of A after which the text goes (0 means before the first line) and
// TargetLine is the inserted line of B.
//
// Edits produced by Search are immutable once linked into a chain.
type Edit struct {
	Op         Op
	SourceLine int
	TargetLine int

	prev *Edit // older step on the same path; shared between diagonals
}

func (e Edit) String() string {
	return fmt.Sprintf("%s %d/%d", e.Op, e.SourceLine, e.TargetLine)
}

// =============================================================================
// SEARCH OPTIONS
// =============================================================================

// Unbounded lets the search run up to len(a)+len(b) edits.
const Unbounded = -1

// Options bounds and parameterizes a search.
type Options struct {
	// MaxDistance is the largest edit distance the search will consider.
	// Zero only accepts identical inputs. Negative (Unbounded) means
	// len(a)+len(b), which always succeeds.
	MaxDistance int

	// MaxEdits caps the number of Edit nodes the search may create.
	// Zero or negative means unbounded.
	MaxEdits int

	// Equal reports whether two lines match. Nil means exact equality.
	Equal func(a, b string) bool
}

// =============================================================================
// SCRIPT
// =============================================================================

// Stats counts the operations of a script.
type Stats struct {
	Inserted int
	Deleted  int
}

// Script is the winning path of a search.
type Script struct {
	head     *Edit // newest step
	distance int
	nodes    int // nodes created during the search
}

// Distance returns the length D of the shortest edit script.
func (s *Script) Distance() int {
	return s.distance
}

// Identical reports whether the two sequences matched without any edits.
func (s *Script) Identical() bool {
	return s.head == nil
}

// Nodes returns how many Edit nodes the search allocated, including those on
// paths that did not win.
func (s *Script) Nodes() int {
	return s.nodes
}

// Edits returns the script oldest step first.
//
// The shared chain is walked, not rewritten: the result is a private copy and
// the chain's nodes stay valid for any other holder. Each call walks the chain
// again, so callers that need the slice more than once should keep it.
func (s *Script) Edits() []Edit {
	n := 0
	for e := s.head; e != nil; e = e.prev {
		n++
	}
	out := make([]Edit, n)
	for e := s.head; e != nil; e = e.prev {
		n--
		out[n] = Edit{Op: e.Op, SourceLine: e.SourceLine, TargetLine: e.TargetLine}
	}
	return out
}

// Stats returns operation counts for the script.
func (s *Script) Stats() Stats {
	var st Stats
	for e := s.head; e != nil; e = e.prev {
		switch e.Op {
		case OpInsert:
			st.Inserted++
		case OpDelete:
			st.Deleted++
		}
	}
	return st
}
