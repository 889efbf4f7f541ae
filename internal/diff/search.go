// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

// Search finds a shortest edit script turning a into b.
//
// Diagonal k holds the points where col - row == k. A vertical move (delete)
// from diagonal k+1 or a horizontal move (insert) from diagonal k-1 lands on
// k, followed by a free slide along matching lines. Only the vertical or
// horizontal step is recorded as an Edit; the slide is not.
//
// If every script is longer than opts.MaxDistance the search stops with a
// *DistanceExceededError. If opts.MaxEdits nodes have been created and
// another is needed it stops with an *AllocationError. Neither a nor b is
// modified.
func Search(a, b []string, opts Options) (*Script, error) {
	m, n := len(a), len(b)
	eq := opts.Equal
	if eq == nil {
		eq = func(x, y string) bool { return x == y }
	}

	maxD := opts.MaxDistance
	if maxD < 0 || maxD > m+n {
		maxD = m + n
	}

	// Identical prefix. Reaching (m, n) here means no edits at all.
	row := 0
	for row < m && row < n && eq(a[row], b[row]) {
		row++
	}
	if row == m && row == n {
		return &Script{}, nil
	}

	// frontier and chains are indexed by k+origin; reads of k±1 stay
	// within [-(maxD+1), maxD+1].
	origin := maxD + 1
	frontier := make([]int, 2*origin+1)
	chains := make([]*Edit, 2*origin+1)
	frontier[origin] = row

	lower, upper := -1, 1
	if row == m {
		lower = 1 // A is exhausted, nothing below diagonal 0 can help
	}
	if row == n {
		upper = -1
	}

	nodes := 0
	for d := 1; d <= maxD; d++ {
		for k := lower; k <= upper; k += 2 {
			if opts.MaxEdits > 0 && nodes >= opts.MaxEdits {
				return nil, &AllocationError{Distance: d, Limit: opts.MaxEdits}
			}

			e := &Edit{}
			if k == -d || (k != d && frontier[origin+k+1] >= frontier[origin+k-1]) {
				// Down from diagonal k+1 reaches further along k.
				row = frontier[origin+k+1] + 1
				e.Op = OpDelete
				e.prev = chains[origin+k+1]
			} else {
				// Right from diagonal k-1.
				row = frontier[origin+k-1]
				e.Op = OpInsert
				e.prev = chains[origin+k-1]
			}
			col := row + k
			e.SourceLine = row
			e.TargetLine = col
			chains[origin+k] = e
			nodes++

			for row < m && col < n && eq(a[row], b[col]) {
				row++
				col++
			}
			frontier[origin+k] = row

			if row == m && col == n {
				return &Script{head: e, distance: d, nodes: nodes}, nil
			}

			if row == m {
				lower = k + 2
			}
			if col == n {
				upper = k - 2
			}
		}
		lower--
		upper++
	}

	return nil, &DistanceExceededError{Distance: maxD + 1}
}
