// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes the shortest edit script between two sequences of
// lines and renders it as a list of inserted, deleted and changed blocks.
//
// The search is the greedy O(N·D) diagonal algorithm due to Eugene Myers.
// Each diagonal keeps a persistent chain of the Insert/Delete steps on its
// furthest-reaching path; chains share suffixes, so extending a path never
// copies its history.
//
// # Key Types
//
//   - Edit: one Insert or Delete step, with 1-based line numbers
//   - Script: the winning chain of a search, plus its edit distance
//   - Change: an Inserted, Deleted or Changed block of lines
//   - Options: edit distance bound, node budget and line equality
//
// # Usage
//
// Compare two line slices and print the report:
//
//	changes, script, err := diff.Compare(a, b, diff.Options{MaxDistance: 50})
//	switch {
//	case errors.Is(err, diff.ErrIdentical):
//	    fmt.Println("The files are identical.")
//	case err != nil:
//	    var de diff.DistanceError
//	    if errors.As(err, &de) {
//	        fmt.Printf("The files differ in at least %d lines.\n", de.MinDistance())
//	    }
//	default:
//	    diff.WriteChanges(os.Stdout, changes, diff.RenderOptions{})
//	    _ = script.Distance()
//	}
//
// # Consumption
//
// A Script is produced once per comparison. Script.Edits returns a private,
// oldest-first copy of the winning chain and never rewrites the shared
// nodes. The sequence returned by Changes is lazy and single pass.
package diff
