// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"errors"
	"fmt"
)

// ErrIdentical is returned by Compare when the two sequences need no edits.
var ErrIdentical = errors.New("the files are identical")

// DistanceError is implemented by errors that stop a search before it finds
// a script. MinDistance is a lower bound on the real edit distance.
type DistanceError interface {
	error
	MinDistance() int
}

// DistanceExceededError reports that every edit script is longer than the
// allowed maximum.
type DistanceExceededError struct {
	Distance int // the first distance the search was not allowed to try
}

func (e *DistanceExceededError) Error() string {
	return fmt.Sprintf("the files differ in at least %d lines", e.Distance)
}

// MinDistance implements DistanceError.
func (e *DistanceExceededError) MinDistance() int {
	return e.Distance
}

// AllocationError reports that the search used up its Edit node budget while
// working on Distance.
type AllocationError struct {
	Distance int
	Limit    int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("edit budget of %d nodes exhausted: the files differ in at least %d lines", e.Limit, e.Distance)
}

// MinDistance implements DistanceError.
func (e *AllocationError) MinDistance() int {
	return e.Distance
}
