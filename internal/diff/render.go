// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"bufio"
	"io"
	"iter"

	"github.com/jeranaias/fcomp/internal/util"
)

// RenderOptions controls WriteChanges.
type RenderOptions struct {
	// Width truncates each content line to this many display columns.
	// Zero or negative leaves lines untouched.
	Width int

	// Header decorates header lines ("Changed lines 2-3:", "To:", ...).
	// Nil writes them as is.
	Header func(kind ChangeKind, line string) string
}

// WriteChanges writes each record in report form and returns how many
// records were written:
//
//	inserted after line 1:
//	 b
//	Deleted lines 2-3:
//	 b
//	 c
//	Changed line 2:
//	 b
//	To:
//	 x
//
// Content lines are prefixed by a single space. WriteChanges stops pulling
// records as soon as a write fails.
func WriteChanges(w io.Writer, changes iter.Seq[Change], opts RenderOptions) (int, error) {
	bw := bufio.NewWriter(w)
	var err error
	write := func(s string) {
		if err == nil {
			_, err = bw.WriteString(s)
		}
	}
	header := func(kind ChangeKind, s string) {
		if opts.Header != nil {
			s = opts.Header(kind, s)
		}
		write(s)
		write("\n")
	}
	body := func(lines []string) {
		for _, line := range lines {
			if opts.Width > 0 {
				line = util.TruncateWidth(line, opts.Width)
			}
			write(" ")
			write(line)
			write("\n")
		}
	}

	count := 0
	for c := range changes {
		header(c.Kind, c.Header())
		switch c.Kind {
		case Inserted:
			body(c.New)
		case Deleted:
			body(c.Old)
		case Changed:
			body(c.Old)
			header(c.Kind, "To:")
			body(c.New)
		}
		if err != nil {
			return count, err
		}
		count++
	}
	return count, bw.Flush()
}
