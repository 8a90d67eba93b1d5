// Line diff between a snapshot and the target.
//
// Lines are mapped to runes before diffing so the result is aligned on
// whole lines, then mapped back.
package fileverse

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp is the kind of change a DiffLine represents.
type DiffOp int

const (
	DiffEqual DiffOp = iota
	DiffInsert
	DiffDelete
)

// DiffLine is one line of a diff.
type DiffLine struct {
	Op   DiffOp
	Text string
}

// DiffLines compares old with new line by line.
func DiffLines(old, new []string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(joinLines(old), joinLines(new))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		op := DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			out = append(out, DiffLine{Op: op, Text: strings.TrimSuffix(l, "\n")})
		}
	}
	return out
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Diff compares the snapshot under the cursor (old) with the target's main
// content (new).
func (s *Store) Diff() ([]DiffLine, error) {
	c, err := s.index(FileIndex)
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	old, err := c.CursorContent()
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	p, err := s.target()
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	return DiffLines(old, p.MainLines()), nil
}
