// Snapshot bookkeeping.
//
// A Snapshot is one recorded version of the target plus the line range it
// occupies in the index file. Start and Stop are 0-based line numbers into
// the whole index (header included), with Stop exclusive, so
// Stop == Start + len(Content) always holds.
package fileverse

import (
	"fmt"
	"regexp"
	"slices"
)

// namePattern is what a range line can carry before its '>'.
var namePattern = regexp.MustCompile(`\A\w+\z`)

// ValidName reports whether name survives a round trip through the header.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Snapshot is one entry of a Chain.
type Snapshot struct {
	Start    int      // first content line in the index file
	Stop     int      // one past the last content line
	Name     string   // optional, unique within the chain
	Template bool     // declared with a template> prefix
	Content  []string // lines, without terminators
}

// Len returns the number of content lines.
func (s *Snapshot) Len() int {
	return len(s.Content)
}

// setContent replaces the content and moves Stop with it.
func (s *Snapshot) setContent(content []string) {
	s.Content = slices.Clone(content)
	s.Stop = s.Start + len(s.Content)
}

// setStart moves the whole range so that it begins at start.
func (s *Snapshot) setStart(start int) {
	s.Start = start
	s.Stop = start + len(s.Content)
}

// rangeLine renders the header line declaring this entry.
func (s *Snapshot) rangeLine() string {
	switch {
	case s.Template:
		return fmt.Sprintf("%s%s> %d ~> %d", templatePrefix, s.Name, s.Start, s.Stop)
	case s.Name != "":
		return fmt.Sprintf("%s>%d ~> %d", s.Name, s.Start, s.Stop)
	default:
		return fmt.Sprintf("%d ~> %d", s.Start, s.Stop)
	}
}
