// Header codec for the index file.
//
// An index file is laid out as:
//
//	<######<cursor>
//	template>NAME> START ~> STOP     (zero or more, template indexes only)
//	[NAME>]START ~> STOP             (zero or more)
//	######>
//	<content of every entry, concatenated in declared order>
//
// START and STOP are 0-based line numbers into the whole file with STOP
// exclusive, so the first entry starts right after the close line and the
// last entry stops at the total line count. Parse checks every declared
// range against the running line counter, which makes the header
// self-verifying: a missing, extra or shifted line anywhere is reported
// rather than silently misattributed to a neighbouring snapshot.
package fileverse

import (
	"fmt"
	"regexp"
	"strconv"
)

// Header tags.
const (
	OpenTag        = "<######"
	CloseTag       = "######>"
	templatePrefix = "template>"
)

var (
	openPattern     = regexp.MustCompile(`\A<#{6}(-?\d+)\z`)
	rangePattern    = regexp.MustCompile(`\A\s*(?:(\w*)>)?\s*(\d+)\s*~>\s*(\d+)\s*\z`)
	templatePattern = regexp.MustCompile(`\A\s*template>(\w+)>\s*(\d+)\s*~>\s*(\d+)\s*\z`)
)

// lineReader hands out lines one at a time and counts them, so that errors
// can name the 0-based line where parsing stopped.
type lineReader struct {
	lines []string
	index int
}

func (r *lineReader) next() (string, bool) {
	if r.index >= len(r.lines) {
		return "", false
	}
	l := r.lines[r.index]
	r.index++
	return l, true
}

func (r *lineReader) done() bool {
	return r.index >= len(r.lines)
}

// corrupt builds an ErrCorruptFormat carrying the reason and line number.
func corrupt(line int, reason string) error {
	return fmt.Errorf("%w: line %d: %s", ErrCorruptFormat, line, reason)
}

// Parse builds a Chain from the lines of an index file. An empty input is a
// fresh index: an empty chain with no selection.
func Parse(lines []string) (*Chain, error) {
	c := NewChain()
	if len(lines) == 0 {
		return c, nil
	}

	r := &lineReader{lines: lines}
	if err := c.parseOpen(r); err != nil {
		return nil, err
	}
	if err := c.parseRanges(r); err != nil {
		return nil, err
	}
	if err := c.parseContent(r); err != nil {
		return nil, err
	}
	if !r.done() {
		return nil, corrupt(r.index, "content remains after parsing")
	}
	return c, nil
}

func (c *Chain) parseOpen(r *lineReader) error {
	l, _ := r.next()
	m := openPattern.FindStringSubmatch(l)
	if m == nil {
		return corrupt(0, "error parsing header")
	}
	cursor, err := strconv.Atoi(m[1])
	if err != nil {
		return corrupt(0, "error parsing header")
	}
	c.cursor = cursor
	return nil
}

// parseRanges reads range lines up to and including the close tag.
func (c *Chain) parseRanges(r *lineReader) error {
	seen := map[string]bool{}
	for {
		at := r.index
		l, ok := r.next()
		if !ok {
			return corrupt(at, "no content to parse")
		}

		var s *Snapshot
		var err error
		if m := templatePattern.FindStringSubmatch(l); m != nil {
			if c.Count() > 0 {
				return corrupt(at, "unknown format")
			}
			s, err = declared(at, m[1], m[2], m[3])
			if s != nil {
				s.Template = true
			}
		} else if m := rangePattern.FindStringSubmatch(l); m != nil {
			s, err = declared(at, m[1], m[2], m[3])
		} else if l == CloseTag {
			return nil
		} else {
			return corrupt(at, "unknown format")
		}
		if err != nil {
			return err
		}

		if s.Name != "" {
			if seen[s.Name] {
				return corrupt(at, "duplicate name "+strconv.Quote(s.Name))
			}
			seen[s.Name] = true
		}
		c.entries = append(c.entries, s)
		if s.Template {
			c.templates++
		}
	}
}

// declared turns the captured fields of a range line into an entry with no
// content yet.
func declared(line int, name, start, stop string) (*Snapshot, error) {
	b, err := strconv.Atoi(start)
	if err != nil {
		return nil, corrupt(line, "unknown format")
	}
	e, err := strconv.Atoi(stop)
	if err != nil {
		return nil, corrupt(line, "unknown format")
	}
	if e < b {
		return nil, corrupt(line, "start index cannot be larger than stop")
	}
	return &Snapshot{Start: b, Stop: e, Name: name}, nil
}

// parseContent walks the declared entries in order and takes exactly
// Stop-Start lines for each.
func (c *Chain) parseContent(r *lineReader) error {
	for _, s := range c.entries {
		if r.index != s.Start {
			return corrupt(r.index, fmt.Sprintf("wrong indexing in header: expected %d", s.Start))
		}
		// The declared range is untrusted until the input can cover it.
		if s.Stop-s.Start > len(r.lines)-r.index {
			return corrupt(r.index, "no content to parse")
		}
		content := make([]string, 0, s.Stop-s.Start)
		for range s.Stop - s.Start {
			l, ok := r.next()
			if !ok {
				return corrupt(r.index, "no content to parse")
			}
			content = append(content, l)
		}
		s.Content = content
	}
	return nil
}

// Lines serialises the chain to the lines of an index file. Parse(c.Lines())
// reproduces c.
func (c *Chain) Lines() []string {
	n := c.HeaderLines()
	if k := len(c.entries); k > 0 {
		n = c.entries[k-1].Stop
	}
	out := make([]string, 0, n)

	out = append(out, OpenTag+strconv.Itoa(c.cursor))
	for _, s := range c.entries {
		out = append(out, s.rangeLine())
	}
	out = append(out, CloseTag)
	for _, s := range c.entries {
		out = append(out, s.Content...)
	}
	return out
}
