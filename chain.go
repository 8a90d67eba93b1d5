// Snapshot chain and offset maintenance.
//
// The chain is a flat slice: templates first, then snapshots, in declared
// order. Offsets run continuously across both groups, anchored on the
// header size (open line + one range line per entry + close line). Adding
// or removing an entry changes the header size, which moves every offset,
// so each mutation ends with recompute(0). Content edits in place only
// move the entries after the edited one, but they also go through
// recompute to keep a single code path.
package fileverse

import "slices"

// minHeaderLines is the header size of an index with no entries: the open
// line and the close line.
const minHeaderLines = 2

// Chain is the in-memory form of an index file.
type Chain struct {
	entries   []*Snapshot
	templates int // entries[:templates] are templates
	cursor    int
}

// NewChain returns an empty chain with no selection.
func NewChain() *Chain {
	return &Chain{cursor: -1}
}

// Count returns the number of snapshots, templates excluded.
func (c *Chain) Count() int {
	return len(c.entries) - c.templates
}

// Templates returns the number of template entries.
func (c *Chain) Templates() int {
	return c.templates
}

// Cursor returns the current cursor. It may be outside [0, Count()).
func (c *Chain) Cursor() int {
	return c.cursor
}

// HeaderLines returns the number of lines the header occupies.
func (c *Chain) HeaderLines() int {
	return minHeaderLines + len(c.entries)
}

// Snapshots returns the snapshot entries in history order. The returned
// values are copies.
func (c *Chain) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, c.Count())
	for _, s := range c.entries[c.templates:] {
		cp := *s
		cp.Content = slices.Clone(s.Content)
		out = append(out, cp)
	}
	return out
}

// TemplateEntries returns the template entries in declared order.
func (c *Chain) TemplateEntries() []Snapshot {
	out := make([]Snapshot, 0, c.templates)
	for _, s := range c.entries[:c.templates] {
		cp := *s
		cp.Content = slices.Clone(s.Content)
		out = append(out, cp)
	}
	return out
}

// AddSnapshot records content as the newest snapshot. When name is set and
// an entry with that name already exists, its content is replaced in place
// and the chain keeps its length. Names are shared with templates, so a
// template of the same name is overwritten and stays a template.
func (c *Chain) AddSnapshot(content []string, name string) {
	if name != "" {
		if s := c.find(name); s != nil {
			s.setContent(content)
			c.settle()
			return
		}
	}

	start := minHeaderLines + 1
	if n := len(c.entries); n > 0 {
		start = c.entries[n-1].Stop
	}
	s := &Snapshot{Start: start, Name: name}
	s.setContent(content)
	c.entries = append(c.entries, s)
	c.settle()
}

// AddTemplate records content as a template entry. An existing entry with
// the same name is overwritten in place. Templates must be named.
func (c *Chain) AddTemplate(name string, content []string) {
	if name == "" {
		return
	}
	if s := c.find(name); s != nil {
		s.setContent(content)
		c.settle()
		return
	}

	s := &Snapshot{Name: name, Template: true}
	s.setContent(content)
	c.entries = slices.Insert(c.entries, c.templates, s)
	c.templates++
	c.settle()
}

// RemoveCursorSnapshot drops the snapshot under the cursor. It does nothing
// when the cursor addresses no snapshot.
func (c *Chain) RemoveCursorSnapshot() {
	if c.cursor < 0 || c.cursor >= c.Count() {
		return
	}
	i := c.templates + c.cursor
	c.entries = slices.Delete(c.entries, i, i+1)
	c.settle()
}

// Reset wipes every entry and clears the selection.
func (c *Chain) Reset() {
	c.entries = nil
	c.templates = 0
	c.cursor = -1
}

// settle restores the offset invariants and points the cursor at the
// newest snapshot.
func (c *Chain) settle() {
	c.recompute(0)
	c.cursor = c.Count() - 1
}

// recompute rewrites Start and Stop for entries[from:]. Entry 0 is anchored
// on the header size; every other entry starts where its predecessor stops.
func (c *Chain) recompute(from int) {
	for i := from; i < len(c.entries); i++ {
		if i == 0 {
			c.entries[0].setStart(c.HeaderLines())
			continue
		}
		c.entries[i].setStart(c.entries[i-1].Stop)
	}
}

func (c *Chain) find(name string) *Snapshot {
	if name == "" {
		return nil
	}
	for _, s := range c.entries {
		if s.Name == name {
			return s
		}
	}
	return nil
}
