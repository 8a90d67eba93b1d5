// Cursor navigation and named lookup.
//
// Navigation never clamps: stepping past either end leaves the cursor out
// of range and the read reports which end was passed. The cursor value is
// persisted as-is, so a later Forward from -1 lands back on the first
// snapshot.
package fileverse

import (
	"fmt"
	"slices"
)

// CursorContent returns the content of the snapshot under the cursor.
func (c *Chain) CursorContent() ([]string, error) {
	if c.cursor < 0 {
		return nil, ErrNegativeCursor
	}
	if c.cursor >= c.Count() {
		return nil, ErrCursorTooLarge
	}
	return slices.Clone(c.entries[c.templates+c.cursor].Content), nil
}

// ByIndex moves the cursor to i and returns that snapshot.
func (c *Chain) ByIndex(i int) ([]string, error) {
	c.cursor = i
	return c.CursorContent()
}

// Backward moves the cursor one snapshot back and returns it.
func (c *Chain) Backward() ([]string, error) {
	c.cursor--
	return c.CursorContent()
}

// Forward moves the cursor one snapshot ahead and returns it.
func (c *Chain) Forward() ([]string, error) {
	c.cursor++
	return c.CursorContent()
}

// ByName returns the content of the entry called name, template or
// snapshot. The cursor does not move.
func (c *Chain) ByName(name string) ([]string, error) {
	s := c.find(name)
	if s == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoContentForName, name)
	}
	return slices.Clone(s.Content), nil
}
