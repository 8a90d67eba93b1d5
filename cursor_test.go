package fileverse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCursorContentBounds(t *testing.T) {
	c, err := Parse(sampleIndex)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		cursor int
		want   error
	}{
		{-2, ErrNegativeCursor},
		{-1, ErrNegativeCursor},
		{0, nil},
		{1, nil},
		{2, nil},
		{3, ErrCursorTooLarge},
		{10, ErrCursorTooLarge},
	}
	for _, tt := range tests {
		c.cursor = tt.cursor
		_, err := c.CursorContent()
		if tt.want == nil {
			if err != nil {
				t.Errorf("cursor %d: unexpected error %v", tt.cursor, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("cursor %d: err = %v, want %v", tt.cursor, err, tt.want)
		}
		if !errors.Is(err, ErrCursorOutOfRange) {
			t.Errorf("cursor %d: err = %v does not match ErrCursorOutOfRange", tt.cursor, err)
		}
	}
}

func TestNavigation(t *testing.T) {
	c, err := Parse(sampleIndex)
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.Forward()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"to", "fileverse."}, got); diff != "" {
		t.Errorf("Forward (-want +got):\n%s", diff)
	}

	got, err = c.Backward()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"You're", "welcome"}, got); diff != "" {
		t.Errorf("Backward (-want +got):\n%s", diff)
	}

	// Stepping past the start is reported and not clamped.
	if _, err := c.Backward(); !errors.Is(err, ErrNegativeCursor) {
		t.Errorf("Backward past start: err = %v", err)
	}
	if c.Cursor() != -1 {
		t.Errorf("Cursor = %d, want -1", c.Cursor())
	}
	if _, err := c.Forward(); err != nil {
		t.Errorf("Forward back into range: %v", err)
	}

	got, err = c.ByIndex(2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"control", "your", "files"}, got); diff != "" {
		t.Errorf("ByIndex (-want +got):\n%s", diff)
	}
	if _, err := c.Forward(); !errors.Is(err, ErrCursorTooLarge) {
		t.Errorf("Forward past end: err = %v", err)
	}
}

func TestCursorContentIsCopy(t *testing.T) {
	c := NewChain()
	c.AddSnapshot([]string{"a"}, "")

	got, _ := c.CursorContent()
	got[0] = "changed"

	again, _ := c.CursorContent()
	if again[0] != "a" {
		t.Errorf("chain content was modified through the returned slice")
	}
}

func TestByName(t *testing.T) {
	c := NewChain()
	c.AddSnapshot([]string{"first"}, "one")
	c.AddSnapshot([]string{"second"}, "")
	c.ByIndex(1)

	got, err := c.ByName("one")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"first"}, got); diff != "" {
		t.Errorf("ByName (-want +got):\n%s", diff)
	}
	if c.Cursor() != 1 {
		t.Errorf("ByName moved the cursor to %d", c.Cursor())
	}

	if _, err := c.ByName("missing"); !errors.Is(err, ErrNoContentForName) {
		t.Errorf("missing name: err = %v", err)
	}
	if _, err := c.ByName(""); !errors.Is(err, ErrNoContentForName) {
		t.Errorf("empty name matched an unnamed snapshot: err = %v", err)
	}
}
