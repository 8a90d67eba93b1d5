package fileverse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var sampleIndex = []string{
	"<######0",
	"5 ~> 7",
	"7 ~> 9",
	"9 ~> 12",
	"######>",
	"You're", "welcome",
	"to", "fileverse.",
	"control", "your", "files",
}

func TestParse(t *testing.T) {
	c, err := Parse(sampleIndex)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Count() != 3 {
		t.Errorf("Count = %d, want 3", c.Count())
	}
	if c.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", c.Cursor())
	}

	var lens []int
	for _, s := range c.Snapshots() {
		lens = append(lens, s.Len())
	}
	if diff := cmp.Diff([]int{2, 2, 3}, lens); diff != "" {
		t.Errorf("content lengths (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(sampleIndex, c.Lines()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestParseTemplates(t *testing.T) {
	lines := []string{
		"<######0",
		"template>jude> 6 ~> 8",
		"8 ~> 10",
		"10 ~> 12",
		"12 ~> 15",
		"######>",
		"import love from 'fileverse'", "",
		"You're", "welcome",
		"to", "fileverse.",
		"control", "your", "files",
	}

	c, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Count() != 3 {
		t.Errorf("Count = %d, want 3", c.Count())
	}
	if c.Templates() != 1 {
		t.Errorf("Templates = %d, want 1", c.Templates())
	}

	got, err := c.ByName("jude")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if diff := cmp.Diff([]string{"import love from 'fileverse'", ""}, got); diff != "" {
		t.Errorf("template content (-want +got):\n%s", diff)
	}

	first, err := c.CursorContent()
	if err != nil {
		t.Fatalf("CursorContent: %v", err)
	}
	if diff := cmp.Diff([]string{"You're", "welcome"}, first); diff != "" {
		t.Errorf("cursor 0 skips templates (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(lines, c.Lines()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestParseNamed(t *testing.T) {
	lines := []string{
		"<######1",
		"sloan>4 ~> 5",
		" 5 ~>  6 ",
		"######>",
		"a",
		"b",
	}
	c, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := c.ByName("sloan")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if diff := cmp.Diff([]string{"a"}, got); diff != "" {
		t.Errorf("named content (-want +got):\n%s", diff)
	}
	// Whitespace is normalised on output.
	if got := c.Lines()[2]; got != "5 ~> 6" {
		t.Errorf("range line = %q, want %q", got, "5 ~> 6")
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Count() != 0 || c.Cursor() != -1 {
		t.Errorf("got Count=%d Cursor=%d, want 0 and -1", c.Count(), c.Cursor())
	}
}

func TestParseNegativeCursor(t *testing.T) {
	c, err := Parse([]string{"<######-1", "3 ~> 4", "######>", "x"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Cursor() != -1 {
		t.Errorf("Cursor = %d, want -1", c.Cursor())
	}
	if _, err := c.CursorContent(); !errors.Is(err, ErrNegativeCursor) {
		t.Errorf("CursorContent err = %v, want ErrNegativeCursor", err)
	}
}

func TestParseCorrupt(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		reason string
	}{
		{"bad open", []string{"#fsd"}, "error parsing header"},
		{"open without cursor", []string{"<######", "######>"}, "error parsing header"},
		{"descending range", []string{"<######0", "4 ~> 3", "######>"}, "start index cannot be larger than stop"},
		{"garbage range", []string{"<######0", "three ~> four", "######>"}, "unknown format"},
		{"no close", []string{"<######0", "3 ~> 4"}, "no content to parse"},
		{"wrong start", []string{"<######0", "4 ~> 5", "######>", "x", "y"}, "wrong indexing in header: expected 4"},
		{"gap", []string{"<######0", "4 ~> 5", "6 ~> 7", "######>", "a", "b", "c"}, "wrong indexing in header: expected 6"},
		{"short content", []string{"<######0", "3 ~> 6", "######>", "a"}, "no content to parse"},
		{"huge range", []string{"<######0", "3 ~> 9000000000000000000", "######>", "x"}, "no content to parse"},
		{"large range", []string{"<######0", "3 ~> 2000000000", "######>", "x"}, "no content to parse"},
		{"trailing content", []string{"<######0", "3 ~> 4", "######>", "a", "b"}, "content remains after parsing"},
		{"duplicate name", []string{"<######0", "x>4 ~> 5", "x>5 ~> 6", "######>", "a", "b"}, "duplicate name"},
		{"template after snapshot", []string{"<######0", "4 ~> 5", "template>t> 5 ~> 6", "######>", "a", "b"}, "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.lines)
			if !errors.Is(err, ErrCorruptFormat) {
				t.Fatalf("err = %v, want ErrCorruptFormat", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("err = %q, want reason %q", err, tt.reason)
			}
		})
	}
}

func TestLinesEmptyChain(t *testing.T) {
	got := NewChain().Lines()
	want := []string{"<######-1", "######>"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines (-want +got):\n%s", diff)
	}
	if _, err := Parse(got); err != nil {
		t.Errorf("reparse: %v", err)
	}
}
