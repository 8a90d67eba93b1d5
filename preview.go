// Preview block embedded in the target file.
//
// A preview stages snapshot content at the top of the target without
// losing what is really there:
//
//	=============SNAPSHOT============
//
//	<preview lines>
//
//	==================================
//	<main content>
//
// The head may only appear as the first line. Parsing is a two-state scan
// (outside/inside the block) over the sentinel literals. The blank lines
// next to the sentinels are structural and are not part of the preview.
package fileverse

import (
	"slices"
	"strings"
)

// Preview sentinels.
const (
	PreviewHead   = "=============SNAPSHOT============"
	PreviewFooter = "=================================="
)

// Preview is a target file split into its staged block and main content.
// Main holds the raw lines after the block, including a trailing empty
// element when the text ends with a newline, so that Text reproduces the
// file byte for byte.
type Preview struct {
	Content []string
	Main    []string
}

type scanState int

const (
	outsidePreview scanState = iota
	insidePreview
)

// ParsePreview splits text into a preview block and main content. Text
// without a head is all main content.
func ParsePreview(text string) (*Preview, error) {
	lines := strings.Split(text, "\n")

	state := outsidePreview
	var block []string
	for i, l := range lines {
		switch state {
		case outsidePreview:
			if i == 0 && l == PreviewHead {
				state = insidePreview
				continue
			}
			return &Preview{
				Content: trimSeparators(block),
				Main:    slices.Clone(lines[i:]),
			}, nil
		case insidePreview:
			if l == PreviewFooter {
				state = outsidePreview
				continue
			}
			block = append(block, l)
		}
	}
	if state == insidePreview {
		return nil, corrupt(len(lines)-1, "preview footer missing")
	}
	// Footer on the last line: nothing below the block.
	return &Preview{Content: trimSeparators(block)}, nil
}

// trimSeparators drops one blank line at each end of the block.
func trimSeparators(block []string) []string {
	if len(block) > 0 && block[0] == "" {
		block = block[1:]
	}
	if len(block) > 0 && block[len(block)-1] == "" {
		block = block[:len(block)-1]
	}
	return slices.Clone(block)
}

// Staged reports whether a preview block is present.
func (p *Preview) Staged() bool {
	return len(p.Content) > 0
}

// Lines serialises the target. With no preview content the block vanishes
// and only the main content remains.
func (p *Preview) Lines() []string {
	if !p.Staged() {
		return slices.Clone(p.Main)
	}
	out := make([]string, 0, len(p.Content)+len(p.Main)+4)
	out = append(out, PreviewHead, "")
	out = append(out, p.Content...)
	out = append(out, "", PreviewFooter)
	return append(out, p.Main...)
}

// Text is Lines joined back into file content.
func (p *Preview) Text() string {
	return strings.Join(p.Lines(), "\n")
}

// MainLines returns the main content as lines, without the empty element
// left by a trailing newline.
func (p *Preview) MainLines() []string {
	return splitText(p.Main)
}

// SetMainLines replaces the main content with lines that end in a newline.
func (p *Preview) SetMainLines(lines []string) {
	p.Main = joinText(lines)
}

func splitText(raw []string) []string {
	if n := len(raw); n > 0 && raw[n-1] == "" {
		raw = raw[:n-1]
	}
	return slices.Clone(raw)
}

func joinText(lines []string) []string {
	return append(slices.Clone(lines), "")
}
