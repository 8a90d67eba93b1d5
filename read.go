// Line source for index and target files.
//
// Files are read in one bounded pass. A trailing newline terminates the last
// line rather than starting an empty one, so a file written by Encode reads
// back as exactly the lines that were encoded.
package fileverse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadLines reads r to the end and returns its lines without terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		l, err := br.ReadString('\n')
		if len(l) > 0 {
			if l[len(l)-1] == '\n' {
				l = l[:len(l)-1]
			}
			lines = append(lines, l)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Decode reads an index file from r.
func Decode(r io.Reader) (*Chain, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return Parse(lines)
}

// load parses the index at path. A missing index is an empty chain: the
// first snapshot of a file creates it.
func load(path string) (*Chain, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewChain(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// readText returns the whole content of path.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
