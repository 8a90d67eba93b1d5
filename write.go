// Content sink.
//
// Every write replaces a whole file. The data goes to a sibling .tmp file
// which is synced and then renamed over the destination, so a crash leaves
// either the old file or the new one, never a mix. A leftover .tmp from an
// interrupted write is simply overwritten by the next one.
package fileverse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Encode writes lines to w, each followed by a newline.
func Encode(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeLines replaces path with lines, one per output line.
func writeLines(path string, lines []string, sync bool) error {
	return replace(path, sync, func(w io.Writer) error {
		return Encode(w, lines)
	})
}

// writeText replaces path with text as-is.
func writeText(path, text string, sync bool) error {
	return replace(path, sync, func(w io.Writer) error {
		_, err := io.Copy(w, strings.NewReader(text))
		return err
	})
}

// replace runs fill against a temp file next to path, then renames it into
// place. The existing file mode is kept when path already exists.
func replace(path string, sync bool, fill func(io.Writer) error) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("write: mkdir: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return fmt.Errorf("write: create temp: %w", err)
	}
	if err := fill(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write: %w", err)
	}
	if sync {
		if err := f.Sync(); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("write: sync: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write: close temp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write: rename: %w", err)
	}
	return nil
}
