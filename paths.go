// Path resolution.
//
// The companion index of a target lives in the same directory under a
// hidden, reserved name: notes.txt is tracked by .notes.txt.fileverse. The
// shared template index has no built-in location; callers pass it in.
package fileverse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// IndexSuffix is appended to a target's base name to form its index name.
const IndexSuffix = ".fileverse"

// Paths are the on-disk locations one Store works with.
type Paths struct {
	Target   string // absolute path of the tracked file
	Index    string // companion index of Target
	Template string // shared template index, empty if unused
}

// IndexPath returns the companion index path for target.
func IndexPath(target string) string {
	dir, base := filepath.Split(target)
	return filepath.Join(dir, "."+base+IndexSuffix)
}

// Resolve maps a user-given path to absolute target and index paths. The
// target must exist and be a regular file.
func Resolve(path, template string) (Paths, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Paths{}, fmt.Errorf("resolve: %w", err)
	}
	info, err := os.Stat(abs)
	if errors.Is(err, os.ErrNotExist) {
		return Paths{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return Paths{}, fmt.Errorf("resolve: %w", err)
	}
	if !info.Mode().IsRegular() {
		return Paths{}, fmt.Errorf("%w: %s is not a regular file", ErrFileNotFound, path)
	}
	if template != "" {
		if template, err = filepath.Abs(template); err != nil {
			return Paths{}, fmt.Errorf("resolve: %w", err)
		}
	}
	return Paths{Target: abs, Index: IndexPath(abs), Template: template}, nil
}
