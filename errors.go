// Package fileverse keeps a linear history of snapshots for a single text
// file. The history lives in a companion index file next to the target: a
// short header that declares a cursor and the line range of every snapshot,
// followed by the snapshot contents concatenated in order. Because offsets
// are line numbers into the same file, every structural edit shifts the
// header size and therefore every offset after it; Chain owns the recompute
// that keeps the header and the body consistent.
//
// A snapshot can also be staged inside the target itself as a preview
// block, delimited by sentinel lines, without discarding the real content
// below it. Commit promotes the preview, Discard drops it.
//
// A second, shared index (the template index) holds named snapshots that
// any target can preview or restore.
package fileverse

import "errors"

// Sentinel errors for programmatic handling. Callers use errors.Is to tell
// a damaged index (ErrCorruptFormat) apart from navigation misses
// (ErrCursorOutOfRange, ErrNoContentForName).
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrCorruptFormat    = errors.New("corrupt format")
	ErrCursorOutOfRange = errors.New("cursor out of range")
	ErrNoContentForName = errors.New("no content for name")
	ErrInvalidName      = errors.New("name must be letters, digits or underscores")
	ErrClosed           = errors.New("store is closed")
)

// The two cursor failures are reported separately so callers can say which
// end of the history was passed. Both match ErrCursorOutOfRange.
var (
	ErrNegativeCursor = &cursorError{"negative cursor"}
	ErrCursorTooLarge = &cursorError{"cursor too large"}
)

type cursorError struct{ msg string }

func (e *cursorError) Error() string { return e.msg }

func (e *cursorError) Is(target error) bool { return target == ErrCursorOutOfRange }
