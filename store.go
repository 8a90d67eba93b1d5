// Store lifecycle.
//
// A Store ties one target file to its companion index and, optionally, the
// shared template index. Open takes an exclusive lock on the companion
// index; the template index is locked the first time it is used. Both
// indexes and the target's preview block are parsed at most once per
// Store and kept in memory; every operation that changes one of them
// writes it back before returning. Nothing is written when parsing fails.
//
// A Store is meant to serve one command and is not safe for concurrent
// use.
package fileverse

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Source selects which index an operation reads from.
type Source int

const (
	FileIndex Source = iota
	TemplateIndex
)

func (s Source) String() string {
	if s == TemplateIndex {
		return "template"
	}
	return "file"
}

// Config holds Store options.
type Config struct {
	Template      string          // shared template index path
	HashAlgorithm int             // fingerprint algorithm for List (default xxHash3)
	SyncWrites    bool            // fsync before every rename
	Logger        *zerolog.Logger // defaults to a disabled logger
}

// Store is an open target file with its indexes.
type Store struct {
	paths  Paths
	config Config
	log    zerolog.Logger

	lock      *fileLock
	tlock     *fileLock
	chain     *Chain
	templates *Chain
	preview   *Preview
	closed    bool
}

// Open resolves path and locks its index. It fails with ErrFileNotFound if
// the target does not exist.
func Open(path string, config Config) (*Store, error) {
	if config.HashAlgorithm == 0 {
		config.HashAlgorithm = AlgXXHash3
	}
	log := zerolog.Nop()
	if config.Logger != nil {
		log = *config.Logger
	}

	paths, err := Resolve(path, config.Template)
	if err != nil {
		return nil, err
	}

	lock, err := acquire(paths.Index)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("target", paths.Target).Str("index", paths.Index).Msg("store opened")
	return &Store{
		paths:  paths,
		config: config,
		log:    log,
		lock:   lock,
	}, nil
}

// Close releases the index locks. Later operations fail with ErrClosed.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.tlock != nil {
		errs = append(errs, s.tlock.release())
	}
	errs = append(errs, s.lock.release())
	return errors.Join(errs...)
}

// Paths returns the resolved locations.
func (s *Store) Paths() Paths {
	return s.paths
}

// index returns the parsed chain for src, loading it on first use.
func (s *Store) index(src Source) (*Chain, error) {
	if s.closed {
		return nil, ErrClosed
	}

	if src == FileIndex {
		if s.chain == nil {
			c, err := load(s.paths.Index)
			if err != nil {
				return nil, fmt.Errorf("index %s: %w", s.paths.Index, err)
			}
			s.log.Debug().Str("index", s.paths.Index).Int("snapshots", c.Count()).Msg("index loaded")
			s.chain = c
		}
		return s.chain, nil
	}

	if s.templates == nil {
		if s.paths.Template == "" {
			return nil, fmt.Errorf("%w: no template index configured", ErrFileNotFound)
		}
		if s.tlock == nil {
			l, err := acquire(s.paths.Template)
			if err != nil {
				return nil, err
			}
			s.tlock = l
		}
		c, err := load(s.paths.Template)
		if err != nil {
			return nil, fmt.Errorf("templates %s: %w", s.paths.Template, err)
		}
		s.log.Debug().Str("index", s.paths.Template).Int("templates", c.Count()+c.Templates()).Msg("template index loaded")
		s.templates = c
	}
	return s.templates, nil
}

// target returns the parsed target file, loading it on first use.
func (s *Store) target() (*Preview, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.preview == nil {
		text, err := readText(s.paths.Target)
		if err != nil {
			return nil, err
		}
		p, err := ParsePreview(text)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", s.paths.Target, err)
		}
		s.preview = p
	}
	return s.preview, nil
}

// save writes the chain for src back to disk.
func (s *Store) save(src Source) error {
	path, c := s.paths.Index, s.chain
	if src == TemplateIndex {
		path, c = s.paths.Template, s.templates
	}
	if err := writeLines(path, c.Lines(), s.config.SyncWrites); err != nil {
		return fmt.Errorf("save %s index: %w", src, err)
	}
	s.log.Debug().Str("index", path).Int("cursor", c.Cursor()).Int("snapshots", c.Count()).Msg("index saved")
	return nil
}

// saveTarget writes the target file back, preview block included.
func (s *Store) saveTarget() error {
	if err := writeText(s.paths.Target, s.preview.Text(), s.config.SyncWrites); err != nil {
		return fmt.Errorf("save target: %w", err)
	}
	s.log.Debug().Str("target", s.paths.Target).Bool("staged", s.preview.Staged()).Msg("target saved")
	return nil
}
