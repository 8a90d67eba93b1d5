// Staging snapshots as a preview block.
//
// Each Preview* call picks a snapshot, stages it at the top of the target
// and saves the index so the moved cursor persists. A failed pick (past
// either end of the history, unknown name) writes nothing, so the cursor
// on disk stays where it was.
package fileverse

import "fmt"

// PreviewBackward stages the snapshot before the cursor.
func (s *Store) PreviewBackward(src Source) error {
	return s.stage("preview backward", src, (*Chain).Backward)
}

// PreviewForward stages the snapshot after the cursor.
func (s *Store) PreviewForward(src Source) error {
	return s.stage("preview forward", src, (*Chain).Forward)
}

// PreviewCurrent stages the snapshot under the cursor.
func (s *Store) PreviewCurrent(src Source) error {
	return s.stage("preview", src, (*Chain).CursorContent)
}

// PreviewByIndex moves the cursor to i and stages that snapshot.
func (s *Store) PreviewByIndex(src Source, i int) error {
	return s.stage("preview index", src, func(c *Chain) ([]string, error) {
		return c.ByIndex(i)
	})
}

// PreviewByName stages the entry called name without moving the cursor.
func (s *Store) PreviewByName(src Source, name string) error {
	return s.stage("preview name", src, func(c *Chain) ([]string, error) {
		return c.ByName(name)
	})
}

func (s *Store) stage(op string, src Source, pick func(*Chain) ([]string, error)) error {
	c, err := s.index(src)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	p, err := s.target()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	content, err := pick(c)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.Content = content
	if err := s.saveTarget(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info().Stringer("index", src).Int("cursor", c.Cursor()).Int("lines", len(content)).Msg("snapshot staged")
	return s.save(src)
}

// Commit makes the staged preview the target's content. Without a staged
// preview it does nothing.
func (s *Store) Commit() error {
	p, err := s.target()
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if !p.Staged() {
		return nil
	}
	p.SetMainLines(p.Content)
	p.Content = nil
	return s.saveTarget()
}

// Discard drops the staged preview and keeps the target's content.
func (s *Store) Discard() error {
	p, err := s.target()
	if err != nil {
		return fmt.Errorf("discard: %w", err)
	}
	if !p.Staged() {
		return nil
	}
	p.Content = nil
	return s.saveTarget()
}

// Reset wipes the file index and drops any staged preview.
func (s *Store) Reset() error {
	c, err := s.index(FileIndex)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	p, err := s.target()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	c.Reset()
	p.Content = nil
	if err := s.saveTarget(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	s.log.Info().Msg("history reset")
	return s.save(FileIndex)
}
