// Restoring snapshots into the target.
//
// Restore overwrites the whole target, preview block included, with the
// snapshot's lines.
package fileverse

import "fmt"

// Restore writes the snapshot under the cursor into the target. With
// remove, the snapshot is dropped from the index afterwards and the cursor
// moves to the newest remaining snapshot.
func (s *Store) Restore(remove bool) error {
	c, err := s.index(FileIndex)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	content, err := c.CursorContent()
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if err := s.overwrite(content); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	if remove {
		c.RemoveCursorSnapshot()
	}
	s.log.Info().Int("lines", len(content)).Bool("removed", remove).Msg("snapshot restored")
	return s.save(FileIndex)
}

// RestoreTemplate writes the template called name into the target.
func (s *Store) RestoreTemplate(name string) error {
	c, err := s.index(TemplateIndex)
	if err != nil {
		return fmt.Errorf("restore template: %w", err)
	}
	content, err := c.ByName(name)
	if err != nil {
		return fmt.Errorf("restore template: %w", err)
	}
	if err := s.overwrite(content); err != nil {
		return fmt.Errorf("restore template: %w", err)
	}
	s.log.Info().Str("name", name).Int("lines", len(content)).Msg("template restored")
	return nil
}

// overwrite replaces the target with content and drops any preview.
func (s *Store) overwrite(content []string) error {
	if err := writeLines(s.paths.Target, content, s.config.SyncWrites); err != nil {
		return err
	}
	s.preview = &Preview{Main: joinText(content)}
	return nil
}
