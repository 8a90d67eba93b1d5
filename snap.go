// Recording snapshots.
//
// A snapshot records the target's main content. A staged preview block is
// not part of the file's real content and is left out.
package fileverse

import "fmt"

// Snap records the target as the newest snapshot of its index. A non-empty
// name makes the snapshot addressable by name; snapping an existing name
// overwrites that snapshot in place.
func (s *Store) Snap(name string) error {
	if name != "" && !ValidName(name) {
		return fmt.Errorf("snap: %w: %q", ErrInvalidName, name)
	}
	return s.snap(FileIndex, name)
}

// SnapTemplate records the target in the template index under name.
func (s *Store) SnapTemplate(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("snap template: %w: %q", ErrInvalidName, name)
	}
	return s.snap(TemplateIndex, name)
}

func (s *Store) snap(src Source, name string) error {
	p, err := s.target()
	if err != nil {
		return fmt.Errorf("snap: %w", err)
	}
	c, err := s.index(src)
	if err != nil {
		return fmt.Errorf("snap: %w", err)
	}

	content := p.MainLines()
	c.AddSnapshot(content, name)
	s.log.Info().Stringer("index", src).Str("name", name).Int("lines", len(content)).Int("cursor", c.Cursor()).Msg("snapshot recorded")
	return s.save(src)
}
