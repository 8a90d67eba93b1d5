// Index listing.
//
// List yields one Entry per declared entry, templates first, in the order
// they appear in the header. Entries carry JSON tags so the command line
// can emit them as-is.
package fileverse

import (
	"fmt"
	"iter"

	json "github.com/goccy/go-json"
)

// Entry describes one index entry without its content.
type Entry struct {
	Index       int    `json:"index"` // snapshot position, -1 for templates
	Name        string `json:"name,omitempty"`
	Template    bool   `json:"template,omitempty"`
	Start       int    `json:"start"`
	Stop        int    `json:"stop"`
	Lines       int    `json:"lines"`
	Fingerprint string `json:"fingerprint"`
	Current     bool   `json:"current,omitempty"` // under the cursor
}

// MarshalLine encodes e as a single JSON line.
func (e Entry) MarshalLine() ([]byte, error) {
	return json.Marshal(e)
}

// List yields the entries of the index selected by src. Callers consume
// results lazily via range and can break early.
func (s *Store) List(src Source) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		c, err := s.index(src)
		if err != nil {
			yield(Entry{}, fmt.Errorf("list: %w", err))
			return
		}
		for _, e := range entries(c, s.config.HashAlgorithm) {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func entries(c *Chain, alg int) []Entry {
	out := make([]Entry, 0, len(c.entries))
	for i, snap := range c.entries {
		e := Entry{
			Index:       i - c.templates,
			Name:        snap.Name,
			Template:    snap.Template,
			Start:       snap.Start,
			Stop:        snap.Stop,
			Lines:       snap.Len(),
			Fingerprint: Fingerprint(snap.Content, alg),
		}
		if snap.Template {
			e.Index = -1
		} else {
			e.Current = e.Index == c.cursor
		}
		out = append(out, e)
	}
	return out
}
