// Package history remembers the scripts the playground replayed.
package history

import (
	"time"

	"github.com/alglib/alglib/filesystem"
	"github.com/alglib/alglib/where"
	"github.com/cockroachdb/errors"
	"github.com/metafates/gache"
)

// MaxEntries bounds the number of remembered replays. Older entries are dropped first.
const MaxEntries = 50

// Entry summarizes one replay.
type Entry struct {
	Script    string    `json:"script"`
	Container string    `json:"container"`
	Steps     int       `json:"steps"`
	Failed    int       `json:"failed"`
	Invalid   int       `json:"invalid"`
	Stopped   bool      `json:"stopped"`
	At        time.Time `json:"at"`
}

// cacher is built per call so the path follows ALGLIB_CONFIG_PATH and the active filesystem.
func cacher() *gache.Cache[[]*Entry] {
	return gache.New[[]*Entry](&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	})
}

// Get returns the remembered replays, oldest first.
func Get() ([]*Entry, error) {
	cached, expired, err := cacher().Get()
	if err != nil {
		return nil, errors.Wrap(err, "read history")
	}
	if expired || cached == nil {
		return []*Entry{}, nil
	}
	return cached, nil
}

// Save appends entry, dropping the oldest entries beyond MaxEntries.
func Save(entry *Entry) error {
	entries, err := Get()
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}

	return errors.Wrap(cacher().Set(entries), "write history")
}

// Clear forgets every replay.
func Clear() error {
	return errors.Wrap(cacher().Set([]*Entry{}), "clear history")
}
