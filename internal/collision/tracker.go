// Package collision registers channel names and detects xxHash64 ID collisions.
package collision

import (
	"fmt"

	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/internal/hash"
)

// Tracker assigns channel IDs in registration order. Frames store only the
// IDs, so two names with the same ID could not be told apart by a receiver
// and are rejected.
type Tracker struct {
	byID  map[uint64]string
	names []string
	ids   []uint64
}

// NewTracker creates a tracker sized for capacity channels.
func NewTracker(capacity int) *Tracker {
	return &Tracker{
		byID:  make(map[uint64]string, capacity),
		names: make([]string, 0, capacity),
		ids:   make([]uint64, 0, capacity),
	}
}

// Track registers name and returns its channel ID.
//
// Returns:
//   - errs.ErrInvalidChannelName if name is empty
//   - errs.ErrDuplicateChannel if name was already registered
//   - errs.ErrChannelIDCollision if another name hashes to the same ID
func (t *Tracker) Track(name string) (uint64, error) {
	if name == "" {
		return 0, errs.ErrInvalidChannelName
	}

	id := hash.ChannelID(name)
	if existing, ok := t.byID[id]; ok {
		if existing == name {
			return 0, fmt.Errorf("%w: %q", errs.ErrDuplicateChannel, name)
		}

		return 0, fmt.Errorf("%w: %q and %q share ID %016x", errs.ErrChannelIDCollision, existing, name, id)
	}

	return id, t.add(id, name)
}

func (t *Tracker) add(id uint64, name string) error {
	// ChannelCount is a uint16 in the frame header.
	if len(t.ids) == 1<<16-1 {
		return fmt.Errorf("%w: more than %d channels", errs.ErrInvalidChannelCount, 1<<16-1)
	}

	t.byID[id] = name
	t.names = append(t.names, name)
	t.ids = append(t.ids, id)

	return nil
}

// Len returns the number of registered channels.
func (t *Tracker) Len() int {
	return len(t.ids)
}

// Names returns the registered names in order. The slice must not be modified.
func (t *Tracker) Names() []string {
	return t.names
}

// IDs returns the channel IDs in registration order. The slice must not be modified.
func (t *Tracker) IDs() []uint64 {
	return t.ids
}

// Lookup returns the name registered for id.
func (t *Tracker) Lookup(id uint64) (string, bool) {
	name, ok := t.byID[id]
	return name, ok
}
