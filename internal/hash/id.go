// Package hash derives stable 64-bit channel identifiers.
package hash

import "github.com/cespare/xxhash/v2"

// ChannelID returns the xxHash64 of a channel name.
func ChannelID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// ChannelIDs returns the IDs of names in order.
func ChannelIDs(names []string) []uint64 {
	ids := make([]uint64, len(names))
	for i, name := range names {
		ids[i] = ChannelID(name)
	}

	return ids
}
