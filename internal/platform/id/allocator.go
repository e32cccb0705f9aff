package id

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Provider-sourced teams keep the provider's positive ID as primary key.
// User-added teams get a synthetic negative ID so the two populations can
// never collide; the sign of a team ID is load-bearing for callers that need
// to distinguish the origins.
const (
	SyntheticTeamIDMin int64 = -9999
	SyntheticTeamIDMax int64 = -1000
)

// TeamIDAllocator hands out candidate IDs for user-added teams. Allocators
// may return a candidate that is already taken; callers retry a bounded
// number of times against the store's uniqueness constraint.
type TeamIDAllocator interface {
	NextTeamID() (int64, error)
}

type RandomTeamIDAllocator struct{}

func NewRandomTeamIDAllocator() *RandomTeamIDAllocator {
	return &RandomTeamIDAllocator{}
}

func (a *RandomTeamIDAllocator) NextTeamID() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read random bytes: %w", err)
	}

	span := uint64(SyntheticTeamIDMax - SyntheticTeamIDMin + 1)
	offset := int64(binary.BigEndian.Uint64(buf[:]) % span)
	return SyntheticTeamIDMin + offset, nil
}

// IsSynthetic reports whether a team ID belongs to the user-added range.
func IsSynthetic(teamID int64) bool {
	return teamID < 0
}
