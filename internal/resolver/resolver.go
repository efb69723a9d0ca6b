package resolver

import (
	"errors"

	"github.com/google/uuid"
)

// ErrUnresolvable means the reference is neither a UUID nor a known legacy id.
var ErrUnresolvable = errors.New("venue reference cannot be resolved")

// legacyVenueIDs maps the numeric identifiers used by the old catalog to the
// canonical UUIDs those venues were migrated under. The old stores disagreed
// on id formats; this table is the one sanctioned translation. References
// outside it fail instead of being patched over with synthetic venues.
var legacyVenueIDs = map[string]string{
	"1": "1a2b3c4d-5e6f-4890-abc1-def23456789a",
	"2": "2f3e4d5c-6b7a-4901-aef2-abc34567890b",
	"3": "3f0c2e6e-8b9a-4c3d-8b5a-c4f6e9e7d8c1",
	"4": "4a1b3c5d-7e8f-4a0b-9c2d-3e4f5a6b7c8d",
	"5": "5e6f7a8b-9c0d-4e2f-83a4-5b6c7d8e9f0a",
	"6": "6d7e8f9a-0b1c-4d3e-8f5a-6b7c8d9e0f1a",
	"7": "7e8f9a0b-1c2d-4e4f-9a6b-7c8d9e0f1a2b",
	"8": "8f9a0b1c-2d3e-4f5a-86b7-8c9d0e1f2a3b",
}

// Resolve normalizes a venue reference to its canonical UUID. Well-formed
// UUIDs pass through untouched; legacy numeric ids are translated. Existence
// of the venue is the caller's concern.
func Resolve(ref string) (string, error) {
	if ref == "" {
		return "", ErrUnresolvable
	}
	if err := uuid.Validate(ref); err == nil {
		return ref, nil
	}
	if id, ok := legacyVenueIDs[ref]; ok {
		return id, nil
	}
	return "", ErrUnresolvable
}
