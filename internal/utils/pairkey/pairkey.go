package pairkey

import (
	"fmt"
	"strconv"
	"strings"
)

// For builds the canonical conversation/match key for an unordered user pair.
// The lower ID always comes first, so both participants derive the same key
// without any coordination. Numeric order is used (not lexicographic) so that
// e.g. users 2 and 10 key as "2_10".
func For(a, b uint64) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}

// Split parses a pair key back into its two user IDs.
func Split(key string) (uint64, uint64, error) {
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid pair key %q", key)
	}
	a, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pair key %q", key)
	}
	b, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pair key %q", key)
	}
	if a >= b {
		return 0, 0, fmt.Errorf("pair key %q is not in canonical order", key)
	}
	return a, b, nil
}

// Other returns the participant of the pair that is not the given user.
// ok is false when the user is not part of the pair.
func Other(key string, user uint64) (uint64, bool) {
	a, b, err := Split(key)
	if err != nil {
		return 0, false
	}
	switch user {
	case a:
		return b, true
	case b:
		return a, true
	}
	return 0, false
}
