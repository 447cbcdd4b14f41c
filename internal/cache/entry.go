package cache

import "time"

// entry is the value+metadata unit stored per key.
//
// hasExpiry avoids comparing against the zero time: hasExpiry=false
// means "never expires". When set, expiresAt >= createdAt always holds
// because both derive from the same clock reading.
type entry struct {
	value     []byte
	createdAt time.Time
	expiresAt time.Time
	hasExpiry bool
}

// expired reports whether the entry must be treated as absent at now.
// An entry is live through its exact expiry instant.
func (e *entry) expired(now time.Time) bool {
	return e.hasExpiry && now.After(e.expiresAt)
}

// cloneBytes copies a value across the store boundary. Entries are
// owned exclusively by the store; callers never see the internal slice.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
