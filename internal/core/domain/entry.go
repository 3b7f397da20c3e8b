package domain

import "time"

// Entry is a stored value. A zero ExpiresAt means the entry never expires.
type Entry struct {
	Value     string
	ExpiresAt time.Time
}

// IsExpired reports whether the entry's expiry instant lies strictly before now.
func (e Entry) IsExpired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}
