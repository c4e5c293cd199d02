// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "time"

// State is the lock state of a [Session].
type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "Unlocked"
	}
	return "Locked"
}

// Status is a point-in-time view of a [Session].
type Status struct {
	State State
	// Err is the user-facing message of the last failed unlock, or empty.
	Err string
	// UnlockedAt is the zero time while Locked.
	UnlockedAt time.Time
}

// IsUnlocked is shorthand for State == Unlocked.
func (s Status) IsUnlocked() bool {
	return s.State == Unlocked
}
