// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "time"

// SetClock replaces the session clock.
func SetClock(s Session, now func() time.Time) {
	s.(*session).now = now
}
