package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID returns an opaque id such as "user_0b6f...".
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// complaintID formats a ticket id from the clock year and sequence number.
func complaintID(now time.Time, seq int) string {
	return fmt.Sprintf("CMP-%d-%03d", now.Year(), seq)
}

func clockOrNow(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
