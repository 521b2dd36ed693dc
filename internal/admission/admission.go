// Package admission holds the capacity math that decides whether an event
// is sold out and whether a new registration may be admitted. It is the
// single authority for these numbers; every view and every gate goes
// through ComputeStats.
package admission

import "errors"

// UrgencyThreshold is the largest number of remaining spots that still
// triggers the "few spots left" warning.
const UrgencyThreshold = 5

var ErrSoldOut = errors.New("event is sold out")

// Stats describes attendance for one event at one point in time.
// SpotsLeft is nil when the event has no capacity limit. It can go negative
// when concurrent registrations overshoot the limit.
type Stats struct {
	Count     int64  `json:"count"`
	IsSoldOut bool   `json:"isSoldOut"`
	SpotsLeft *int64 `json:"spotsLeft,omitempty"`
	IsUrgent  bool   `json:"isUrgent"`
}

// ComputeStats derives attendance stats from an optional capacity and the
// current registration count. A nil capacity means unlimited; a capacity of
// zero is a valid zero-slot configuration, not unlimited. Presence is the
// only thing that distinguishes the two.
func ComputeStats(capacity *int64, currentCount int64) Stats {
	stats := Stats{Count: currentCount}
	if capacity == nil {
		return stats
	}

	left := *capacity - currentCount
	stats.SpotsLeft = &left
	stats.IsSoldOut = currentCount >= *capacity
	stats.IsUrgent = left > 0 && left <= UrgencyThreshold
	return stats
}

// Admit gates a new registration against the stats computed from the count
// current at submission time. This is a best-effort check: nothing prevents
// two concurrent submissions from both passing against the same count.
func Admit(capacity *int64, currentCount int64) error {
	if ComputeStats(capacity, currentCount).IsSoldOut {
		return ErrSoldOut
	}
	return nil
}
