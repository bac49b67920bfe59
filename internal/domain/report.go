package domain

import "time"

// RunReport summarises one dispatch run
type RunReport struct {
	RunID          string
	Date           time.Time
	Total          int
	Sent           int
	Pinned         int
	PinDenied      int
	GroupsRemoved  int
	RecordsRemoved int
	Skipped        int
	Failed         int
}
