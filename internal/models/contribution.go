package models

import "time"

// Contribution is a timestamped record of hours an employee spent on a
// subtask. Repeated contributions for the same pair accumulate as
// separate records; they are never merged.
type Contribution struct {
	Username   string
	TaskID     int64
	Hours      float64
	RecordedAt time.Time
}
