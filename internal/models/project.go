package models

import "time"

// Project represents a container for tasks and subtasks
// Projects are the top-level organizational unit in Plannex
type Project struct {
	ID          int64
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}
