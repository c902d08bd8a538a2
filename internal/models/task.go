package models

import "time"

// Task represents a node in the two-level project hierarchy.
// A task with no parent is a top-level task and may own subtasks;
// a task with a parent is a subtask and may not own anything below it.
// The tree never goes deeper than two levels.
type Task struct {
	ID            int64
	ProjectID     int64
	ParentID      *int64 // nil for top-level tasks
	Title         string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	DurationHours float64 // planned effort, not logged hours
}

// IsSubtask reports whether the task sits on the second level of the tree.
func (t *Task) IsSubtask() bool {
	return t.ParentID != nil
}

// TaskFields carries the caller-supplied fields for create and update
// operations. Updates are full replaces: every field overwrites the
// stored value.
type TaskFields struct {
	Title         string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	DurationHours float64
}
