package models

// Dependency is a directed "must happen after" edge between two subtasks.
// TaskID may not be considered complete until MustFollowID is.
// At most one edge exists per ordered pair; the pair may never be equal.
type Dependency struct {
	TaskID       int64
	MustFollowID int64
}
