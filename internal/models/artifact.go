package models

// Artifact is a reference to a file or link produced while working on a
// subtask. Paths are not unique, so every record carries its own id.
type Artifact struct {
	ID       string // uuid
	TaskID   int64
	Username string
	Path     string
}
