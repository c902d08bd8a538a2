package models

// Employee represents a registered worker or manager.
// Username is the primary key across the whole system.
type Employee struct {
	Username     string
	Name         string
	Email        string
	Password     string // stored and compared verbatim; see DESIGN.md
	WorkdayStart string // "HH:MM"
	WorkdayEnd   string // "HH:MM"
	Skills       []*EmployeeSkill
}

// Role identifies what the caller is allowed to do. The engine itself
// never checks roles; the command layer does.
type Role int

const (
	RoleWorker Role = iota
	RoleManager
)
