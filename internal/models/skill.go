package models

import "fmt"

// SkillLevel is the proficiency an employee holds a skill at.
type SkillLevel string

const (
	LevelIntermediate SkillLevel = "Intermediate"
	LevelExpert       SkillLevel = "Expert"
)

// Valid reports whether the level is one of the two allowed values.
func (l SkillLevel) Valid() bool {
	return l == LevelIntermediate || l == LevelExpert
}

// ParseSkillLevel converts a string into a SkillLevel.
func ParseSkillLevel(s string) (SkillLevel, error) {
	switch SkillLevel(s) {
	case LevelIntermediate:
		return LevelIntermediate, nil
	case LevelExpert:
		return LevelExpert, nil
	}
	return "", fmt.Errorf("%w: skill level %q", ErrInvalidValue, s)
}

// Skill is an entry in the global skill catalog, keyed by title.
type Skill struct {
	Title string
}

// EmployeeSkill binds an employee to a catalog skill at one level.
// Equality is by (SkillTitle, Level) value.
type EmployeeSkill struct {
	Username   string
	SkillTitle string
	Level      SkillLevel
}
