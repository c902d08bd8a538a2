package database

import (
	"context"
	"errors"
	"testing"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

func TestCreateEmployeeDuplicateUsername(t *testing.T) {
	repo := setupRepo(t)
	seedEmployee(t, repo, "alice")

	err := repo.CreateEmployee(context.Background(), models.Employee{
		Username: "alice",
		Name:     "Another Alice",
		Password: "hunter2",
	})
	if !errors.Is(err, models.ErrAlreadyExists) {
		t.Errorf("Expected duplicate username to map to ErrAlreadyExists, got %v", err)
	}
}

func TestGetEmployeeIncludesCredentials(t *testing.T) {
	repo := setupRepo(t)
	seedEmployee(t, repo, "alice")

	emp, err := repo.GetEmployee(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Failed to get employee: %v", err)
	}
	if emp.Password == "" {
		t.Error("Expected stored password on single-employee lookup")
	}

	all, err := repo.GetAllEmployees(context.Background())
	if err != nil {
		t.Fatalf("Failed to list employees: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 employee, got %d", len(all))
	}
	if all[0].Password != "" {
		t.Error("Expected listing to omit passwords")
	}
}

func TestGetEmployeeNotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetEmployee(context.Background(), "ghost")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteEmployeeCascadesSkills(t *testing.T) {
	repo := setupRepo(t)
	seedEmployee(t, repo, "alice")

	if _, err := repo.AddSkill(context.Background(), "Java"); err != nil {
		t.Fatalf("Failed to add skill to catalog: %v", err)
	}
	es := models.EmployeeSkill{Username: "alice", SkillTitle: "Java", Level: models.LevelExpert}
	if err := repo.AssignSkill(context.Background(), es); err != nil {
		t.Fatalf("Failed to assign skill: %v", err)
	}

	rows, err := repo.DeleteEmployee(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Failed to delete employee: %v", err)
	}
	if rows != 1 {
		t.Fatalf("Expected 1 row deleted, got %d", rows)
	}

	skills, err := repo.GetSkillsForEmployee(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Failed to query skills: %v", err)
	}
	if len(skills) != 0 {
		t.Errorf("Expected skill rows to be cascade-deleted, got %d", len(skills))
	}
}

func TestUpdateEmployeeFullReplace(t *testing.T) {
	repo := setupRepo(t)
	seedEmployee(t, repo, "alice")

	updated := models.Employee{
		Username:     "alice",
		Name:         "Alice Renamed",
		Email:        "alice@plannex.test",
		Password:     "newpass",
		WorkdayStart: "07:00",
		WorkdayEnd:   "15:00",
	}
	rows, err := repo.UpdateEmployee(context.Background(), updated)
	if err != nil {
		t.Fatalf("Failed to update employee: %v", err)
	}
	if rows != 1 {
		t.Fatalf("Expected 1 row updated, got %d", rows)
	}

	got, err := repo.GetEmployee(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Failed to get employee: %v", err)
	}
	if got.Name != "Alice Renamed" || got.Password != "newpass" {
		t.Errorf("Update not applied: %+v", got)
	}
	if got.WorkdayStart != "07:00" || got.WorkdayEnd != "15:00" {
		t.Errorf("Workday hours not applied: %s-%s", got.WorkdayStart, got.WorkdayEnd)
	}
}
