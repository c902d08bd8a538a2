package database

import (
	"context"
	"errors"
	"testing"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

func TestAssignmentUniquePair(t *testing.T) {
	repo := setupRepo(t)
	projectID := seedProject(t, repo, "Website")
	top := seedTask(t, repo, projectID, nil, "Backend")
	seedEmployee(t, repo, "alice")

	if err := repo.AddAssignment(context.Background(), top, "alice"); err != nil {
		t.Fatalf("Failed to assign: %v", err)
	}

	err := repo.AddAssignment(context.Background(), top, "alice")
	if !errors.Is(err, models.ErrAlreadyExists) {
		t.Errorf("Expected duplicate pair to map to ErrAlreadyExists, got %v", err)
	}
}

func TestAssignmentCountsDistinct(t *testing.T) {
	repo := setupRepo(t)
	projectID := seedProject(t, repo, "Website")
	top := seedTask(t, repo, projectID, nil, "Backend")
	s1 := seedTask(t, repo, projectID, &top, "Design schema")
	s2 := seedTask(t, repo, projectID, &top, "Write endpoints")
	seedEmployee(t, repo, "alice")
	seedEmployee(t, repo, "bob")

	// alice works on both subtasks, bob on one
	for _, pair := range []struct {
		task int64
		user string
	}{{s1, "alice"}, {s2, "alice"}, {s2, "bob"}} {
		if err := repo.AddAssignment(context.Background(), pair.task, pair.user); err != nil {
			t.Fatalf("Failed to assign %s: %v", pair.user, err)
		}
	}

	count, err := repo.CountInvolvedForTask(context.Background(), top)
	if err != nil {
		t.Fatalf("Failed to count for task: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 distinct employees under 'Backend', got %d", count)
	}

	count, err = repo.CountInvolvedForProject(context.Background(), projectID)
	if err != nil {
		t.Fatalf("Failed to count for project: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 distinct employees under project, got %d", count)
	}
}

func TestGetAssignees(t *testing.T) {
	repo := setupRepo(t)
	projectID := seedProject(t, repo, "Website")
	top := seedTask(t, repo, projectID, nil, "Backend")
	seedEmployee(t, repo, "alice")
	seedEmployee(t, repo, "bob")

	for _, user := range []string{"alice", "bob"} {
		if err := repo.AddAssignment(context.Background(), top, user); err != nil {
			t.Fatalf("Failed to assign %s: %v", user, err)
		}
	}

	assignees, err := repo.GetAssignees(context.Background(), top)
	if err != nil {
		t.Fatalf("Failed to get assignees: %v", err)
	}
	if len(assignees) != 2 {
		t.Fatalf("Expected 2 assignees, got %d", len(assignees))
	}
	if assignees[0].Username != "alice" || assignees[1].Username != "bob" {
		t.Errorf("Unexpected assignees: %s, %s", assignees[0].Username, assignees[1].Username)
	}
}

func TestDeleteEmployeeCascadesAssignments(t *testing.T) {
	repo := setupRepo(t)
	projectID := seedProject(t, repo, "Website")
	top := seedTask(t, repo, projectID, nil, "Backend")
	seedEmployee(t, repo, "alice")

	if err := repo.AddAssignment(context.Background(), top, "alice"); err != nil {
		t.Fatalf("Failed to assign: %v", err)
	}
	if _, err := repo.DeleteEmployee(context.Background(), "alice"); err != nil {
		t.Fatalf("Failed to delete employee: %v", err)
	}

	assignees, err := repo.GetAssignees(context.Background(), top)
	if err != nil {
		t.Fatalf("Failed to get assignees: %v", err)
	}
	if len(assignees) != 0 {
		t.Errorf("Expected assignments to be cascade-deleted, got %d", len(assignees))
	}
}
