package assignment

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/database"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

type fixture struct {
	svc  Service
	repo *database.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := database.NewRepository(db)
	return &fixture{svc: NewService(repo), repo: repo}
}

func (f *fixture) seedTree(t *testing.T) (projectID, top, s1, s2 int64) {
	t.Helper()
	ctx := context.Background()
	project, err := f.repo.CreateProject(ctx, models.Project{
		Title:     "Website",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	top, err = f.repo.CreateTask(ctx, project.ID, nil, models.TaskFields{Title: "Backend"})
	require.NoError(t, err)
	s1, err = f.repo.CreateTask(ctx, project.ID, &top, models.TaskFields{Title: "Design schema"})
	require.NoError(t, err)
	s2, err = f.repo.CreateTask(ctx, project.ID, &top, models.TaskFields{Title: "Write endpoints"})
	require.NoError(t, err)
	return project.ID, top, s1, s2
}

func (f *fixture) seedEmployee(t *testing.T, username string) {
	t.Helper()
	require.NoError(t, f.repo.CreateEmployee(context.Background(), models.Employee{
		Username:     username,
		Name:         "Test " + username,
		Email:        username + "@plannex.test",
		Password:     "secret",
		WorkdayStart: "09:00",
		WorkdayEnd:   "17:00",
	}))
}

func TestAssignAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, top, _, _ := f.seedTree(t)
	f.seedEmployee(t, "alice")

	require.NoError(t, f.svc.Assign(ctx, top, "alice"))

	assignees, err := f.svc.ListAssignees(ctx, top)
	require.NoError(t, err)
	require.Len(t, assignees, 1)
	assert.Equal(t, "alice", assignees[0].Username)
}

func TestAssignDuplicateRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, top, _, _ := f.seedTree(t)
	f.seedEmployee(t, "alice")

	require.NoError(t, f.svc.Assign(ctx, top, "alice"))

	err := f.svc.Assign(ctx, top, "alice")
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestAssignMissingEndpoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, top, _, _ := f.seedTree(t)
	f.seedEmployee(t, "alice")

	assert.ErrorIs(t, f.svc.Assign(ctx, 9999, "alice"), ErrTaskNotFound)
	assert.ErrorIs(t, f.svc.Assign(ctx, top, "ghost"), ErrEmployeeNotFound)
}

func TestUnassignNeverAssigned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, top, _, _ := f.seedTree(t)
	f.seedEmployee(t, "alice")
	f.seedEmployee(t, "bob")

	require.NoError(t, f.svc.Assign(ctx, top, "alice"))

	// bob was never assigned; the failure must leave alice's row alone
	err := f.svc.Unassign(ctx, top, "bob")
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assignees, err := f.svc.ListAssignees(ctx, top)
	require.NoError(t, err)
	require.Len(t, assignees, 1)
	assert.Equal(t, "alice", assignees[0].Username)
}

func TestCountInvolvedIsDistinct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID, top, s1, s2 := f.seedTree(t)
	f.seedEmployee(t, "alice")
	f.seedEmployee(t, "bob")

	// alice appears on the parent and both subtasks, bob on one subtask
	require.NoError(t, f.svc.Assign(ctx, top, "alice"))
	require.NoError(t, f.svc.Assign(ctx, s1, "alice"))
	require.NoError(t, f.svc.Assign(ctx, s2, "alice"))
	require.NoError(t, f.svc.Assign(ctx, s2, "bob"))

	count, err := f.svc.CountInvolvedForTask(ctx, top)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = f.svc.CountInvolvedForProject(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountInvolvedMissingScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CountInvolvedForTask(ctx, 9999)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = f.svc.CountInvolvedForProject(ctx, 9999)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
