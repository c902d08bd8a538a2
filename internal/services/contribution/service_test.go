package contribution

import (
	"context"
	"math"
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

func TestLogContributionAccumulates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, s1, _ := f.seedTree(t)
	f.seedEmployee(t, "alice")

	// Same pair twice; both records survive
	_, err := f.svc.LogContribution(ctx, "alice", s1, 2.5)
	require.NoError(t, err)
	_, err = f.svc.LogContribution(ctx, "alice", s1, 1.5)
	require.NoError(t, err)

	hours, err := f.svc.AllContributions(ctx, s1)
	require.NoError(t, err)
	assert.Len(t, hours, 2)

	total, err := f.svc.TotalHoursForTask(ctx, s1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, total, 1e-9)
}

func TestTotalsRollUpTheTree(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID, top, s1, s2 := f.seedTree(t)
	f.seedEmployee(t, "alice")

	_, err := f.svc.LogContribution(ctx, "alice", top, 1.0)
	require.NoError(t, err)
	_, err = f.svc.LogContribution(ctx, "alice", s1, 2.5)
	require.NoError(t, err)
	_, err = f.svc.LogContribution(ctx, "alice", s2, 3.0)
	require.NoError(t, err)

	total, err := f.svc.TotalHoursForTask(ctx, top)
	require.NoError(t, err)
	assert.InDelta(t, 6.5, total, 1e-9)

	total, err = f.svc.TotalHoursForProject(ctx, projectID)
	require.NoError(t, err)
	assert.InDelta(t, 6.5, total, 1e-9)
}

func TestTotalWithoutContributionsIsZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID, top, _, _ := f.seedTree(t)

	total, err := f.svc.TotalHoursForTask(ctx, top)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	total, err = f.svc.TotalHoursForProject(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestTotalOnMissingScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.TotalHoursForTask(ctx, 9999)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = f.svc.TotalHoursForProject(ctx, 9999)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestLogContributionRejectsBadHours(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, s1, _ := f.seedTree(t)
	f.seedEmployee(t, "alice")

	for _, hours := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := f.svc.LogContribution(ctx, "alice", s1, hours)
		assert.ErrorIs(t, err, ErrInvalidHours)
		assert.ErrorIs(t, err, models.ErrInvalidValue)
	}

	// Zero hours is allowed
	_, err := f.svc.LogContribution(ctx, "alice", s1, 0)
	assert.NoError(t, err)
}

func TestDeleteContributionByTriple(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, s1, _ := f.seedTree(t)
	f.seedEmployee(t, "alice")

	c, err := f.svc.LogContribution(ctx, "alice", s1, 2.5)
	require.NoError(t, err)

	// The timestamp returned at logging time identifies the record exactly
	require.NoError(t, f.svc.DeleteContribution(ctx, "alice", s1, c.RecordedAt))

	err = f.svc.DeleteContribution(ctx, "alice", s1, c.RecordedAt)
	assert.ErrorIs(t, err, ErrContributionNotFound)

	total, err := f.svc.TotalHoursForTask(ctx, s1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestCascadeDeleteRemovesContributions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, top, s1, _ := f.seedTree(t)
	f.seedEmployee(t, "alice")

	_, err := f.svc.LogContribution(ctx, "alice", s1, 2.5)
	require.NoError(t, err)

	_, err = f.repo.DeleteTask(ctx, top)
	require.NoError(t, err)

	_, err = f.svc.TotalHoursForTask(ctx, s1)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestArtifactLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, s1, _ := f.seedTree(t)
	f.seedEmployee(t, "alice")

	_, err := f.svc.AddArtifact(ctx, s1, "alice", "")
	assert.ErrorIs(t, err, ErrEmptyPath)

	a, err := f.svc.AddArtifact(ctx, s1, "alice", "docs/schema.sql")
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)

	// The same path can be recorded twice; ids stay distinct
	b, err := f.svc.AddArtifact(ctx, s1, "alice", "docs/schema.sql")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	artifacts, err := f.svc.ListArtifacts(ctx, s1)
	require.NoError(t, err)
	assert.Len(t, artifacts, 2)

	require.NoError(t, f.svc.RemoveArtifact(ctx, a.ID))
	assert.ErrorIs(t, f.svc.RemoveArtifact(ctx, a.ID), ErrArtifactNotFound)
}
