package dependency

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

// seedTree creates a project with one top-level task and two subtasks and
// returns the three task ids.
func (f *fixture) seedTree(t *testing.T) (top, s1, s2 int64) {
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
	return top, s1, s2
}

func TestAddAndListDependency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, s1, s2 := f.seedTree(t)

	require.NoError(t, f.svc.AddDependency(ctx, s2, s1))

	deps, err := f.svc.ListDependencies(ctx, s2)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, s2, deps[0].TaskID)
	assert.Equal(t, s1, deps[0].MustFollowID)

	// The edge is directed; s1 has no outgoing edges
	deps, err = f.svc.ListDependencies(ctx, s1)
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestSelfDependencyRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, s1, _ := f.seedTree(t)

	err := f.svc.AddDependency(ctx, s1, s1)
	assert.ErrorIs(t, err, ErrSelfDependency)
	assert.ErrorIs(t, err, models.ErrUnsupportedOperation)
}

func TestDuplicateEdgeRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, s1, s2 := f.seedTree(t)

	require.NoError(t, f.svc.AddDependency(ctx, s2, s1))

	err := f.svc.AddDependency(ctx, s2, s1)
	assert.ErrorIs(t, err, ErrDuplicateEdge)
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	// The failed insert left exactly one edge behind
	deps, err := f.svc.ListDependencies(ctx, s2)
	require.NoError(t, err)
	assert.Len(t, deps, 1)

	// The reverse direction is a different edge and still allowed
	require.NoError(t, f.svc.AddDependency(ctx, s1, s2))
}

func TestAddDependencyMissingEndpoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, s1, _ := f.seedTree(t)

	assert.ErrorIs(t, f.svc.AddDependency(ctx, s1, 9999), ErrTaskNotFound)
	assert.ErrorIs(t, f.svc.AddDependency(ctx, 9999, s1), ErrTaskNotFound)
}

func TestRemoveDependency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, s1, s2 := f.seedTree(t)

	require.NoError(t, f.svc.AddDependency(ctx, s2, s1))
	require.NoError(t, f.svc.RemoveDependency(ctx, s2, s1))

	// Gone now, and removing again is the same failure as removing an
	// edge that never existed
	err := f.svc.RemoveDependency(ctx, s2, s1)
	assert.ErrorIs(t, err, ErrEdgeNotFound)
	assert.ErrorIs(t, f.svc.RemoveDependency(ctx, 9999, s1), ErrEdgeNotFound)
}

func TestCascadeDeleteRemovesEdges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	top, s1, s2 := f.seedTree(t)

	require.NoError(t, f.svc.AddDependency(ctx, s2, s1))

	// Deleting the parent takes the subtasks and their edges with it
	_, err := f.repo.DeleteTask(ctx, top)
	require.NoError(t, err)

	_, err = f.svc.ListDependencies(ctx, s2)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
