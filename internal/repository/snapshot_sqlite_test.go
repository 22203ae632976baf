package repository

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

// newTestRepository открывает SQLite во временном каталоге и применяет миграции
func newTestRepository(t *testing.T) service.SnapshotRepository {
	t.Helper()

	url := "sqlite://" + filepath.Join(t.TempDir(), "snapshots.db")
	repo, closeFn, err := OpenSnapshotRepository(context.Background(), url, newTestLogger())
	require.NoError(t, err)
	t.Cleanup(closeFn)
	return repo
}

func outage(id string, people int) models.OutageEvent {
	return models.OutageEvent{ID: id, Lat: 36.16, Lng: -86.78, NumPeople: people, Status: models.StatusAssigned}
}

func TestSaveSnapshot_EmptyIsNoop(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, []models.OutageEvent{outage("A", 1)}, time.Now()))
	before, err := repo.CountRows(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.SaveSnapshot(ctx, nil, time.Now()))
	require.NoError(t, repo.SaveSnapshot(ctx, []models.OutageEvent{}, time.Now()))

	after, err := repo.CountRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, int64(1), after)
}

func TestSaveSnapshot_LargeBatch(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	events := make([]models.OutageEvent, 0, 1234)
	for i := range 1234 {
		events = append(events, outage(fmt.Sprintf("id-%d", i), 1))
	}

	require.NoError(t, repo.SaveSnapshot(ctx, events, time.Now()))

	count, err := repo.CountRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(events)), count)
}

func TestReadWindow_Queries(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	t1 := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(2 * time.Hour)
	outside := t1.Add(-24 * time.Hour)

	require.NoError(t, repo.SaveSnapshot(ctx, []models.OutageEvent{outage("old", 999)}, outside))
	require.NoError(t, repo.SaveSnapshot(ctx, []models.OutageEvent{outage("A", 50), outage("B", 30), outage("C", 20)}, t1))
	require.NoError(t, repo.SaveSnapshot(ctx, []models.OutageEvent{outage("A", 40), outage("B", 30)}, t2))

	err := repo.ReadWindow(ctx, func(r service.SnapshotReader) error {
		times, err := r.DistinctSnapshotTimes(ctx, t1.Add(-time.Hour), t2)
		require.NoError(t, err)
		require.Len(t, times, 2)
		assert.True(t, times[0].Equal(t1))
		assert.True(t, times[1].Equal(t2))

		ids, err := r.OutageIDsAt(ctx, t1)
		require.NoError(t, err)
		assert.Len(t, ids, 3)
		assert.Contains(t, ids, "C")

		points, err := r.AggregatesSince(ctx, t1.Add(-time.Hour), t2)
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, 3, points[0].TotalOutages)
		assert.Equal(t, 100, points[0].TotalPeopleAffected)
		assert.Equal(t, 2, points[1].TotalOutages)
		assert.Equal(t, 70, points[1].TotalPeopleAffected)
		return nil
	})
	require.NoError(t, err)
}

func TestTrendsEndToEnd(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()
	t1 := now.Add(-3 * time.Hour).Truncate(time.Microsecond)
	t2 := now.Add(-1 * time.Hour).Truncate(time.Microsecond)

	require.NoError(t, repo.SaveSnapshot(ctx, []models.OutageEvent{outage("A", 50), outage("B", 30), outage("C", 20)}, t1))
	require.NoError(t, repo.SaveSnapshot(ctx, []models.OutageEvent{outage("A", 40), outage("B", 30)}, t2))

	trends, err := service.NewTrendService(repo, newTestLogger()).ComputeTrends(ctx, 6)

	require.NoError(t, err)
	require.NotNil(t, trends)
	assert.InDelta(t, 0.5, trends.ResolutionRate, 1e-9)
	assert.Equal(t, -30, trends.NetPeopleChange)
	assert.Len(t, trends.DataPoints, 2)
}

func TestTrendsEndToEnd_SingleSnapshotIsAbsent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, []models.OutageEvent{outage("A", 5)}, time.Now().Add(-time.Hour)))

	trends, err := service.NewTrendService(repo, newTestLogger()).ComputeTrends(ctx, 6)

	require.NoError(t, err)
	assert.Nil(t, trends)
}

func TestOpenSnapshotRepository_UnsupportedScheme(t *testing.T) {
	repo, closeFn, err := OpenSnapshotRepository(context.Background(), "mysql://localhost/db", newTestLogger())

	require.Error(t, err)
	assert.Nil(t, repo)
	assert.Nil(t, closeFn)
	assert.ErrorContains(t, err, "mysql")
}

func TestOpenSnapshotRepository_MigrationsAreIdempotent(t *testing.T) {
	url := "sqlite://" + filepath.Join(t.TempDir(), "snapshots.db")
	ctx := context.Background()

	_, closeFirst, err := OpenSnapshotRepository(ctx, url, newTestLogger())
	require.NoError(t, err)
	closeFirst()

	repo, closeSecond, err := OpenSnapshotRepository(ctx, url, newTestLogger())
	require.NoError(t, err)
	defer closeSecond()

	count, err := repo.CountRows(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
