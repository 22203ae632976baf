package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
	"github.com/mtallentb/nes-outage-viewer/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var trendNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestTrendService - сервис трендов с моками хранилища и фиксированными часами
func newTestTrendService(t *testing.T) (service.TrendService, *mocks.MockSnapshotRepository, *mocks.MockSnapshotReader) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSnapshotRepository(ctrl)
	readerMock := mocks.NewMockSnapshotReader(ctrl)

	svc := service.NewTrendService(repoMock, newTestLogger())
	service.SetClock(svc, func() time.Time { return trendNow })

	// ReadWindow просто передает ридер в функцию
	repoMock.EXPECT().
		ReadWindow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(service.SnapshotReader) error) error {
			return fn(readerMock)
		}).
		AnyTimes()

	return svc, repoMock, readerMock
}

func idSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestComputeTrends_NoSnapshots(t *testing.T) {
	svc, _, readerMock := newTestTrendService(t)
	ctx := context.Background()

	readerMock.EXPECT().
		DistinctSnapshotTimes(ctx, trendNow.Add(-6*time.Hour), trendNow).
		Return(nil, nil).
		Times(1)
	readerMock.EXPECT().OutageIDsAt(gomock.Any(), gomock.Any()).Times(0)
	readerMock.EXPECT().AggregatesSince(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	trends, err := svc.ComputeTrends(ctx, 6)

	require.NoError(t, err)
	assert.Nil(t, trends)
}

func TestComputeTrends_SingleSnapshot(t *testing.T) {
	svc, _, readerMock := newTestTrendService(t)
	ctx := context.Background()

	readerMock.EXPECT().
		DistinctSnapshotTimes(ctx, gomock.Any(), gomock.Any()).
		Return([]time.Time{trendNow.Add(-time.Hour)}, nil).
		Times(1)

	trends, err := svc.ComputeTrends(ctx, 6)

	require.NoError(t, err)
	assert.Nil(t, trends)
}

func TestComputeTrends_ResolutionRateAndNetChange(t *testing.T) {
	svc, _, readerMock := newTestTrendService(t)
	ctx := context.Background()
	t1 := trendNow.Add(-3 * time.Hour)
	t2 := trendNow.Add(-1 * time.Hour)
	since := trendNow.Add(-6 * time.Hour)
	points := []models.TrendDataPoint{
		{Time: t1, TotalOutages: 3, TotalPeopleAffected: 100},
		{Time: t2, TotalOutages: 2, TotalPeopleAffected: 70},
	}

	readerMock.EXPECT().DistinctSnapshotTimes(ctx, since, trendNow).Return([]time.Time{t1, t2}, nil).Times(1)
	readerMock.EXPECT().OutageIDsAt(ctx, t1).Return(idSet("A", "B", "C"), nil).Times(1)
	readerMock.EXPECT().OutageIDsAt(ctx, t2).Return(idSet("A", "B"), nil).Times(1)
	readerMock.EXPECT().AggregatesSince(ctx, since, trendNow).Return(points, nil).Times(1)

	trends, err := svc.ComputeTrends(ctx, 6)

	require.NoError(t, err)
	require.NotNil(t, trends)
	assert.Equal(t, 0.5, trends.ResolutionRate)
	assert.Equal(t, -30, trends.NetPeopleChange)
	assert.Len(t, trends.DataPoints, 2)
	assert.Equal(t, t1, trends.TimeRange.Start)
	assert.Equal(t, t2, trends.TimeRange.End)
}

func TestComputeTrends_NewOutagesAreNotResolved(t *testing.T) {
	svc, _, readerMock := newTestTrendService(t)
	ctx := context.Background()
	t1 := trendNow.Add(-4 * time.Hour)
	t2 := trendNow.Add(-2 * time.Hour)
	t3 := trendNow

	readerMock.EXPECT().DistinctSnapshotTimes(ctx, gomock.Any(), gomock.Any()).Return([]time.Time{t1, t2, t3}, nil).Times(1)
	readerMock.EXPECT().OutageIDsAt(ctx, t1).Return(idSet("A", "B"), nil).Times(1)
	readerMock.EXPECT().OutageIDsAt(ctx, t3).Return(idSet("B", "X", "Y", "Z"), nil).Times(1)
	readerMock.EXPECT().AggregatesSince(ctx, gomock.Any(), gomock.Any()).Return([]models.TrendDataPoint{
		{Time: t1, TotalOutages: 2, TotalPeopleAffected: 10},
		{Time: t2, TotalOutages: 3, TotalPeopleAffected: 50},
		{Time: t3, TotalOutages: 4, TotalPeopleAffected: 40},
	}, nil).Times(1)

	trends, err := svc.ComputeTrends(ctx, 6)

	require.NoError(t, err)
	require.NotNil(t, trends)
	assert.Equal(t, 0.25, trends.ResolutionRate) // 1 устранено за 4 часа
	assert.Equal(t, 30, trends.NetPeopleChange)
	assert.Len(t, trends.DataPoints, 3)
}

func TestComputeTrends_ZeroElapsedGuardsDivision(t *testing.T) {
	svc, _, readerMock := newTestTrendService(t)
	ctx := context.Background()
	at := trendNow.Add(-time.Hour)

	// Два одинаковых времени не бывают DISTINCT, но сервис не должен делить на ноль
	readerMock.EXPECT().DistinctSnapshotTimes(ctx, gomock.Any(), gomock.Any()).Return([]time.Time{at, at}, nil).Times(1)
	readerMock.EXPECT().OutageIDsAt(ctx, at).Return(idSet("A"), nil).Times(2)
	readerMock.EXPECT().AggregatesSince(ctx, gomock.Any(), gomock.Any()).Return([]models.TrendDataPoint{
		{Time: at, TotalOutages: 1, TotalPeopleAffected: 5},
	}, nil).Times(1)

	trends, err := svc.ComputeTrends(ctx, 6)

	require.NoError(t, err)
	require.NotNil(t, trends)
	assert.Equal(t, 0.0, trends.ResolutionRate)
	assert.Equal(t, 0, trends.NetPeopleChange)
}

func TestComputeTrends_NonPositiveHoursBack(t *testing.T) {
	svc, _, readerMock := newTestTrendService(t)
	ctx := context.Background()

	readerMock.EXPECT().DistinctSnapshotTimes(ctx, trendNow, trendNow).Return(nil, nil).Times(2)

	trends, err := svc.ComputeTrends(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, trends)

	trends, err = svc.ComputeTrends(ctx, -5)
	require.NoError(t, err)
	assert.Nil(t, trends)
}

func TestComputeTrends_StorageError(t *testing.T) {
	svc, _, readerMock := newTestTrendService(t)
	ctx := context.Background()
	storageErr := &models.StorageError{Op: "query snapshot times", Err: errors.New("connection refused")}

	readerMock.EXPECT().DistinctSnapshotTimes(ctx, gomock.Any(), gomock.Any()).Return(nil, storageErr).Times(1)

	trends, err := svc.ComputeTrends(ctx, 6)

	require.Error(t, err)
	assert.Nil(t, trends)
	var target *models.StorageError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "query snapshot times", target.Op)
	assert.ErrorContains(t, err, "could not compute trends")
}

func TestComputeTrends_ReadWindowError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSnapshotRepository(ctrl)
	svc := service.NewTrendService(repoMock, newTestLogger())
	ctx := context.Background()

	repoMock.EXPECT().
		ReadWindow(ctx, gomock.Any()).
		Return(&models.StorageError{Op: "begin read transaction", Err: errors.New("pool closed")}).
		Times(1)

	trends, err := svc.ComputeTrends(ctx, 6)

	require.Error(t, err)
	assert.Nil(t, trends)
	var target *models.StorageError
	assert.True(t, errors.As(err, &target))
}
