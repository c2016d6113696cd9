package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/utils"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/mocks"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/store"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Tracking.GeohashPrecision = 7
	cfg.Tracking.SnapshotTTLHours = 24
	return cfg
}

func newTestUC(t *testing.T) (*TrackingUCImpl, *mocks.MockLocationRepo, *mocks.MockTrackingGW, *mocks.MockBroadcaster) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockTrackingGW(ctrl)
	mockBroadcaster := mocks.NewMockBroadcaster(ctrl)

	uc := NewTrackingUC(store.NewDriverStore(), mockRepo, mockGW, mockBroadcaster, testConfig())
	return uc, mockRepo, mockGW, mockBroadcaster
}

func allowSideEffects(repo *mocks.MockLocationRepo, gw *mocks.MockTrackingGW, broadcaster *mocks.MockBroadcaster) {
	repo.EXPECT().SaveDriverSnapshot(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	broadcaster.EXPECT().BroadcastDriverUpdate(gomock.Any()).AnyTimes()
}

func TestIngestLocationSample_AccumulatesDistance(t *testing.T) {
	uc, repo, gw, broadcaster := newTestUC(t)
	allowSideEffects(repo, gw, broadcaster)

	ctx := context.Background()

	_, err := uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "alice", Latitude: -26.0, Longitude: 28.0,
	})
	require.NoError(t, err)

	update, err := uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "alice", Latitude: -26.001, Longitude: 28.001,
	})
	require.NoError(t, err)

	expected := utils.DistanceMeters(-26.0, 28.0, -26.001, 28.001)
	assert.InDelta(t, expected, update.DailyDistance, 1.0)
	assert.InDelta(t, 136.0, update.DailyDistance, 15.0)
}

func TestIngestLocationSample_FirstSampleNoDelta(t *testing.T) {
	uc, repo, gw, broadcaster := newTestUC(t)
	allowSideEffects(repo, gw, broadcaster)

	update, err := uc.IngestLocationSample(context.Background(), models.LocationSample{
		DriverID: "alice", Latitude: -26.0, Longitude: 28.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, update.DailyDistance)
}

func TestIngestLocationSample_IdenticalPositionZeroDelta(t *testing.T) {
	uc, repo, gw, broadcaster := newTestUC(t)
	allowSideEffects(repo, gw, broadcaster)

	ctx := context.Background()
	_, err := uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "alice", Latitude: -26.0, Longitude: 28.0,
	})
	require.NoError(t, err)

	before, err := uc.GetDriver(ctx, "alice")
	require.NoError(t, err)

	// Same position again: zero delta, but the record still refreshes
	update, err := uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "alice", Latitude: -26.0, Longitude: 28.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, update.DailyDistance)

	after, err := uc.GetDriver(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestIngestLocationSample_SumOfPairwiseDistances(t *testing.T) {
	uc, repo, gw, broadcaster := newTestUC(t)
	allowSideEffects(repo, gw, broadcaster)

	ctx := context.Background()
	points := [][2]float64{
		{-26.0, 28.0},
		{-26.001, 28.001},
		{-26.002, 28.0},
		{-26.002, 28.0}, // repeat contributes zero
		{-26.0035, 28.002},
	}

	var expected float64
	var last *models.DriverUpdate
	for i, p := range points {
		update, err := uc.IngestLocationSample(ctx, models.LocationSample{
			DriverID: "alice", Latitude: p[0], Longitude: p[1],
		})
		require.NoError(t, err)
		if i > 0 {
			expected += utils.DistanceMeters(points[i-1][0], points[i-1][1], p[0], p[1])
		}
		// Monotonic non-decreasing within the day
		if last != nil {
			assert.GreaterOrEqual(t, update.DailyDistance, last.DailyDistance)
		}
		last = update
	}

	assert.InDelta(t, expected, last.DailyDistance, 1.0)
}

func TestIngestLocationSample_DailyRollover(t *testing.T) {
	uc, repo, gw, broadcaster := newTestUC(t)
	allowSideEffects(repo, gw, broadcaster)

	ctx := context.Background()
	day1 := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)

	uc.now = func() time.Time { return day1 }
	_, err := uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "bob", Latitude: -26.0, Longitude: 28.0,
	})
	require.NoError(t, err)
	_, err = uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "bob", Latitude: -26.01, Longitude: 28.01,
	})
	require.NoError(t, err)

	state, err := uc.GetDriver(ctx, "bob")
	require.NoError(t, err)
	require.Greater(t, state.DailyDistance, 0.0)

	// First sample of the next day: the accumulator resets and the
	// previous day's position is not diffed against.
	uc.now = func() time.Time { return day2 }
	update, err := uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "bob", Latitude: -26.05, Longitude: 28.05,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, update.DailyDistance)
	assert.Equal(t, "2026-03-02", update.EffectiveDate)

	// Second sample of the new day accumulates from the first
	update, err = uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "bob", Latitude: -26.051, Longitude: 28.051,
	})
	require.NoError(t, err)
	expected := utils.DistanceMeters(-26.05, 28.05, -26.051, 28.051)
	assert.InDelta(t, expected, update.DailyDistance, 1.0)
}

func TestIngestLocationSample_Validation(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	ctx := context.Background()

	_, err := uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "", Latitude: -26.0, Longitude: 28.0,
	})
	assert.ErrorIs(t, err, ErrInvalidSample)

	_, err = uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "alice", Latitude: math.NaN(), Longitude: 28.0,
	})
	assert.ErrorIs(t, err, ErrInvalidSample)

	_, err = uc.IngestLocationSample(ctx, models.LocationSample{
		DriverID: "alice", Latitude: -95.0, Longitude: 28.0,
	})
	assert.ErrorIs(t, err, ErrInvalidSample)

	// A dropped sample leaves no driver record behind
	_, err = uc.GetDriver(ctx, "alice")
	assert.ErrorIs(t, err, store.ErrDriverNotFound)
}

func TestIngestLocationSample_SnapshotFailureDoesNotFailIngest(t *testing.T) {
	uc, repo, gw, broadcaster := newTestUC(t)

	repo.EXPECT().
		SaveDriverSnapshot(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))
	gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)
	broadcaster.EXPECT().BroadcastDriverUpdate(gomock.Any())

	update, err := uc.IngestLocationSample(context.Background(), models.LocationSample{
		DriverID: "alice", Latitude: -26.0, Longitude: 28.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", update.DriverID)
}

func TestRegisterDriver(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	state, err := uc.RegisterDriver(context.Background(), "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, state.ID)
	assert.NotEqual(t, "Alice", state.ID) // name is not the key
	assert.Equal(t, "Alice", state.Name)
	assert.Equal(t, models.DriverStatusOffline, state.Status)

	// Two drivers sharing a name get distinct identities
	other, err := uc.RegisterDriver(context.Background(), "Alice")
	require.NoError(t, err)
	assert.NotEqual(t, state.ID, other.ID)
}

func TestSetDriverStatus(t *testing.T) {
	uc, repo, gw, broadcaster := newTestUC(t)
	allowSideEffects(repo, gw, broadcaster)

	ctx := context.Background()
	state, err := uc.RegisterDriver(ctx, "Alice")
	require.NoError(t, err)

	updated, err := uc.SetDriverStatus(ctx, state.ID, models.DriverStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, models.DriverStatusAvailable, updated.Status)

	_, err = uc.SetDriverStatus(ctx, state.ID, models.DriverStatus("flying"))
	assert.Error(t, err)

	_, err = uc.SetDriverStatus(ctx, "ghost", models.DriverStatusAvailable)
	assert.ErrorIs(t, err, store.ErrDriverNotFound)
}

func TestSetDriverStatus_BusyWithoutTripRejected(t *testing.T) {
	uc, repo, gw, broadcaster := newTestUC(t)
	allowSideEffects(repo, gw, broadcaster)

	ctx := context.Background()
	state, err := uc.RegisterDriver(ctx, "Alice")
	require.NoError(t, err)

	_, err = uc.SetDriverStatus(ctx, state.ID, models.DriverStatusBusy)
	assert.ErrorIs(t, err, store.ErrNoTripBound)

	// The rejected change is not applied
	current, err := uc.GetDriver(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DriverStatusOffline, current.Status)
}

func TestSetDriverStatus_OfflineRemovesProjection(t *testing.T) {
	uc, repo, gw, broadcaster := newTestUC(t)
	gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	broadcaster.EXPECT().BroadcastDriverUpdate(gomock.Any()).AnyTimes()

	ctx := context.Background()
	state, err := uc.RegisterDriver(ctx, "Alice")
	require.NoError(t, err)

	repo.EXPECT().SaveDriverSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	_, err = uc.SetDriverStatus(ctx, state.ID, models.DriverStatusAvailable)
	require.NoError(t, err)

	// Going offline removes the redis projection instead of refreshing
	// the snapshot, so nearby queries stop returning the driver.
	repo.EXPECT().RemoveDriver(gomock.Any(), state.ID).Return(nil)
	updated, err := uc.SetDriverStatus(ctx, state.ID, models.DriverStatusOffline)
	require.NoError(t, err)
	assert.Equal(t, models.DriverStatusOffline, updated.Status)
}

func TestGetDriverLocation_NoLocationRecorded(t *testing.T) {
	uc, repo, gw, broadcaster := newTestUC(t)
	allowSideEffects(repo, gw, broadcaster)

	state, err := uc.RegisterDriver(context.Background(), "Alice")
	require.NoError(t, err)

	_, err = uc.GetDriverLocation(context.Background(), state.ID)
	assert.ErrorIs(t, err, ErrNoLocation)
}

func TestGetDriverLocation_FallsBackToSnapshot(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	want := &models.Location{Latitude: -26.0, Longitude: 28.0}
	repo.EXPECT().
		GetDriverLocation(gomock.Any(), "cold-driver").
		Return(want, nil)

	got, err := uc.GetDriverLocation(context.Background(), "cold-driver")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNearbyDrivers_Validation(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	ctx := context.Background()
	_, err := uc.NearbyDrivers(ctx, nil, 5)
	assert.Error(t, err)

	_, err = uc.NearbyDrivers(ctx, &models.Location{Latitude: -26, Longitude: 28}, 0)
	assert.Error(t, err)
}

func TestNearbyDrivers(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	loc := &models.Location{Latitude: -26.0, Longitude: 28.0}
	repo.EXPECT().
		NearbyDrivers(gomock.Any(), loc, 5.0).
		Return([]models.NearbyDriver{{ID: "driver-1", Distance: 1.2}}, nil)

	drivers, err := uc.NearbyDrivers(context.Background(), loc, 5.0)
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "driver-1", drivers[0].ID)
}
