package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/logger"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/utils"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/store"
)

const dateLayout = "2006-01-02"

var (
	// ErrInvalidSample means a location sample failed validation and was
	// dropped. Callers log it; the emitting client gets a diagnostic
	// event at most.
	ErrInvalidSample = errors.New("invalid location sample")
	// ErrNoLocation means the driver is known but has no recorded
	// position yet.
	ErrNoLocation = errors.New("no location recorded for driver")
)

// TrackingUCImpl implements the tracking.TrackingUC interface
type TrackingUCImpl struct {
	drivers     *store.DriverStore
	repo        tracking.LocationRepo
	gw          tracking.TrackingGW
	broadcaster tracking.Broadcaster
	cfg         *models.Config
	now         func() time.Time
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(
	drivers *store.DriverStore,
	repo tracking.LocationRepo,
	gw tracking.TrackingGW,
	broadcaster tracking.Broadcaster,
	cfg *models.Config,
) *TrackingUCImpl {
	return &TrackingUCImpl{
		drivers:     drivers,
		repo:        repo,
		gw:          gw,
		broadcaster: broadcaster,
		cfg:         cfg,
		now:         time.Now,
	}
}

// IngestLocationSample validates and applies one GPS sample to the
// driver's state: daily odometer rollover, distance delta against the
// immediately preceding position, then fanout of the enriched state.
// Samples are applied in arrival order; client timestamps are not used
// for reordering.
func (uc *TrackingUCImpl) IngestLocationSample(ctx context.Context, sample models.LocationSample) (*models.DriverUpdate, error) {
	if sample.DriverID == "" {
		return nil, fmt.Errorf("%w: missing driver id", ErrInvalidSample)
	}
	if !utils.ValidCoordinates(sample.Latitude, sample.Longitude) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidSample)
	}

	receivedAt := uc.now()
	today := receivedAt.UTC().Format(dateLayout)

	sampleTime := sample.Timestamp
	if sampleTime.IsZero() {
		sampleTime = receivedAt
	}

	state := uc.drivers.Update(sample.DriverID, func(st *models.DriverState) {
		rolled := st.EffectiveDate != today
		if rolled {
			// Odometer rollover: the previous day's position is not
			// diffed against across the boundary.
			st.DailyDistance = 0
			st.EffectiveDate = today
		}

		if st.Location != nil && !rolled {
			delta := utils.DistanceMeters(
				st.Location.Latitude, st.Location.Longitude,
				sample.Latitude, sample.Longitude,
			)
			st.DailyDistance += delta
		}

		st.Location = &models.Location{
			Latitude:  sample.Latitude,
			Longitude: sample.Longitude,
			Timestamp: sampleTime,
		}
		st.UpdatedAt = receivedAt
	})

	if err := uc.repo.SaveDriverSnapshot(ctx, state); err != nil {
		logger.Warn("Failed to save driver snapshot",
			logger.String("driver_id", sample.DriverID),
			logger.Err(err))
	}

	// Fanout runs outside the entry lock. Same-driver ordering holds
	// because a driver's samples arrive over its single connection and
	// are ingested by that connection's reader goroutine.
	update := uc.buildUpdate(state, receivedAt)
	uc.broadcaster.BroadcastDriverUpdate(update)

	if err := uc.gw.PublishLocationUpdate(ctx, update); err != nil {
		logger.Warn("Failed to publish location update",
			logger.String("driver_id", sample.DriverID),
			logger.Err(err))
	}

	return &update, nil
}

// RegisterDriver creates a driver record with a generated stable ID.
// The display name is a non-unique attribute, never the key.
func (uc *TrackingUCImpl) RegisterDriver(ctx context.Context, name string) (*models.DriverState, error) {
	if name == "" {
		return nil, fmt.Errorf("driver name is required")
	}

	id := uuid.NewString()
	state := uc.drivers.Upsert(id, models.DriverPatch{Name: &name})

	logger.Info("Registered driver",
		logger.String("driver_id", id),
		logger.String("name", name))
	return state, nil
}

// SetDriverStatus updates a driver's availability and propagates the
// change to observers.
func (uc *TrackingUCImpl) SetDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) (*models.DriverState, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid driver status: %s", status)
	}

	state, err := uc.drivers.SetStatus(driverID, status)
	if err != nil {
		return nil, err
	}

	if status == models.DriverStatusOffline {
		// Offline drivers leave the geo set so nearby queries stop
		// returning them.
		if err := uc.repo.RemoveDriver(ctx, driverID); err != nil {
			logger.Warn("Failed to remove driver projection",
				logger.String("driver_id", driverID),
				logger.Err(err))
		}
	} else if err := uc.repo.SaveDriverSnapshot(ctx, state); err != nil {
		logger.Warn("Failed to save driver snapshot",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	uc.broadcaster.BroadcastDriverUpdate(uc.buildUpdate(state, uc.now()))
	return state, nil
}

// GetDriver returns the driver's full state
func (uc *TrackingUCImpl) GetDriver(ctx context.Context, driverID string) (*models.DriverState, error) {
	state, ok := uc.drivers.Get(driverID)
	if !ok {
		return nil, store.ErrDriverNotFound
	}
	return state, nil
}

// ListDrivers returns a snapshot of all driver states
func (uc *TrackingUCImpl) ListDrivers(ctx context.Context) ([]models.DriverState, error) {
	return uc.drivers.List(), nil
}

// GetDriverLocation returns the driver's last known position, falling
// back to the Redis snapshot for drivers not seen since startup.
func (uc *TrackingUCImpl) GetDriverLocation(ctx context.Context, driverID string) (*models.Location, error) {
	if state, ok := uc.drivers.Get(driverID); ok {
		if state.Location == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoLocation, driverID)
		}
		return state.Location, nil
	}

	location, err := uc.repo.GetDriverLocation(ctx, driverID)
	if err != nil {
		return nil, store.ErrDriverNotFound
	}
	return location, nil
}

// NearbyDrivers finds drivers within radiusKm of a location
func (uc *TrackingUCImpl) NearbyDrivers(ctx context.Context, location *models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	if location == nil || !utils.ValidCoordinates(location.Latitude, location.Longitude) {
		return nil, fmt.Errorf("invalid location coordinates")
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}

	return uc.repo.NearbyDrivers(ctx, location, radiusKm)
}

func (uc *TrackingUCImpl) buildUpdate(state *models.DriverState, at time.Time) models.DriverUpdate {
	update := models.DriverUpdate{
		DriverID:      state.ID,
		Name:          state.Name,
		DailyDistance: math.Round(state.DailyDistance),
		EffectiveDate: state.EffectiveDate,
		Status:        state.Status,
		Timestamp:     at,
	}
	if state.Location != nil {
		update.Latitude = state.Location.Latitude
		update.Longitude = state.Location.Longitude
		update.Geohash = utils.EncodeLocation(*state.Location, uc.cfg.Tracking.GeohashPrecision)
	}
	return update
}
