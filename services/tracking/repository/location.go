package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/constants"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/database"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking"
)

// LocationRepoImpl projects driver state into Redis: a per-driver hash
// snapshot plus a shared geo set for radius queries. Redis is never the
// source of truth; a write failure only loses the projection.
type LocationRepoImpl struct {
	redis *database.RedisClient
	cfg   *models.Config
}

// NewLocationRepo creates a new location repository
func NewLocationRepo(redisClient *database.RedisClient, cfg *models.Config) *LocationRepoImpl {
	return &LocationRepoImpl{
		redis: redisClient,
		cfg:   cfg,
	}
}

var _ tracking.LocationRepo = (*LocationRepoImpl)(nil)

// SaveDriverSnapshot writes the driver's current state to its hash and
// refreshes the geo index entry when a position is known.
func (r *LocationRepoImpl) SaveDriverSnapshot(ctx context.Context, state *models.DriverState) error {
	key := fmt.Sprintf(constants.KeyDriverState, state.ID)

	fields := map[string]interface{}{
		constants.FieldStatus:   string(state.Status),
		constants.FieldDistance: state.DailyDistance,
		constants.FieldDate:     state.EffectiveDate,
	}
	if state.Location != nil {
		fields[constants.FieldLatitude] = state.Location.Latitude
		fields[constants.FieldLongitude] = state.Location.Longitude
		fields[constants.FieldTimestamp] = state.Location.Timestamp.UTC().Format(time.RFC3339Nano)
	}

	if err := r.redis.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to save driver snapshot: %w", err)
	}

	ttl := time.Duration(r.cfg.Tracking.SnapshotTTLHours) * time.Hour
	if err := r.redis.Expire(ctx, key, ttl); err != nil {
		return fmt.Errorf("failed to set snapshot TTL: %w", err)
	}

	if state.Location != nil {
		if err := r.redis.GeoAdd(ctx, constants.KeyDriverGeo,
			state.Location.Longitude, state.Location.Latitude, state.ID); err != nil {
			return fmt.Errorf("failed to update driver geo index: %w", err)
		}
	}

	return nil
}

// GetDriverLocation reads a driver's last snapshotted position
func (r *LocationRepoImpl) GetDriverLocation(ctx context.Context, driverID string) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyDriverState, driverID)

	values, err := r.redis.HMGet(ctx, key,
		constants.FieldLatitude, constants.FieldLongitude, constants.FieldTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if values[0] == "" || values[1] == "" {
		return nil, fmt.Errorf("no location snapshot for driver %s", driverID)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt latitude in snapshot: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt longitude in snapshot: %w", err)
	}

	location := &models.Location{
		Latitude:  lat,
		Longitude: lng,
	}
	if values[2] != "" {
		if ts, err := time.Parse(time.RFC3339Nano, values[2]); err == nil {
			location.Timestamp = ts
		}
	}

	return location, nil
}

// NearbyDrivers finds drivers within radiusKm of a location, closest first
func (r *LocationRepoImpl) NearbyDrivers(ctx context.Context, location *models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	results, err := r.redis.GeoRadius(ctx, constants.KeyDriverGeo,
		location.Longitude, location.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby drivers: %w", err)
	}

	drivers := make([]models.NearbyDriver, 0, len(results))
	for _, res := range results {
		drivers = append(drivers, models.NearbyDriver{
			ID: res.Name,
			Location: models.Location{
				Latitude:  res.Latitude,
				Longitude: res.Longitude,
			},
			Distance: res.Dist,
		})
	}

	return drivers, nil
}

// RemoveDriver drops a driver's snapshot and geo index entry
func (r *LocationRepoImpl) RemoveDriver(ctx context.Context, driverID string) error {
	key := fmt.Sprintf(constants.KeyDriverState, driverID)

	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete driver snapshot: %w", err)
	}
	if err := r.redis.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}
	return nil
}
