package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch"
)

// ErrTripNotFound means no trip exists with the given ID
var ErrTripNotFound = errors.New("trip not found")

// TripRepoImpl persists trip records in Postgres
type TripRepoImpl struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepoImpl {
	return &TripRepoImpl{
		cfg: cfg,
		db:  db,
	}
}

var _ dispatch.TripRepo = (*TripRepoImpl)(nil)

// CreateTrip inserts a new trip record
func (r *TripRepoImpl) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, customer_id, driver_id, driver_name,
			pickup_latitude, pickup_longitude,
			destination_latitude, destination_longitude,
			distance_km, fare, currency, status, requested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		trip.ID,
		trip.CustomerID,
		trip.DriverID,
		trip.DriverName,
		trip.Pickup.Latitude,
		trip.Pickup.Longitude,
		trip.Destination.Latitude,
		trip.Destination.Longitude,
		trip.DistanceKm,
		trip.Fare,
		trip.Currency,
		trip.Status,
		trip.RequestedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID
func (r *TripRepoImpl) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	query := `
		SELECT
			id, customer_id, driver_id, driver_name,
			pickup_latitude, pickup_longitude,
			destination_latitude, destination_longitude,
			distance_km, fare, currency, status,
			requested_at, accepted_at, completed_at, cancelled_at
		FROM trips
		WHERE id = $1
	`

	trip, err := r.scanTrip(r.db.QueryRowContext(ctx, query, tripID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// ListCustomerTrips retrieves a customer's trips, newest first
func (r *TripRepoImpl) ListCustomerTrips(ctx context.Context, customerID string) ([]models.Trip, error) {
	query := `
		SELECT
			id, customer_id, driver_id, driver_name,
			pickup_latitude, pickup_longitude,
			destination_latitude, destination_longitude,
			distance_km, fare, currency, status,
			requested_at, accepted_at, completed_at, cancelled_at
		FROM trips
		WHERE customer_id = $1
		ORDER BY requested_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		trip, err := r.scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, *trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}
	return trips, nil
}

// UpdateTripStatus persists a trip's status and transition timestamps
func (r *TripRepoImpl) UpdateTripStatus(ctx context.Context, trip *models.Trip) error {
	query := `
		UPDATE trips
		SET status = $2, accepted_at = $3, completed_at = $4, cancelled_at = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		trip.ID,
		trip.Status,
		trip.AcceptedAt,
		trip.CompletedAt,
		trip.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrTripNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *TripRepoImpl) scanTrip(row rowScanner) (*models.Trip, error) {
	trip := &models.Trip{}
	var driverID, driverName sql.NullString
	var acceptedAt, completedAt, cancelledAt sql.NullTime

	err := row.Scan(
		&trip.ID,
		&trip.CustomerID,
		&driverID,
		&driverName,
		&trip.Pickup.Latitude,
		&trip.Pickup.Longitude,
		&trip.Destination.Latitude,
		&trip.Destination.Longitude,
		&trip.DistanceKm,
		&trip.Fare,
		&trip.Currency,
		&trip.Status,
		&trip.RequestedAt,
		&acceptedAt,
		&completedAt,
		&cancelledAt,
	)
	if err != nil {
		return nil, err
	}

	if driverID.Valid {
		trip.DriverID = driverID.String
	}
	if driverName.Valid {
		trip.DriverName = driverName.String
	}
	if acceptedAt.Valid {
		trip.AcceptedAt = &acceptedAt.Time
	}
	if completedAt.Valid {
		trip.CompletedAt = &completedAt.Time
	}
	if cancelledAt.Valid {
		trip.CancelledAt = &cancelledAt.Time
	}

	return trip, nil
}
