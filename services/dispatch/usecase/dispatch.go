package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/constants"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/logger"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/utils"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/store"
)

var (
	// ErrNoDriversAvailable means no driver could be reserved for a
	// trip request. No trip record is created in that case.
	ErrNoDriversAvailable = errors.New("no drivers available")

	// ErrInvalidTransition means the requested trip status change is
	// not allowed from the trip's current status.
	ErrInvalidTransition = errors.New("invalid trip status transition")
)

// DispatchUCImpl implements the dispatch.DispatchUC interface
type DispatchUCImpl struct {
	drivers  *store.DriverStore
	repo     dispatch.TripRepo
	gw       dispatch.DispatchGW
	notifier dispatch.Notifier
	cfg      *models.Config
	now      func() time.Time
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	drivers *store.DriverStore,
	repo dispatch.TripRepo,
	gw dispatch.DispatchGW,
	notifier dispatch.Notifier,
	cfg *models.Config,
) *DispatchUCImpl {
	return &DispatchUCImpl{
		drivers:  drivers,
		repo:     repo,
		gw:       gw,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
	}
}

// RequestTrip reserves an available driver and creates the trip record.
// Reservation is atomic per driver: under concurrent requests each
// driver is bound to at most one trip, and losing requests move on to
// the next candidate. When no candidate can be reserved the request
// fails with ErrNoDriversAvailable and nothing is persisted.
func (uc *DispatchUCImpl) RequestTrip(ctx context.Context, req models.TripRequest) (*models.TripAssignment, error) {
	if req.CustomerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	if !utils.ValidCoordinates(req.Pickup.Latitude, req.Pickup.Longitude) ||
		!utils.ValidCoordinates(req.Destination.Latitude, req.Destination.Longitude) {
		return nil, fmt.Errorf("invalid trip coordinates")
	}

	tripID := uuid.NewString()

	var reserved *models.DriverState
	for _, candidate := range uc.drivers.Available() {
		state, err := uc.drivers.BindTrip(candidate.ID, tripID)
		if err != nil {
			// Raced with another request or a status change; try the
			// next candidate.
			continue
		}
		reserved = state
		break
	}
	if reserved == nil {
		return nil, ErrNoDriversAvailable
	}

	distanceKm := utils.DistanceKm(req.Pickup, req.Destination)
	requestedAt := uc.now()
	// A successful reservation is the acceptance: the trip record is
	// born accepted, never parked in requested.
	trip := &models.Trip{
		ID:          tripID,
		CustomerID:  req.CustomerID,
		DriverID:    reserved.ID,
		DriverName:  reserved.Name,
		Pickup:      req.Pickup,
		Destination: req.Destination,
		DistanceKm:  distanceKm,
		Fare:        uc.cfg.Pricing.BaseFare + uc.cfg.Pricing.PerKmRate*distanceKm,
		Currency:    uc.cfg.Pricing.Currency,
		Status:      models.TripStatusAccepted,
		RequestedAt: requestedAt,
		AcceptedAt:  &requestedAt,
	}

	if err := uc.repo.CreateTrip(ctx, trip); err != nil {
		// Undo the reservation so the driver is not stuck busy on a
		// trip that never existed.
		if _, relErr := uc.drivers.ReleaseTrip(reserved.ID); relErr != nil {
			logger.Error("Failed to release driver after trip create failure",
				logger.String("driver_id", reserved.ID),
				logger.Err(relErr))
		}
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	assignment := &models.TripAssignment{Trip: trip, Driver: reserved}

	event := uc.tripEvent(trip)
	if err := uc.gw.PublishTripAssigned(ctx, event); err != nil {
		logger.Warn("Failed to publish trip assigned event",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
	uc.notifier.NotifyClient(trip.CustomerID, constants.EventTripAssigned, assignment)
	uc.notifier.NotifyClient(reserved.ID, constants.EventTripAssigned, assignment)

	logger.Info("Trip assigned",
		logger.String("trip_id", trip.ID),
		logger.String("driver_id", reserved.ID),
		logger.String("customer_id", trip.CustomerID))

	return assignment, nil
}

// GetTrip returns a trip by ID
func (uc *DispatchUCImpl) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return uc.repo.GetTrip(ctx, tripID)
}

// ListCustomerTrips returns a customer's trips, newest first
func (uc *DispatchUCImpl) ListCustomerTrips(ctx context.Context, customerID string) ([]models.Trip, error) {
	return uc.repo.ListCustomerTrips(ctx, customerID)
}

// UpdateTripStatus applies a trip status transition. Terminal
// transitions (completed, cancelled) release the bound driver back to
// the available pool; a driver already released is left alone.
func (uc *DispatchUCImpl) UpdateTripStatus(ctx context.Context, tripID string, status models.TripStatus) (*models.Trip, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if !trip.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, trip.Status, status)
	}

	now := uc.now()
	trip.Status = status
	switch status {
	case models.TripStatusAccepted:
		trip.AcceptedAt = &now
	case models.TripStatusCompleted:
		trip.CompletedAt = &now
	case models.TripStatusCancelled:
		trip.CancelledAt = &now
	}

	if err := uc.repo.UpdateTripStatus(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to update trip status: %w", err)
	}

	if status.Terminal() && trip.DriverID != "" {
		if _, err := uc.drivers.ReleaseTrip(trip.DriverID); err != nil {
			if !errors.Is(err, store.ErrNoTripBound) && !errors.Is(err, store.ErrDriverNotFound) {
				logger.Error("Failed to release driver",
					logger.String("trip_id", trip.ID),
					logger.String("driver_id", trip.DriverID),
					logger.Err(err))
			}
		}
	}

	uc.publishTransition(ctx, trip)

	logger.Info("Trip status updated",
		logger.String("trip_id", trip.ID),
		logger.String("status", string(status)))

	return trip, nil
}

func (uc *DispatchUCImpl) publishTransition(ctx context.Context, trip *models.Trip) {
	event := uc.tripEvent(trip)

	var err error
	switch trip.Status {
	case models.TripStatusCompleted:
		err = uc.gw.PublishTripCompleted(ctx, event)
	default:
		err = uc.gw.PublishTripUpdated(ctx, event)
	}
	if err != nil {
		logger.Warn("Failed to publish trip event",
			logger.String("trip_id", trip.ID),
			logger.String("status", string(trip.Status)),
			logger.Err(err))
	}

	// Trip subscribers are served by the NATS consumer; only the
	// customer is notified directly here.
	wsEvent := constants.EventTripUpdated
	if trip.Status == models.TripStatusAccepted {
		wsEvent = constants.EventTripAccepted
	}
	uc.notifier.NotifyClient(trip.CustomerID, wsEvent, trip)
}

func (uc *DispatchUCImpl) tripEvent(trip *models.Trip) models.TripEvent {
	return models.TripEvent{
		TripID:     trip.ID,
		DriverID:   trip.DriverID,
		DriverName: trip.DriverName,
		CustomerID: trip.CustomerID,
		Status:     trip.Status,
		Timestamp:  uc.now(),
	}
}
