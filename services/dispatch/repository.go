package dispatch

import (
	"context"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	ListCustomerTrips(ctx context.Context, customerID string) ([]models.Trip, error)
	UpdateTripStatus(ctx context.Context, trip *models.Trip) error
}
