package dispatch

import (
	"context"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

// DispatchUC defines the trip dispatch use case operations
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch DispatchUC
type DispatchUC interface {
	RequestTrip(ctx context.Context, req models.TripRequest) (*models.TripAssignment, error)
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	ListCustomerTrips(ctx context.Context, customerID string) ([]models.Trip, error)
	UpdateTripStatus(ctx context.Context, tripID string, status models.TripStatus) (*models.Trip, error)
}
