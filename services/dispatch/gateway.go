package dispatch

import (
	"context"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

// DispatchGW defines the interface for dispatch gateway operations
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch DispatchGW
type DispatchGW interface {
	PublishTripAssigned(ctx context.Context, event models.TripEvent) error
	PublishTripUpdated(ctx context.Context, event models.TripEvent) error
	PublishTripCompleted(ctx context.Context, event models.TripEvent) error
}

// Notifier pushes trip lifecycle events to connected clients
type Notifier interface {
	NotifyClient(userID string, event string, data interface{})
}
