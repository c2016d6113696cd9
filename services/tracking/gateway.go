package tracking

import (
	"context"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

// TrackingGW publishes applied location updates on the event bus
type TrackingGW interface {
	PublishLocationUpdate(ctx context.Context, update models.DriverUpdate) error
}

// Broadcaster fans state deltas out to connected observers
type Broadcaster interface {
	BroadcastDriverUpdate(update models.DriverUpdate)
}
