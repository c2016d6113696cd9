package gateway

import (
	"context"
	"fmt"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/constants"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	natspkg "github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/nats"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch"
)

// DispatchGWImpl publishes trip lifecycle events to NATS
type DispatchGWImpl struct {
	nats *natspkg.Client
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(natsClient *natspkg.Client) *DispatchGWImpl {
	return &DispatchGWImpl{nats: natsClient}
}

var _ dispatch.DispatchGW = (*DispatchGWImpl)(nil)

// PublishTripAssigned publishes a trip assignment event
func (g *DispatchGWImpl) PublishTripAssigned(ctx context.Context, event models.TripEvent) error {
	if err := g.nats.PublishJSON(constants.SubjectTripAssigned, event); err != nil {
		return fmt.Errorf("failed to publish trip assigned: %w", err)
	}
	return nil
}

// PublishTripUpdated publishes a trip status change event
func (g *DispatchGWImpl) PublishTripUpdated(ctx context.Context, event models.TripEvent) error {
	if err := g.nats.PublishJSON(constants.SubjectTripUpdated, event); err != nil {
		return fmt.Errorf("failed to publish trip updated: %w", err)
	}
	return nil
}

// PublishTripCompleted publishes a trip completion event
func (g *DispatchGWImpl) PublishTripCompleted(ctx context.Context, event models.TripEvent) error {
	if err := g.nats.PublishJSON(constants.SubjectTripCompleted, event); err != nil {
		return fmt.Errorf("failed to publish trip completed: %w", err)
	}
	return nil
}
