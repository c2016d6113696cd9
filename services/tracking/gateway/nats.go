package gateway

import (
	"context"
	"fmt"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/constants"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	natspkg "github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/nats"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking"
)

// TrackingGWImpl publishes applied location updates to NATS for
// downstream consumers (dispatch, analytics).
type TrackingGWImpl struct {
	nats *natspkg.Client
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(natsClient *natspkg.Client) *TrackingGWImpl {
	return &TrackingGWImpl{nats: natsClient}
}

var _ tracking.TrackingGW = (*TrackingGWImpl)(nil)

// PublishLocationUpdate publishes a driver update to the location subject
func (g *TrackingGWImpl) PublishLocationUpdate(ctx context.Context, update models.DriverUpdate) error {
	if err := g.nats.PublishJSON(constants.SubjectLocationUpdate, update); err != nil {
		return fmt.Errorf("failed to publish location update: %w", err)
	}
	return nil
}
