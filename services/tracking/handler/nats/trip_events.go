package nats

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/constants"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/logger"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	natspkg "github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/nats"
	pkgws "github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/websocket"
)

// TripEventsHandler consumes trip lifecycle events off the bus and
// fans them out to WebSocket clients subscribed to the trip.
type TripEventsHandler struct {
	natsClient *natspkg.Client
	manager    *pkgws.Manager
	subs       []*nats.Subscription
}

// NewTripEventsHandler creates a new trip events NATS handler
func NewTripEventsHandler(client *natspkg.Client, manager *pkgws.Manager) *TripEventsHandler {
	return &TripEventsHandler{
		natsClient: client,
		manager:    manager,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitConsumers subscribes to all trip event subjects
func (h *TripEventsHandler) InitConsumers() error {
	subjects := map[string]string{
		constants.SubjectTripAssigned:  constants.EventTripAssigned,
		constants.SubjectTripUpdated:   constants.EventTripUpdated,
		constants.SubjectTripCompleted: constants.EventTripUpdated,
	}

	for subject, wsEvent := range subjects {
		event := wsEvent
		sub, err := h.natsClient.Subscribe(subject, func(msg *nats.Msg) {
			h.handleTripEvent(event, msg.Data)
		})
		if err != nil {
			return err
		}
		h.subs = append(h.subs, sub)
	}

	logger.Info("Trip event consumers initialized")
	return nil
}

// handleTripEvent relays one trip event to the trip's subscribers
func (h *TripEventsHandler) handleTripEvent(wsEvent string, data []byte) {
	var event models.TripEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Warn("Failed to unmarshal trip event", logger.Err(err))
		return
	}

	if event.Status == models.TripStatusAccepted {
		wsEvent = constants.EventTripAccepted
	}

	h.manager.BroadcastToTripSubscribers(event.TripID, wsEvent, event)
}

// Close drains all subscriptions
func (h *TripEventsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
}
