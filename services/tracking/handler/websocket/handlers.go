package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/constants"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/logger"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	pkgws "github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/websocket"
	dispatchUC "github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch/usecase"
	trackingUC "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/usecase"
)

// handleDriverLocation applies one GPS sample from a driver connection.
// The sample's driver identity always comes from the authenticated
// connection, never from the payload.
func (h *WebSocketHandler) handleDriverLocation(client *pkgws.Client, ws *websocket.Conn, data json.RawMessage) error {
	var sample models.LocationSample
	if err := json.Unmarshal(data, &sample); err != nil {
		return h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "Invalid location payload")
	}
	sample.DriverID = client.UserID

	if _, err := h.trackingUC.IngestLocationSample(context.Background(), sample); err != nil {
		if errors.Is(err, trackingUC.ErrInvalidSample) {
			// Invalid samples are dropped, not fatal to the connection
			return h.manager.SendErrorMessage(ws, constants.ErrorInvalidLocation, "Location sample rejected")
		}
		return h.manager.SendErrorMessage(ws, constants.ErrorInternalError, "Failed to process location")
	}

	return nil
}

// handleRequestTrip creates a trip for a customer connection
func (h *WebSocketHandler) handleRequestTrip(client *pkgws.Client, ws *websocket.Conn, data json.RawMessage) error {
	var req models.TripRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "Invalid trip request payload")
	}
	req.CustomerID = client.UserID

	assignment, err := h.dispatchUC.RequestTrip(context.Background(), req)
	if err != nil {
		if errors.Is(err, dispatchUC.ErrNoDriversAvailable) {
			return h.manager.SendErrorMessage(ws, constants.ErrorNoDriversAvailable, "No drivers available")
		}
		logger.Error("Failed to request trip",
			logger.String("customer_id", client.UserID),
			logger.Err(err))
		return h.manager.SendErrorMessage(ws, constants.ErrorInternalError, "Failed to request trip")
	}

	// The requester also gets the assignment synchronously on this
	// connection; the bound driver is notified through its own queue.
	return h.manager.SendMessage(ws, constants.EventTripAssigned, assignment)
}

// handleSubscribeTrip subscribes the connection to one trip's updates
func (h *WebSocketHandler) handleSubscribeTrip(client *pkgws.Client, ws *websocket.Conn, data json.RawMessage) error {
	var req struct {
		TripID string `json:"trip_id"`
	}
	if err := json.Unmarshal(data, &req); err != nil || req.TripID == "" {
		return h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "Invalid subscribe payload")
	}

	if err := h.manager.SubscribeTrip(client.UserID, req.TripID); err != nil {
		return h.manager.SendErrorMessage(ws, constants.ErrorInternalError, "Failed to subscribe to trip")
	}

	return nil
}
