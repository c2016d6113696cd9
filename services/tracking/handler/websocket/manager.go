package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/constants"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/logger"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	pkgws "github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/websocket"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking"
)

// WebSocketHandler owns the realtime connection: driver location
// reports and customer trip requests come in, state updates fan out
// through the shared manager.
type WebSocketHandler struct {
	trackingUC tracking.TrackingUC
	dispatchUC dispatch.DispatchUC
	manager    *pkgws.Manager
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(
	trackingUC tracking.TrackingUC,
	dispatchUC dispatch.DispatchUC,
	manager *pkgws.Manager,
) *WebSocketHandler {
	return &WebSocketHandler{
		trackingUC: trackingUC,
		dispatchUC: dispatchUC,
		manager:    manager,
	}
}

// HandleWebSocket handles new WebSocket connections
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClientConnection)
}

// handleClientConnection manages the client's WebSocket connection
func (h *WebSocketHandler) handleClientConnection(client *pkgws.Client, ws *websocket.Conn) error {
	h.manager.Register(client)
	defer h.manager.Unregister(client.UserID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	return h.messageLoop(client, ws)
}

// messageLoop handles incoming WebSocket messages
func (h *WebSocketHandler) messageLoop(client *pkgws.Client, ws *websocket.Conn) error {
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return err
		}

		if err := h.handleMessage(client, ws, msg); err != nil {
			logger.Warn("Error handling message",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// handleMessage processes incoming WebSocket messages
func (h *WebSocketHandler) handleMessage(client *pkgws.Client, ws *websocket.Conn, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventDriverLocation:
		return h.handleDriverLocation(client, ws, wsMsg.Data)
	case constants.EventRequestTrip:
		return h.handleRequestTrip(client, ws, wsMsg.Data)
	case constants.EventSubscribeTrip:
		return h.handleSubscribeTrip(client, ws, wsMsg.Data)
	default:
		return h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "Unknown event type")
	}
}
