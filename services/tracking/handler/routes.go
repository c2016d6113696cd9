package handler

import (
	"github.com/labstack/echo/v4"

	httphandler "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/handler/http"
	natshandler "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/handler/nats"
	wshandler "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/handler/websocket"
)

// Handler coordinates all protocol handlers for the tracking service
type Handler struct {
	driverHandler *httphandler.DriverHandler
	wsHandler     *wshandler.WebSocketHandler
	tripEvents    *natshandler.TripEventsHandler
}

// NewHandler creates and initializes all tracking handlers
func NewHandler(
	driverHandler *httphandler.DriverHandler,
	wsHandler *wshandler.WebSocketHandler,
	tripEvents *natshandler.TripEventsHandler,
) *Handler {
	return &Handler{
		driverHandler: driverHandler,
		wsHandler:     wsHandler,
		tripEvents:    tripEvents,
	}
}

// RegisterRoutes registers HTTP and WebSocket routes and starts the
// NATS consumers.
func (h *Handler) RegisterRoutes(e *echo.Echo) error {
	driverGroup := e.Group("/drivers")
	driverGroup.POST("", h.driverHandler.RegisterDriver)
	driverGroup.GET("", h.driverHandler.ListDrivers)
	driverGroup.GET("/nearby", h.driverHandler.NearbyDrivers)
	driverGroup.GET("/:id", h.driverHandler.GetDriver)
	driverGroup.PATCH("/:id/status", h.driverHandler.UpdateDriverStatus)
	driverGroup.GET("/:id/location", h.driverHandler.GetDriverLocation)

	e.GET("/ws", h.wsHandler.HandleWebSocket)

	return h.tripEvents.InitConsumers()
}

// Close shuts down the NATS consumers
func (h *Handler) Close() {
	h.tripEvents.Close()
}
