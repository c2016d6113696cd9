package handler

import (
	"github.com/labstack/echo/v4"

	httphandler "github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch/handler/http"
)

// Handler coordinates the protocol handlers for the dispatch service
type Handler struct {
	tripHandler *httphandler.TripHandler
}

// NewHandler creates and initializes all dispatch handlers
func NewHandler(tripHandler *httphandler.TripHandler) *Handler {
	return &Handler{
		tripHandler: tripHandler,
	}
}

// RegisterRoutes registers the dispatch routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	tripGroup := e.Group("/trips")
	tripGroup.POST("", h.tripHandler.RequestTrip)
	tripGroup.GET("/:id", h.tripHandler.GetTrip)
	tripGroup.PATCH("/:id/status", h.tripHandler.UpdateTripStatus)

	e.GET("/customers/:id/trips", h.tripHandler.ListCustomerTrips)
}
