package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/logger"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/utils"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch/repository"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch/usecase"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(dispatchUC dispatch.DispatchUC) *TripHandler {
	return &TripHandler{
		dispatchUC: dispatchUC,
	}
}

// RequestTrip creates a trip and reserves a driver for it
func (h *TripHandler) RequestTrip(c echo.Context) error {
	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	assignment, err := h.dispatchUC.RequestTrip(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrNoDriversAvailable) {
			return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "no drivers available")
		}
		logger.Error("Failed to request trip",
			logger.String("customer_id", req.CustomerID),
			logger.Err(err))
		return utils.BadRequestResponse(c, "failed to request trip")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip assigned", assignment)
}

// GetTrip returns a trip by ID
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip id is required")
	}

	trip, err := h.dispatchUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "trip not found")
		}
		logger.Error("Failed to get trip",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved", trip)
}

// ListCustomerTrips returns a customer's trips
func (h *TripHandler) ListCustomerTrips(c echo.Context) error {
	customerID := c.Param("id")
	if customerID == "" {
		return utils.BadRequestResponse(c, "customer id is required")
	}

	trips, err := h.dispatchUC.ListCustomerTrips(c.Request().Context(), customerID)
	if err != nil {
		logger.Error("Failed to list customer trips",
			logger.String("customer_id", customerID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", trips)
}

// UpdateTripStatus applies a trip status transition
func (h *TripHandler) UpdateTripStatus(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip id is required")
	}

	var req struct {
		Status models.TripStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	trip, err := h.dispatchUC.UpdateTripStatus(c.Request().Context(), tripID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTripNotFound):
			return utils.NotFoundResponse(c, "trip not found")
		case errors.Is(err, usecase.ErrInvalidTransition):
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Failed to update trip status",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to update trip status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip status updated", trip)
}
