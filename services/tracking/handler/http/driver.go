package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/logger"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/utils"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/store"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/usecase"
)

// DriverHandler handles HTTP requests for driver operations
type DriverHandler struct {
	trackingUC tracking.TrackingUC
	cfg        *models.Config
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(trackingUC tracking.TrackingUC, cfg *models.Config) *DriverHandler {
	return &DriverHandler{
		trackingUC: trackingUC,
		cfg:        cfg,
	}
}

// RegisterDriver creates a new driver record
func (h *DriverHandler) RegisterDriver(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.Name == "" {
		return utils.BadRequestResponse(c, "name is required")
	}

	state, err := h.trackingUC.RegisterDriver(c.Request().Context(), req.Name)
	if err != nil {
		logger.Error("Failed to register driver", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to register driver")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver registered", state)
}

// ListDrivers returns all known drivers
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.trackingUC.ListDrivers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list drivers", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved", drivers)
}

// GetDriver returns one driver's full state
func (h *DriverHandler) GetDriver(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver id is required")
	}

	state, err := h.trackingUC.GetDriver(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, store.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, "driver not found")
		}
		logger.Error("Failed to get driver",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved", state)
}

// UpdateDriverStatus changes a driver's availability
func (h *DriverHandler) UpdateDriverStatus(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver id is required")
	}

	var req struct {
		Status models.DriverStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if !req.Status.Valid() {
		return utils.BadRequestResponse(c, "invalid driver status")
	}

	state, err := h.trackingUC.SetDriverStatus(c.Request().Context(), driverID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDriverNotFound):
			return utils.NotFoundResponse(c, "driver not found")
		case errors.Is(err, store.ErrTripConflict):
			return utils.ConflictResponse(c, "driver has an active trip")
		case errors.Is(err, store.ErrNoTripBound):
			return utils.ConflictResponse(c, "driver has no active trip")
		}
		logger.Error("Failed to update driver status",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to update driver status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver status updated", state)
}

// GetDriverLocation returns a driver's last known position
func (h *DriverHandler) GetDriverLocation(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver id is required")
	}

	location, err := h.trackingUC.GetDriverLocation(c.Request().Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDriverNotFound):
			return utils.NotFoundResponse(c, "driver not found")
		case errors.Is(err, usecase.ErrNoLocation):
			return utils.NotFoundResponse(c, "no location recorded for driver")
		}
		logger.Error("Failed to get driver location",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get driver location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved", location)
}

// NearbyDrivers finds drivers near a point. Radius defaults to the
// configured dispatch search radius.
func (h *DriverHandler) NearbyDrivers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng is required")
	}

	radiusKm := h.cfg.Dispatch.SearchRadiusKm
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			return utils.BadRequestResponse(c, "radius_km must be a positive number")
		}
	}

	drivers, err := h.trackingUC.NearbyDrivers(c.Request().Context(),
		&models.Location{Latitude: lat, Longitude: lng}, radiusKm)
	if err != nil {
		logger.Error("Failed to find nearby drivers", logger.Err(err))
		return utils.BadRequestResponse(c, "failed to find nearby drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", drivers)
}
