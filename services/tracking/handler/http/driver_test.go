package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/mocks"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/store"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/usecase"
)

func newHandlerTest(t *testing.T) (*DriverHandler, *mocks.MockTrackingUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockTrackingUC(ctrl)
	cfg := &models.Config{}
	cfg.Dispatch.SearchRadiusKm = 5.0
	return NewDriverHandler(mockUC, cfg), mockUC
}

func doRequest(handler echo.HandlerFunc, method, target string, body interface{}, paramNames []string, paramValues []string) (*httptest.ResponseRecorder, error) {
	e := echo.New()

	var reqBody bytes.Buffer
	if body != nil {
		json.NewEncoder(&reqBody).Encode(body)
	}

	req := httptest.NewRequest(method, target, &reqBody)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames(paramNames...)
	c.SetParamValues(paramValues...)

	return rec, handler(c)
}

func TestRegisterDriver(t *testing.T) {
	h, mockUC := newHandlerTest(t)

	mockUC.EXPECT().
		RegisterDriver(gomock.Any(), "Alice").
		Return(&models.DriverState{ID: "driver-1", Name: "Alice", Status: models.DriverStatusOffline}, nil)

	rec, err := doRequest(h.RegisterDriver, http.MethodPost, "/drivers",
		map[string]string{"name": "Alice"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "driver-1")
}

func TestRegisterDriver_MissingName(t *testing.T) {
	h, _ := newHandlerTest(t)

	rec, err := doRequest(h.RegisterDriver, http.MethodPost, "/drivers",
		map[string]string{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDriver_NotFound(t *testing.T) {
	h, mockUC := newHandlerTest(t)

	mockUC.EXPECT().
		GetDriver(gomock.Any(), "ghost").
		Return(nil, store.ErrDriverNotFound)

	rec, err := doRequest(h.GetDriver, http.MethodGet, "/drivers/ghost",
		nil, []string{"id"}, []string{"ghost"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateDriverStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*mocks.MockTrackingUC)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"status": "available"},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					SetDriverStatus(gomock.Any(), "driver-1", models.DriverStatusAvailable).
					Return(&models.DriverState{ID: "driver-1", Status: models.DriverStatusAvailable}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid status",
			body:           map[string]string{"status": "flying"},
			mockSetup:      func(mockUC *mocks.MockTrackingUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Active trip conflict",
			body: map[string]string{"status": "available"},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					SetDriverStatus(gomock.Any(), "driver-1", models.DriverStatusAvailable).
					Return(nil, store.ErrTripConflict)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Busy without bound trip",
			body: map[string]string{"status": "busy"},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					SetDriverStatus(gomock.Any(), "driver-1", models.DriverStatusBusy).
					Return(nil, store.ErrNoTripBound)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, mockUC := newHandlerTest(t)
			tc.mockSetup(mockUC)

			rec, err := doRequest(h.UpdateDriverStatus, http.MethodPatch, "/drivers/driver-1/status",
				tc.body, []string{"id"}, []string{"driver-1"})
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestGetDriverLocation_NoLocationRecorded(t *testing.T) {
	h, mockUC := newHandlerTest(t)

	mockUC.EXPECT().
		GetDriverLocation(gomock.Any(), "driver-1").
		Return(nil, usecase.ErrNoLocation)

	rec, err := doRequest(h.GetDriverLocation, http.MethodGet, "/drivers/driver-1/location",
		nil, []string{"id"}, []string{"driver-1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNearbyDrivers(t *testing.T) {
	h, mockUC := newHandlerTest(t)

	mockUC.EXPECT().
		NearbyDrivers(gomock.Any(), gomock.Any(), 5.0).
		Return([]models.NearbyDriver{{ID: "driver-1", Distance: 0.8}}, nil)

	rec, err := doRequest(h.NearbyDrivers, http.MethodGet,
		"/drivers/nearby?lat=-26.2&lng=28.04", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "driver-1")
}

func TestNearbyDrivers_MissingCoordinates(t *testing.T) {
	h, _ := newHandlerTest(t)

	rec, err := doRequest(h.NearbyDrivers, http.MethodGet, "/drivers/nearby", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
