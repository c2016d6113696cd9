package tracking

import (
	"context"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

// TrackingUC defines the location tracking use case operations
type TrackingUC interface {
	IngestLocationSample(ctx context.Context, sample models.LocationSample) (*models.DriverUpdate, error)
	RegisterDriver(ctx context.Context, name string) (*models.DriverState, error)
	SetDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) (*models.DriverState, error)
	GetDriver(ctx context.Context, driverID string) (*models.DriverState, error)
	ListDrivers(ctx context.Context) ([]models.DriverState, error)
	GetDriverLocation(ctx context.Context, driverID string) (*models.Location, error)
	NearbyDrivers(ctx context.Context, location *models.Location, radiusKm float64) ([]models.NearbyDriver, error)
}
