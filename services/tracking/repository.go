package tracking

import (
	"context"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

// LocationRepo is the Redis projection of driver state: snapshots for
// reads that survive a restart and the geo index behind nearby queries.
type LocationRepo interface {
	SaveDriverSnapshot(ctx context.Context, state *models.DriverState) error
	GetDriverLocation(ctx context.Context, driverID string) (*models.Location, error)
	NearbyDrivers(ctx context.Context, location *models.Location, radiusKm float64) ([]models.NearbyDriver, error)
	RemoveDriver(ctx context.Context, driverID string) error
}
