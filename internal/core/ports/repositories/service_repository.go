package repositories

import (
	"context"
	"time"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
)

// ServiceRepository persists the service catalog and its per-vehicle prices.
type ServiceRepository interface {
	SaveService(ctx context.Context, service domain.Service) error
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	FindServices(ctx context.Context) ([]domain.Service, error)

	// FindActivePrice returns the unique active catalog entry for the pair,
	// or apperrors.ErrNoPriceDefined when none exists.
	FindActivePrice(ctx context.Context, serviceID string, vehicleType domain.VehicleType) (*domain.ServicePrice, error)
	// UpsertPrice deactivates any previous active entry for the pair and
	// inserts the new one atomically.
	UpsertPrice(ctx context.Context, price domain.ServicePrice) error
	FindPricesForVehicle(ctx context.Context, vehicleType domain.VehicleType) ([]domain.ServiceWithPrice, error)
	FindAllActivePrices(ctx context.Context) ([]domain.ServicePrice, error)
	FindPopularServices(ctx context.Context, vehicleType *domain.VehicleType, since time.Time, limit int) ([]domain.PopularService, error)
}
