package services

import (
	"context"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// CatalogSvcFacade manages the service catalog and price resolution.
type CatalogSvcFacade interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetService(ctx context.Context, serviceID string) (*domain.Service, error)

	// PriceFor returns the unique active price for the pair, or
	// apperrors.ErrNoPriceDefined when none exists.
	PriceFor(ctx context.Context, serviceID string, vehicleType domain.VehicleType) (decimal.Decimal, error)
	// SetPrice replaces the active price for the pair. Price must be > 0.
	// Existing ledger records are never touched.
	SetPrice(ctx context.Context, serviceID string, vehicleType domain.VehicleType, price decimal.Decimal, updaterUserID string) (*domain.ServicePrice, error)
	ListPricesForVehicle(ctx context.Context, vehicleType domain.VehicleType) ([]domain.ServiceWithPrice, error)
	ListAllPrices(ctx context.Context) ([]domain.ServicePrice, error)
	PopularServices(ctx context.Context, vehicleType *domain.VehicleType, windowDays int, limit int) ([]domain.PopularService, error)
}
