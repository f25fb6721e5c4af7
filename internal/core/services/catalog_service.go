package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portsrepo "github.com/lavadero-app/lavadero-backend/internal/core/ports/repositories"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
	"github.com/shopspring/decimal"
)

type catalogService struct {
	BaseService
	serviceRepo portsrepo.ServiceRepository
}

// NewCatalogService creates the service catalog service.
func NewCatalogService(serviceRepo portsrepo.ServiceRepository) portssvc.CatalogSvcFacade {
	return &catalogService{serviceRepo: serviceRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error) {
	if req.BasePrice.IsNegative() {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "precio_base",
			Message: "debe ser mayor o igual a cero",
		})
	}

	now := time.Now()
	service := domain.Service{
		ServiceID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.LogInfo(ctx, "service created", slog.String("servicio_id", service.ServiceID))
	return &service, nil
}

func (s *catalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.serviceRepo.FindServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) GetService(ctx context.Context, serviceID string) (*domain.Service, error) {
	return s.serviceRepo.FindServiceByID(ctx, serviceID)
}

// PriceFor resolves the active price for a (service, vehicle type) pair.
// A missing entry surfaces as ErrNoPriceDefined, never as a zero price.
func (s *catalogService) PriceFor(ctx context.Context, serviceID string, vehicleType domain.VehicleType) (decimal.Decimal, error) {
	if !vehicleType.IsValid() {
		return decimal.Zero, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "tipo_vehiculo",
			Message: "tipo de vehículo inválido",
		})
	}
	price, err := s.serviceRepo.FindActivePrice(ctx, serviceID, vehicleType)
	if err != nil {
		return decimal.Zero, err
	}
	return price.Price, nil
}

func (s *catalogService) SetPrice(ctx context.Context, serviceID string, vehicleType domain.VehicleType, price decimal.Decimal, updaterUserID string) (*domain.ServicePrice, error) {
	fields := []apperrors.FieldError{}
	if !vehicleType.IsValid() {
		fields = append(fields, apperrors.FieldError{Field: "tipo_vehiculo", Message: "tipo de vehículo inválido"})
	}
	if !price.IsPositive() {
		fields = append(fields, apperrors.FieldError{Field: "precio", Message: "debe ser mayor que cero"})
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields...)
	}

	if _, err := s.serviceRepo.FindServiceByID(ctx, serviceID); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.ServicePrice{
		ServiceID:   serviceID,
		VehicleType: vehicleType,
		Price:       price,
		Active:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.serviceRepo.UpsertPrice(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to set price: %w", err)
	}

	s.LogInfo(ctx, "price updated",
		slog.String("servicio_id", serviceID),
		slog.String("tipo_vehiculo", string(vehicleType)),
		slog.String("precio", price.String()))
	return &entry, nil
}

func (s *catalogService) ListPricesForVehicle(ctx context.Context, vehicleType domain.VehicleType) ([]domain.ServiceWithPrice, error) {
	if !vehicleType.IsValid() {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "tipo_vehiculo",
			Message: "tipo de vehículo inválido",
		})
	}
	return s.serviceRepo.FindPricesForVehicle(ctx, vehicleType)
}

func (s *catalogService) ListAllPrices(ctx context.Context) ([]domain.ServicePrice, error) {
	return s.serviceRepo.FindAllActivePrices(ctx)
}

func (s *catalogService) PopularServices(ctx context.Context, vehicleType *domain.VehicleType, windowDays int, limit int) ([]domain.PopularService, error) {
	if vehicleType != nil && !vehicleType.IsValid() {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "tipo_vehiculo",
			Message: "tipo de vehículo inválido",
		})
	}
	if windowDays <= 0 {
		windowDays = 30
	}
	if limit <= 0 {
		limit = 5
	}
	since := time.Now().AddDate(0, 0, -windowDays)
	return s.serviceRepo.FindPopularServices(ctx, vehicleType, since, limit)
}
