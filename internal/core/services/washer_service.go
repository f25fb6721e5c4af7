package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portsrepo "github.com/lavadero-app/lavadero-backend/internal/core/ports/repositories"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
)

type washerService struct {
	BaseService
	washerRepo portsrepo.WasherRepository
}

// NewWasherService creates the washer management service.
func NewWasherService(washerRepo portsrepo.WasherRepository) portssvc.WasherSvcFacade {
	return &washerService{washerRepo: washerRepo}
}

var _ portssvc.WasherSvcFacade = (*washerService)(nil)

func (s *washerService) CreateWasher(ctx context.Context, req dto.CreateWasherRequest, creatorUserID string) (*domain.Washer, error) {
	now := time.Now()
	washer := domain.Washer{
		WasherID: uuid.NewString(),
		Name:     req.Name,
		LastName: req.LastName,
		Active:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.washerRepo.SaveWasher(ctx, washer); err != nil {
		return nil, fmt.Errorf("failed to create washer: %w", err)
	}

	s.LogInfo(ctx, "washer created", slog.String("lavador_id", washer.WasherID))
	return &washer, nil
}

func (s *washerService) ListActiveWashers(ctx context.Context) ([]domain.Washer, error) {
	washers, err := s.washerRepo.FindActiveWashers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list washers: %w", err)
	}
	return washers, nil
}

func (s *washerService) DeactivateWasher(ctx context.Context, washerID string, updaterUserID string) error {
	if err := s.washerRepo.SetWasherActive(ctx, washerID, false, updaterUserID); err != nil {
		return err
	}
	s.LogInfo(ctx, "washer deactivated", slog.String("lavador_id", washerID))
	return nil
}
