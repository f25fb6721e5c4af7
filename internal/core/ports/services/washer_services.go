package services

import (
	"context"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
)

// WasherSvcFacade manages washers.
type WasherSvcFacade interface {
	CreateWasher(ctx context.Context, req dto.CreateWasherRequest, creatorUserID string) (*domain.Washer, error)
	ListActiveWashers(ctx context.Context) ([]domain.Washer, error)
	// DeactivateWasher soft-deletes; ledger rows keep their reference.
	DeactivateWasher(ctx context.Context, washerID string, updaterUserID string) error
}
