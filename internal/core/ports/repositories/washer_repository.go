package repositories

import (
	"context"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
)

// WasherRepository persists washers. Washers are never hard-deleted;
// deactivation flips the active flag.
type WasherRepository interface {
	SaveWasher(ctx context.Context, washer domain.Washer) error
	FindWasherByID(ctx context.Context, washerID string) (*domain.Washer, error)
	FindActiveWashers(ctx context.Context) ([]domain.Washer, error)
	SetWasherActive(ctx context.Context, washerID string, active bool, updatedBy string) error
}
