package repositories

import (
	"context"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
)

// UserRepository persists identities.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail matches the email case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderDetails(ctx context.Context, provider string, providerUserID string) (*domain.User, error)
}
