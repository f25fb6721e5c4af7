package services

import (
	"context"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
)

// UserSvcFacade exposes identity management and credential checks.
type UserSvcFacade interface {
	// Register creates a local identity with a bcrypt-hashed password.
	// Returns apperrors.ErrDuplicate when the email is already taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate resolves email+password to an identity. The email match
	// is case-insensitive. Returns apperrors.ErrUnauthorized on any failure:
	// unknown email, externally-authenticated account, or wrong password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindOrCreateGoogleUser provisions a secretario identity with no local
	// password on first Google sign-in.
	FindOrCreateGoogleUser(ctx context.Context, name, email, providerUserID string) (*domain.User, error)
}
