package services

import (
	"context"
	"time"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues the application's signed bearer tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade wraps the Google OAuth redirect flow used by the
// Google sign-in endpoints.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates the CSRF token carried through the redirect.
	GenerateStateString(ctx context.Context) (string, error)
	GetGoogleLoginURL(ctx context.Context, state string) string
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken verifies an ID token returned by the exchange.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
	// GetUserInfo fetches the userinfo profile with the access token. Used
	// when the exchange response carries no ID token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}
