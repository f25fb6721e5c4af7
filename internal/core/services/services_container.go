package services

import (
	portsrepo "github.com/lavadero-app/lavadero-backend/internal/core/ports/repositories"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Washer = NewWasherService(repos.WasherRepo)
	container.Catalog = NewCatalogService(repos.ServiceRepo)
	container.Record = NewRecordService(repos.RecordRepo, repos.ServiceRepo, repos.WasherRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, cfg)

	return container
}
