package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lavadero-app/lavadero-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		WasherRepo:    newPgxWasherRepository(dbPool),
		ServiceRepo:   newPgxServiceRepository(dbPool),
		RecordRepo:    newPgxRecordRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
