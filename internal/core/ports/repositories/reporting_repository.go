package repositories

import (
	"context"
	"time"

	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
)

// ReportingRepository computes read-only aggregates over the ledger.
type ReportingRepository interface {
	GetSummaryData(ctx context.Context, from, to time.Time) (*domain.Summary, error)
	GetTopWashers(ctx context.Context, from, to time.Time, limit int) ([]domain.WasherStat, error)
	GetTopServices(ctx context.Context, from, to time.Time, limit int) ([]domain.ServiceStat, error)
	GetByDayOfWeek(ctx context.Context, from, to time.Time) ([]domain.DayOfWeekStat, error)
	GetByVehicleType(ctx context.Context, from, to time.Time) ([]domain.VehicleTypeStat, error)
}
